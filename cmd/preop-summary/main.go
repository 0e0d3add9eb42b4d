package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Skufu/preopcalc/internal/preop"
	"github.com/Skufu/preopcalc/internal/render"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("preop-summary", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var form preop.Form
	fs.StringVar(&form.Name, "name", "", "Patient name")
	fs.StringVar(&form.Age, "age", "", "Age in years")
	fs.StringVar(&form.Sex, "sex", "", "Sex: M or F")
	fs.StringVar(&form.HeightCm, "height", "", "Height in cm (100-230, comma decimals accepted)")
	fs.StringVar(&form.WeightKg, "weight", "", "Weight in kg (20-300, comma decimals accepted)")
	fs.StringVar(&form.ASA, "asa", "", "ASA class: I-VI")
	fs.StringVar(&form.SurgeryType, "surgery", "", "Planned procedure")
	fs.StringVar(&form.Notes, "notes", "", "Free-text notes")
	asHTML := fs.Bool("html", false, "Print the summary as HTML")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	sections, a, err := preop.SummarizeSections(form)
	if errors.Is(err, preop.ErrInvalidMeasurements) {
		for _, msg := range []string{a.Height.Error, a.Weight.Error} {
			if msg != "" {
				fmt.Fprintln(stderr, msg)
			}
		}
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "BMI: %s (%s)\n", a.BMIDisplay(), a.Category)
	fmt.Fprintf(stdout, "IBW (Devine): %s\n", a.IBWDisplay())
	fmt.Fprintf(stdout, "Risk: %s\n\n", a.Risk)

	if *asHTML {
		out, err := render.SummaryHTML(sections)
		if err != nil {
			fmt.Fprintf(stderr, "render summary: %v\n", err)
			return 1
		}
		fmt.Fprint(stdout, out)
		return 0
	}

	summary := preop.JoinSections(sections)
	fmt.Fprintln(stdout, summary)
	fmt.Fprintf(stdout, "\n%d chars\n", preop.SummaryLength(summary))
	return 0
}
