// Package render turns pre-operative summary sections into HTML for the
// frontend's preview pane.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/Skufu/preopcalc/internal/preop"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

var md = goldmark.New(goldmark.WithRendererOptions(html.WithHardWraps()))

// SummaryMarkdown converts summary sections into markdown. Each section
// header becomes a level-3 heading and its lines one paragraph. Every other
// character is escaped so free-text notes come through verbatim and never
// turn into headings of their own.
func SummaryMarkdown(sections []preop.Section) string {
	var b strings.Builder
	for i, section := range sections {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("### " + section.Lang.String() + "\n\n")
		for j, line := range section.Lines {
			if j > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(escape(line))
		}
	}
	return b.String()
}

// SummaryHTML renders the summary sections as an HTML fragment.
func SummaryHTML(sections []preop.Section) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(SummaryMarkdown(sections)), &buf); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	return buf.String(), nil
}

// escape backslash-escapes ASCII punctuation, which CommonMark treats as
// literal text.
func escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x80 && isPunct(byte(r)) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isPunct(c byte) bool {
	return strings.IndexByte("!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~", c) >= 0
}
