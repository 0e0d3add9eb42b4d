package preop

// Lang selects one of the two hard-coded output languages.
type Lang int

const (
	PT Lang = iota
	EN
)

// Languages is the order in which summary sections are emitted.
var Languages = []Lang{PT, EN}

func (l Lang) String() string {
	switch l {
	case PT:
		return "PT"
	case EN:
		return "EN"
	default:
		return ""
	}
}

// Placeholder stands in for any value that could not be computed.
const Placeholder = "—"

// Bilingual holds one phrase in both languages. Inline labels print it as
// "EN / PT".
type Bilingual struct {
	EN string
	PT string
}

func (b Bilingual) String() string {
	return b.EN + " / " + b.PT
}

// phrasebook is every fragment the summary needs for one language. Format
// strings take their arguments in the order documented next to each field.
type phrasebook struct {
	defaultName    string
	ageUnknown     string
	ageFormat      string // age
	sexMale        string
	sexFemale      string
	sexUnknown     string
	surgeryUnknown string
	identity       string // name, age, sex, surgery
	measures       string // asa, bmi
	notesFormat    string // notes
	notesNone      string
}

var phrasebooks = [...]phrasebook{
	PT: {
		defaultName:    "Paciente",
		ageUnknown:     "idade não informada",
		ageFormat:      "%s anos",
		sexMale:        "masculino",
		sexFemale:      "feminino",
		sexUnknown:     Placeholder,
		surgeryUnknown: "procedimento não especificado",
		identity:       "%s, %s, sexo %s, planejado para %s.",
		measures:       "ASA %s. IMC %s kg/m².",
		notesFormat:    "Dados adicionais: %s",
		notesNone:      "Sem observações adicionais registradas.",
	},
	EN: {
		defaultName:    "Patient",
		ageUnknown:     "age not informed",
		ageFormat:      "%s-year-old",
		sexMale:        "male",
		sexFemale:      "female",
		sexUnknown:     "sex not informed",
		surgeryUnknown: "procedure not specified",
		identity:       "%s, %s, %s, scheduled for %s.",
		measures:       "ASA %s. BMI %s kg/m².",
		notesFormat:    "Additional notes: %s",
		notesNone:      "No additional notes recorded.",
	},
}

func phrasesFor(l Lang) phrasebook {
	return phrasebooks[l]
}
