package triage

// Label is a clinical or demographic fact inferred from an answer.
type Label string

const (
	LabelNotIll        Label = "NOT_ILL"
	LabelInfant        Label = "INFANT"
	LabelExtreme       Label = "EXTREME"
	LabelSevere        Label = "SEVERE"
	LabelSevereExtreme Label = "SEVERE_EXTREME"
	LabelHealthRisk    Label = "HEALTHRISK"
	LabelExposure      Label = "EXPOSURE"
	LabelSymptomatic   Label = "SYMPTOMATIC"
	LabelAsymptomatic  Label = "ASYMPTOMATIC"
	LabelFever         Label = "FEVER"
	LabelCough         Label = "COUGH"
	LabelShortOfBreath Label = "SHORT_OF_BREATH"
	LabelLung          Label = "LUNG"
	LabelCardio        Label = "CARDIO"
	LabelDiabetes      Label = "DM"
	LabelLTC           Label = "LTC"
	LabelHCP           Label = "HCP"

	// Pronoun-category labels, set when the user picks who the
	// questionnaire is about.
	LabelMe          Label = "ME"
	LabelSomeoneElse Label = "SOMEONE_ELSE"
)

// LabelSet is a duplicate-free label collection that preserves insertion
// order. It is append-only for the lifetime of a questionnaire run.
type LabelSet []Label

func (s *LabelSet) Add(l Label) {
	if s.Contains(l) {
		return
	}
	*s = append(*s, l)
}

func (s LabelSet) Contains(l Label) bool {
	for _, have := range s {
		if have == l {
			return true
		}
	}
	return false
}
