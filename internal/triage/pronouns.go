package triage

import (
	"fmt"
	"strings"
)

// Placeholder tokens recognized in card templates.
const (
	placeholderPronoun1   = "-pronoun1-"
	placeholderPronoun2   = "-pronoun2-"
	placeholderPronoun1Up = "-pronoun1_up-"
)

// Pronoun-selection intents.
const (
	IntentPronounsMe   = "q1.pronouns_me"
	IntentPronounsThey = "q1.pronouns_they"
)

// PronounBinding holds the substitution values chosen when the user said who
// the questionnaire is about. It is bound once per run and cleared with the
// rest of the session state at the terminal question.
type PronounBinding struct {
	Pronoun1   string `json:"pronoun1"`
	Pronoun2   string `json:"pronoun2"`
	Pronoun1Up string `json:"pronoun1_up"`
}

func (b PronounBinding) IsZero() bool {
	return b == PronounBinding{}
}

// BindingForIntent maps a pronoun-selection intent to its binding and
// pronoun-category label. An unmapped intent is a configuration error: the
// conversational platform and this table must agree.
func BindingForIntent(intent string) (PronounBinding, Label, error) {
	switch intent {
	case IntentPronounsMe:
		return PronounBinding{Pronoun1: "you", Pronoun2: "your", Pronoun1Up: "You"}, LabelMe, nil
	case IntentPronounsThey:
		return PronounBinding{Pronoun1: "they", Pronoun2: "their", Pronoun1Up: "They"}, LabelSomeoneElse, nil
	default:
		return PronounBinding{}, "", fmt.Errorf("%w: intent %q is not a pronoun selection", ErrConfig, intent)
	}
}

// Substitute fills the pronoun placeholders in a template. With no
// established binding the template passes through untouched.
func Substitute(template string, b PronounBinding) string {
	if b.IsZero() {
		return template
	}
	template = strings.ReplaceAll(template, placeholderPronoun1Up, b.Pronoun1Up)
	template = strings.ReplaceAll(template, placeholderPronoun1, b.Pronoun1)
	return strings.ReplaceAll(template, placeholderPronoun2, b.Pronoun2)
}
