package triage

import (
	"errors"
	"testing"
)

func TestValidateTables(t *testing.T) {
	if err := ValidateTables(); err != nil {
		t.Fatalf("ValidateTables failed: %v", err)
	}
}

func TestFlowHasNoDanglingEdges(t *testing.T) {
	for q, edges := range questionFlow {
		for answer, next := range edges {
			if next == QuestionnaireEnd {
				continue
			}
			if !isQuestion(next) {
				t.Errorf("question %s answer %s routes to unknown question %s", q, answer, next)
			}
		}
	}
}

func TestNextQuestionIllnessGate(t *testing.T) {
	tests := []struct {
		name   string
		answer Answer
		labels LabelSet
		want   QuestionID
	}{
		{"yes for self skips to age risk", AnswerYes, LabelSet{LabelMe}, QuestionAgeRisk},
		{"yes for someone else asks infant", AnswerYes, LabelSet{LabelSomeoneElse}, QuestionInfant},
		{"no ends the questionnaire", AnswerNo, LabelSet{LabelMe}, QuestionnaireEnd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextQuestion(QuestionIll, tt.answer, tt.labels)
			if err != nil {
				t.Fatalf("NextQuestion failed: %v", err)
			}
			if got != tt.want {
				t.Fatalf("NextQuestion = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNextQuestionTableLookup(t *testing.T) {
	tests := []struct {
		current QuestionID
		answer  Answer
		want    QuestionID
	}{
		{QuestionInfant, AnswerYes, QuestionChildExtreme},
		{QuestionInfant, AnswerNo, QuestionChild},
		{QuestionShortOfBreath, AnswerYes, QuestionBreathingSevereExtreme},
		{QuestionShortOfBreath, AnswerNo, QuestionCough},
		{QuestionAgeRisk, AnswerYes, QuestionExtreme},
		{QuestionAgeRisk, AnswerNo, QuestionExtreme},
		{QuestionHCP, AnswerNo, QuestionnaireEnd},
	}
	for _, tt := range tests {
		got, err := NextQuestion(tt.current, tt.answer, nil)
		if err != nil {
			t.Fatalf("NextQuestion(%s, %s) failed: %v", tt.current, tt.answer, err)
		}
		if got != tt.want {
			t.Errorf("NextQuestion(%s, %s) = %s, want %s", tt.current, tt.answer, got, tt.want)
		}
	}
}

func TestNextQuestionUnknownQuestion(t *testing.T) {
	_, err := NextQuestion("q99-bogus", AnswerYes, nil)
	if !errors.Is(err, ErrConfig) {
		t.Fatalf("expected ErrConfig, got %v", err)
	}
}

func TestLabelsFor(t *testing.T) {
	labels, err := LabelsFor(QuestionIll, AnswerNo)
	if err != nil {
		t.Fatalf("LabelsFor failed: %v", err)
	}
	if len(labels) != 1 || labels[0] != LabelNotIll {
		t.Fatalf("LabelsFor(q2, no) = %v, want [NOT_ILL]", labels)
	}

	labels, err = LabelsFor(QuestionFever, AnswerYes)
	if err != nil {
		t.Fatalf("LabelsFor failed: %v", err)
	}
	if len(labels) != 2 || labels[0] != LabelFever || labels[1] != LabelSymptomatic {
		t.Fatalf("LabelsFor(q13, yes) = %v, want [FEVER SYMPTOMATIC]", labels)
	}

	labels, err = LabelsFor(QuestionTravel, AnswerNo)
	if err != nil {
		t.Fatalf("LabelsFor failed: %v", err)
	}
	if len(labels) != 0 {
		t.Fatalf("LabelsFor(q12, no) = %v, want no labels", labels)
	}

	if _, err := LabelsFor("q99-bogus", AnswerYes); !errors.Is(err, ErrConfig) {
		t.Fatalf("expected ErrConfig, got %v", err)
	}
}

func TestLabelSetAddIsOrderedAndDeduplicated(t *testing.T) {
	var set LabelSet
	set.Add(LabelFever)
	set.Add(LabelSymptomatic)
	set.Add(LabelFever)
	set.Add(LabelCough)

	want := LabelSet{LabelFever, LabelSymptomatic, LabelCough}
	if len(set) != len(want) {
		t.Fatalf("set = %v, want %v", set, want)
	}
	for i := range want {
		if set[i] != want[i] {
			t.Fatalf("set = %v, want %v", set, want)
		}
	}
	if !set.Contains(LabelCough) || set.Contains(LabelExtreme) {
		t.Fatalf("Contains gave wrong answers for %v", set)
	}
}
