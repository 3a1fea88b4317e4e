package triage

import "fmt"

// QuestionID identifies one node of the questionnaire. The ids mirror the
// question numbering of the screening protocol document; there is no q6
// because it differs from q5 only in pronouns.
type QuestionID string

const (
	QuestionPronouns                  QuestionID = "q1-pronouns"
	QuestionIll                       QuestionID = "q2-ill"
	QuestionInfant                    QuestionID = "q3-infant"
	QuestionChild                     QuestionID = "q4-child"
	QuestionAgeRisk                   QuestionID = "q5-age_risk"
	QuestionChildExtreme              QuestionID = "q7-child_extreme"
	QuestionChildSevere               QuestionID = "q8-child_severe"
	QuestionChildSevereCont           QuestionID = "q9-child_severe_cont"
	QuestionExtreme                   QuestionID = "q10-extreme"
	QuestionContact                   QuestionID = "q11-contact"
	QuestionTravel                    QuestionID = "q12-travel"
	QuestionFever                     QuestionID = "q13-fever"
	QuestionShortOfBreath             QuestionID = "q14-short_of_breath"
	QuestionBreathingSevereExtreme    QuestionID = "q15-breathing_severe_extreme"
	QuestionBreathingSevereExtremeCnt QuestionID = "q16-breathing_severe_extreme_cont"
	QuestionCough                     QuestionID = "q17-cough"
	QuestionCoughSevere               QuestionID = "q18-cough_severe"
	QuestionBloodPressureExtreme      QuestionID = "q19-blood_pressure_extreme"
	QuestionSymptoms                  QuestionID = "q20-symptoms"
	QuestionLung                      QuestionID = "q21-lung"
	QuestionCardio                    QuestionID = "q22-cardio"
	QuestionDiabetes                  QuestionID = "q23-dm"
	QuestionRisks                     QuestionID = "q24-risks"
	QuestionLTC                       QuestionID = "q25-ltc"
	QuestionHCP                       QuestionID = "q26-hcp"

	// QuestionnaireEnd is the terminal sentinel, distinct from every real
	// question id.
	QuestionnaireEnd QuestionID = "end"
)

// Answer is the recognized reply to a yes/no question, named by the intent
// that matched it.
type Answer string

const (
	AnswerYes Answer = "q.yes"
	AnswerNo  Answer = "q.no"
)

// questionFlow maps (question, answer) to the next question. q2-ill is
// intentionally absent: its YES branch depends on the label set and is
// handled in NextQuestion.
var questionFlow = map[QuestionID]map[Answer]QuestionID{
	QuestionInfant:                    {AnswerYes: QuestionChildExtreme, AnswerNo: QuestionChild},
	QuestionChild:                     {AnswerYes: QuestionChildSevere, AnswerNo: QuestionAgeRisk},
	QuestionAgeRisk:                   {AnswerYes: QuestionExtreme, AnswerNo: QuestionExtreme},
	QuestionChildExtreme:              {AnswerYes: QuestionnaireEnd, AnswerNo: QuestionnaireEnd},
	QuestionChildSevere:               {AnswerYes: QuestionnaireEnd, AnswerNo: QuestionChildSevereCont},
	QuestionChildSevereCont:           {AnswerYes: QuestionnaireEnd, AnswerNo: QuestionExtreme},
	QuestionExtreme:                   {AnswerYes: QuestionnaireEnd, AnswerNo: QuestionContact},
	QuestionContact:                   {AnswerYes: QuestionTravel, AnswerNo: QuestionTravel},
	QuestionTravel:                    {AnswerYes: QuestionFever, AnswerNo: QuestionFever},
	QuestionFever:                     {AnswerYes: QuestionShortOfBreath, AnswerNo: QuestionShortOfBreath},
	QuestionShortOfBreath:             {AnswerYes: QuestionBreathingSevereExtreme, AnswerNo: QuestionCough},
	QuestionBreathingSevereExtreme:    {AnswerYes: QuestionnaireEnd, AnswerNo: QuestionBreathingSevereExtremeCnt},
	QuestionBreathingSevereExtremeCnt: {AnswerYes: QuestionnaireEnd, AnswerNo: QuestionCough},
	QuestionCough:                     {AnswerYes: QuestionCoughSevere, AnswerNo: QuestionBloodPressureExtreme},
	QuestionCoughSevere:               {AnswerYes: QuestionnaireEnd, AnswerNo: QuestionBloodPressureExtreme},
	QuestionBloodPressureExtreme:      {AnswerYes: QuestionnaireEnd, AnswerNo: QuestionSymptoms},
	QuestionSymptoms:                  {AnswerYes: QuestionLung, AnswerNo: QuestionLung},
	QuestionLung:                      {AnswerYes: QuestionCardio, AnswerNo: QuestionCardio},
	QuestionCardio:                    {AnswerYes: QuestionDiabetes, AnswerNo: QuestionDiabetes},
	QuestionDiabetes:                  {AnswerYes: QuestionRisks, AnswerNo: QuestionRisks},
	QuestionRisks:                     {AnswerYes: QuestionLTC, AnswerNo: QuestionLTC},
	QuestionLTC:                       {AnswerYes: QuestionHCP, AnswerNo: QuestionHCP},
	QuestionHCP:                       {AnswerYes: QuestionnaireEnd, AnswerNo: QuestionnaireEnd},
}

// answerLabels maps (question, answer) to the labels that answer implies.
var answerLabels = map[QuestionID]map[Answer][]Label{
	QuestionIll:                       {AnswerYes: {}, AnswerNo: {LabelNotIll}},
	QuestionInfant:                    {AnswerYes: {}, AnswerNo: {}},
	QuestionChild:                     {AnswerYes: {}, AnswerNo: {}},
	QuestionAgeRisk:                   {AnswerYes: {LabelHealthRisk}, AnswerNo: {}},
	QuestionChildExtreme:              {AnswerYes: {LabelExtreme}, AnswerNo: {LabelInfant}},
	QuestionChildSevere:               {AnswerYes: {LabelSevere}, AnswerNo: {}},
	QuestionChildSevereCont:           {AnswerYes: {LabelSevere}, AnswerNo: {}},
	QuestionExtreme:                   {AnswerYes: {LabelExtreme}, AnswerNo: {}},
	QuestionContact:                   {AnswerYes: {LabelExposure}, AnswerNo: {}},
	QuestionTravel:                    {AnswerYes: {LabelExposure}, AnswerNo: {}},
	QuestionFever:                     {AnswerYes: {LabelFever, LabelSymptomatic}, AnswerNo: {}},
	QuestionShortOfBreath:             {AnswerYes: {LabelShortOfBreath, LabelSymptomatic}, AnswerNo: {}},
	QuestionBreathingSevereExtreme:    {AnswerYes: {LabelSevereExtreme}, AnswerNo: {}},
	QuestionBreathingSevereExtremeCnt: {AnswerYes: {LabelSevereExtreme}, AnswerNo: {}},
	QuestionCough:                     {AnswerYes: {LabelCough, LabelSymptomatic}, AnswerNo: {}},
	QuestionCoughSevere:               {AnswerYes: {LabelSevere}, AnswerNo: {}},
	QuestionBloodPressureExtreme:      {AnswerYes: {LabelSevereExtreme}, AnswerNo: {}},
	QuestionSymptoms:                  {AnswerYes: {LabelSymptomatic}, AnswerNo: {LabelAsymptomatic}},
	QuestionLung:                      {AnswerYes: {LabelLung, LabelHealthRisk}, AnswerNo: {}},
	QuestionCardio:                    {AnswerYes: {LabelCardio, LabelHealthRisk}, AnswerNo: {}},
	QuestionDiabetes:                  {AnswerYes: {LabelDiabetes, LabelHealthRisk}, AnswerNo: {}},
	QuestionRisks:                     {AnswerYes: {LabelHealthRisk}, AnswerNo: {}},
	QuestionLTC:                       {AnswerYes: {LabelLTC}, AnswerNo: {}},
	QuestionHCP:                       {AnswerYes: {LabelHCP}, AnswerNo: {}},
}

// NextQuestion returns the question to ask after answering current. The
// illness gate is the one node whose routing depends on the label set: when
// the questionnaire is about the user themself the infant/child questions
// are skipped.
func NextQuestion(current QuestionID, answer Answer, labels LabelSet) (QuestionID, error) {
	if current == QuestionIll {
		if answer != AnswerYes {
			return QuestionnaireEnd, nil
		}
		if labels.Contains(LabelMe) {
			return QuestionAgeRisk, nil
		}
		return QuestionInfant, nil
	}
	edges, ok := questionFlow[current]
	if !ok {
		return "", fmt.Errorf("%w: no flow entry for question %q", ErrConfig, current)
	}
	next, ok := edges[answer]
	if !ok {
		return "", fmt.Errorf("%w: no %q edge for question %q", ErrConfig, answer, current)
	}
	return next, nil
}

// LabelsFor returns the labels implied by answering a question. Most NO
// answers carry no clinical significance and return an empty list.
func LabelsFor(question QuestionID, answer Answer) ([]Label, error) {
	row, ok := answerLabels[question]
	if !ok {
		return nil, fmt.Errorf("%w: no label entry for question %q", ErrConfig, question)
	}
	labels, ok := row[answer]
	if !ok {
		return nil, fmt.Errorf("%w: no %q label entry for question %q", ErrConfig, answer, question)
	}
	return labels, nil
}

// isQuestion reports whether id names a real, answerable question.
func isQuestion(id QuestionID) bool {
	if id == QuestionIll {
		return true
	}
	_, ok := questionFlow[id]
	return ok
}

// ValidateTables checks the static tables for dangling edges, missing label
// rows and duplicate card ranks. It is meant to run once at process start so
// a broken table fails the boot rather than a patient.
func ValidateTables() error {
	for q, edges := range questionFlow {
		for _, answer := range []Answer{AnswerYes, AnswerNo} {
			next, ok := edges[answer]
			if !ok {
				return fmt.Errorf("%w: question %q has no %q edge", ErrConfig, q, answer)
			}
			if next != QuestionnaireEnd && !isQuestion(next) {
				return fmt.Errorf("%w: question %q routes to unknown question %q", ErrConfig, q, next)
			}
		}
		if _, ok := answerLabels[q]; !ok {
			return fmt.Errorf("%w: question %q has no label table row", ErrConfig, q)
		}
	}
	if _, ok := answerLabels[QuestionIll]; !ok {
		return fmt.Errorf("%w: illness gate has no label table row", ErrConfig)
	}
	return validateCards()
}
