package triage_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"covid-triage-bot/internal/session"
	"covid-triage-bot/internal/triage"
)

func answerAll(t *testing.T, svc *triage.Service, sessionID string, answers []triage.Answer) {
	t.Helper()
	ctx := context.Background()
	for i, answer := range answers {
		result, err := svc.HandleAnswer(ctx, sessionID, answer)
		if err != nil {
			t.Fatalf("answer %d (%s) failed: %v", i+1, answer, err)
		}
		if result.FollowUpEvent != triage.FollowUpTriggerQuestion {
			t.Fatalf("answer %d: follow-up = %q, want %q", i+1, result.FollowUpEvent, triage.FollowUpTriggerQuestion)
		}
	}
}

func TestQuestionnaireNotIllRun(t *testing.T) {
	ctx := context.Background()
	svc := triage.NewService(session.NewMemoryStore())

	result, err := svc.StartQuestionnaire(ctx, "s1", triage.IntentPronounsMe)
	if err != nil {
		t.Fatalf("StartQuestionnaire failed: %v", err)
	}
	if result.FollowUpEvent != triage.FollowUpTriggerQuestion {
		t.Fatalf("follow-up = %q, want %q", result.FollowUpEvent, triage.FollowUpTriggerQuestion)
	}

	// Not ill: the illness gate ends the questionnaire immediately.
	answerAll(t, svc, "s1", []triage.Answer{triage.AnswerNo})

	final, err := svc.Finish(ctx, "s1")
	if err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	// General info message plus its two action cards plus the universal pair.
	if len(final.VisualCards) != 5 {
		t.Fatalf("composed %d cards, want 5: %+v", len(final.VisualCards), final.VisualCards)
	}
	last := final.VisualCards[len(final.VisualCards)-1]
	if !strings.Contains(last.Title, "plan, prepare, and cope") {
		t.Fatalf("bottom card = %q, want the general info care message", last.Title)
	}
	if !strings.Contains(final.SpokenUtterance, "Visit CDC.gov/coronavirus") {
		t.Fatalf("unexpected spoken utterance %q", final.SpokenUtterance)
	}
}

func TestQuestionnaireSomeoneElseExtremeRun(t *testing.T) {
	ctx := context.Background()
	svc := triage.NewService(session.NewMemoryStore())

	if _, err := svc.StartQuestionnaire(ctx, "s2", triage.IntentPronounsThey); err != nil {
		t.Fatalf("StartQuestionnaire failed: %v", err)
	}

	// Ill, an infant, with extreme symptoms: q2 yes -> q3 yes -> q7 yes -> end.
	answerAll(t, svc, "s2", []triage.Answer{triage.AnswerYes, triage.AnswerYes, triage.AnswerYes})

	final, err := svc.Finish(ctx, "s2")
	if err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	if len(final.VisualCards) != 1 {
		t.Fatalf("composed %d cards, want only the emergency card", len(final.VisualCards))
	}
	if final.VisualCards[0].Title != "Call 911 now" {
		t.Fatalf("card = %q, want the call-911 care message", final.VisualCards[0].Title)
	}
	if !strings.Contains(final.VisualCards[0].Text, "They may be having a medical emergency") {
		t.Fatalf("pronouns not substituted: %q", final.VisualCards[0].Text)
	}
}

func TestQuestionnaireSelfSkipsChildQuestions(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	svc := triage.NewService(store)

	if _, err := svc.StartQuestionnaire(ctx, "s3", triage.IntentPronounsMe); err != nil {
		t.Fatalf("StartQuestionnaire failed: %v", err)
	}
	answerAll(t, svc, "s3", []triage.Answer{triage.AnswerYes})

	state, err := store.Get(ctx, "s3")
	if err != nil || state == nil {
		t.Fatalf("state missing after answer: %v", err)
	}
	if state.Current != triage.QuestionAgeRisk {
		t.Fatalf("current question = %s, want %s", state.Current, triage.QuestionAgeRisk)
	}
}

func TestAnswerWithoutQuestionnaire(t *testing.T) {
	svc := triage.NewService(session.NewMemoryStore())
	_, err := svc.HandleAnswer(context.Background(), "nobody", triage.AnswerYes)
	if !errors.Is(err, triage.ErrPrecondition) {
		t.Fatalf("expected ErrPrecondition, got %v", err)
	}
}

func TestFinishBeforeEnd(t *testing.T) {
	ctx := context.Background()
	svc := triage.NewService(session.NewMemoryStore())

	if _, err := svc.StartQuestionnaire(ctx, "s4", triage.IntentPronounsMe); err != nil {
		t.Fatalf("StartQuestionnaire failed: %v", err)
	}
	if _, err := svc.Finish(ctx, "s4"); !errors.Is(err, triage.ErrPrecondition) {
		t.Fatalf("expected ErrPrecondition, got %v", err)
	}
}

func TestFinishPurgesSessionState(t *testing.T) {
	ctx := context.Background()
	svc := triage.NewService(session.NewMemoryStore())

	if _, err := svc.StartQuestionnaire(ctx, "s5", triage.IntentPronounsMe); err != nil {
		t.Fatalf("StartQuestionnaire failed: %v", err)
	}
	answerAll(t, svc, "s5", []triage.Answer{triage.AnswerNo})
	if _, err := svc.Finish(ctx, "s5"); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}

	// State is gone; a second end event has nothing to work with.
	if _, err := svc.Finish(ctx, "s5"); !errors.Is(err, triage.ErrPrecondition) {
		t.Fatalf("expected ErrPrecondition after purge, got %v", err)
	}
}

func TestRestartDiscardsLeftoverState(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	svc := triage.NewService(store)

	if _, err := svc.StartQuestionnaire(ctx, "s6", triage.IntentPronounsMe); err != nil {
		t.Fatalf("StartQuestionnaire failed: %v", err)
	}
	answerAll(t, svc, "s6", []triage.Answer{triage.AnswerYes, triage.AnswerYes})

	// Restarting mid-run must not let old answers skip questions.
	if _, err := svc.StartQuestionnaire(ctx, "s6", triage.IntentPronounsThey); err != nil {
		t.Fatalf("restart failed: %v", err)
	}
	state, err := store.Get(ctx, "s6")
	if err != nil || state == nil {
		t.Fatalf("state missing after restart: %v", err)
	}
	if state.Current != triage.QuestionIll {
		t.Fatalf("current question = %s, want %s", state.Current, triage.QuestionIll)
	}
	if len(state.Labels) != 1 || state.Labels[0] != triage.LabelSomeoneElse {
		t.Fatalf("labels = %v, want only the fresh pronoun label", state.Labels)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	svc := triage.NewService(session.NewMemoryStore())

	if _, err := svc.StartQuestionnaire(ctx, "a", triage.IntentPronounsMe); err != nil {
		t.Fatalf("StartQuestionnaire failed: %v", err)
	}
	if _, err := svc.StartQuestionnaire(ctx, "b", triage.IntentPronounsThey); err != nil {
		t.Fatalf("StartQuestionnaire failed: %v", err)
	}

	answerAll(t, svc, "a", []triage.Answer{triage.AnswerNo})
	answerAll(t, svc, "b", []triage.Answer{triage.AnswerYes, triage.AnswerYes, triage.AnswerYes})

	finalA, err := svc.Finish(ctx, "a")
	if err != nil {
		t.Fatalf("Finish(a) failed: %v", err)
	}
	finalB, err := svc.Finish(ctx, "b")
	if err != nil {
		t.Fatalf("Finish(b) failed: %v", err)
	}
	if finalA.VisualCards[len(finalA.VisualCards)-1].Title == finalB.VisualCards[0].Title {
		t.Fatal("sessions leaked state into each other")
	}
	if !strings.Contains(finalB.VisualCards[0].Text, "They") {
		t.Fatalf("session b lost its pronoun binding: %q", finalB.VisualCards[0].Text)
	}
}
