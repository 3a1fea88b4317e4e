package triage

import (
	"context"
	"fmt"
	"log"
)

// Questionnaire intents beyond pronoun selection.
const (
	IntentEnd = "end"

	// FollowUpTriggerQuestion tells the conversational platform to ask the
	// question the session state now points at.
	FollowUpTriggerQuestion = "trigger-question"
)

// State is the per-session questionnaire state: the accumulated labels, the
// pronoun binding and the question currently awaiting an answer. It replaces
// the free-form named contexts of the conversational platform with typed
// fields.
type State struct {
	Labels   LabelSet       `json:"labels"`
	Pronouns PronounBinding `json:"pronouns"`
	Current  QuestionID     `json:"current_question"`
}

// StateStore persists questionnaire state between turns, keyed by session
// id. Implementations must isolate sessions from each other. Get returns
// (nil, nil) for an unknown session.
type StateStore interface {
	Get(ctx context.Context, sessionID string) (*State, error)
	Put(ctx context.Context, sessionID string, state *State) error
	Delete(ctx context.Context, sessionID string) error
}

// Result is the outcome of one questionnaire turn: either a follow-up event
// re-entering the question loop, or the terminal guidance in both renditions.
type Result struct {
	FollowUpEvent   string         `json:"followup_event,omitempty"`
	VisualCards     []RenderedCard `json:"visual_cards,omitempty"`
	SpokenUtterance string         `json:"spoken_utterance,omitempty"`
}

// Service drives the questionnaire state machine. Each turn is handled to
// completion synchronously; cross-session isolation comes from the store.
type Service struct {
	store StateStore
}

func NewService(store StateStore) *Service {
	return &Service{store: store}
}

// StartQuestionnaire handles a pronoun-selection intent. Any leftover state
// from an abandoned run is discarded so a restart cannot skip questions.
func (s *Service) StartQuestionnaire(ctx context.Context, sessionID, intent string) (*Result, error) {
	binding, label, err := BindingForIntent(intent)
	if err != nil {
		return nil, err
	}

	state := &State{Pronouns: binding, Current: QuestionIll}
	state.Labels.Add(label)
	if err := s.store.Put(ctx, sessionID, state); err != nil {
		return nil, fmt.Errorf("save questionnaire state: %w", err)
	}
	return &Result{FollowUpEvent: FollowUpTriggerQuestion}, nil
}

// HandleAnswer handles a yes/no answer to the current question: it records
// the answer's labels, advances the current-question pointer and asks the
// platform to pose the next question (or the terminal summary prompt).
func (s *Service) HandleAnswer(ctx context.Context, sessionID string, answer Answer) (*Result, error) {
	state, err := s.loadActiveState(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	labels, err := LabelsFor(state.Current, answer)
	if err != nil {
		return nil, err
	}
	for _, label := range labels {
		state.Labels.Add(label)
	}

	next, err := NextQuestion(state.Current, answer, state.Labels)
	if err != nil {
		return nil, err
	}
	state.Current = next
	if err := s.store.Put(ctx, sessionID, state); err != nil {
		return nil, fmt.Errorf("save questionnaire state: %w", err)
	}
	return &Result{FollowUpEvent: FollowUpTriggerQuestion}, nil
}

// Finish handles the terminal event: it resolves the label set to a care
// message, composes the card sequences and purges the session state so a
// fresh questionnaire can start cleanly.
func (s *Service) Finish(ctx context.Context, sessionID string) (*Result, error) {
	state, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load questionnaire state: %w", err)
	}
	if state == nil {
		return nil, fmt.Errorf("%w: no questionnaire state for session", ErrPrecondition)
	}
	if state.Current != QuestionnaireEnd {
		return nil, fmt.Errorf("%w: questionnaire not finished, at %q", ErrPrecondition, state.Current)
	}
	if state.Pronouns.IsZero() {
		// Composition still works, placeholders stay literal.
		log.Printf("session %s reached the end without a pronoun binding", sessionID)
	}

	message := Resolve(state.Labels)
	visual, spoken, err := Compose(message, state.Labels, state.Pronouns)
	if err != nil {
		return nil, err
	}
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("clear questionnaire state: %w", err)
	}
	return &Result{VisualCards: visual, SpokenUtterance: spoken}, nil
}

// loadActiveState fetches the session state and checks the current-question
// invariant: exactly one concrete, answerable question must be pending.
func (s *Service) loadActiveState(ctx context.Context, sessionID string) (*State, error) {
	state, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load questionnaire state: %w", err)
	}
	if state == nil {
		return nil, fmt.Errorf("%w: no questionnaire in progress", ErrPrecondition)
	}
	if state.Current == QuestionnaireEnd {
		return nil, fmt.Errorf("%w: questionnaire already finished", ErrPrecondition)
	}
	if !isQuestion(state.Current) {
		return nil, fmt.Errorf("%w: current question %q is not in the flow table", ErrConfig, state.Current)
	}
	return state, nil
}
