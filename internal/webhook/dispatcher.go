package webhook

import (
	"context"
	"fmt"

	"covid-triage-bot/internal/triage"
)

// Intents served outside the questionnaire itself.
const (
	IntentClosure        = "coronavirus.closure"
	IntentConfirmedCases = "coronavirus.confirmed_cases"
	IntentDeaths         = "coronavirus.death"
)

// Request is one inbound conversational event. The platform has already
// done intent recognition; this layer only routes on the matched intent.
type Request struct {
	SessionID  string            `json:"session_id"`
	Intent     string            `json:"intent"`
	Parameters map[string]string `json:"parameters,omitempty"`
}

// Response is the reply for one event: a follow-up event mid-questionnaire,
// the terminal card sequences, or a plain text answer for the informational
// intents.
type Response struct {
	FollowUpEvent   string                `json:"followup_event,omitempty"`
	Text            string                `json:"text,omitempty"`
	VisualCards     []triage.RenderedCard `json:"visual_cards,omitempty"`
	SpokenUtterance string                `json:"spoken_utterance,omitempty"`
}

// StatsService answers the statistics intents.
type StatsService interface {
	ConfirmedCasesMessage(ctx context.Context, country string) string
	DeathsMessage(ctx context.Context, country string) string
}

// PlacesService answers the opening-hours intent.
type PlacesService interface {
	OpenHoursMessage(ctx context.Context, organization, city string) string
}

// Dispatcher routes inbound events to the questionnaire engine or one of
// the informational services. It is shared by the HTTP webhook and the
// WebSocket channel.
type Dispatcher struct {
	triage *triage.Service
	stats  StatsService
	places PlacesService
}

func NewDispatcher(t *triage.Service, stats StatsService, places PlacesService) *Dispatcher {
	return &Dispatcher{triage: t, stats: stats, places: places}
}

func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (*Response, error) {
	if req.SessionID == "" {
		return nil, fmt.Errorf("%w: missing session id", triage.ErrPrecondition)
	}

	switch req.Intent {
	case triage.IntentPronounsMe, triage.IntentPronounsThey:
		result, err := d.triage.StartQuestionnaire(ctx, req.SessionID, req.Intent)
		if err != nil {
			return nil, err
		}
		return fromResult(result), nil

	case string(triage.AnswerYes), string(triage.AnswerNo):
		result, err := d.triage.HandleAnswer(ctx, req.SessionID, triage.Answer(req.Intent))
		if err != nil {
			return nil, err
		}
		return fromResult(result), nil

	case triage.IntentEnd:
		result, err := d.triage.Finish(ctx, req.SessionID)
		if err != nil {
			return nil, err
		}
		return fromResult(result), nil

	case IntentConfirmedCases:
		return &Response{Text: d.stats.ConfirmedCasesMessage(ctx, req.Parameters["geo-country"])}, nil

	case IntentDeaths:
		return &Response{Text: d.stats.DeathsMessage(ctx, req.Parameters["geo-country"])}, nil

	case IntentClosure:
		organization := req.Parameters["organization"]
		city := req.Parameters["geo-city"]
		if organization == "" || city == "" {
			return &Response{Text: "I didn't understand. I'm sorry, can you try again?"}, nil
		}
		return &Response{Text: d.places.OpenHoursMessage(ctx, organization, city)}, nil

	default:
		return nil, fmt.Errorf("%w: no handler for intent %q", triage.ErrPrecondition, req.Intent)
	}
}

func fromResult(result *triage.Result) *Response {
	return &Response{
		FollowUpEvent:   result.FollowUpEvent,
		VisualCards:     result.VisualCards,
		SpokenUtterance: result.SpokenUtterance,
	}
}
