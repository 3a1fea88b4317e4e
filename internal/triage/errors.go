package triage

import "errors"

// ErrConfig marks broken static tables or corrupted session state. These
// abort the turn; the engine never guesses a next question.
var ErrConfig = errors.New("triage: configuration error")

// ErrPrecondition marks recoverable caller misuse, such as answering a
// question before the questionnaire was started.
var ErrPrecondition = errors.New("triage: precondition violated")
