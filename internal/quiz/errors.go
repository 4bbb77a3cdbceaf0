package quiz

import "errors"

// Failure kinds for the three network-bound steps. The first two are
// terminal for the session; submission failures are recoverable at the
// question level.
var (
	ErrAttemptCreation  = errors.New("attempt creation failed")
	ErrQuestionFetch    = errors.New("question fetch failed")
	ErrAnswerSubmission = errors.New("answer submission failed")
)

// Local precondition violations. None of these reach the network.
var (
	ErrAlreadyStarted     = errors.New("session already started")
	ErrNotStarted         = errors.New("session not started")
	ErrSessionComplete    = errors.New("session already complete")
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
	ErrAlreadyAnswered    = errors.New("question already answered")
	ErrUnknownOption      = errors.New("option does not belong to the current question")
)
