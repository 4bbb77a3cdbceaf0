// Package quiz implements the lesson-attempt flow: open an attempt,
// fetch the randomized question sample, submit answers one at a time,
// and accumulate the tally until every question has a verdict.
package quiz

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/astrolearn/astrolearn-client/internal/platform"
)

// QuestionState is the per-question lifecycle within a session.
// Revealed is terminal for the question.
type QuestionState int

const (
	Unanswered QuestionState = iota
	Submitting
	Revealed
)

const (
	// DefaultAdvanceDelay is the pause after a reveal before the session
	// moves to the next question, so the verdict stays visible.
	DefaultAdvanceDelay = 1500 * time.Millisecond
	// DefaultCallTimeout bounds each network call.
	DefaultCallTimeout = 15 * time.Second
)

type Options struct {
	StudentID string
	SubjectID string
	LessonID  string

	// AdvanceDelay <= 0 advances inline on reveal.
	AdvanceDelay time.Duration
	// CallTimeout defaults to DefaultCallTimeout when zero.
	CallTimeout time.Duration
}

// Session owns all state for one lesson attempt. Methods are safe for
// concurrent use, but the flow itself is sequential: Start once, then
// Submit once per question.
type Session struct {
	gw     Gateway
	notify Notifier
	nav    Navigator
	opts   Options

	mu        sync.Mutex
	attemptID string
	questions []platform.Question
	states    []QuestionState
	results   []platform.AnswerResult
	tally     Tally
	idx       int
	started   bool
	ready     bool
	completed bool
	closed    bool
	advance   *time.Timer
}

// NewSession validates identifiers up front; a missing one fails fast
// with platform.ErrMissingParameter and no network call is ever issued.
func NewSession(gw Gateway, notify Notifier, nav Navigator, opts Options) (*Session, error) {
	if opts.StudentID == "" || opts.SubjectID == "" || opts.LessonID == "" {
		return nil, fmt.Errorf("new session: %w", platform.ErrMissingParameter)
	}
	if notify == nil {
		notify = nopNotifier{}
	}
	if nav == nil {
		nav = nopNavigator{}
	}
	if opts.CallTimeout <= 0 {
		opts.CallTimeout = DefaultCallTimeout
	}
	return &Session{gw: gw, notify: notify, nav: nav, opts: opts}, nil
}

// Start creates the attempt and fetches the question sample. An attempt
// creation failure leaves the session un-started so the user can retry
// from the beginning; a question fetch failure is terminal for this
// session. A zero-question lesson completes immediately.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return ErrAlreadyStarted
	}
	s.started = true
	s.mu.Unlock()

	at, err := s.createAttempt(ctx)
	if err != nil {
		s.mu.Lock()
		s.started = false
		s.mu.Unlock()
		s.notify.Notify("Could not start the lesson. Please try again.")
		return fmt.Errorf("%w: %v", ErrAttemptCreation, err)
	}

	qs, err := s.fetchQuestions(ctx)
	if err != nil {
		s.notify.Notify("Could not load questions. Go back to the subject and try again.")
		return fmt.Errorf("%w: %v", ErrQuestionFetch, err)
	}

	s.mu.Lock()
	s.attemptID = at.ID
	s.questions = qs
	s.states = make([]QuestionState, len(qs))
	s.tally = Tally{Total: len(qs)}
	s.ready = true
	done := len(qs) == 0
	if done {
		s.completed = true
	}
	summary := s.tally
	s.mu.Unlock()

	if done {
		s.nav.LessonFinished(summary)
	}
	return nil
}

func (s *Session) createAttempt(ctx context.Context) (platform.Attempt, error) {
	cctx, cancel := context.WithTimeout(ctx, s.opts.CallTimeout)
	defer cancel()
	return s.gw.CreateAttempt(cctx, s.opts.StudentID, s.opts.SubjectID, s.opts.LessonID)
}

func (s *Session) fetchQuestions(ctx context.Context) ([]platform.Question, error) {
	cctx, cancel := context.WithTimeout(ctx, s.opts.CallTimeout)
	defer cancel()
	return s.gw.RandomQuestions(cctx, s.opts.SubjectID, s.opts.LessonID)
}

// Submit sends the chosen option for the current question. On success
// the question is revealed and the session schedules the advance to the
// next question; on failure the question reverts to answerable and the
// tally is untouched.
func (s *Session) Submit(ctx context.Context, chosenOptionID string) (platform.AnswerResult, error) {
	s.mu.Lock()
	if !s.ready {
		s.mu.Unlock()
		return platform.AnswerResult{}, ErrNotStarted
	}
	if s.completed {
		s.mu.Unlock()
		return platform.AnswerResult{}, ErrSessionComplete
	}
	q := s.questions[s.idx]
	switch s.states[s.idx] {
	case Submitting:
		s.mu.Unlock()
		return platform.AnswerResult{}, ErrSubmissionInFlight
	case Revealed:
		s.mu.Unlock()
		return platform.AnswerResult{}, ErrAlreadyAnswered
	}
	if !hasOption(q, chosenOptionID) {
		s.mu.Unlock()
		return platform.AnswerResult{}, ErrUnknownOption
	}
	s.states[s.idx] = Submitting
	attemptID := s.attemptID
	idx := s.idx
	s.mu.Unlock()

	cctx, cancel := context.WithTimeout(ctx, s.opts.CallTimeout)
	defer cancel()
	res, err := s.gw.SubmitAnswer(cctx, attemptID, q.ID, chosenOptionID)
	if err != nil {
		s.mu.Lock()
		s.states[idx] = Unanswered
		s.mu.Unlock()
		s.notify.Notify("Could not submit your answer. Please try again.")
		return platform.AnswerResult{}, fmt.Errorf("%w: %v", ErrAnswerSubmission, err)
	}

	s.mu.Lock()
	s.states[idx] = Revealed
	s.results = append(s.results, res)
	s.tally.record(res.IsCorrect)
	var done bool
	var summary Tally
	if s.opts.AdvanceDelay <= 0 {
		done, summary = s.advanceLocked()
	} else {
		s.advance = time.AfterFunc(s.opts.AdvanceDelay, s.advanceNow)
	}
	s.mu.Unlock()

	if done {
		s.nav.LessonFinished(summary)
	}
	return res, nil
}

// advanceNow is the deferred transition after a reveal. It is cancelled
// by Close so an abandoned session never mutates state afterwards.
func (s *Session) advanceNow() {
	s.mu.Lock()
	if s.closed || s.completed || s.states[s.idx] != Revealed {
		s.mu.Unlock()
		return
	}
	done, summary := s.advanceLocked()
	s.mu.Unlock()
	if done {
		s.nav.LessonFinished(summary)
	}
}

func (s *Session) advanceLocked() (done bool, summary Tally) {
	if s.idx < len(s.questions)-1 {
		s.idx++
		return false, Tally{}
	}
	s.completed = true
	return true, s.tally
}

// Close abandons the session and cancels any pending advance.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.advance != nil {
		s.advance.Stop()
		s.advance = nil
	}
}

// Current returns the active question and its zero-based index. ok is
// false before Start and after completion.
func (s *Session) Current() (q platform.Question, index int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready || s.completed {
		return platform.Question{}, 0, false
	}
	return s.questions[s.idx], s.idx, true
}

// State returns the lifecycle state of the question at index i.
func (s *Session) State(i int) QuestionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.states) {
		return Unanswered
	}
	return s.states[i]
}

// Results returns the verdicts recorded so far, in submission order.
func (s *Session) Results() []platform.AnswerResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]platform.AnswerResult, len(s.results))
	copy(out, s.results)
	return out
}

func (s *Session) Tally() Tally {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tally
}

func (s *Session) Completed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed
}

func (s *Session) AttemptID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attemptID
}

// TotalQuestions is the size of the fetched sample (0 before Start).
func (s *Session) TotalQuestions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.questions)
}

func hasOption(q platform.Question, optionID string) bool {
	for _, o := range q.Options {
		if o.ID == optionID {
			return true
		}
	}
	return false
}
