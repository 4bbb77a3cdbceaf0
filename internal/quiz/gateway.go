package quiz

import (
	"context"

	"github.com/astrolearn/astrolearn-client/internal/platform"
)

// Gateway is the slice of the platform API the session needs.
// *platform.Client satisfies it.
type Gateway interface {
	CreateAttempt(ctx context.Context, studentID, subjectID, lessonID string) (platform.Attempt, error)
	RandomQuestions(ctx context.Context, subjectID, lessonID string) ([]platform.Question, error)
	SubmitAnswer(ctx context.Context, attemptID, questionID, chosenOptionID string) (platform.AnswerResult, error)
}

// Notifier receives user-facing failure messages (the toast analog).
// Failures never force navigation; they only notify.
type Notifier interface {
	Notify(message string)
}

// Navigator receives the completion handoff back to the subject view.
type Navigator interface {
	LessonFinished(summary Tally)
}

type nopNotifier struct{}

func (nopNotifier) Notify(string) {}

type nopNavigator struct{}

func (nopNavigator) LessonFinished(Tally) {}
