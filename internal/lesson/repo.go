package lesson

import (
	"context"
	"errors"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrDuplicateAnswer = errors.New("question already answered in this attempt")
)

// DefaultSampleSize is the fixed question sample per lesson attempt.
const DefaultSampleSize = 5

// Store is the practice-service storage contract. Completed/Locked
// fields are computed per student, so student-facing reads take the
// viewer's id.
type Store interface {
	Subjects(ctx context.Context, studentID string) ([]Subject, error)
	Subject(ctx context.Context, studentID, id string) (Subject, error)
	Lessons(ctx context.Context, studentID, subjectID string) ([]Lesson, error)

	// RandomQuestions returns a randomized sample of at most n
	// questions, student-safe (no correct option ids).
	RandomQuestions(ctx context.Context, subjectID, lessonID string, n int) ([]Question, error)
	NewAttempt(ctx context.Context, studentID, subjectID, lessonID string) (Attempt, error)
	// CheckAnswer records one submission and returns the verdict.
	// A second submission for the same question in the same attempt
	// fails with ErrDuplicateAnswer.
	CheckAnswer(ctx context.Context, attemptID, questionID, chosenOptionID string) (Verdict, error)

	Student(ctx context.Context, id string) (Student, error)
	StudentByEmail(ctx context.Context, email string) (Student, error)
	SearchStudents(ctx context.Context, name string, limit int) ([]Student, error)
	Friends(ctx context.Context, studentID string) ([]Student, error)
	FriendRequests(ctx context.Context, studentID string) ([]FriendRequest, error)

	SaveLessonResult(ctx context.Context, studentID, lessonID string, correct, total int) error
}

// Seeder loads the bank. Both stores implement it; the daemon seeds an
// empty database on first start.
type Seeder interface {
	Empty(ctx context.Context) (bool, error)
	PutStudent(ctx context.Context, s Student) error
	PutSubject(ctx context.Context, s Subject) error
	PutLesson(ctx context.Context, l Lesson) error
	PutQuestion(ctx context.Context, q Question) error
	AddFriendship(ctx context.Context, studentID, friendID, status string) error
}
