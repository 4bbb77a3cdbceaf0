package lesson

import (
	"context"
	"errors"
	"testing"
)

func seededStore(t *testing.T) *MemoryStore {
	t.Helper()
	s := NewInMemoryStore()
	if err := SeedDemo(context.Background(), s); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return s
}

func TestSeedDemoIsIdempotent(t *testing.T) {
	s := seededStore(t)
	if err := SeedDemo(context.Background(), s); err != nil {
		t.Fatalf("reseed: %v", err)
	}
	subjects, err := s.Subjects(context.Background(), "stu-ada")
	if err != nil {
		t.Fatal(err)
	}
	if len(subjects) != 2 {
		t.Fatalf("expected 2 subjects after reseed, got %d", len(subjects))
	}
}

func TestRandomQuestionsSampleIsStripped(t *testing.T) {
	s := seededStore(t)
	qs, err := s.RandomQuestions(context.Background(), "subj-astro", "les-stars", DefaultSampleSize)
	if err != nil {
		t.Fatal(err)
	}
	if len(qs) != DefaultSampleSize {
		t.Fatalf("sample size %d, want %d", len(qs), DefaultSampleSize)
	}
	for _, q := range qs {
		if q.CorrectOptionID != "" {
			t.Fatalf("question %s carries its correct option", q.ID)
		}
		if len(q.Options) != 4 {
			t.Fatalf("question %s has %d options", q.ID, len(q.Options))
		}
	}
}

func TestRandomQuestionsUnknownLesson(t *testing.T) {
	s := seededStore(t)
	if _, err := s.RandomQuestions(context.Background(), "subj-astro", "les-nope", 5); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	// lesson exists but under the other subject
	if _, err := s.RandomQuestions(context.Background(), "subj-astro", "les-dark", 5); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for mismatched subject, got %v", err)
	}
}

func TestCheckAnswerAwardsXPOnce(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()

	before, err := s.Student(ctx, "stu-ada")
	if err != nil {
		t.Fatal(err)
	}
	a, err := s.NewAttempt(ctx, "stu-ada", "subj-astro", "les-bh")
	if err != nil {
		t.Fatal(err)
	}

	v, err := s.CheckAnswer(ctx, a.ID, "q-bh1", "q-bh1-b")
	if err != nil {
		t.Fatal(err)
	}
	if !v.IsCorrect {
		t.Fatalf("expected correct verdict, got %+v", v)
	}

	if _, err := s.CheckAnswer(ctx, a.ID, "q-bh1", "q-bh1-a"); !errors.Is(err, ErrDuplicateAnswer) {
		t.Fatalf("expected ErrDuplicateAnswer, got %v", err)
	}

	after, err := s.Student(ctx, "stu-ada")
	if err != nil {
		t.Fatal(err)
	}
	if after.XP != before.XP+XPPerCorrectAnswer {
		t.Fatalf("xp %d, want %d", after.XP, before.XP+XPPerCorrectAnswer)
	}
}

func TestWrongAnswerRevealsCorrectOption(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()
	a, err := s.NewAttempt(ctx, "stu-ada", "subj-astro", "les-bh")
	if err != nil {
		t.Fatal(err)
	}
	v, err := s.CheckAnswer(ctx, a.ID, "q-bh2", "q-bh2-a")
	if err != nil {
		t.Fatal(err)
	}
	if v.IsCorrect || v.CorrectOptionID != "q-bh2-c" {
		t.Fatalf("unexpected verdict %+v", v)
	}
}

func TestSubjectProgressTracksResults(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()

	sub, err := s.Subject(ctx, "stu-ada", "subj-astro")
	if err != nil {
		t.Fatal(err)
	}
	if sub.Total != 3 || sub.Completed != 0 {
		t.Fatalf("fresh subject %+v", sub)
	}

	if err := s.SaveLessonResult(ctx, "stu-ada", "les-stars", 5, 5); err != nil {
		t.Fatal(err)
	}
	sub, err = s.Subject(ctx, "stu-ada", "subj-astro")
	if err != nil {
		t.Fatal(err)
	}
	if sub.Completed != 1 {
		t.Fatalf("completed %d, want 1", sub.Completed)
	}

	// another student's progress stays untouched
	other, err := s.Subject(ctx, "stu-carl", "subj-astro")
	if err != nil {
		t.Fatal(err)
	}
	if other.Completed != 0 {
		t.Fatalf("cross-student completion leak: %+v", other)
	}
}

func TestFriendRequestsOnlyPendingInbound(t *testing.T) {
	s := seededStore(t)
	rs, err := s.FriendRequests(context.Background(), "stu-ada")
	if err != nil {
		t.Fatal(err)
	}
	if len(rs) != 1 || rs[0].StudentID != "stu-fritz" || rs[0].Status != "pending" {
		t.Fatalf("unexpected requests %+v", rs)
	}
}
