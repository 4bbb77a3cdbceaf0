package lesson

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	syncx "github.com/astrolearn/astrolearn-client/internal/sync"
)

// SQLStore implements Store and Seeder on a *sql.DB opened by the db
// package. Placeholders are $1-style, which both drivers accept.
type SQLStore struct {
	db     *sql.DB
	events *syncx.EventRepo // optional
}

func NewSQLStore(db *sql.DB, events *syncx.EventRepo) *SQLStore {
	return &SQLStore{db: db, events: events}
}

func (s *SQLStore) Subjects(ctx context.Context, studentID string) ([]Subject, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.id, s.title, s.description, s.icon,
		       COUNT(l.id),
		       COUNT(r.lesson_id)
		  FROM subjects s
		  LEFT JOIN lessons l ON l.subject_id = s.id
		  LEFT JOIN lesson_results r ON r.lesson_id = l.id AND r.student_id = $1
		 GROUP BY s.id, s.title, s.description, s.icon
		 ORDER BY s.title`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Subject{}
	for rows.Next() {
		var sub Subject
		if err := rows.Scan(&sub.ID, &sub.Title, &sub.Description, &sub.Icon, &sub.Total, &sub.Completed); err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}

func (s *SQLStore) Subject(ctx context.Context, studentID, id string) (Subject, error) {
	var sub Subject
	err := s.db.QueryRowContext(ctx, `
		SELECT s.id, s.title, s.description, s.icon,
		       COUNT(l.id),
		       COUNT(r.lesson_id)
		  FROM subjects s
		  LEFT JOIN lessons l ON l.subject_id = s.id
		  LEFT JOIN lesson_results r ON r.lesson_id = l.id AND r.student_id = $1
		 WHERE s.id = $2
		 GROUP BY s.id, s.title, s.description, s.icon`, studentID, id).
		Scan(&sub.ID, &sub.Title, &sub.Description, &sub.Icon, &sub.Total, &sub.Completed)
	if errors.Is(err, sql.ErrNoRows) {
		return Subject{}, ErrNotFound
	}
	return sub, err
}

func (s *SQLStore) Lessons(ctx context.Context, studentID, subjectID string) ([]Lesson, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT l.id, l.subject_id, l.title, l.locked,
		       COUNT(q.id),
		       CASE WHEN r.lesson_id IS NULL THEN 0 ELSE 1 END
		  FROM lessons l
		  LEFT JOIN questions q ON q.lesson_id = l.id
		  LEFT JOIN lesson_results r ON r.lesson_id = l.id AND r.student_id = $1
		 WHERE l.subject_id = $2
		 GROUP BY l.id, l.subject_id, l.title, l.locked, r.lesson_id
		 ORDER BY l.title`, studentID, subjectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Lesson{}
	for rows.Next() {
		var l Lesson
		var done int
		if err := rows.Scan(&l.ID, &l.SubjectID, &l.Title, &l.Locked, &l.Questions, &done); err != nil {
			return nil, err
		}
		l.Completed = done == 1
		out = append(out, l)
	}
	return out, rows.Err()
}

func (s *SQLStore) RandomQuestions(ctx context.Context, subjectID, lessonID string, n int) ([]Question, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM lessons WHERE id = $1 AND subject_id = $2`, lessonID, subjectID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, lesson_id, text, options_json
		  FROM questions
		 WHERE lesson_id = $1
		 ORDER BY random()
		 LIMIT $2`, lessonID, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Question{}
	for rows.Next() {
		var q Question
		var optsJSON string
		if err := rows.Scan(&q.ID, &q.LessonID, &q.Text, &optsJSON); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(optsJSON), &q.Options); err != nil {
			return nil, fmt.Errorf("decode options for %s: %w", q.ID, err)
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (s *SQLStore) NewAttempt(ctx context.Context, studentID, subjectID, lessonID string) (Attempt, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM lessons WHERE id = $1 AND subject_id = $2`, lessonID, subjectID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return Attempt{}, ErrNotFound
	}
	if err != nil {
		return Attempt{}, err
	}
	err = s.db.QueryRowContext(ctx,
		`SELECT 1 FROM students WHERE id = $1`, studentID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return Attempt{}, ErrNotFound
	}
	if err != nil {
		return Attempt{}, err
	}

	a := Attempt{
		ID:        uuid.NewString(),
		StudentID: studentID,
		SubjectID: subjectID,
		LessonID:  lessonID,
		CreatedAt: time.Now().UTC(),
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO attempts (id, student_id, subject_id, lesson_id, created_at)
		VALUES ($1,$2,$3,$4,$5)`,
		a.ID, a.StudentID, a.SubjectID, a.LessonID, a.CreatedAt.Unix())
	if err != nil {
		return Attempt{}, err
	}
	s.logEvent(ctx, syncx.TypeAttemptCreated, a.ID, a)
	return a, nil
}

func (s *SQLStore) CheckAnswer(ctx context.Context, attemptID, questionID, chosenOptionID string) (Verdict, error) {
	var studentID, lessonID string
	err := s.db.QueryRowContext(ctx,
		`SELECT student_id, lesson_id FROM attempts WHERE id = $1`, attemptID).
		Scan(&studentID, &lessonID)
	if errors.Is(err, sql.ErrNoRows) {
		return Verdict{}, ErrNotFound
	}
	if err != nil {
		return Verdict{}, err
	}

	var correct string
	err = s.db.QueryRowContext(ctx,
		`SELECT correct_option_id FROM questions WHERE id = $1 AND lesson_id = $2`,
		questionID, lessonID).Scan(&correct)
	if errors.Is(err, sql.ErrNoRows) {
		return Verdict{}, ErrNotFound
	}
	if err != nil {
		return Verdict{}, err
	}

	v := Verdict{
		QuestionID:      questionID,
		ChosenOptionID:  chosenOptionID,
		CorrectOptionID: correct,
		IsCorrect:       chosenOptionID == correct,
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO attempt_answers (attempt_id, question_id, chosen_option_id, is_correct, created_at)
		VALUES ($1,$2,$3,$4,$5)`,
		attemptID, questionID, chosenOptionID, v.IsCorrect, time.Now().Unix())
	if err != nil {
		if isUniqueViolation(err) {
			return Verdict{}, ErrDuplicateAnswer
		}
		return Verdict{}, err
	}
	if v.IsCorrect {
		_, err = s.db.ExecContext(ctx,
			`UPDATE students SET xp = xp + $1 WHERE id = $2`,
			XPPerCorrectAnswer, studentID)
		if err != nil {
			return Verdict{}, err
		}
	}
	s.logEvent(ctx, syncx.TypeAnswerChecked, attemptID, v)
	return v, nil
}

// isUniqueViolation matches both drivers' duplicate-key errors without
// importing driver-specific error types.
func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate key")
}

const studentCols = `id, name, phone, email, password_hash, status, level, xp,
	next_level_xp_needed, days_streak, date_of_birth, last_lesson_answered, created_at`

func (s *SQLStore) scanStudent(row *sql.Row) (Student, error) {
	var st Student
	err := row.Scan(&st.ID, &st.Name, &st.Phone, &st.Email, &st.PasswordHash,
		&st.Status, &st.Level, &st.XP, &st.NextLevelXPNeeded, &st.DaysStreak,
		&st.DateOfBirth, &st.LastLessonAnswered, &st.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Student{}, ErrNotFound
	}
	return st, err
}

func (s *SQLStore) Student(ctx context.Context, id string) (Student, error) {
	st, err := s.scanStudent(s.db.QueryRowContext(ctx,
		`SELECT `+studentCols+` FROM students WHERE id = $1`, id))
	if err != nil {
		return Student{}, err
	}
	err = s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM friendships
		 WHERE status = 'accepted' AND (student_id = $1 OR friend_id = $1)`, id).
		Scan(&st.FriendsCount)
	return st, err
}

func (s *SQLStore) StudentByEmail(ctx context.Context, email string) (Student, error) {
	return s.scanStudent(s.db.QueryRowContext(ctx,
		`SELECT `+studentCols+` FROM students WHERE lower(email) = lower($1)`, email))
}

func (s *SQLStore) SearchStudents(ctx context.Context, name string, limit int) ([]Student, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, level, xp FROM students
		 WHERE lower(name) LIKE '%' || lower($1) || '%'
		 ORDER BY name
		 LIMIT $2`, name, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Student{}
	for rows.Next() {
		var st Student
		if err := rows.Scan(&st.ID, &st.Name, &st.Level, &st.XP); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

func (s *SQLStore) Friends(ctx context.Context, studentID string) ([]Student, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.id, s.name, s.level, s.xp, s.status
		  FROM friendships f
		  JOIN students s
		    ON s.id = CASE WHEN f.student_id = $1 THEN f.friend_id ELSE f.student_id END
		 WHERE f.status = 'accepted' AND (f.student_id = $1 OR f.friend_id = $1)
		 ORDER BY s.name`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Student{}
	for rows.Next() {
		var st Student
		if err := rows.Scan(&st.ID, &st.Name, &st.Level, &st.XP, &st.Status); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

func (s *SQLStore) FriendRequests(ctx context.Context, studentID string) ([]FriendRequest, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, student_id, friend_id, status, created_at
		  FROM friendships
		 WHERE status = 'pending' AND friend_id = $1`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []FriendRequest{}
	for rows.Next() {
		var fr FriendRequest
		var created int64
		if err := rows.Scan(&fr.ID, &fr.StudentID, &fr.FriendID, &fr.Status, &created); err != nil {
			return nil, err
		}
		fr.CreatedAt = time.Unix(created, 0).UTC().Format(time.RFC3339)
		out = append(out, fr)
	}
	return out, rows.Err()
}

func (s *SQLStore) SaveLessonResult(ctx context.Context, studentID, lessonID string, correct, total int) error {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM lessons WHERE id = $1`, lessonID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO lesson_results (student_id, lesson_id, correct, total, created_at)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (student_id, lesson_id) DO UPDATE
		   SET correct = excluded.correct, total = excluded.total, created_at = excluded.created_at`,
		studentID, lessonID, correct, total, time.Now().Unix())
	return err
}

func (s *SQLStore) logEvent(ctx context.Context, typ, key string, payload any) {
	if s.events == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	// best effort: the event log mirrors state, it never blocks it
	_ = s.events.Append(ctx, syncx.Event{
		SiteID: "local", Type: typ, Key: key, DataJSON: string(data),
	})
}

/* -------- Seeder -------- */

func (s *SQLStore) Empty(ctx context.Context) (bool, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM subjects`).Scan(&n); err != nil {
		return false, err
	}
	return n == 0, nil
}

func (s *SQLStore) PutStudent(ctx context.Context, st Student) error {
	if st.ID == "" {
		st.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO students (`+studentCols+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		st.ID, st.Name, st.Phone, st.Email, st.PasswordHash, st.Status,
		st.Level, st.XP, st.NextLevelXPNeeded, st.DaysStreak,
		st.DateOfBirth, st.LastLessonAnswered, st.CreatedAt)
	return err
}

func (s *SQLStore) PutSubject(ctx context.Context, sub Subject) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO subjects (id, title, description, icon)
		VALUES ($1,$2,$3,$4)`,
		sub.ID, sub.Title, sub.Description, sub.Icon)
	return err
}

func (s *SQLStore) PutLesson(ctx context.Context, l Lesson) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO lessons (id, subject_id, title, locked)
		VALUES ($1,$2,$3,$4)`,
		l.ID, l.SubjectID, l.Title, l.Locked)
	return err
}

func (s *SQLStore) PutQuestion(ctx context.Context, q Question) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	opts, err := json.Marshal(q.Options)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO questions (id, lesson_id, text, options_json, correct_option_id)
		VALUES ($1,$2,$3,$4,$5)`,
		q.ID, q.LessonID, q.Text, string(opts), q.CorrectOptionID)
	return err
}

func (s *SQLStore) AddFriendship(ctx context.Context, studentID, friendID, status string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO friendships (id, student_id, friend_id, status, created_at)
		VALUES ($1,$2,$3,$4,$5)`,
		uuid.NewString(), studentID, friendID, status, time.Now().Unix())
	return err
}
