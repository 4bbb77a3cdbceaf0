package lesson

import (
	"context"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// XPPerCorrectAnswer is credited to the student on each correct verdict.
const XPPerCorrectAnswer = 10

type MemoryStore struct {
	mu          sync.RWMutex
	subjects    map[string]Subject
	lessons     map[string]Lesson
	questions   map[string]Question
	students    map[string]Student
	friendships []friendship
	attempts    map[string]Attempt
	answers     map[string]map[string]Verdict // attemptID -> questionID -> verdict
	results     map[string]map[string]bool    // studentID -> lessonID -> done
}

type friendship struct {
	id        string
	studentID string
	friendID  string
	status    string
	createdAt time.Time
}

// NewInMemoryStore backs the practice service without a database.
// Handler tests use it the way the SQL store is used in production.
func NewInMemoryStore() *MemoryStore {
	return &MemoryStore{
		subjects:  map[string]Subject{},
		lessons:   map[string]Lesson{},
		questions: map[string]Question{},
		students:  map[string]Student{},
		attempts:  map[string]Attempt{},
		answers:   map[string]map[string]Verdict{},
		results:   map[string]map[string]bool{},
	}
}

func (m *MemoryStore) Subjects(_ context.Context, studentID string) ([]Subject, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Subject, 0, len(m.subjects))
	for id := range m.subjects {
		out = append(out, m.subjectLocked(studentID, id))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (m *MemoryStore) Subject(_ context.Context, studentID, id string) (Subject, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.subjects[id]; !ok {
		return Subject{}, ErrNotFound
	}
	return m.subjectLocked(studentID, id), nil
}

func (m *MemoryStore) subjectLocked(studentID, id string) Subject {
	s := m.subjects[id]
	s.Total, s.Completed = 0, 0
	for _, l := range m.lessons {
		if l.SubjectID != id {
			continue
		}
		s.Total++
		if m.results[studentID][l.ID] {
			s.Completed++
		}
	}
	return s
}

func (m *MemoryStore) Lessons(_ context.Context, studentID, subjectID string) ([]Lesson, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Lesson
	for _, l := range m.lessons {
		if l.SubjectID != subjectID {
			continue
		}
		l.Completed = m.results[studentID][l.ID]
		l.Questions = m.questionCountLocked(l.ID)
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	if out == nil {
		out = []Lesson{}
	}
	return out, nil
}

func (m *MemoryStore) questionCountLocked(lessonID string) int {
	n := 0
	for _, q := range m.questions {
		if q.LessonID == lessonID {
			n++
		}
	}
	return n
}

func (m *MemoryStore) RandomQuestions(_ context.Context, subjectID, lessonID string, n int) ([]Question, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	l, ok := m.lessons[lessonID]
	if !ok || l.SubjectID != subjectID {
		return nil, ErrNotFound
	}
	var pool []Question
	for _, q := range m.questions {
		if q.LessonID == lessonID {
			pool = append(pool, q.StudentView())
		}
	}
	rand.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if n > 0 && len(pool) > n {
		pool = pool[:n]
	}
	if pool == nil {
		pool = []Question{}
	}
	return pool, nil
}

func (m *MemoryStore) NewAttempt(_ context.Context, studentID, subjectID, lessonID string) (Attempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.students[studentID]; !ok {
		return Attempt{}, ErrNotFound
	}
	l, ok := m.lessons[lessonID]
	if !ok || l.SubjectID != subjectID {
		return Attempt{}, ErrNotFound
	}
	a := Attempt{
		ID:        uuid.NewString(),
		StudentID: studentID,
		SubjectID: subjectID,
		LessonID:  lessonID,
		CreatedAt: time.Now().UTC(),
	}
	m.attempts[a.ID] = a
	m.answers[a.ID] = map[string]Verdict{}
	return a, nil
}

func (m *MemoryStore) CheckAnswer(_ context.Context, attemptID, questionID, chosenOptionID string) (Verdict, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.attempts[attemptID]
	if !ok {
		return Verdict{}, ErrNotFound
	}
	q, ok := m.questions[questionID]
	if !ok || q.LessonID != a.LessonID {
		return Verdict{}, ErrNotFound
	}
	if _, dup := m.answers[attemptID][questionID]; dup {
		return Verdict{}, ErrDuplicateAnswer
	}
	v := Verdict{
		QuestionID:      questionID,
		ChosenOptionID:  chosenOptionID,
		CorrectOptionID: q.CorrectOptionID,
		IsCorrect:       chosenOptionID == q.CorrectOptionID,
	}
	m.answers[attemptID][questionID] = v
	if v.IsCorrect {
		s := m.students[a.StudentID]
		s.XP += XPPerCorrectAnswer
		m.students[a.StudentID] = s
	}
	return v, nil
}

func (m *MemoryStore) Student(_ context.Context, id string) (Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.students[id]
	if !ok {
		return Student{}, ErrNotFound
	}
	s.FriendsCount = m.friendCountLocked(id)
	return s, nil
}

func (m *MemoryStore) StudentByEmail(_ context.Context, email string) (Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.students {
		if strings.EqualFold(s.Email, email) {
			s.FriendsCount = m.friendCountLocked(s.ID)
			return s, nil
		}
	}
	return Student{}, ErrNotFound
}

func (m *MemoryStore) friendCountLocked(id string) int {
	n := 0
	for _, f := range m.friendships {
		if f.status == "accepted" && (f.studentID == id || f.friendID == id) {
			n++
		}
	}
	return n
}

func (m *MemoryStore) SearchStudents(_ context.Context, name string, limit int) ([]Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	needle := strings.ToLower(name)
	out := []Student{}
	for _, s := range m.students {
		if strings.Contains(strings.ToLower(s.Name), needle) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemoryStore) Friends(_ context.Context, studentID string) ([]Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []Student{}
	for _, f := range m.friendships {
		if f.status != "accepted" {
			continue
		}
		other := ""
		switch studentID {
		case f.studentID:
			other = f.friendID
		case f.friendID:
			other = f.studentID
		default:
			continue
		}
		if s, ok := m.students[other]; ok {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *MemoryStore) FriendRequests(_ context.Context, studentID string) ([]FriendRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []FriendRequest{}
	for _, f := range m.friendships {
		if f.status == "pending" && f.friendID == studentID {
			out = append(out, FriendRequest{
				ID:        f.id,
				StudentID: f.studentID,
				FriendID:  f.friendID,
				Status:    f.status,
				CreatedAt: f.createdAt.UTC().Format(time.RFC3339),
			})
		}
	}
	return out, nil
}

func (m *MemoryStore) SaveLessonResult(_ context.Context, studentID, lessonID string, correct, total int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.lessons[lessonID]; !ok {
		return ErrNotFound
	}
	if m.results[studentID] == nil {
		m.results[studentID] = map[string]bool{}
	}
	m.results[studentID][lessonID] = true
	return nil
}

/* -------- Seeder -------- */

func (m *MemoryStore) Empty(_ context.Context) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subjects) == 0 && len(m.students) == 0, nil
}

func (m *MemoryStore) PutStudent(_ context.Context, s Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	m.students[s.ID] = s
	return nil
}

func (m *MemoryStore) PutSubject(_ context.Context, s Subject) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subjects[s.ID] = s
	return nil
}

func (m *MemoryStore) PutLesson(_ context.Context, l Lesson) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lessons[l.ID] = l
	return nil
}

func (m *MemoryStore) PutQuestion(_ context.Context, q Question) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	m.questions[q.ID] = q
	return nil
}

func (m *MemoryStore) AddFriendship(_ context.Context, studentID, friendID, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.friendships = append(m.friendships, friendship{
		id:        uuid.NewString(),
		studentID: studentID,
		friendID:  friendID,
		status:    status,
		createdAt: time.Now(),
	})
	return nil
}
