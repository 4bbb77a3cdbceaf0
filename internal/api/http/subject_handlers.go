package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	auth "github.com/astrolearn/astrolearn-client/internal/auth/middleware"
	"github.com/astrolearn/astrolearn-client/internal/lesson"
)

// GET /subjects
func ListSubjectsHandler(store lesson.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ss, err := store.Subjects(r.Context(), auth.SubjectFromContext(r.Context()))
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(ss)
	}
}

// GET /subjects/{subjectID}
func GetSubjectHandler(store lesson.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := store.Subject(r.Context(),
			auth.SubjectFromContext(r.Context()), chi.URLParam(r, "subjectID"))
		if errors.Is(err, lesson.ErrNotFound) {
			http.Error(w, "unknown subject", 404)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(s)
	}
}

// GET /subjects/{subjectID}/lessons
func ListLessonsHandler(store lesson.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ls, err := store.Lessons(r.Context(),
			auth.SubjectFromContext(r.Context()), chi.URLParam(r, "subjectID"))
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(ls)
	}
}

// POST /lessons/{lessonID}/results  { "correctAnswers": n, "totalQuestions": n }
func SaveLessonResultHandler(store lesson.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			CorrectAnswers int `json:"correctAnswers"`
			TotalQuestions int `json:"totalQuestions"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		studentID := auth.SubjectFromContext(r.Context())
		if studentID == "" {
			http.Error(w, "missing bearer", 401)
			return
		}
		err := store.SaveLessonResult(r.Context(), studentID,
			chi.URLParam(r, "lessonID"), req.CorrectAnswers, req.TotalQuestions)
		if errors.Is(err, lesson.ErrNotFound) {
			http.Error(w, "unknown lesson", 404)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
