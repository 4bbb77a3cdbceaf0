package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	auth "github.com/astrolearn/astrolearn-client/internal/auth/middleware"
	"github.com/astrolearn/astrolearn-client/internal/lesson"
)

// POST /students/{studentID}/subjects/{subjectID}/lessons/{lessonID}/attempts
func CreateAttemptHandler(store lesson.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studentID := chi.URLParam(r, "studentID")
		subjectID := chi.URLParam(r, "subjectID")
		lessonID := chi.URLParam(r, "lessonID")
		if sub := auth.SubjectFromContext(r.Context()); sub != "" && sub != studentID {
			http.Error(w, "attempt owner mismatch", 403)
			return
		}
		a, err := store.NewAttempt(r.Context(), studentID, subjectID, lessonID)
		if errors.Is(err, lesson.ErrNotFound) {
			http.Error(w, "unknown student or lesson", 404)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(a)
	}
}

// GET /subjects/{subjectID}/lessons/{lessonID}/questions/random
func RandomQuestionsHandler(store lesson.Store, sample int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qs, err := store.RandomQuestions(r.Context(),
			chi.URLParam(r, "subjectID"), chi.URLParam(r, "lessonID"), sample)
		if errors.Is(err, lesson.ErrNotFound) {
			http.Error(w, "unknown lesson", 404)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		// defense against a store that forgot to strip
		for i := range qs {
			qs[i] = qs[i].StudentView()
		}
		_ = json.NewEncoder(w).Encode(qs)
	}
}

// POST /attempts/{attemptID}/questions/{questionID}/answers
func SubmitAnswerHandler(store lesson.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ChosenOptionID string `json:"chosenOptionId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if req.ChosenOptionID == "" {
			http.Error(w, "chosenOptionId required", 400)
			return
		}
		v, err := store.CheckAnswer(r.Context(),
			chi.URLParam(r, "attemptID"), chi.URLParam(r, "questionID"), req.ChosenOptionID)
		if errors.Is(err, lesson.ErrNotFound) {
			http.Error(w, "unknown attempt or question", 404)
			return
		}
		if errors.Is(err, lesson.ErrDuplicateAnswer) {
			http.Error(w, "question already answered", 409)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(v)
	}
}
