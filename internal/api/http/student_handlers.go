package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/astrolearn/astrolearn-client/internal/lesson"
)

const searchLimit = 20

// GET /students/{studentID}
func GetStudentHandler(store lesson.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := store.Student(r.Context(), chi.URLParam(r, "studentID"))
		if errors.Is(err, lesson.ErrNotFound) {
			http.Error(w, "unknown student", 404)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(st)
	}
}

// GET /students?Name=...
func SearchStudentsHandler(store lesson.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("Name")
		if len(name) < 2 {
			_ = json.NewEncoder(w).Encode([]lesson.Student{})
			return
		}
		out, err := store.SearchStudents(r.Context(), name, searchLimit)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(out)
	}
}

// GET /students/{studentID}/friends
func ListFriendsHandler(store lesson.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fs, err := store.Friends(r.Context(), chi.URLParam(r, "studentID"))
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(fs)
	}
}

// GET /students/{studentID}/friends/requests
func ListFriendRequestsHandler(store lesson.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rs, err := store.FriendRequests(r.Context(), chi.URLParam(r, "studentID"))
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(rs)
	}
}
