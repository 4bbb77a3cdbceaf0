package platform_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/astrolearn/astrolearn-client/internal/platform"
)

type staticToken string

func (t staticToken) Token() string { return string(t) }

func newClient(srv *httptest.Server, token string) *platform.Client {
	return platform.New(platform.Config{
		BaseURL: srv.URL + "/api/v1",
		Tokens:  staticToken(token),
	})
}

func TestCreateAttempt(t *testing.T) {
	var gotPath, gotAuth, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotMethod = r.Method
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "attempt-123"})
	}))
	defer srv.Close()

	c := newClient(srv, "tok-1")
	a, err := c.CreateAttempt(context.Background(), "stu", "subj", "les")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ID != "attempt-123" {
		t.Fatalf("unexpected attempt id %q", a.ID)
	}
	if gotMethod != http.MethodPost {
		t.Fatalf("expected POST, got %s", gotMethod)
	}
	if want := "/api/v1/students/stu/subjects/subj/lessons/les/attempts"; gotPath != want {
		t.Fatalf("path %q, want %q", gotPath, want)
	}
	if gotAuth != "Bearer tok-1" {
		t.Fatalf("authorization %q", gotAuth)
	}
}

func TestCreateAttemptMissingParameter(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := newClient(srv, "")
	_, err := c.CreateAttempt(context.Background(), "stu", "", "les")
	if !errors.Is(err, platform.ErrMissingParameter) {
		t.Fatalf("expected ErrMissingParameter, got %v", err)
	}
	if called {
		t.Fatalf("no network call expected")
	}
}

func TestRandomQuestionsEmptyIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	c := newClient(srv, "")
	qs, err := c.RandomQuestions(context.Background(), "subj", "les")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if qs == nil || len(qs) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", qs)
	}
}

func TestRandomQuestionsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newClient(srv, "")
	_, err := c.RandomQuestions(context.Background(), "subj", "les")
	var se *platform.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if se.Status != http.StatusInternalServerError {
		t.Fatalf("status %d", se.Status)
	}
}

func TestSubmitAnswer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if want := "/api/v1/attempts/at1/questions/q1/answers"; r.URL.Path != want {
			t.Errorf("path %q, want %q", r.URL.Path, want)
		}
		var body struct {
			ChosenOptionID string `json:"chosenOptionId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		_ = json.NewEncoder(w).Encode(platform.AnswerResult{
			QuestionID:      "q1",
			ChosenOptionID:  body.ChosenOptionID,
			CorrectOptionID: "b",
			IsCorrect:       body.ChosenOptionID == "b",
		})
	}))
	defer srv.Close()

	c := newClient(srv, "")
	res, err := c.SubmitAnswer(context.Background(), "at1", "q1", "b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsCorrect || res.CorrectOptionID != "b" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestSignIn(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/students/sign-in" {
			t.Errorf("path %q", r.URL.Path)
		}
		var body struct{ Email, Password string }
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Email != "ada@example.com" {
			http.Error(w, "unknown student", http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"token": "tok-xyz"})
	}))
	defer srv.Close()

	c := newClient(srv, "")
	tok, err := c.SignIn(context.Background(), "ada@example.com", "pw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok != "tok-xyz" {
		t.Fatalf("token %q", tok)
	}

	_, err = c.SignIn(context.Background(), "mallory@example.com", "pw")
	var se *platform.StatusError
	if !errors.As(err, &se) || se.Status != http.StatusUnauthorized {
		t.Fatalf("expected 401 StatusError, got %v", err)
	}
}

func TestSearchStudentsShortQueryShortCircuits(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := newClient(srv, "")
	rs, err := c.SearchStudents(context.Background(), "a")
	if err != nil || len(rs) != 0 {
		t.Fatalf("expected empty result, got %v %v", rs, err)
	}
	if called {
		t.Fatalf("short query must not hit the network")
	}
}

func TestSearchStudentsQueryParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("Name"); got != "ada lovelace" {
			t.Errorf("Name query %q", got)
		}
		_ = json.NewEncoder(w).Encode([]platform.StudentSearchResult{{ID: "s1", Name: "Ada Lovelace"}})
	}))
	defer srv.Close()

	c := newClient(srv, "")
	rs, err := c.SearchStudents(context.Background(), "ada lovelace")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rs) != 1 || rs[0].Name != "Ada Lovelace" {
		t.Fatalf("unexpected results %+v", rs)
	}
}

func TestAnonymousRequestOmitsAuthorization(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Header["Authorization"]; ok {
			t.Errorf("unexpected Authorization header")
		}
		_ = json.NewEncoder(w).Encode([]platform.Subject{})
	}))
	defer srv.Close()

	c := newClient(srv, "")
	if _, err := c.Subjects(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
