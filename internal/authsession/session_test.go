package authsession_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/astrolearn/astrolearn-client/internal/authsession"
	"github.com/astrolearn/astrolearn-client/internal/platform"
)

type fakeIssuer struct {
	token string
	err   error
	calls int
}

func (f *fakeIssuer) SignIn(_ context.Context, _, _ string) (string, error) {
	f.calls++
	return f.token, f.err
}

type fakeProfiles struct {
	profiles map[string]platform.StudentProfile
	calls    int
}

func (f *fakeProfiles) Student(_ context.Context, id string) (platform.StudentProfile, error) {
	f.calls++
	p, ok := f.profiles[id]
	if !ok {
		return platform.StudentProfile{}, errors.New("student not found")
	}
	return p, nil
}

func signedToken(t *testing.T, sub string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

func TestSignInLifecycle(t *testing.T) {
	tok := signedToken(t, "student-42")
	issuer := &fakeIssuer{token: tok}
	profiles := &fakeProfiles{profiles: map[string]platform.StudentProfile{
		"student-42": {ID: "student-42", Name: "Ada", Level: 3},
	}}
	tokens := authsession.NewTokenStore()
	s := authsession.New(tokens, issuer, profiles, nil)

	if s.Authenticated() {
		t.Fatalf("fresh session should be anonymous")
	}
	if err := s.SignIn(context.Background(), "ada@example.com", "pw"); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if !s.Authenticated() {
		t.Fatalf("expected authenticated state")
	}
	if tokens.Token() != tok {
		t.Fatalf("token store not updated")
	}
	if s.StudentID() != "student-42" {
		t.Fatalf("student id not derived from subject claim: %q", s.StudentID())
	}
	d := s.Display()
	if !d.Resolved || d.Name != "Ada" || d.Level != 3 {
		t.Fatalf("unexpected display profile %+v", d)
	}

	s.SignOut()
	if s.Authenticated() || tokens.Token() != "" || s.StudentID() != "" {
		t.Fatalf("sign out did not clear state")
	}
}

func TestSignInFailure(t *testing.T) {
	issuer := &fakeIssuer{err: errors.New("bad credentials")}
	tokens := authsession.NewTokenStore()
	s := authsession.New(tokens, issuer, nil, nil)
	if err := s.SignIn(context.Background(), "x", "y"); err == nil {
		t.Fatalf("expected error")
	}
	if s.Authenticated() || tokens.Token() != "" {
		t.Fatalf("failed sign-in must leave session anonymous")
	}
}

func TestProfileFailureLeavesStub(t *testing.T) {
	tok := signedToken(t, "student-7")
	issuer := &fakeIssuer{token: tok}
	profiles := &fakeProfiles{} // knows nobody
	s := authsession.New(authsession.NewTokenStore(), issuer, profiles, nil)
	if err := s.SignIn(context.Background(), "a", "b"); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if _, ok := s.Profile(); ok {
		t.Fatalf("expected no resolved profile")
	}
	d := s.Display()
	if d.Resolved {
		t.Fatalf("expected stub profile, got %+v", d)
	}
	if d.StudentID != "student-7" || d.Name == "" {
		t.Fatalf("stub should still name the student: %+v", d)
	}
}

func TestRestoreFromCache(t *testing.T) {
	tok := signedToken(t, "student-9")
	cache, err := authsession.NewFileCache(filepath.Join(t.TempDir(), "token"))
	if err != nil {
		t.Fatalf("cache: %v", err)
	}
	if err := cache.Save(tok); err != nil {
		t.Fatalf("save: %v", err)
	}

	tokens := authsession.NewTokenStore()
	s := authsession.New(tokens, &fakeIssuer{}, nil, cache)
	if !s.Restore(context.Background()) {
		t.Fatalf("expected restore to succeed")
	}
	if tokens.Token() != tok || s.StudentID() != "student-9" {
		t.Fatalf("restore did not rebuild session state")
	}

	s.SignOut()
	if got, _ := cache.Load(); got != "" {
		t.Fatalf("sign out should clear the cache, got %q", got)
	}
	s2 := authsession.New(authsession.NewTokenStore(), &fakeIssuer{}, nil, cache)
	if s2.Restore(context.Background()) {
		t.Fatalf("restore should fail with an empty cache")
	}
}

func TestRestoreRejectsGarbage(t *testing.T) {
	cache, err := authsession.NewFileCache(filepath.Join(t.TempDir(), "token"))
	if err != nil {
		t.Fatalf("cache: %v", err)
	}
	if err := cache.Save("not-a-jwt"); err != nil {
		t.Fatalf("save: %v", err)
	}
	s := authsession.New(authsession.NewTokenStore(), &fakeIssuer{}, nil, cache)
	if s.Restore(context.Background()) {
		t.Fatalf("garbage token must not restore a session")
	}
	if got, _ := cache.Load(); got != "" {
		t.Fatalf("garbage token should be evicted from the cache")
	}
}

func TestResolveFriend(t *testing.T) {
	req := platform.FriendRequest{ID: "r1", StudentID: "s1", FriendID: "f1"}
	known := map[string]platform.StudentProfile{
		"f1": {ID: "f1", Name: "Grace", Level: 5},
	}
	d := authsession.ResolveFriend(req, known)
	if !d.Resolved || d.Name != "Grace" {
		t.Fatalf("expected resolved friend, got %+v", d)
	}
	d = authsession.ResolveFriend(platform.FriendRequest{FriendID: "f2"}, known)
	if d.Resolved || d.Name == "" {
		t.Fatalf("expected stub for unknown friend, got %+v", d)
	}
}
