// Package authsession holds the process-wide authentication state: the
// bearer token stamped onto outgoing requests and the signed-in
// student's identity. Lifecycle is explicit: none -> set -> cleared.
package authsession

import (
	"context"
	"fmt"
	"sync"

	"github.com/golang-jwt/jwt/v5"

	"github.com/astrolearn/astrolearn-client/internal/platform"
)

type State int

const (
	StateAnonymous State = iota
	StateAuthenticated
)

// TokenIssuer exchanges credentials for a bearer token. Both
// *platform.Client (custom token flow) and IdentityProvider (OAuth2
// password grant) satisfy it.
type TokenIssuer interface {
	SignIn(ctx context.Context, email, password string) (string, error)
}

// ProfileSource fetches the student profile for hydration after login.
type ProfileSource interface {
	Student(ctx context.Context, id string) (platform.StudentProfile, error)
}

// Cache persists the token between runs (the localStorage analog).
type Cache interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// TokenStore is the shared read-only token holder threaded through the
// network layer. It is created independently of the client so the two
// can be wired without a cycle.
type TokenStore struct {
	mu    sync.RWMutex
	token string
}

func NewTokenStore() *TokenStore { return &TokenStore{} }

// Token implements platform.TokenSource.
func (t *TokenStore) Token() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.token
}

func (t *TokenStore) set(tok string) {
	t.mu.Lock()
	t.token = tok
	t.mu.Unlock()
}

type Session struct {
	tokens   *TokenStore
	issuer   TokenIssuer
	profiles ProfileSource
	cache    Cache

	mu        sync.RWMutex
	studentID string
	profile   *platform.StudentProfile
}

// New wires a session around an existing token store. cache may be nil.
func New(tokens *TokenStore, issuer TokenIssuer, profiles ProfileSource, cache Cache) *Session {
	return &Session{tokens: tokens, issuer: issuer, profiles: profiles, cache: cache}
}

// SignIn obtains a token, derives the student id from its subject claim,
// and hydrates the profile. A profile fetch failure does not undo the
// sign-in; the session just carries an unresolved profile stub.
func (s *Session) SignIn(ctx context.Context, email, password string) error {
	tok, err := s.issuer.SignIn(ctx, email, password)
	if err != nil {
		return fmt.Errorf("sign in: %w", err)
	}
	sub, err := subjectClaim(tok)
	if err != nil {
		return fmt.Errorf("sign in: %w", err)
	}
	s.tokens.set(tok)
	s.mu.Lock()
	s.studentID = sub
	s.profile = nil
	s.mu.Unlock()
	if s.cache != nil {
		_ = s.cache.Save(tok)
	}
	s.hydrate(ctx)
	return nil
}

// Restore loads a cached token from a previous run. Returns false when
// no usable token is cached.
func (s *Session) Restore(ctx context.Context) bool {
	if s.cache == nil {
		return false
	}
	tok, err := s.cache.Load()
	if err != nil || tok == "" {
		return false
	}
	sub, err := subjectClaim(tok)
	if err != nil {
		_ = s.cache.Clear()
		return false
	}
	s.tokens.set(tok)
	s.mu.Lock()
	s.studentID = sub
	s.profile = nil
	s.mu.Unlock()
	s.hydrate(ctx)
	return true
}

// SignOut clears the token and identity.
func (s *Session) SignOut() {
	s.tokens.set("")
	s.mu.Lock()
	s.studentID = ""
	s.profile = nil
	s.mu.Unlock()
	if s.cache != nil {
		_ = s.cache.Clear()
	}
}

func (s *Session) hydrate(ctx context.Context) {
	if s.profiles == nil {
		return
	}
	s.mu.RLock()
	id := s.studentID
	s.mu.RUnlock()
	p, err := s.profiles.Student(ctx, id)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.profile = &p
	s.mu.Unlock()
}

func (s *Session) State() State {
	if s.tokens.Token() == "" {
		return StateAnonymous
	}
	return StateAuthenticated
}

func (s *Session) Authenticated() bool { return s.State() == StateAuthenticated }

// StudentID is the opaque identifier supplied to session controllers.
func (s *Session) StudentID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.studentID
}

func (s *Session) Profile() (platform.StudentProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return platform.StudentProfile{}, false
	}
	return *s.profile, true
}

// Display returns the canonical display record for the signed-in
// student, resolved or stub.
func (s *Session) Display() DisplayProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Resolve(s.studentID, s.profile)
}

// subjectClaim extracts the sub claim without verifying the signature;
// the client never holds the signing key, the server does.
func subjectClaim(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("token has no subject claim")
	}
	return claims.Subject, nil
}
