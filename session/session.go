package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nonsonwune/gradlink/models"
)

// State is the session lifecycle:
// anonymous -> authenticating -> authenticated -> anonymous.
type State int

const (
	Anonymous State = iota
	Authenticating
	Authenticated
)

// Store holds the authenticated user for the lifetime of the run. Nothing is
// persisted; the program restarts anonymous ("remember me" is a server
// concern). Mutation happens only through Begin/Complete/Fail/Logout, all on
// the interactive loop, so no locking is needed.
type Store struct {
	state State
	user  *models.User
	token string
}

// NewStore returns an anonymous store.
func NewStore() *Store {
	return &Store{state: Anonymous}
}

// Begin marks a login attempt in flight.
func (s *Store) Begin() {
	s.state = Authenticating
}

// Complete installs the user and token after a successful login.
func (s *Store) Complete(user models.User, token string) {
	s.user = &user
	s.token = token
	s.state = Authenticated
}

// Fail returns to anonymous after a rejected login attempt.
func (s *Store) Fail() {
	s.user = nil
	s.token = ""
	s.state = Anonymous
}

// Logout clears the session.
func (s *Store) Logout() {
	s.user = nil
	s.token = ""
	s.state = Anonymous
}

// State reports the current lifecycle state.
func (s *Store) State() State {
	return s.state
}

// User returns the session user, or nil when anonymous.
func (s *Store) User() *models.User {
	return s.user
}

// Token returns the bearer token, or "" when anonymous.
func (s *Store) Token() string {
	return s.token
}

// Authenticated reports whether a user is present.
func (s *Store) Authenticated() bool {
	return s.state == Authenticated && s.user != nil
}

// HasRole gates a screen on the session role. Anonymous sessions never pass.
func (s *Store) HasRole(roles ...models.Role) bool {
	if !s.Authenticated() {
		return false
	}
	for _, role := range roles {
		if s.user.Role == role {
			return true
		}
	}
	return false
}

// Expired reports whether the token's exp claim has passed. The client does
// not verify signatures (it has no key); this only lets the shell drop to
// the login menu instead of issuing calls that will come back 401. Tokens
// without an exp claim never read as expired.
func (s *Store) Expired() bool {
	if s.token == "" {
		return false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
