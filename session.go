package fundboard

import (
	"crypto/subtle"
	"fmt"
)

// Session is the request-scoped access decision. There is deliberately no
// module-level authentication state: every caller constructs a Session
// from the presented password and passes it along explicitly.
type Session struct {
	Authenticated bool
}

// NewSession checks the presented password against the configured secret.
// An empty secret means the gate is open.
func NewSession(secret, password string) Session {
	if secret == "" {
		return Session{Authenticated: true}
	}
	ok := subtle.ConstantTimeCompare([]byte(secret), []byte(password)) == 1
	return Session{Authenticated: ok}
}

// Check returns an error when the session is not authenticated.
func (s Session) Check() error {
	if !s.Authenticated {
		return fmt.Errorf("access denied: incorrect password")
	}
	return nil
}
