// Package admin gates the customisation panel behind the persisted
// admin password. Authorization itself is never persisted: every mount
// of the panel starts locked.
package admin

import (
	"errors"

	"vmac/internal/store"
)

// defaultPassword seeds the password slot on first run. Stored as a
// plain string client-side, matching the site it fronts; there is no
// server boundary to protect.
const defaultPassword = "Chayon@1810695017"

// minPasswordLen is the minimum accepted new-password length.
const minPasswordLen = 4

// Gate and password-change outcomes, verbatim from the panel.
var (
	ErrIncorrectPassword = errors.New("Incorrect Password")
	ErrCurrentMismatch   = errors.New("Current password is incorrect.")
	ErrConfirmMismatch   = errors.New("New passwords do not match.")
	ErrPasswordTooShort  = errors.New("Password is too short.")
)

// MsgPasswordChanged is shown after a successful password change.
const MsgPasswordChanged = "Password changed successfully!"

// Session is the admin authorization state machine: LOCKED until a
// login with the exact persisted password, UNLOCKED afterwards.
type Session struct {
	store    store.Store
	password string
	unlocked bool
}

// NewSession loads the persisted password (or seeds the default) and
// starts locked.
func NewSession(s store.Store) *Session {
	password := defaultPassword
	if raw, ok := s.Load(store.KeyPassword); ok && len(raw) > 0 {
		password = string(raw)
	}
	return &Session{store: s, password: password}
}

// Unlocked reports whether the panel is accessible.
func (s *Session) Unlocked() bool { return s.unlocked }

// Lock resets the session to LOCKED; called whenever the admin view is
// mounted.
func (s *Session) Lock() { s.unlocked = false }

// Login unlocks the session when input matches the persisted password
// exactly. A wrong password keeps the session locked. There is no
// lockout or throttling.
func (s *Session) Login(input string) error {
	if input != s.password {
		return ErrIncorrectPassword
	}
	s.unlocked = true
	return nil
}

// ChangePassword replaces the persisted password. Preconditions are
// checked in order and the first failure wins, so exactly one message
// surfaces per attempt.
func (s *Session) ChangePassword(current, next, confirm string) error {
	if current != s.password {
		return ErrCurrentMismatch
	}
	if next != confirm {
		return ErrConfirmMismatch
	}
	if len(next) < minPasswordLen {
		return ErrPasswordTooShort
	}
	s.password = next
	// Best-effort, like every other store write.
	_ = s.store.Save(store.KeyPassword, []byte(next))
	return nil
}
