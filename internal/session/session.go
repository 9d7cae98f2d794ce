package session

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/schoolhub/schoolhub-server/internal/model"
)

const (
	sessionName = "schoolhub-session"

	keyUser = "user"
	keyRole = "role"
)

// Flash is a one-shot notice rendered on the next page view.
// Level matches the Bootstrap alert classes (success, info, warning, danger).
type Flash struct {
	Level   string
	Message string
}

func init() {
	// Flash values travel inside the encrypted session cookie.
	gob.Register(Flash{})
}

// Manager wraps the cookie-backed session store. A session carries the
// logged-in username and role for the lifetime of a client session and is
// never persisted to the database.
type Manager struct {
	store *sessions.CookieStore
}

// NewManager creates a Manager keyed with secret. An empty secret falls
// back to a random key, which invalidates sessions on restart.
func NewManager(secret string) *Manager {
	key := []byte(secret)
	if len(key) == 0 {
		key = securecookie.GenerateRandomKey(32)
	}

	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store}
}

// Current returns the logged-in identity, or ok=false for anonymous
// callers. A cookie that fails to decode counts as anonymous.
func (m *Manager) Current(r *http.Request) (username string, role model.Role, ok bool) {
	s, _ := m.store.Get(r, sessionName)

	username, userOK := s.Values[keyUser].(string)
	roleStr, roleOK := s.Values[keyRole].(string)
	if !userOK || !roleOK || username == "" {
		return "", "", false
	}
	return username, model.Role(roleStr), true
}

// SetUser establishes a session for the given identity.
func (m *Manager) SetUser(w http.ResponseWriter, r *http.Request, username string, role model.Role) error {
	s, _ := m.store.Get(r, sessionName)
	s.Values[keyUser] = username
	s.Values[keyRole] = string(role)
	return s.Save(r, w)
}

// Clear drops the identity, keeping the cookie itself so a flash queued
// after logout still reaches the next page. Idempotent.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	s, _ := m.store.Get(r, sessionName)
	delete(s.Values, keyUser)
	delete(s.Values, keyRole)
	return s.Save(r, w)
}

// AddFlash queues a one-shot notice for the next rendered page.
func (m *Manager) AddFlash(w http.ResponseWriter, r *http.Request, level string, message string) {
	s, _ := m.store.Get(r, sessionName)
	s.AddFlash(Flash{Level: level, Message: message})
	_ = s.Save(r, w)
}

// Flashes drains and returns the pending notices.
func (m *Manager) Flashes(w http.ResponseWriter, r *http.Request) []Flash {
	s, _ := m.store.Get(r, sessionName)

	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = s.Save(r, w) // Persist the drain.

	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			flashes = append(flashes, f)
		}
	}
	return flashes
}
