package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/schoolhub/schoolhub-server/internal/model"
)

// carryCookies copies the Set-Cookie headers from a response onto a fresh
// request, standing in for a browser between round trips. When a response
// sets the same cookie twice the last write wins, as it does in a browser.
func carryCookies(t *testing.T, w *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	latest := make(map[string]*http.Cookie)
	for _, c := range w.Result().Cookies() {
		latest[c.Name] = c
	}
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range latest {
		r.AddCookie(c)
	}
	return r
}

func TestSetUserAndCurrent(t *testing.T) {
	m := NewManager("test-secret")

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if err := m.SetUser(w, r, "Teacher A", model.RoleTeacher); err != nil {
		t.Fatalf("set user: %v", err)
	}

	username, role, ok := m.Current(carryCookies(t, w))
	if !ok {
		t.Fatal("expected a logged-in session")
	}
	if username != "Teacher A" {
		t.Fatalf("expected Teacher A, got %q", username)
	}
	if role != model.RoleTeacher {
		t.Fatalf("expected teacher role, got %q", role)
	}
}

func TestCurrentAnonymous(t *testing.T) {
	m := NewManager("test-secret")

	_, _, ok := m.Current(httptest.NewRequest(http.MethodGet, "/", nil))
	if ok {
		t.Fatal("expected anonymous session")
	}
}

func TestCurrentRejectsForeignCookie(t *testing.T) {
	issuer := NewManager("secret-one")
	verifier := NewManager("secret-two")

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if err := issuer.SetUser(w, r, "Alice", model.RoleStudent); err != nil {
		t.Fatalf("set user: %v", err)
	}

	if _, _, ok := verifier.Current(carryCookies(t, w)); ok {
		t.Fatal("cookie signed with another key was accepted")
	}
}

func TestClearKeepsFlashes(t *testing.T) {
	m := NewManager("test-secret")

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if err := m.SetUser(w, r, "Alice", model.RoleStudent); err != nil {
		t.Fatalf("set user: %v", err)
	}

	// Logout drops the identity and queues a notice in one round trip.
	w2 := httptest.NewRecorder()
	r2 := carryCookies(t, w)
	if err := m.Clear(w2, r2); err != nil {
		t.Fatalf("clear: %v", err)
	}
	m.AddFlash(w2, r2, "info", "Logged out successfully")

	w3 := httptest.NewRecorder()
	r3 := carryCookies(t, w2)
	if _, _, ok := m.Current(r3); ok {
		t.Fatal("identity survived Clear")
	}
	flashes := m.Flashes(w3, r3)
	if len(flashes) != 1 {
		t.Fatalf("expected 1 flash, got %d", len(flashes))
	}
	if flashes[0].Level != "info" || flashes[0].Message != "Logged out successfully" {
		t.Fatalf("unexpected flash %+v", flashes[0])
	}
}

func TestFlashesDrainOnce(t *testing.T) {
	m := NewManager("test-secret")

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	m.AddFlash(w, r, "success", "Account created successfully! Please login.")

	w2 := httptest.NewRecorder()
	r2 := carryCookies(t, w)
	if got := len(m.Flashes(w2, r2)); got != 1 {
		t.Fatalf("expected 1 flash on first read, got %d", got)
	}

	w3 := httptest.NewRecorder()
	r3 := carryCookies(t, w2)
	if got := len(m.Flashes(w3, r3)); got != 0 {
		t.Fatalf("expected flashes to be drained, got %d", got)
	}
}
