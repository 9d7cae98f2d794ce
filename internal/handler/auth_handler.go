package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/schoolhub/schoolhub-server/internal/model"
	"github.com/schoolhub/schoolhub-server/internal/response"
	"github.com/schoolhub/schoolhub-server/internal/service"
	"github.com/schoolhub/schoolhub-server/internal/session"
	"github.com/schoolhub/schoolhub-server/internal/validator"
)

// AuthHandler handles the login, signup and logout routes.
type AuthHandler struct {
	authService *service.AuthService
	sessions    *session.Manager
	log         zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService, sessions *session.Manager, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions, log: log}
}

// LoginPage godoc
// GET /
// Renders the login page; already-authenticated callers go straight to
// the dashboard.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	if _, _, ok := h.sessions.Current(c.Request); ok {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	render(c, h.sessions, http.StatusOK, "login.html", nil)
}

// Login godoc
// POST /
// Validates the credential pair and establishes a session. Unknown user
// and wrong password produce the same generic notice.
func (h *AuthHandler) Login(c *gin.Context) {
	if _, _, ok := h.sessions.Current(c.Request); ok {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}

	var form model.LoginForm
	if fields := validator.BindForm(c, &form); fields != nil {
		h.rejectLogin(c, form.Username)
		return
	}

	user, err := h.authService.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.rejectLogin(c, form.Username)
			return
		}
		h.log.Error().Err(err).Msg("login failed")
		serverError(c)
		return
	}

	if err := h.sessions.SetUser(c.Writer, c.Request, user.Username, user.Role); err != nil {
		h.log.Error().Err(err).Msg("save session failed")
		serverError(c)
		return
	}

	h.sessions.AddFlash(c.Writer, c.Request, "success", fmt.Sprintf("Welcome back, %s!", user.Username))
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// SignupPage godoc
// GET /signup
func (h *AuthHandler) SignupPage(c *gin.Context) {
	if _, _, ok := h.sessions.Current(c.Request); ok {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	render(c, h.sessions, http.StatusOK, "signup.html", nil)
}

// Signup godoc
// POST /signup
// Creates a student-role account. Field checks re-render the form with
// inline messages and the input discarded; store errors surface as a
// generic database-error notice.
func (h *AuthHandler) Signup(c *gin.Context) {
	if _, _, ok := h.sessions.Current(c.Request); ok {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}

	var form model.SignupForm
	if fields := validator.BindForm(c, &form); fields != nil {
		render(c, h.sessions, http.StatusOK, "signup.html", gin.H{"Errors": fields})
		return
	}

	err := h.authService.Signup(c.Request.Context(), form.Username, form.Password)
	switch {
	case errors.Is(err, service.ErrUsernameTaken):
		render(c, h.sessions, http.StatusOK, "signup.html", gin.H{
			"Flashes": []session.Flash{{Level: "danger", Message: response.GetMessage(response.MsgUsernameExists)}},
		})
		return
	case err != nil:
		h.log.Error().Err(err).Msg("signup failed")
		render(c, h.sessions, http.StatusOK, "signup.html", gin.H{
			"Flashes": []session.Flash{{Level: "danger", Message: response.GetMessage(response.MsgDatabaseError)}},
		})
		return
	}

	h.sessions.AddFlash(c.Writer, c.Request, "success", response.GetMessage(response.MsgSignupSuccess))
	c.Redirect(http.StatusSeeOther, "/")
}

// Logout godoc
// GET /logout
// Clears the session unconditionally and returns to the login page.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Clear(c.Writer, c.Request); err != nil {
		h.log.Warn().Err(err).Msg("clear session failed")
	}
	h.sessions.AddFlash(c.Writer, c.Request, "info", response.GetMessage(response.MsgLoggedOut))
	c.Redirect(http.StatusSeeOther, "/")
}

// rejectLogin re-renders the login page with the generic
// invalid-credentials notice.
func (h *AuthHandler) rejectLogin(c *gin.Context, username string) {
	render(c, h.sessions, http.StatusOK, "login.html", gin.H{
		"Flashes":  []session.Flash{{Level: "danger", Message: response.GetMessage(response.MsgInvalidCredentials)}},
		"Username": username,
	})
}
