package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/schoolhub/schoolhub-server/internal/model"
	"github.com/schoolhub/schoolhub-server/internal/response"
	"github.com/schoolhub/schoolhub-server/internal/session"
)

const (
	// ContextKeyUser is the Gin context key for the session username.
	ContextKeyUser = "session_user"
	// ContextKeyRole is the Gin context key for the session role.
	ContextKeyRole = "session_role"
)

// RequireLogin redirects unauthenticated callers to the login page.
// On success the session identity is stored on the Gin context.
func RequireLogin(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, role, ok := sessions.Current(c.Request)
		if !ok {
			sessions.AddFlash(c.Writer, c.Request, "warning", response.GetMessage(response.MsgLoginRequired))
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}

		c.Set(ContextKeyUser, user)
		c.Set(ContextKeyRole, role)
		c.Next()
	}
}

// RequireTeacher additionally requires the session role to be teacher;
// other roles are redirected to the dashboard with a denial notice.
// The role is trusted entirely from session state set at login.
func RequireTeacher(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, role, ok := sessions.Current(c.Request)
		if !ok {
			sessions.AddFlash(c.Writer, c.Request, "warning", response.GetMessage(response.MsgLoginRequired))
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}

		if role != model.RoleTeacher {
			sessions.AddFlash(c.Writer, c.Request, "danger", response.GetMessage(response.MsgTeacherRequired))
			c.Redirect(http.StatusSeeOther, "/dashboard")
			c.Abort()
			return
		}

		c.Set(ContextKeyUser, user)
		c.Set(ContextKeyRole, role)
		c.Next()
	}
}

// Identity retrieves the session identity from the Gin context.
func Identity(c *gin.Context) (username string, role model.Role) {
	if v, exists := c.Get(ContextKeyUser); exists {
		username, _ = v.(string)
	}
	if v, exists := c.Get(ContextKeyRole); exists {
		role, _ = v.(model.Role)
	}
	return username, role
}
