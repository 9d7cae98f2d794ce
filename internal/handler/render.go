package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/schoolhub/schoolhub-server/internal/session"
)

// render executes an HTML template with any pending flash notices
// attached under "Flashes" (unless the caller supplied its own).
func render(c *gin.Context, sessions *session.Manager, code int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["Flashes"]; !ok {
		data["Flashes"] = sessions.Flashes(c.Writer, c.Request)
	}
	c.HTML(code, name, data)
}

// serverError renders the custom 500 page. Store-level failures outside
// signup are not shown to the user in any more detail.
func serverError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "500.html", nil)
}

// notFound renders the custom 404 page.
func notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", nil)
}
