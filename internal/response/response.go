package response

import "github.com/gin-gonic/gin"

// JSON sends a plain JSON payload. API endpoints return bare values
// (arrays, objects) rather than an envelope; clients consume them directly.
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Error sends a minimal JSON error body with the catalog message for code.
func Error(c *gin.Context, statusCode int, code MsgCode) {
	c.JSON(statusCode, gin.H{"error": GetMessage(code)})
}

// AbortError aborts the middleware chain and sends a JSON error body.
func AbortError(c *gin.Context, statusCode int, code MsgCode) {
	c.AbortWithStatusJSON(statusCode, gin.H{"error": GetMessage(code)})
}
