package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/schoolhub/schoolhub-server/internal/config"
	"github.com/schoolhub/schoolhub-server/internal/handler"
	"github.com/schoolhub/schoolhub-server/internal/middleware"
	"github.com/schoolhub/schoolhub-server/internal/response"
	"github.com/schoolhub/schoolhub-server/internal/session"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth *handler.AuthHandler
	Page *handler.PageHandler
	API  *handler.APIHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(cfg *config.Config, sessions *session.Manager, handlers *Handlers) *gin.Engine {
	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(gin.Logger())

	// Panics render the custom 500 page instead of an empty body.
	router.Use(gin.CustomRecovery(func(c *gin.Context, _ interface{}) {
		c.HTML(http.StatusInternalServerError, "500.html", nil)
	}))

	// Apply request ID middleware globally so every response can be traced.
	router.Use(response.RequestIDMiddleware())

	router.LoadHTMLGlob(cfg.TemplatesGlob)
	router.Static("/static", cfg.StaticDir)

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for credential-submitting routes (30 per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Authentication (public) ────────────────────────────────────
	router.GET("/", handlers.Auth.LoginPage)
	router.POST("/", authLimiter.Middleware(), handlers.Auth.Login)
	router.GET("/signup", handlers.Auth.SignupPage)
	router.POST("/signup", authLimiter.Middleware(), handlers.Auth.Signup)
	router.GET("/logout", handlers.Auth.Logout)

	// ─── 2. Authenticated pages ────────────────────────────────────────
	pages := router.Group("/", middleware.RequireLogin(sessions))
	{
		pages.GET("/dashboard", handlers.Page.Dashboard)
		pages.GET("/students", handlers.Page.Students)
		pages.GET("/teachers", handlers.Page.Teachers)
		pages.GET("/timetable", handlers.Page.Timetable)
	}

	// ─── 3. Teacher-only pages ─────────────────────────────────────────
	router.GET("/my_class", middleware.RequireTeacher(sessions), handlers.Page.MyClass)

	// ─── 4. JSON API ───────────────────────────────────────────────────
	// CORS is confined to the API group; the HTML pages are same-origin.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour

	api := router.Group("/api")
	api.Use(cors.New(corsConfig))
	{
		api.GET("/classes", handlers.API.Classes)
		api.GET("/timetable/:class_id", handlers.API.Timetable)
		api.GET("/students", handlers.API.Students)
		api.GET("/my_class/students", middleware.RequireTeacher(sessions), handlers.API.MyClassStudents)
	}

	// Unmatched routes get the custom 404 page.
	router.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "404.html", nil)
	})

	return router
}
