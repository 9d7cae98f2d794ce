package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/schoolhub/schoolhub-server/internal/middleware"
	"github.com/schoolhub/schoolhub-server/internal/response"
	"github.com/schoolhub/schoolhub-server/internal/service"
	"github.com/schoolhub/schoolhub-server/internal/session"
)

// PageHandler renders the authenticated HTML pages.
type PageHandler struct {
	dashboardService *service.DashboardService
	studentService   *service.StudentService
	teacherService   *service.TeacherService
	timetableService *service.TimetableService
	sessions         *session.Manager
	log              zerolog.Logger
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(
	dashboardService *service.DashboardService,
	studentService *service.StudentService,
	teacherService *service.TeacherService,
	timetableService *service.TimetableService,
	sessions *session.Manager,
	log zerolog.Logger,
) *PageHandler {
	return &PageHandler{
		dashboardService: dashboardService,
		studentService:   studentService,
		teacherService:   teacherService,
		timetableService: timetableService,
		sessions:         sessions,
		log:              log,
	}
}

// Dashboard godoc
// GET /dashboard
// Renders the role-dependent aggregated view model.
func (h *PageHandler) Dashboard(c *gin.Context) {
	username, role := middleware.Identity(c)

	stats, err := h.dashboardService.Stats(c.Request.Context(), username, role)
	if err != nil {
		h.log.Error().Err(err).Msg("dashboard stats failed")
		serverError(c)
		return
	}

	render(c, h.sessions, http.StatusOK, "dashboard.html", gin.H{
		"Username":      stats.Username,
		"Role":          string(stats.Role),
		"ClassName":     stats.ClassName,
		"StudentCount":  stats.StudentCount,
		"TotalStudents": stats.TotalStudents,
		"TotalTeachers": stats.TotalTeachers,
		"TotalClasses":  stats.TotalClasses,
	})
}

// Students godoc
// GET /students
// Teachers see only their own class; everyone else sees all students.
func (h *PageHandler) Students(c *gin.Context) {
	username, role := middleware.Identity(c)

	students, err := h.studentService.ListForViewer(c.Request.Context(), username, role)
	if err != nil {
		h.log.Error().Err(err).Msg("list students failed")
		serverError(c)
		return
	}

	render(c, h.sessions, http.StatusOK, "students.html", gin.H{
		"Students": students,
		"Role":     string(role),
		"Username": username,
	})
}

// Teachers godoc
// GET /teachers
// All teachers with their class assignment; no role restriction.
func (h *PageHandler) Teachers(c *gin.Context) {
	username, role := middleware.Identity(c)

	teachers, err := h.teacherService.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list teachers failed")
		serverError(c)
		return
	}

	render(c, h.sessions, http.StatusOK, "teachers.html", gin.H{
		"Teachers": teachers,
		"Role":     string(role),
		"Username": username,
	})
}

// Timetable godoc
// GET /timetable
// Page shell only; the grid itself is fetched client-side from the API.
// The caller's own class is preselected when one can be resolved.
func (h *PageHandler) Timetable(c *gin.Context) {
	username, role := middleware.Identity(c)

	classID, ok, err := h.timetableService.DefaultClassID(c.Request.Context(), username, role)
	if err != nil {
		h.log.Error().Err(err).Msg("resolve default class failed")
		serverError(c)
		return
	}

	data := gin.H{"Role": string(role), "Username": username}
	if ok {
		data["DefaultClassID"] = classID
	}
	render(c, h.sessions, http.StatusOK, "timetable.html", data)
}

// MyClass godoc
// GET /my_class
// Teacher-only roster page; unassigned teachers are sent back to the
// dashboard with a warning.
func (h *PageHandler) MyClass(c *gin.Context) {
	username, _ := middleware.Identity(c)

	myClass, ok, err := h.teacherService.MyClass(c.Request.Context(), username)
	if err != nil {
		h.log.Error().Err(err).Msg("resolve class roster failed")
		serverError(c)
		return
	}
	if !ok {
		h.sessions.AddFlash(c.Writer, c.Request, "warning", response.GetMessage(response.MsgNoClassAssigned))
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}

	render(c, h.sessions, http.StatusOK, "my_class.html", gin.H{
		"ClassName": myClass.ClassName,
		"Subject":   myClass.Subject,
		"Students":  myClass.Students,
		"Username":  username,
	})
}
