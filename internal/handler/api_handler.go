package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/schoolhub/schoolhub-server/internal/middleware"
	"github.com/schoolhub/schoolhub-server/internal/response"
	"github.com/schoolhub/schoolhub-server/internal/service"
)

// APIHandler serves the JSON endpoints consumed by the timetable page
// and external clients. Payloads are bare arrays, matching what the
// frontend scripts expect.
type APIHandler struct {
	classService     *service.ClassService
	timetableService *service.TimetableService
	studentService   *service.StudentService
	teacherService   *service.TeacherService
	log              zerolog.Logger
}

// NewAPIHandler creates a new APIHandler.
func NewAPIHandler(
	classService *service.ClassService,
	timetableService *service.TimetableService,
	studentService *service.StudentService,
	teacherService *service.TeacherService,
	log zerolog.Logger,
) *APIHandler {
	return &APIHandler{
		classService:     classService,
		timetableService: timetableService,
		studentService:   studentService,
		teacherService:   teacherService,
		log:              log,
	}
}

// Classes godoc
// GET /api/classes
// JSON array of {id, name} for client-side class selection.
func (h *APIHandler) Classes(c *gin.Context) {
	classes, err := h.classService.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list classes failed")
		response.Error(c, http.StatusInternalServerError, response.MsgInternal)
		return
	}
	response.JSON(c, http.StatusOK, classes)
}

// Timetable godoc
// GET /api/timetable/:class_id
// JSON array of {day, periods[6]} records in alphabetical day order.
// A non-numeric class id falls through to the custom 404 page.
func (h *APIHandler) Timetable(c *gin.Context) {
	classID, err := strconv.Atoi(c.Param("class_id"))
	if err != nil {
		notFound(c)
		return
	}

	grid, err := h.timetableService.Grid(c.Request.Context(), classID)
	if err != nil {
		h.log.Error().Err(err).Int("class_id", classID).Msg("build timetable grid failed")
		response.Error(c, http.StatusInternalServerError, response.MsgInternal)
		return
	}
	response.JSON(c, http.StatusOK, grid)
}

// Students godoc
// GET /api/students
// JSON array of {id, name, class} for every student.
func (h *APIHandler) Students(c *gin.Context) {
	students, err := h.studentService.ListAll(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list students failed")
		response.Error(c, http.StatusInternalServerError, response.MsgInternal)
		return
	}
	response.JSON(c, http.StatusOK, students)
}

// MyClassStudents godoc
// GET /api/my_class/students
// Teacher-only roster of the caller's class; an unassigned teacher gets
// an empty array, not an error.
func (h *APIHandler) MyClassStudents(c *gin.Context) {
	username, _ := middleware.Identity(c)

	roster, err := h.teacherService.Roster(c.Request.Context(), username)
	if err != nil {
		h.log.Error().Err(err).Msg("resolve roster failed")
		response.Error(c, http.StatusInternalServerError, response.MsgInternal)
		return
	}
	response.JSON(c, http.StatusOK, roster)
}
