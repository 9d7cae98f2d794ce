package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/schoolhub/schoolhub-server/internal/config"
	"github.com/schoolhub/schoolhub-server/internal/database"
	"github.com/schoolhub/schoolhub-server/internal/handler"
	"github.com/schoolhub/schoolhub-server/internal/model"
	"github.com/schoolhub/schoolhub-server/internal/repository"
	"github.com/schoolhub/schoolhub-server/internal/service"
	"github.com/schoolhub/schoolhub-server/internal/session"
	"github.com/schoolhub/schoolhub-server/internal/validator"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validator.Setup()
	os.Exit(m.Run())
}

// newTestRouter boots the full stack against a throwaway SQLite file,
// running the real migrations and demo-account seeding.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	cfg := &config.Config{
		GinMode:       gin.TestMode,
		DatabasePath:  filepath.Join(t.TempDir(), "test.db"),
		MigrationsDir: "../../migrations",
		TemplatesGlob: "../../web/templates/*.html",
		StaticDir:     "../../web/static",
		SessionSecret: "test-secret",
		BcryptCost:    bcrypt.MinCost,
	}
	log := zerolog.Nop()
	ctx := context.Background()

	db, err := database.NewSQLiteDB(ctx, cfg, log)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Bootstrap(ctx, db, cfg, log); err != nil {
		t.Fatalf("bootstrap store: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	classRepo := repository.NewClassRepository(db)
	teacherRepo := repository.NewTeacherRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	timetableRepo := repository.NewTimetableRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	authService := service.NewAuthService(userRepo, cfg.BcryptCost)
	classService := service.NewClassService(classRepo)
	teacherService := service.NewTeacherService(teacherRepo, studentRepo)
	studentService := service.NewStudentService(studentRepo, teacherRepo)
	timetableService := service.NewTimetableService(timetableRepo, teacherRepo, studentRepo)
	dashboardService := service.NewDashboardService(dashboardRepo, studentRepo)

	sessions := session.NewManager(cfg.SessionSecret)

	return SetupRouter(cfg, sessions, &Handlers{
		Auth: handler.NewAuthHandler(authService, sessions, log),
		Page: handler.NewPageHandler(dashboardService, studentService, teacherService, timetableService, sessions, log),
		API:  handler.NewAPIHandler(classService, timetableService, studentService, teacherService, log),
	})
}

// browser drives the router like a cookie-keeping client. Responses that
// set the session cookie twice keep the last write, as a browser would.
type browser struct {
	t       *testing.T
	engine  *gin.Engine
	cookies map[string]*http.Cookie
}

func newBrowser(t *testing.T, engine *gin.Engine) *browser {
	return &browser{t: t, engine: engine, cookies: make(map[string]*http.Cookie)}
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(http.MethodGet, path, nil)
}

func (b *browser) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	return b.do(http.MethodPost, path, form)
}

func (b *browser) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	b.t.Helper()

	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, c := range b.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	b.engine.ServeHTTP(w, req)

	for _, c := range w.Result().Cookies() {
		b.cookies[c.Name] = c
	}
	return w
}

func (b *browser) login(username, password string) {
	b.t.Helper()
	w := b.postForm("/", url.Values{"username": {username}, "password": {password}})
	if w.Code != http.StatusSeeOther {
		b.t.Fatalf("login as %s: expected 303, got %d", username, w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/dashboard" {
		b.t.Fatalf("login as %s: expected redirect to /dashboard, got %s", username, loc)
	}
}

func TestLoginAndDashboard(t *testing.T) {
	b := newBrowser(t, newTestRouter(t))

	b.login("Alice", "alice123")

	w := b.get("/dashboard")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Welcome back, Alice!") {
		t.Fatal("missing welcome flash")
	}
	if !strings.Contains(body, "Alice") {
		t.Fatal("missing username")
	}

	// Flash is one-shot.
	if strings.Contains(b.get("/dashboard").Body.String(), "Welcome back, Alice!") {
		t.Fatal("welcome flash shown twice")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	b := newBrowser(t, newTestRouter(t))

	w := b.postForm("/", url.Values{"username": {"Alice"}, "password": {"wrong"}})
	if w.Code != http.StatusOK {
		t.Fatalf("expected login page re-render, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid username or password") {
		t.Fatal("missing invalid-credentials message")
	}

	w = b.get("/dashboard")
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/" {
		t.Fatalf("expected redirect to login, got %d %s", w.Code, w.Header().Get("Location"))
	}
}

func TestLoginPageRedirectsWhenAuthenticated(t *testing.T) {
	b := newBrowser(t, newTestRouter(t))
	b.login("Alice", "alice123")

	w := b.get("/")
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard, got %d %s", w.Code, w.Header().Get("Location"))
	}
}

func TestProtectedPagesRequireLogin(t *testing.T) {
	b := newBrowser(t, newTestRouter(t))

	for _, path := range []string{"/dashboard", "/students", "/teachers", "/timetable"} {
		w := b.get(path)
		if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/" {
			t.Fatalf("%s: expected redirect to login, got %d %s", path, w.Code, w.Header().Get("Location"))
		}
	}

	if !strings.Contains(b.get("/").Body.String(), "Please login first") {
		t.Fatal("missing login-required flash")
	}
}

func TestLogout(t *testing.T) {
	b := newBrowser(t, newTestRouter(t))
	b.login("Bob", "bob123")

	w := b.get("/logout")
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/" {
		t.Fatalf("expected redirect to login, got %d %s", w.Code, w.Header().Get("Location"))
	}
	if !strings.Contains(b.get("/").Body.String(), "Logged out successfully") {
		t.Fatal("missing logout flash")
	}

	w = b.get("/dashboard")
	if w.Code != http.StatusSeeOther {
		t.Fatalf("session survived logout, got %d", w.Code)
	}
}

func TestSignup(t *testing.T) {
	b := newBrowser(t, newTestRouter(t))

	// Short password is rejected at binding time.
	w := b.postForm("/signup", url.Values{
		"username":         {"Eve"},
		"password":         {"abc"},
		"confirm_password": {"abc"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected re-render, got %d", w.Code)
	}

	// Mismatched confirmation.
	w = b.postForm("/signup", url.Values{
		"username":         {"Eve"},
		"password":         {"secret1"},
		"confirm_password": {"secret2"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected re-render, got %d", w.Code)
	}

	// Taken username.
	w = b.postForm("/signup", url.Values{
		"username":         {"Alice"},
		"password":         {"secret1"},
		"confirm_password": {"secret1"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected re-render, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Username already exists") {
		t.Fatal("missing duplicate-username message")
	}

	// Valid signup lands back on the login page with a success notice.
	w = b.postForm("/signup", url.Values{
		"username":         {"Eve"},
		"password":         {"secret1"},
		"confirm_password": {"secret1"},
	})
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/" {
		t.Fatalf("expected redirect to login, got %d %s", w.Code, w.Header().Get("Location"))
	}
	if !strings.Contains(b.get("/").Body.String(), "Account created successfully! Please login.") {
		t.Fatal("missing signup flash")
	}

	b.login("Eve", "secret1")
	if !strings.Contains(b.get("/dashboard").Body.String(), "Eve") {
		t.Fatal("new account cannot reach the dashboard")
	}
}

func TestMyClassTeacherOnly(t *testing.T) {
	engine := newTestRouter(t)

	teacher := newBrowser(t, engine)
	teacher.login("Teacher A", "pass123")
	w := teacher.get("/my_class")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"Class A", "Alice", "Bob"} {
		if !strings.Contains(body, want) {
			t.Fatalf("my_class page missing %q", want)
		}
	}
	if strings.Contains(body, "Charlie") {
		t.Fatal("my_class page leaked another class's student")
	}

	student := newBrowser(t, engine)
	student.login("Alice", "alice123")
	w = student.get("/my_class")
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard, got %d %s", w.Code, w.Header().Get("Location"))
	}
	if !strings.Contains(student.get("/dashboard").Body.String(), "Access denied. Teacher role required.") {
		t.Fatal("missing access-denied flash")
	}

	anonymous := newBrowser(t, engine)
	w = anonymous.get("/my_class")
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/" {
		t.Fatalf("expected redirect to login, got %d %s", w.Code, w.Header().Get("Location"))
	}
}

func TestStudentsPageScopedByRole(t *testing.T) {
	engine := newTestRouter(t)

	// A teacher sees only their own class roster.
	teacher := newBrowser(t, engine)
	teacher.login("Teacher A", "pass123")
	body := teacher.get("/students").Body.String()
	for _, want := range []string{"Alice", "Bob"} {
		if !strings.Contains(body, want) {
			t.Fatalf("teacher roster missing %q", want)
		}
	}
	for _, leak := range []string{"Charlie", "Diana"} {
		if strings.Contains(body, leak) {
			t.Fatalf("teacher roster leaked %q", leak)
		}
	}

	// A student sees the whole school.
	student := newBrowser(t, engine)
	student.login("Alice", "alice123")
	body = student.get("/students").Body.String()
	for _, want := range []string{"Alice", "Bob", "Charlie", "Diana"} {
		if !strings.Contains(body, want) {
			t.Fatalf("student listing missing %q", want)
		}
	}
}

func TestTeachersPage(t *testing.T) {
	b := newBrowser(t, newTestRouter(t))
	b.login("Alice", "alice123")

	body := b.get("/teachers").Body.String()
	for _, want := range []string{"Teacher A", "Mathematics", "Teacher B", "Science"} {
		if !strings.Contains(body, want) {
			t.Fatalf("teachers page missing %q", want)
		}
	}
}

func TestAPIClasses(t *testing.T) {
	b := newBrowser(t, newTestRouter(t))

	w := b.get("/api/classes")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var classes []model.Class
	if err := json.Unmarshal(w.Body.Bytes(), &classes); err != nil {
		t.Fatalf("decode classes: %v", err)
	}
	if len(classes) != 2 {
		t.Fatalf("expected 2 classes, got %d", len(classes))
	}
	if classes[0].Name != "Class A" || classes[1].Name != "Class B" {
		t.Fatalf("unexpected class order: %+v", classes)
	}
}

func TestAPITimetable(t *testing.T) {
	b := newBrowser(t, newTestRouter(t))

	w := b.get("/api/timetable/1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var grid []model.TimetableDay
	if err := json.Unmarshal(w.Body.Bytes(), &grid); err != nil {
		t.Fatalf("decode timetable: %v", err)
	}
	if len(grid) != 5 {
		t.Fatalf("expected 5 days, got %d", len(grid))
	}

	// Days come back in alphabetical order.
	want := []string{"Friday", "Monday", "Thursday", "Tuesday", "Wednesday"}
	for i, day := range want {
		if grid[i].Day != day {
			t.Fatalf("position %d: expected %s, got %s", i, day, grid[i].Day)
		}
	}

	monday := grid[1]
	if len(monday.Periods) != model.PeriodsPerDay {
		t.Fatalf("expected %d periods, got %d", model.PeriodsPerDay, len(monday.Periods))
	}
	if monday.Periods[0] != "Mathematics" || monday.Periods[5] != "Art" {
		t.Fatalf("unexpected Monday row: %v", monday.Periods)
	}

	// Friday has four scheduled periods; the rest render as free slots.
	friday := grid[0]
	if friday.Periods[4] != "" || friday.Periods[5] != "" {
		t.Fatalf("expected free slots at the end of Friday, got %v", friday.Periods)
	}
}

func TestAPITimetableUnknownClass(t *testing.T) {
	b := newBrowser(t, newTestRouter(t))

	w := b.get("/api/timetable/999")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var grid []model.TimetableDay
	if err := json.Unmarshal(w.Body.Bytes(), &grid); err != nil {
		t.Fatalf("decode timetable: %v", err)
	}
	if len(grid) != 0 {
		t.Fatalf("expected empty grid, got %d days", len(grid))
	}
}

func TestAPITimetableNonNumericID(t *testing.T) {
	b := newBrowser(t, newTestRouter(t))

	w := b.get("/api/timetable/abc")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "404") {
		t.Fatal("expected the custom 404 page")
	}
}

func TestAPIStudents(t *testing.T) {
	b := newBrowser(t, newTestRouter(t))

	w := b.get("/api/students")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var students []model.StudentRow
	if err := json.Unmarshal(w.Body.Bytes(), &students); err != nil {
		t.Fatalf("decode students: %v", err)
	}
	if len(students) != 4 {
		t.Fatalf("expected 4 students, got %d", len(students))
	}
	if students[0].Name != "Alice" || students[0].ClassName != "Class A" {
		t.Fatalf("unexpected first student: %+v", students[0])
	}
}

func TestAPIMyClassStudents(t *testing.T) {
	engine := newTestRouter(t)

	teacher := newBrowser(t, engine)
	teacher.login("Teacher B", "pass123")
	w := teacher.get("/api/my_class/students")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var roster []model.RosterEntry
	if err := json.Unmarshal(w.Body.Bytes(), &roster); err != nil {
		t.Fatalf("decode roster: %v", err)
	}
	if len(roster) != 2 {
		t.Fatalf("expected 2 students, got %d", len(roster))
	}
	if roster[0].Name != "Charlie" || roster[1].Name != "Diana" {
		t.Fatalf("unexpected roster: %+v", roster)
	}

	student := newBrowser(t, engine)
	student.login("Alice", "alice123")
	w = student.get("/api/my_class/students")
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect for student caller, got %d", w.Code)
	}
}

func TestHealth(t *testing.T) {
	b := newBrowser(t, newTestRouter(t))

	w := b.get("/health")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected health body: %s", w.Body.String())
	}
}

func TestNotFoundPage(t *testing.T) {
	b := newBrowser(t, newTestRouter(t))

	w := b.get("/no-such-page")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "404") {
		t.Fatal("expected the custom 404 page")
	}
}
