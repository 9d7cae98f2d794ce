package model

// DashboardStats is the read-only view model rendered on the dashboard.
// ClassName and StudentCount depend on the viewer's role; the totals are
// global.
type DashboardStats struct {
	Username      string
	Role          Role
	ClassName     string
	StudentCount  int
	TotalStudents int
	TotalTeachers int
	TotalClasses  int
}
