package service

import (
	"context"

	"github.com/schoolhub/schoolhub-server/internal/model"
	"github.com/schoolhub/schoolhub-server/internal/repository"
)

// Placeholder values shown when the viewer has no class relationship.
const (
	noClassAssigned = "No Class Assigned"
	notEnrolled     = "Not Enrolled"
)

// DashboardService aggregates the dashboard view model.
type DashboardService struct {
	dashboardRepo *repository.DashboardRepository
	studentRepo   *repository.StudentRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(
	dashboardRepo *repository.DashboardRepository,
	studentRepo *repository.StudentRepository,
) *DashboardService {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
		studentRepo:   studentRepo,
	}
}

// Stats builds the role-dependent dashboard view model. The viewer's
// class is resolved by matching the session username against the
// teachers/students name column; absence of a class is reported through
// placeholder values, never as an error.
func (s *DashboardService) Stats(ctx context.Context, username string, role model.Role) (model.DashboardStats, error) {
	stats := model.DashboardStats{Username: username, Role: role}

	if role == model.RoleTeacher {
		info, ok, err := s.dashboardRepo.TeacherClassInfo(ctx, username)
		if err != nil {
			return stats, err
		}
		if ok && info.ClassName != "" {
			stats.ClassName = info.ClassName
			stats.StudentCount = info.StudentCount
		} else {
			stats.ClassName = noClassAssigned
		}
	} else {
		className, ok, err := s.studentRepo.ClassNameByStudent(ctx, username)
		if err != nil {
			return stats, err
		}
		if ok {
			stats.ClassName = className
		} else {
			stats.ClassName = notEnrolled
		}
	}

	var err error
	stats.TotalStudents, stats.TotalTeachers, stats.TotalClasses, err = s.dashboardRepo.SummaryCounts(ctx)
	return stats, err
}
