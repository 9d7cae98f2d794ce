package service

import (
	"context"

	"github.com/schoolhub/schoolhub-server/internal/model"
	"github.com/schoolhub/schoolhub-server/internal/repository"
)

// StudentService handles student listings.
type StudentService struct {
	studentRepo *repository.StudentRepository
	teacherRepo *repository.TeacherRepository
}

// NewStudentService creates a new StudentService.
func NewStudentService(studentRepo *repository.StudentRepository, teacherRepo *repository.TeacherRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo, teacherRepo: teacherRepo}
}

// ListForViewer returns the students visible to the given session
// identity: teachers see only their own class (empty when unassigned),
// everyone else sees all students. Always ordered by student name.
func (s *StudentService) ListForViewer(ctx context.Context, username string, role model.Role) ([]model.StudentRow, error) {
	if role == model.RoleTeacher {
		classID, ok, err := s.teacherRepo.ClassIDByName(ctx, username)
		if err != nil {
			return nil, err
		}
		if !ok {
			return []model.StudentRow{}, nil
		}
		return s.studentRepo.ListByClass(ctx, classID)
	}

	return s.studentRepo.ListAllWithClass(ctx)
}

// ListAll returns every student joined with its class name.
func (s *StudentService) ListAll(ctx context.Context) ([]model.StudentRow, error) {
	return s.studentRepo.ListAllWithClass(ctx)
}
