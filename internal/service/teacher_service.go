package service

import (
	"context"

	"github.com/schoolhub/schoolhub-server/internal/model"
	"github.com/schoolhub/schoolhub-server/internal/repository"
)

// MyClass is the view model for a teacher's own class page.
type MyClass struct {
	ClassName string
	Subject   string
	Students  []model.RosterEntry
}

// TeacherService handles teacher listings and class rosters.
type TeacherService struct {
	teacherRepo *repository.TeacherRepository
	studentRepo *repository.StudentRepository
}

// NewTeacherService creates a new TeacherService.
func NewTeacherService(teacherRepo *repository.TeacherRepository, studentRepo *repository.StudentRepository) *TeacherService {
	return &TeacherService{teacherRepo: teacherRepo, studentRepo: studentRepo}
}

// List returns all teachers with their class names, ordered by name.
func (s *TeacherService) List(ctx context.Context) ([]model.TeacherRow, error) {
	return s.teacherRepo.ListWithClass(ctx)
}

// MyClass resolves the teacher's class and its roster. ok is false when
// the teacher has no assigned class.
func (s *TeacherService) MyClass(ctx context.Context, teacherName string) (MyClass, bool, error) {
	classID, className, subject, ok, err := s.teacherRepo.ClassInfoByName(ctx, teacherName)
	if err != nil || !ok {
		return MyClass{}, false, err
	}

	roster, err := s.studentRepo.RosterByClass(ctx, classID)
	if err != nil {
		return MyClass{}, false, err
	}
	return MyClass{ClassName: className, Subject: subject, Students: roster}, true, nil
}

// Roster returns the teacher's class roster ordered by name, or an empty
// collection when no class is assigned (the API variant never errors on
// absence).
func (s *TeacherService) Roster(ctx context.Context, teacherName string) ([]model.RosterEntry, error) {
	classID, ok, err := s.teacherRepo.ClassIDByName(ctx, teacherName)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.RosterEntry{}, nil
	}
	return s.studentRepo.RosterByClass(ctx, classID)
}
