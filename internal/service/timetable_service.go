package service

import (
	"context"
	"sort"

	"github.com/schoolhub/schoolhub-server/internal/model"
	"github.com/schoolhub/schoolhub-server/internal/repository"
)

// TimetableService produces the display grid from normalized timetable rows.
type TimetableService struct {
	timetableRepo *repository.TimetableRepository
	teacherRepo   *repository.TeacherRepository
	studentRepo   *repository.StudentRepository
}

// NewTimetableService creates a new TimetableService.
func NewTimetableService(
	timetableRepo *repository.TimetableRepository,
	teacherRepo *repository.TeacherRepository,
	studentRepo *repository.StudentRepository,
) *TimetableService {
	return &TimetableService{
		timetableRepo: timetableRepo,
		teacherRepo:   teacherRepo,
		studentRepo:   studentRepo,
	}
}

// Grid returns one six-slot record per day that has at least one row for
// the class, in lexical day order.
func (s *TimetableService) Grid(ctx context.Context, classID int) ([]model.TimetableDay, error) {
	entries, err := s.timetableRepo.EntriesByClass(ctx, classID)
	if err != nil {
		return nil, err
	}
	return buildGrid(entries), nil
}

// DefaultClassID resolves the caller's own class for preselection on the
// timetable page: a teacher's assigned class, a student's enrolled class,
// none for anything else.
func (s *TimetableService) DefaultClassID(ctx context.Context, username string, role model.Role) (classID int, ok bool, err error) {
	switch role {
	case model.RoleTeacher:
		return s.teacherRepo.ClassIDByName(ctx, username)
	case model.RoleStudent:
		return s.studentRepo.ClassIDByName(ctx, username)
	default:
		return 0, false, nil
	}
}

// buildGrid reshapes normalized rows into fixed six-slot day arrays.
// A row whose period falls outside 1..6 is dropped without error, though
// it still causes its day to appear in the output. Days are emitted
// sorted by name, not by the weekday rank used for the query.
func buildGrid(entries []model.TimetableEntry) []model.TimetableDay {
	byDay := make(map[string][]string)
	for _, e := range entries {
		if _, seen := byDay[e.Day]; !seen {
			byDay[e.Day] = make([]string, model.PeriodsPerDay)
		}
		if e.Period >= 1 && e.Period <= model.PeriodsPerDay {
			byDay[e.Day][e.Period-1] = e.Subject
		}
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	grid := make([]model.TimetableDay, 0, len(days))
	for _, day := range days {
		grid = append(grid, model.TimetableDay{Day: day, Periods: byDay[day]})
	}
	return grid
}
