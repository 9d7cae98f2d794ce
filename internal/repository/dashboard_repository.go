package repository

import (
	"context"
	"database/sql"

	"github.com/schoolhub/schoolhub-server/internal/model"
)

// DashboardRepository handles dashboard aggregation queries.
type DashboardRepository struct {
	db *sql.DB
}

// NewDashboardRepository creates a new DashboardRepository.
func NewDashboardRepository(db *sql.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// SummaryCounts retrieves the global totals shown on every dashboard.
func (r *DashboardRepository) SummaryCounts(ctx context.Context) (totalStudents, totalTeachers, totalClasses int, err error) {
	err = r.db.QueryRowContext(ctx,
		`SELECT
			(SELECT COUNT(*) FROM students),
			(SELECT COUNT(*) FROM teachers),
			(SELECT COUNT(*) FROM classes)`,
	).Scan(&totalStudents, &totalTeachers, &totalClasses)
	return
}

// TeacherClassInfo resolves a teacher's assigned class and the number of
// students enrolled in it via a left join, so a teacher without a class
// still produces a row (empty class name, zero count). ok is false when
// no teacher with the given name exists.
func (r *DashboardRepository) TeacherClassInfo(ctx context.Context, teacherName string) (info model.TeacherClassInfo, ok bool, err error) {
	var className sql.NullString
	var classID sql.NullInt64
	err = r.db.QueryRowContext(ctx,
		`SELECT t.class_id, c.name, COUNT(s.id)
		 FROM teachers t
		 LEFT JOIN classes c ON t.class_id = c.id
		 LEFT JOIN students s ON t.class_id = s.class_id
		 WHERE t.name = ?
		 GROUP BY t.class_id, c.name`, teacherName,
	).Scan(&classID, &className, &info.StudentCount)
	if err == sql.ErrNoRows {
		return model.TeacherClassInfo{}, false, nil
	}
	if err != nil {
		return model.TeacherClassInfo{}, false, err
	}
	if classID.Valid {
		info.ClassID = int(classID.Int64)
	}
	info.ClassName = className.String
	return info, true, nil
}
