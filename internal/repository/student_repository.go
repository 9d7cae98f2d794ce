package repository

import (
	"context"
	"database/sql"

	"github.com/schoolhub/schoolhub-server/internal/model"
)

// StudentRepository handles student data access.
type StudentRepository struct {
	db *sql.DB
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(db *sql.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// ListAllWithClass retrieves every student joined with its class name,
// ordered by student name. Students whose class_id does not reference an
// existing class are excluded by the inner join.
func (r *StudentRepository) ListAllWithClass(ctx context.Context) ([]model.StudentRow, error) {
	return r.queryRows(ctx,
		`SELECT s.id, s.name, c.name
		 FROM students s
		 JOIN classes c ON s.class_id = c.id
		 ORDER BY s.name`)
}

// ListByClass retrieves the students of one class joined with the class
// name, ordered by student name.
func (r *StudentRepository) ListByClass(ctx context.Context, classID int) ([]model.StudentRow, error) {
	return r.queryRows(ctx,
		`SELECT s.id, s.name, c.name
		 FROM students s
		 JOIN classes c ON s.class_id = c.id
		 WHERE s.class_id = ?
		 ORDER BY s.name`, classID)
}

// RosterByClass retrieves the id/name roster of one class, ordered by name.
func (r *StudentRepository) RosterByClass(ctx context.Context, classID int) ([]model.RosterEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name FROM students WHERE class_id = ? ORDER BY name`, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roster := []model.RosterEntry{}
	for rows.Next() {
		var e model.RosterEntry
		if err := rows.Scan(&e.ID, &e.Name); err != nil {
			return nil, err
		}
		roster = append(roster, e)
	}
	return roster, rows.Err()
}

// ClassIDByName resolves the class of the student with the given name.
// ok is false when no such student exists.
func (r *StudentRepository) ClassIDByName(ctx context.Context, name string) (classID int, ok bool, err error) {
	err = r.db.QueryRowContext(ctx,
		`SELECT class_id FROM students WHERE name = ?`, name,
	).Scan(&classID)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return classID, true, nil
}

// ClassNameByStudent resolves the class name of the student with the
// given name. ok is false when the student is not enrolled.
func (r *StudentRepository) ClassNameByStudent(ctx context.Context, name string) (className string, ok bool, err error) {
	err = r.db.QueryRowContext(ctx,
		`SELECT c.name
		 FROM students s
		 JOIN classes c ON s.class_id = c.id
		 WHERE s.name = ?`, name,
	).Scan(&className)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return className, true, nil
}

func (r *StudentRepository) queryRows(ctx context.Context, query string, args ...any) ([]model.StudentRow, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []model.StudentRow{}
	for rows.Next() {
		var s model.StudentRow
		if err := rows.Scan(&s.ID, &s.Name, &s.ClassName); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}
