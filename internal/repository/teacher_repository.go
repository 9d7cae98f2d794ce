package repository

import (
	"context"
	"database/sql"

	"github.com/schoolhub/schoolhub-server/internal/model"
)

// TeacherRepository handles teacher data access.
type TeacherRepository struct {
	db *sql.DB
}

// NewTeacherRepository creates a new TeacherRepository.
func NewTeacherRepository(db *sql.DB) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// Create inserts a new teacher.
func (r *TeacherRepository) Create(ctx context.Context, t *model.Teacher) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO teachers (name, subject, class_id) VALUES (?, ?, ?)`,
		t.Name, t.Subject, t.ClassID,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = int(id)
	return nil
}

// ListWithClass retrieves all teachers left-joined with their class name,
// ordered by teacher name. ClassName is empty for unassigned teachers.
func (r *TeacherRepository) ListWithClass(ctx context.Context) ([]model.TeacherRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT t.id, t.name, t.subject, COALESCE(c.name, '')
		 FROM teachers t
		 LEFT JOIN classes c ON t.class_id = c.id
		 ORDER BY t.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teachers := []model.TeacherRow{}
	for rows.Next() {
		var t model.TeacherRow
		if err := rows.Scan(&t.ID, &t.Name, &t.Subject, &t.ClassName); err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}

// ClassIDByName resolves the class assigned to the teacher with the given
// name. ok is false when no such teacher exists or the teacher has no
// assigned class.
func (r *TeacherRepository) ClassIDByName(ctx context.Context, name string) (classID int, ok bool, err error) {
	var id sql.NullInt64
	err = r.db.QueryRowContext(ctx,
		`SELECT class_id FROM teachers WHERE name = ?`, name,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	if !id.Valid {
		return 0, false, nil
	}
	return int(id.Int64), true, nil
}

// ClassInfoByName resolves the teacher's class id, class name and taught
// subject. ok is false when the teacher does not exist or is unassigned.
func (r *TeacherRepository) ClassInfoByName(ctx context.Context, name string) (classID int, className, subject string, ok bool, err error) {
	err = r.db.QueryRowContext(ctx,
		`SELECT t.class_id, c.name, t.subject
		 FROM teachers t
		 JOIN classes c ON t.class_id = c.id
		 WHERE t.name = ?`, name,
	).Scan(&classID, &className, &subject)
	if err == sql.ErrNoRows {
		return 0, "", "", false, nil
	}
	if err != nil {
		return 0, "", "", false, err
	}
	return classID, className, subject, true, nil
}
