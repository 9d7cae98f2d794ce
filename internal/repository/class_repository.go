package repository

import (
	"context"
	"database/sql"

	"github.com/schoolhub/schoolhub-server/internal/model"
)

// ClassRepository handles class reference data access.
type ClassRepository struct {
	db *sql.DB
}

// NewClassRepository creates a new ClassRepository.
func NewClassRepository(db *sql.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

// List retrieves all classes ordered by name.
func (r *ClassRepository) List(ctx context.Context) ([]model.Class, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name FROM classes ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	classes := []model.Class{}
	for rows.Next() {
		var c model.Class
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}
