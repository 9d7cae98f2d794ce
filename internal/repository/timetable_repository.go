package repository

import (
	"context"
	"database/sql"

	"github.com/schoolhub/schoolhub-server/internal/model"
)

// TimetableRepository handles timetable data access.
type TimetableRepository struct {
	db *sql.DB
}

// NewTimetableRepository creates a new TimetableRepository.
func NewTimetableRepository(db *sql.DB) *TimetableRepository {
	return &TimetableRepository{db: db}
}

// EntriesByClass retrieves all timetable rows for a class, ordered by a
// Monday-first day rank (unknown day values sort last) then period.
func (r *TimetableRepository) EntriesByClass(ctx context.Context, classID int) ([]model.TimetableEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT day, period, subject, start_time, end_time
		 FROM timetable
		 WHERE class_id = ?
		 ORDER BY
		    CASE day
		        WHEN 'Monday' THEN 1
		        WHEN 'Tuesday' THEN 2
		        WHEN 'Wednesday' THEN 3
		        WHEN 'Thursday' THEN 4
		        WHEN 'Friday' THEN 5
		        ELSE 6
		    END,
		    period`, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []model.TimetableEntry{}
	for rows.Next() {
		e := model.TimetableEntry{ClassID: classID}
		if err := rows.Scan(&e.Day, &e.Period, &e.Subject, &e.StartTime, &e.EndTime); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
