// Package postgres implements a PostgreSQL-backed lesson repository.
package postgres

import (
	"context"
	"database/sql"

	"lessonhub/pkg/lesson"
)

// Repository persists lessons in PostgreSQL.
type Repository struct {
	db *sql.DB
}

// New creates a PostgreSQL repository. The caller must ensure the
// database has a lessons table:
// CREATE TABLE IF NOT EXISTS lessons (id TEXT PRIMARY KEY, subject TEXT, location TEXT, price DOUBLE PRECISION, spaces INT, image TEXT);
func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// List fetches all lessons.
func (r *Repository) List(ctx context.Context) ([]lesson.Lesson, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id,subject,location,price,spaces,image FROM lessons ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var lessons []lesson.Lesson
	for rows.Next() {
		var l lesson.Lesson
		if err := rows.Scan(&l.ID, &l.Subject, &l.Location, &l.Price, &l.Spaces, &l.Image); err != nil {
			return nil, err
		}
		lessons = append(lessons, l)
	}
	return lessons, rows.Err()
}

// Find retrieves a lesson by ID.
func (r *Repository) Find(ctx context.Context, id string) (lesson.Lesson, error) {
	var l lesson.Lesson
	err := r.db.QueryRowContext(ctx, "SELECT id,subject,location,price,spaces,image FROM lessons WHERE id=$1", id).
		Scan(&l.ID, &l.Subject, &l.Location, &l.Price, &l.Spaces, &l.Image)
	if err == sql.ErrNoRows {
		return lesson.Lesson{}, lesson.ErrNotFound
	}
	return l, err
}

// Patch overwrites the present fields of the identified lesson and
// returns the updated record. Spaces is clamped at zero before the
// write via Patch.Apply.
func (r *Repository) Patch(ctx context.Context, id string, p lesson.Patch) (lesson.Lesson, error) {
	l, err := r.Find(ctx, id)
	if err != nil {
		return lesson.Lesson{}, err
	}
	p.Apply(&l)
	res, err := r.db.ExecContext(ctx,
		"UPDATE lessons SET subject=$2, location=$3, price=$4, spaces=$5, image=$6 WHERE id=$1",
		l.ID, l.Subject, l.Location, l.Price, l.Spaces, l.Image)
	if err != nil {
		return lesson.Lesson{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return lesson.Lesson{}, lesson.ErrNotFound
	}
	return l, nil
}

// Seed inserts the given lessons, skipping ids already present. Used
// once at startup so a fresh database starts with a catalog.
func (r *Repository) Seed(ctx context.Context, lessons []lesson.Lesson) error {
	for _, l := range lessons {
		_, err := r.db.ExecContext(ctx,
			"INSERT INTO lessons (id,subject,location,price,spaces,image) VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT (id) DO NOTHING",
			l.ID, l.Subject, l.Location, l.Price, l.Spaces, l.Image)
		if err != nil {
			return err
		}
	}
	return nil
}
