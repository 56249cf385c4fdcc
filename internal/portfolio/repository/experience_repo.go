package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/portfolio-backend/portfolio-api/internal/portfolio/domain"
)

// ExperienceRepository stores experience entries in PostgreSQL.
type ExperienceRepository struct {
	db *sql.DB
}

func NewExperienceRepository(db *sql.DB) *ExperienceRepository {
	return &ExperienceRepository{db: db}
}

func (r *ExperienceRepository) List(ctx context.Context) ([]domain.Experience, error) {
	const q = `
SELECT id, position, company, start_date, end_date
FROM experiences
ORDER BY start_date DESC, id DESC;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Experience, 0, 16)
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, fmt.Errorf("scan experience: %w", err)
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}
	return out, nil
}

func (r *ExperienceRepository) Get(ctx context.Context, id int64) (*domain.Experience, error) {
	const q = `
SELECT id, position, company, start_date, end_date
FROM experiences
WHERE id = $1;
`
	e, err := scanExperience(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get experience %d: %w", id, err)
	}
	return e, nil
}

func (r *ExperienceRepository) Create(ctx context.Context, e *domain.Experience) error {
	const q = `
INSERT INTO experiences (position, company, start_date, end_date)
VALUES ($1, $2, $3, $4)
RETURNING id;
`
	err := r.db.QueryRowContext(ctx, q, e.Position, e.Company, e.StartDate.String(), nullDate(e.EndDate)).
		Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("create experience: %w", err)
	}
	return nil
}

func (r *ExperienceRepository) Update(ctx context.Context, e *domain.Experience) error {
	const q = `
UPDATE experiences
SET position = $2, company = $3, start_date = $4, end_date = $5
WHERE id = $1;
`
	res, err := r.db.ExecContext(ctx, q, e.ID, e.Position, e.Company, e.StartDate.String(), nullDate(e.EndDate))
	if err != nil {
		return fmt.Errorf("update experience %d: %w", e.ID, err)
	}
	return expectOneRow(res)
}

func (r *ExperienceRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM experiences WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete experience %d: %w", id, err)
	}
	return expectOneRow(res)
}

func scanExperience(row rowScanner) (*domain.Experience, error) {
	var (
		e     domain.Experience
		start time.Time
		end   sql.NullTime
	)
	if err := row.Scan(&e.ID, &e.Position, &e.Company, &start, &end); err != nil {
		return nil, err
	}
	e.StartDate = domain.NewDate(start)
	if end.Valid {
		d := domain.NewDate(end.Time)
		e.EndDate = &d
	}
	return &e, nil
}

// nullDate renders an optional date as a DATE literal or SQL NULL.
func nullDate(d *domain.Date) sql.NullString {
	if d == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: d.String(), Valid: true}
}
