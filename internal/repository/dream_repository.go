package repository

import (
	"context"
	"errors"

	"dream-insight/internal/database"
	"dream-insight/internal/domain/dream"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres foreign_key_violation.
const fkViolationCode = "23503"

const defaultHistoryLimit = 20

type PostgresDreamRepository struct {
	db database.DB
}

func NewPostgresDreamRepository(db database.DB) *PostgresDreamRepository {
	return &PostgresDreamRepository{db: db}
}

func (r *PostgresDreamRepository) Save(ctx context.Context, userID uuid.UUID, dreamText, interpretation string) (dream.Record, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO dreams (id, user_id, dream, interpretation)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, user_id, dream, interpretation, created_at`,
		uuid.New(), userID, dreamText, interpretation,
	)

	var rec dream.Record
	if err := row.Scan(&rec.ID, &rec.UserID, &rec.Dream, &rec.Interpretation, &rec.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == fkViolationCode {
			return dream.Record{}, dream.ErrUserNotFound
		}
		return dream.Record{}, err
	}
	return rec, nil
}

func (r *PostgresDreamRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]dream.Record, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > 100 {
		limit = 100
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, dream, interpretation, created_at
		 FROM dreams
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]dream.Record, 0)
	for rows.Next() {
		var rec dream.Record
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Dream, &rec.Interpretation, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
