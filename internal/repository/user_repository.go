package repository

import (
	"context"

	"dream-insight/internal/database"
	"dream-insight/internal/domain/user"

	"github.com/google/uuid"
)

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// Upsert relies on the unique phone constraint: two concurrent first
// registrations with the same number resolve at the storage layer, the loser
// landing on the DO UPDATE arm and observing the winner's id.
func (r *PostgresUserRepository) Upsert(ctx context.Context, u user.User) (user.User, error) {
	var birthdate any
	if u.Birthdate != "" {
		birthdate = u.Birthdate
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO users (id, name, phone, birthdate)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (phone) DO UPDATE
		 SET name = EXCLUDED.name, birthdate = EXCLUDED.birthdate
		 RETURNING id, name, phone, COALESCE(birthdate, ''), created_at`,
		uuid.New(), u.Name, u.Phone, birthdate,
	)

	var out user.User
	if err := row.Scan(&out.ID, &out.Name, &out.Phone, &out.Birthdate, &out.CreatedAt); err != nil {
		return user.User{}, err
	}
	return out, nil
}
