package user

import "context"

type Repository interface {
	// Upsert creates the user on first registration with a phone number and
	// updates name/birthdate in place on later ones. The returned identity is
	// stable per phone either way.
	Upsert(ctx context.Context, u User) (User, error)
}
