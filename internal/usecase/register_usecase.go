package usecase

import (
	"context"
	"log"
	"strings"

	"dream-insight/internal/domain/user"
)

type RegisterInput struct {
	Name      string
	Phone     string
	Birthdate string
}

type RegisterUsecase interface {
	Register(ctx context.Context, in RegisterInput) (user.User, error)
}

type Register struct {
	users  user.Repository
	logger *log.Logger
}

func NewRegisterUsecase(users user.Repository, logger *log.Logger) *Register {
	return &Register{users: users, logger: logger}
}

func (u *Register) Register(ctx context.Context, in RegisterInput) (user.User, error) {
	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)
	if name == "" || phone == "" {
		return user.User{}, ErrInvalidInput
	}

	usr, err := u.users.Upsert(ctx, user.User{
		Name:      name,
		Phone:     phone,
		Birthdate: strings.TrimSpace(in.Birthdate),
	})
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Register] upsert failed phone=%s err=%v", phone, err)
		}
		return user.User{}, ErrPersistence
	}
	return usr, nil
}
