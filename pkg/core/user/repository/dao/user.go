package dao

import (
	"context"

	"book-review/pkg/core/user/model"
)

type UserRepository interface {
	IsUsernameExists(ctx context.Context, username string) (bool, error)
	CreateUser(ctx context.Context, user *model.User) error
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}
