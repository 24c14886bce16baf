package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apperrors "book-review/pkg/common/errors"
	"book-review/pkg/common/testdb"
	"book-review/pkg/core/migrate"
	"book-review/pkg/core/user/model"
	dao "book-review/pkg/core/user/repository/dao/impl"
	"book-review/pkg/core/user/service"
)

func newService(t *testing.T) (service.UserService, *service.TokenIssuer) {
	db := testdb.Open(t, migrate.AutoMigrate)
	tokens := service.NewTokenIssuer("test-secret", "HS256", "book-review", time.Hour)
	return service.NewUserService(dao.NewGormUserRepository(db), tokens, bcrypt.MinCost), tokens
}

func TestRegister(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "s3cret-pw")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Empty(t, user.PasswordHash)

	_, err = svc.Register(ctx, "alice", "another-password")
	assert.ErrorIs(t, err, apperrors.ErrUserExists)
}

func TestAuthenticate(t *testing.T) {
	svc, tokens := newService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "bob", "hunter22")
	require.NoError(t, err)

	token, err := svc.Authenticate(ctx, "bob", "hunter22")
	require.NoError(t, err)

	identity, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, &model.Identity{ID: user.ID, Username: "bob"}, identity)

	_, wrongPwd := svc.Authenticate(ctx, "bob", "wrong")
	_, unknown := svc.Authenticate(ctx, "nobody", "hunter22")
	assert.ErrorIs(t, wrongPwd, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, unknown, apperrors.ErrInvalidCredentials)
	assert.Equal(t, wrongPwd, unknown)
}
