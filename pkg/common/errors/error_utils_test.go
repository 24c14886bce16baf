package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestWrapGormError(t *testing.T) {
	assert.NoError(t, WrapGormError(nil))
	assert.ErrorIs(t, WrapGormError(gorm.ErrRecordNotFound), ErrRecordNotFound)
	assert.ErrorIs(t, WrapGormError(fmt.Errorf("create: %w", gorm.ErrDuplicatedKey)), ErrDuplicateEntry)
	assert.ErrorIs(t, WrapGormError(&mysql.MySQLError{Number: 1062, Message: "dup"}), ErrDuplicateEntry)
	assert.ErrorIs(t, WrapGormError(&pgconn.PgError{Code: "23505"}), ErrDuplicateEntry)

	internal := WrapGormError(&mysql.MySQLError{Number: 1146, Message: "no such table"})
	assert.ErrorIs(t, internal, ErrDatabaseInternal)
	assert.Contains(t, internal.Error(), "no such table")

	assert.ErrorIs(t, WrapGormError(errors.New("boom")), ErrDatabaseInternal)
}

func TestIsDuplicateError(t *testing.T) {
	assert.False(t, IsDuplicateError(nil))
	assert.False(t, IsDuplicateError(errors.New("boom")))
	assert.True(t, IsDuplicateError(errors.New("constraint failed: UNIQUE constraint failed: users.username (2067)")))
	assert.True(t, IsDuplicateError(fmt.Errorf("wrapped: %w", ErrDuplicateEntry)))
}

func TestDomainErrorsArePublic(t *testing.T) {
	for _, err := range []error{ErrUserExists, ErrInvalidCredentials, ErrBookNotFound, ErrAlreadyReviewed, ErrReviewForbidden} {
		assert.True(t, IsPublic(err), err.Error())
		assert.True(t, IsPublic(fmt.Errorf("ctx: %w", err)))
	}
	assert.False(t, IsPublic(ErrDatabaseInternal))
}
