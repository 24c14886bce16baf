package dao

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	apperrors "book-review/pkg/common/errors"
	"book-review/pkg/core/user/model"
	"book-review/pkg/core/user/repository/dao"
)

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) dao.UserRepository {
	return &GormUserRepository{db: db}
}

// IsUsernameExists 检查用户名是否已存在
func (r *GormUserRepository) IsUsernameExists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("username = ?", username).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(apperrors.WrapGormError(err), "failed to check username")
	}
	return count > 0, nil
}

// CreateUser 创建用户，唯一索引冲突转换为 ErrDuplicateEntry
func (r *GormUserRepository) CreateUser(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return errors.Wrap(apperrors.WrapGormError(err), "user creation failed")
	}
	return nil
}

// GetByUsername 登录时按用户名精确查找
func (r *GormUserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Select("id", "username", "password_hash").
		Where("username = ?", username).
		First(&user).Error
	if err != nil {
		return nil, errors.Wrap(apperrors.WrapGormError(err), "user lookup failed")
	}
	return &user, nil
}
