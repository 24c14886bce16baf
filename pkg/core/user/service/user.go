package service

import (
	"context"
	"errors"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"golang.org/x/crypto/bcrypt"

	apperrors "book-review/pkg/common/errors"
	"book-review/pkg/core/user/model"
	"book-review/pkg/core/user/repository/dao"
)

type UserService interface {
	Register(ctx context.Context, username, password string) (*model.User, error)
	Authenticate(ctx context.Context, username, password string) (string, error)
}

type userService struct {
	repo       dao.UserRepository
	tokens     *TokenIssuer
	bcryptCost int
}

func NewUserService(repo dao.UserRepository, tokens *TokenIssuer, bcryptCost int) UserService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &userService{repo: repo, tokens: tokens, bcryptCost: bcryptCost}
}

// Register 返回的用户不包含密码哈希
func (s *userService) Register(ctx context.Context, username, password string) (*model.User, error) {
	exists, err := s.repo.IsUsernameExists(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrUserExists
	}

	hashedPwd, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{Username: username, PasswordHash: string(hashedPwd)}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		// 并发注册同名用户时由唯一索引兜底
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.ErrUserExists
		}
		return nil, err
	}

	return &model.User{ID: user.ID, Username: user.Username, CreatedAt: user.CreatedAt}, nil
}

// Authenticate 用户不存在与密码错误对调用方不可区分
func (s *userService) Authenticate(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrRecordNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		hlog.CtxDebugf(ctx, "password mismatch for user_id=%d", user.ID)
		return "", apperrors.ErrInvalidCredentials
	}

	return s.tokens.Issue(user)
}
