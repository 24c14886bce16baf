// pkg/common/errors/domain_errors.go

/*
  - 使用实例
    if errors.Is(err, apperrors.ErrBookNotFound) {
    // 404
    }

    // 未单独映射的公开错误按 400 返回
    if apperrors.IsPublic(err) {
    // ...
    }
*/
package errors

import (
	"errors"

	hzte "github.com/cloudwego/hertz/pkg/common/errors"
)

// 定义原始错误
var (
	rawErrUserExists         = errors.New("user already exists")
	rawErrInvalidCredentials = errors.New("invalid credentials")
	rawErrBookNotFound       = errors.New("book not found")
	rawErrAlreadyReviewed    = errors.New("you have already reviewed this book")
	rawErrReviewForbidden    = errors.New("review not found or not owned by caller")

	// 存储层错误，由 WrapGormError 产生
	ErrRecordNotFound   = errors.New("record not found")
	ErrDuplicateEntry   = errors.New("duplicate entry")
	ErrDatabaseInternal = errors.New("database internal error")
)

// 包装成 Hertz 错误类型，业务层直接返回这些值
var (
	ErrUserExists         = hzte.New(rawErrUserExists, hzte.ErrorTypePublic, nil)
	ErrInvalidCredentials = hzte.New(rawErrInvalidCredentials, hzte.ErrorTypePublic, nil)
	ErrBookNotFound       = hzte.New(rawErrBookNotFound, hzte.ErrorTypePublic, nil)
	ErrAlreadyReviewed    = hzte.New(rawErrAlreadyReviewed, hzte.ErrorTypePublic, nil)
	ErrReviewForbidden    = hzte.New(rawErrReviewForbidden, hzte.ErrorTypePublic, nil)
)

// IsPublic 判断错误是否可以直接暴露给调用方
func IsPublic(err error) bool {
	var hzteErr *hzte.Error
	if errors.As(err, &hzteErr) {
		return hzteErr.IsType(hzte.ErrorTypePublic)
	}
	return false
}
