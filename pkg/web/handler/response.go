package handler

import (
	"context"
	"errors"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	apperrors "book-review/pkg/common/errors"
	"book-review/pkg/common/validation"
	usermodel "book-review/pkg/core/user/model"
	"book-review/pkg/web/middleware"
)

// IdentityKey JWT 中间件写入调用方身份时使用的 key
const IdentityKey = "identity"

// bindAndValidate 绑定请求体并按 validate tag 校验
func bindAndValidate(c *app.RequestContext, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return &validation.Error{Fields: map[string]string{"body": "is malformed"}}
	}
	return validation.Default.Validate(req)
}

// respondError 统一错误响应：业务错误映射到对应状态码，其余记录日志后返回 500
func respondError(ctx context.Context, c *app.RequestContext, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		c.JSON(consts.StatusBadRequest, utils.H{"error": "validation failed", "fields": verr.Fields})
	case errors.Is(err, apperrors.ErrUserExists):
		c.JSON(consts.StatusBadRequest, utils.H{"error": "User already exists"})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(consts.StatusUnauthorized, utils.H{"message": "Invalid credentials"})
	case errors.Is(err, apperrors.ErrBookNotFound):
		c.JSON(consts.StatusNotFound, utils.H{"error": "Book not found"})
	case errors.Is(err, apperrors.ErrAlreadyReviewed):
		c.JSON(consts.StatusBadRequest, utils.H{"message": "You have already reviewed this book."})
	case errors.Is(err, apperrors.ErrReviewForbidden):
		c.JSON(consts.StatusForbidden, utils.H{"message": "Unauthorized"})
	case apperrors.IsPublic(err):
		c.JSON(consts.StatusBadRequest, utils.H{"error": err.Error()})
	default:
		hlog.CtxErrorf(ctx, "%s %s failed: %v rid=%s", c.Method(), c.Path(), err, middleware.RequestIDFrom(ctx))
		c.JSON(consts.StatusInternalServerError, utils.H{"error": "Internal server error"})
	}
}

// currentIdentity 读取 JWT 中间件放入的身份
func currentIdentity(c *app.RequestContext) (*usermodel.Identity, bool) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return nil, false
	}
	identity, ok := v.(*usermodel.Identity)
	return identity, ok && identity != nil
}

// pathID 解析路径中的数字ID
func pathID(c *app.RequestContext) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	return id, err == nil && id > 0
}

// pagination 页码从1开始；缺省、非数字或非正数时使用默认值
func pagination(c *app.RequestContext, defaultLimit int) (page, limit int) {
	page = positiveQuery(c, "page", 1)
	limit = positiveQuery(c, "limit", defaultLimit)
	return page, limit
}

func positiveQuery(c *app.RequestContext, key string, fallback int) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
