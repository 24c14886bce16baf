package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
	jwth "github.com/hertz-contrib/jwt"

	"book-review/pkg/common/config"
	usermodel "book-review/pkg/core/user/model"
	"book-review/pkg/core/user/service"
)

// JWTAuthMiddleware 校验 Bearer 令牌，通过后把 *usermodel.Identity 写入 identityKey。
// 缺失、格式错误、签名错误、过期一律 401，不会进入业务处理器。
func JWTAuthMiddleware(cfg config.JWTAuthConfig, identityKey string) app.HandlerFunc {
	authMiddleware, err := jwth.New(&jwth.HertzJWTMiddleware{
		Realm:            cfg.Issuer,
		SigningAlgorithm: cfg.SigningMethod,
		Key:              []byte(cfg.Secret),
		Timeout:          cfg.ExpireDuration,
		TokenLookup:      "header: Authorization",
		TokenHeadName:    "Bearer",
		TimeFunc:         time.Now,
		IdentityKey:      identityKey,
		IdentityHandler:  identityHandler,
		Authorizator: func(data interface{}, ctx context.Context, c *app.RequestContext) bool {
			_, ok := data.(*usermodel.Identity)
			return ok
		},
		Unauthorized: handleJWTError,
	})
	if err != nil {
		panic(fmt.Sprintf("JWT middleware init failed: %v", err))
	}
	return authMiddleware.MiddlewareFunc()
}

func identityHandler(ctx context.Context, c *app.RequestContext) interface{} {
	identity, err := service.IdentityFromClaims(jwth.ExtractClaims(ctx, c))
	if err != nil {
		hlog.CtxWarnf(ctx, "JWT claims rejected path=%s: %v", c.Path(), err)
		return nil
	}
	return identity
}

func handleJWTError(ctx context.Context, c *app.RequestContext, code int, message string) {
	hlog.CtxInfof(ctx, "JWT rejected (code=%d) path=%s: %s", code, c.Path(), message)
	c.JSON(http.StatusUnauthorized, utils.H{
		"code":    http.StatusUnauthorized,
		"message": message,
	})
}
