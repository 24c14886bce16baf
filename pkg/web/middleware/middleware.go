package middleware

import (
	"context"
	"fmt"
	"regexp"
	"runtime/debug"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/google/uuid"
	"github.com/hertz-contrib/cors"

	"book-review/pkg/common/config"
	"book-review/pkg/common/ratelimit"
)

const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// RequestIDFrom 从上下文读取请求ID
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestIDMiddleware 透传或生成请求ID，并写回响应头
func RequestIDMiddleware() app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		id := string(ctx.GetHeader(RequestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Response.Header.Set(RequestIDHeader, id)
		ctx.Next(context.WithValue(c, requestIDKey{}, id))
	}
}

// LoggerMiddleware 结构化的请求日志记录，需注册在 RequestIDMiddleware 之后
func LoggerMiddleware() app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		start := time.Now()
		ctx.Next(c) // 放行到后续处理器
		latency := time.Since(start)

		hlog.CtxInfof(c, "| %3d | %13v | %15s | %-7s | %s | rid=%s",
			ctx.Response.StatusCode(),
			latency,
			ctx.ClientIP(),
			ctx.Method(),
			ctx.Path(),
			RequestIDFrom(c),
		)
	}
}

// RecoveryMiddleware 异常捕获，生产环境不返回堆栈
func RecoveryMiddleware(cfg *config.Config) app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		defer func() {
			if err := recover(); err != nil {
				stack := string(debug.Stack())

				hlog.CtxErrorf(c, "[PANIC RECOVERED] %v\n%s", err, stack)

				if cfg.IsProd() {
					ctx.AbortWithStatusJSON(consts.StatusInternalServerError, utils.H{
						"code":    500,
						"message": "internal server error",
					})
				} else { // 开发环境显示详细错误
					ctx.AbortWithStatusJSON(consts.StatusInternalServerError, utils.H{
						"code":  500,
						"error": fmt.Sprintf("%v", err),
						"stack": strings.Split(stack, "\n"),
					})
				}
			}
		}()
		ctx.Next(c)
	}
}

// CORSMiddleware 跨域配置
func CORSMiddleware(corsConfig config.CORSConfig) app.HandlerFunc {
	cc := cors.Config{
		AllowOrigins:     corsConfig.AllowOrigins,
		AllowMethods:     corsConfig.AllowMethods,
		AllowHeaders:     corsConfig.AllowHeaders,
		ExposeHeaders:    corsConfig.ExposeHeaders,
		AllowCredentials: corsConfig.AllowCredentials,
		MaxAge:           corsConfig.MaxAge,
	}
	if len(corsConfig.TrustedDomains) > 0 {
		// 动态校验来源
		cc.AllowOriginFunc = func(origin string) bool {
			for _, domain := range corsConfig.TrustedDomains {
				if strings.HasSuffix(origin, domain) {
					return true
				}
			}
			return false
		}
	}
	return cors.New(cc)
}

// TimeoutMiddleware 为后续处理器（以及其中的数据库调用）设置截止时间
func TimeoutMiddleware(seconds int) app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		if seconds <= 0 {
			ctx.Next(c)
			return
		}

		timeoutCtx, cancel := context.WithTimeout(c, time.Duration(seconds)*time.Second)
		defer cancel()

		ctx.Next(timeoutCtx)

		if timeoutCtx.Err() == context.DeadlineExceeded {
			hlog.CtxWarnf(c, "request timeout path=%s", ctx.Path())
		}
	}
}

// RateLimitMiddleware 按客户端IP限流
func RateLimitMiddleware(rate float64, burst int) app.HandlerFunc {
	limiter := ratelimit.New(rate, burst)

	return func(c context.Context, ctx *app.RequestContext) {
		if !limiter.Allow(ctx.ClientIP()) {
			hlog.CtxInfof(c, "[RATE LIMIT] ip=%s path=%s", ctx.ClientIP(), ctx.Path())
			ctx.AbortWithStatusJSON(consts.StatusTooManyRequests, utils.H{
				"code":    429001,
				"message": "too many requests",
			})
			return
		}
		ctx.Next(c)
	}
}

// SecurityCheckMiddleware 全局安全校验中间件
func SecurityCheckMiddleware(sc config.SecurityConfig) app.HandlerFunc {
	// 预编译恶意字符正则；SQL 全部参数化，这里只拦截脚本注入
	xssRegex := regexp.MustCompile(`(?i)<script.*?>|</script>|alert\(|onerror=`)

	allowed := make(map[string]bool, len(sc.AllowedMethods))
	for _, m := range sc.AllowedMethods {
		allowed[strings.ToUpper(m)] = true
	}

	return func(c context.Context, ctx *app.RequestContext) {
		if sc.RequireUserAgent && len(ctx.GetHeader("User-Agent")) == 0 {
			securityResponse(c, ctx, 400001, "missing required header: User-Agent", consts.StatusBadRequest)
			return
		}

		if sc.MaxBodySize > 0 && int64(ctx.Request.Header.ContentLength()) > sc.MaxBodySize {
			securityResponse(c, ctx, 413001, "request body exceeds max size", consts.StatusRequestEntityTooLarge)
			return
		}

		if hasMaliciousContent(ctx, xssRegex) {
			securityResponse(c, ctx, 422001, "request contains invalid characters", consts.StatusUnprocessableEntity)
			return
		}

		if len(allowed) > 0 && !allowed[string(ctx.Method())] {
			securityResponse(c, ctx, 405001, "method not allowed", consts.StatusMethodNotAllowed)
			return
		}

		ctx.Next(c)
	}
}

func hasMaliciousContent(ctx *app.RequestContext, xss *regexp.Regexp) bool {
	found := false
	ctx.QueryArgs().VisitAll(func(key, value []byte) {
		if !found && (xss.Match(key) || xss.Match(value)) {
			found = true
		}
	})
	return found
}

// 安全响应统一处理
func securityResponse(c context.Context, ctx *app.RequestContext, code int, msg string, status int) {
	hlog.CtxWarnf(c, "SecurityAlert[code=%d]: %s", code, msg)
	ctx.AbortWithStatusJSON(status, utils.H{
		"code":    code,
		"message": msg,
	})
}
