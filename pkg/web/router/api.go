package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"
	"gorm.io/gorm"

	"book-review/pkg/common/config"
	bookdao "book-review/pkg/core/book/repository/dao/impl"
	bookservice "book-review/pkg/core/book/service"
	reviewdao "book-review/pkg/core/review/repository/dao/impl"
	reviewservice "book-review/pkg/core/review/service"
	userdao "book-review/pkg/core/user/repository/dao/impl"
	userservice "book-review/pkg/core/user/service"
	"book-review/pkg/web/handler"
	"book-review/pkg/web/middleware"
)

// RegisterAPIs 注册所有API路由；db 为进程级连接池，由调用方创建一次后传入
func RegisterAPIs(h *server.Hertz, cfg *config.Config, db *gorm.DB) {
	// 依赖注入：DAO -> Service -> Handler
	jwtCfg := cfg.Middleware.JWT
	tokens := userservice.NewTokenIssuer(jwtCfg.Secret, jwtCfg.SigningMethod, jwtCfg.Issuer, jwtCfg.ExpireDuration)
	users := userservice.NewUserService(userdao.NewGormUserRepository(db), tokens, cfg.Auth.BcryptCost)

	reviewRepo := reviewdao.NewGormReviewRepository(db)
	reviews := reviewservice.NewReviewService(reviewRepo)
	books := bookservice.NewBookService(bookdao.NewGormBookRepository(db), reviewRepo)

	healthHandler := handler.NewHealthCheckHandler(db)
	authHandler := handler.NewAuthHandler(users)
	bookHandler := handler.NewBookHandler(books, reviews, cfg.Pagination.DefaultLimit)
	reviewHandler := handler.NewReviewHandler(reviews)

	// 注册全局中间件（按执行顺序）
	h.Use(
		middleware.RecoveryMiddleware(cfg),
		middleware.RequestIDMiddleware(),
		middleware.LoggerMiddleware(),
		middleware.SecurityCheckMiddleware(cfg.Middleware.Security),
		middleware.TimeoutMiddleware(cfg.Middleware.Timeout.RequestTimeout),
		middleware.CORSMiddleware(cfg.Middleware.CORS),
		middleware.RateLimitMiddleware(
			cfg.Middleware.RateLimit.Rate,
			cfg.Middleware.RateLimit.Burst,
		),
	)

	requireAuth := middleware.JWTAuthMiddleware(jwtCfg, handler.IdentityKey)

	// 基础接口
	h.GET("/health", healthHandler.AdvancedHealthCheck)

	authGroup := h.Group("/auth")
	{
		authGroup.POST("/signup", authHandler.Signup)
		authGroup.POST("/login", authHandler.Login)
	}

	bookGroup := h.Group("/books")
	{
		bookGroup.GET("", bookHandler.List)
		bookGroup.GET("/search", bookHandler.Search)
		bookGroup.GET("/:id", bookHandler.Get)

		// 需要身份认证的接口
		bookGroup.POST("", requireAuth, bookHandler.Create)
		bookGroup.POST("/:id/reviews", requireAuth, bookHandler.SubmitReview)
	}

	reviewGroup := h.Group("/reviews", requireAuth)
	{
		reviewGroup.PUT("/:id", reviewHandler.Update)
		reviewGroup.DELETE("/:id", reviewHandler.Delete)
	}
}
