package main

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"

	"book-review/pkg/common/config"
	"book-review/pkg/common/logger"
	"book-review/pkg/core/migrate"
	"book-review/pkg/web/router"
)

func main() {
	// 初始化配置
	cfg := config.Load()
	logger.Init(cfg.Log.Level)

	// 初始化数据库连接池（进程级，只创建一次）
	db, err := cfg.InitDB()
	if err != nil {
		hlog.Fatalf("Failed to initialize database: %v", err)
	}

	if cfg.Database.AutoMigrate {
		if err := migrate.AutoMigrate(db); err != nil {
			hlog.Fatalf("Failed to migrate database: %v", err)
		}
	}

	// 创建Hertz实例
	h := server.Default(
		server.WithHostPorts(cfg.Server.Address),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(int(cfg.Middleware.Security.MaxBodySize)),
	)

	// 关闭时释放连接池
	h.OnShutdown = append(h.OnShutdown, func(ctx context.Context) {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	// 注册路由
	router.RegisterAPIs(h, cfg, db)

	hlog.Infof("book-review listening on %s (db=%s, env=%s)", cfg.Server.Address, cfg.Database.Driver, cfg.Env)

	// 启动服务，收到 SIGINT/SIGTERM 后优雅退出
	h.Spin()
}
