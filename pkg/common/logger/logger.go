// Package logger 将 hlog 的输出切换为 logrus JSON 格式
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	hertzlogrus "github.com/hertz-contrib/logger/logrus"
	"github.com/sirupsen/logrus"
)

// New 创建 logrus 实例，字段命名与日志采集侧保持一致
func New(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.Formatter = &logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "severity",
			logrus.FieldKeyMsg:   "message",
		},
		TimestampFormat: time.RFC3339Nano,
	}
	l.Out = out
	return l
}

// Init 安装全局 hlog 实现，之后所有 hlog.CtxXxx 调用都走 logrus
func Init(level string) {
	hlog.SetLogger(hertzlogrus.NewLogger(hertzlogrus.WithLogger(New(os.Stdout))))
	hlog.SetLevel(ParseLevel(level))
}

// ParseLevel 解析配置里的日志级别，未知值按 info 处理
func ParseLevel(level string) hlog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return hlog.LevelTrace
	case "debug":
		return hlog.LevelDebug
	case "warn", "warning":
		return hlog.LevelWarn
	case "error":
		return hlog.LevelError
	case "fatal":
		return hlog.LevelFatal
	default:
		return hlog.LevelInfo
	}
}
