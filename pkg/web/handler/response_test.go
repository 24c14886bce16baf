package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"os"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/stretchr/testify/assert"

	apperrors "book-review/pkg/common/errors"
	"book-review/pkg/web/middleware"
)

func TestRespondError(t *testing.T) {
	var buf bytes.Buffer
	hlog.SetOutput(&buf)
	t.Cleanup(func() { hlog.SetOutput(os.Stderr) })

	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"user exists", apperrors.ErrUserExists, http.StatusBadRequest, `{"error":"User already exists"}`},
		{"bad credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, `{"message":"Invalid credentials"}`},
		{"book missing", apperrors.ErrBookNotFound, http.StatusNotFound, `{"error":"Book not found"}`},
		{"duplicate review", apperrors.ErrAlreadyReviewed, http.StatusBadRequest, `{"message":"You have already reviewed this book."}`},
		{"not the author", apperrors.ErrReviewForbidden, http.StatusForbidden, `{"message":"Unauthorized"}`},
		{"storage failure", errors.New("connection reset"), http.StatusInternalServerError, `{"error":"Internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := server.New()
			h.Use(middleware.RequestIDMiddleware())
			h.GET("/fail", func(ctx context.Context, c *app.RequestContext) {
				respondError(ctx, c, tt.err)
			})

			resp := ut.PerformRequest(h.Engine, "GET", "/fail", nil,
				ut.Header{Key: middleware.RequestIDHeader, Value: "rid-fixed"}).Result()
			assert.Equal(t, tt.status, resp.StatusCode())
			assert.JSONEq(t, tt.body, string(resp.Body()))
		})
	}

	// 500 日志带上请求ID，便于排查
	assert.Contains(t, buf.String(), "connection reset rid=rid-fixed")
}

func TestPagination(t *testing.T) {
	h := server.New()
	h.GET("/p", func(ctx context.Context, c *app.RequestContext) {
		page, limit := pagination(c, 10)
		c.JSON(http.StatusOK, map[string]int{"page": page, "limit": limit})
	})

	tests := map[string]string{
		"/p":                              `{"page":1,"limit":10}`,
		"/p?page=3&limit=5":               `{"page":3,"limit":5}`,
		"/p?page=0&limit=-1":              `{"page":1,"limit":10}`,
		"/p?page=x&limit=y":               `{"page":1,"limit":10}`,
		"/p?page=9223372036854775807":     `{"page":9223372036854775807,"limit":10}`,
		"/p?page=99999999999999999999999": `{"page":1,"limit":10}`,
	}
	for path, want := range tests {
		resp := ut.PerformRequest(h.Engine, "GET", path, nil).Result()
		assert.JSONEq(t, want, string(resp.Body()), path)
	}
}
