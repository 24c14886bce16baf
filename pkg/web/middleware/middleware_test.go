package middleware

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-review/pkg/common/config"
	usermodel "book-review/pkg/core/user/model"
)

func ok(c context.Context, ctx *app.RequestContext) {
	ctx.String(http.StatusOK, "ok")
}

func TestRateLimitMiddleware(t *testing.T) {
	h := server.New()
	h.Use(RateLimitMiddleware(0.001, 2))
	h.GET("/ping", ok)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		codes = append(codes, ut.PerformRequest(h.Engine, "GET", "/ping", nil).Result().StatusCode())
	}
	assert.Equal(t, []int{200, 200, 429}, codes)
}

func TestRecoveryMiddleware(t *testing.T) {
	for _, env := range []string{"development", "production"} {
		cfg := config.Default()
		cfg.Env = env

		h := server.New()
		h.Use(RecoveryMiddleware(cfg))
		h.GET("/panic", func(c context.Context, ctx *app.RequestContext) {
			panic("kaboom")
		})

		resp := ut.PerformRequest(h.Engine, "GET", "/panic", nil).Result()
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode(), env)
		assert.Equal(t, env != "production", strings.Contains(string(resp.Body()), "kaboom"), env)
	}
}

func TestTimeoutMiddlewareSetsDeadline(t *testing.T) {
	h := server.New()
	h.Use(TimeoutMiddleware(5))
	h.GET("/deadline", func(c context.Context, ctx *app.RequestContext) {
		deadline, has := c.Deadline()
		if !has || time.Until(deadline) > 5*time.Second {
			ctx.String(http.StatusInternalServerError, "no deadline")
			return
		}
		ctx.String(http.StatusOK, "ok")
	})

	assert.Equal(t, http.StatusOK, ut.PerformRequest(h.Engine, "GET", "/deadline", nil).Result().StatusCode())
}

func TestSecurityCheckMiddleware(t *testing.T) {
	h := server.New()
	h.Use(SecurityCheckMiddleware(config.SecurityConfig{
		MaxBodySize:      8,
		AllowedMethods:   []string{"GET", "POST"},
		RequireUserAgent: true,
	}))
	h.GET("/x", ok)
	h.POST("/x", ok)
	h.PATCH("/x", ok)

	ua := ut.Header{Key: "User-Agent", Value: "test"}

	assert.Equal(t, http.StatusBadRequest, ut.PerformRequest(h.Engine, "GET", "/x", nil).Result().StatusCode())
	assert.Equal(t, http.StatusOK, ut.PerformRequest(h.Engine, "GET", "/x?q=dune", nil, ua).Result().StatusCode())
	assert.Equal(t, http.StatusUnprocessableEntity,
		ut.PerformRequest(h.Engine, "GET", "/x?q=%3Cscript%3E", nil, ua).Result().StatusCode())
	assert.Equal(t, http.StatusRequestEntityTooLarge,
		ut.PerformRequest(h.Engine, "POST", "/x", &ut.Body{Body: strings.NewReader("0123456789"), Len: 10}, ua).Result().StatusCode())
	assert.Equal(t, http.StatusMethodNotAllowed, ut.PerformRequest(h.Engine, "PATCH", "/x", nil, ua).Result().StatusCode())
}

func TestJWTAuthMiddleware(t *testing.T) {
	cfg := config.Default().Middleware.JWT
	cfg.Secret = "mw-secret"

	h := server.New()
	h.GET("/me", JWTAuthMiddleware(cfg, "identity"), func(c context.Context, ctx *app.RequestContext) {
		v, _ := ctx.Get("identity")
		identity := v.(*usermodel.Identity)
		ctx.JSON(http.StatusOK, map[string]interface{}{"id": identity.ID, "username": identity.Username})
	})

	sign := func(claims jwt.MapClaims) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("mw-secret"))
		require.NoError(t, err)
		return s
	}
	exp := time.Now().Add(time.Hour).Unix()

	good := sign(jwt.MapClaims{"user_id": 9, "username": "erin", "exp": exp})
	resp := ut.PerformRequest(h.Engine, "GET", "/me", nil, ut.Header{Key: "Authorization", Value: "Bearer " + good}).Result()
	require.Equal(t, http.StatusOK, resp.StatusCode(), string(resp.Body()))
	assert.JSONEq(t, `{"id":9,"username":"erin"}`, string(resp.Body()))

	noIdentity := sign(jwt.MapClaims{"username": "erin", "exp": exp})
	noExp := sign(jwt.MapClaims{"user_id": 9, "username": "erin"})
	for _, header := range []string{"", "Bearer", "Basic " + good, "Bearer " + noIdentity, "Bearer " + noExp} {
		headers := []ut.Header{}
		if header != "" {
			headers = append(headers, ut.Header{Key: "Authorization", Value: header})
		}
		resp := ut.PerformRequest(h.Engine, "GET", "/me", nil, headers...).Result()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode(), header)
	}
}

func TestRequestIDFrom(t *testing.T) {
	h := server.New()
	h.Use(RequestIDMiddleware())
	h.GET("/rid", func(c context.Context, ctx *app.RequestContext) {
		ctx.String(http.StatusOK, RequestIDFrom(c))
	})

	resp := ut.PerformRequest(h.Engine, "GET", "/rid", nil, ut.Header{Key: RequestIDHeader, Value: "rid-1"}).Result()
	assert.Equal(t, "rid-1", string(resp.Body()))
	assert.Equal(t, "", RequestIDFrom(context.Background()))
}

func TestLoggerMiddlewareLogsRequestID(t *testing.T) {
	var buf bytes.Buffer
	hlog.SetOutput(&buf)
	t.Cleanup(func() { hlog.SetOutput(os.Stderr) })

	h := server.New()
	h.Use(RequestIDMiddleware(), LoggerMiddleware())
	h.GET("/ping", ok)

	ut.PerformRequest(h.Engine, "GET", "/ping", nil, ut.Header{Key: RequestIDHeader, Value: "rid-log"})
	assert.Contains(t, buf.String(), "rid=rid-log")
}
