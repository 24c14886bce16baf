package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"book-review/pkg/core/user/service"
	"book-review/pkg/web/model"
)

type AuthHandler struct {
	users service.UserService
}

func NewAuthHandler(users service.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// Signup POST /auth/signup
func (h *AuthHandler) Signup(ctx context.Context, c *app.RequestContext) {
	var req model.SignupReq
	if err := bindAndValidate(c, &req); err != nil {
		respondError(ctx, c, err)
		return
	}

	user, err := h.users.Register(ctx, req.Username, req.Password)
	if err != nil {
		respondError(ctx, c, err)
		return
	}

	c.JSON(consts.StatusCreated, model.UserRes{ID: user.ID, Username: user.Username})
}

// Login POST /auth/login
func (h *AuthHandler) Login(ctx context.Context, c *app.RequestContext) {
	var req model.LoginReq
	if err := bindAndValidate(c, &req); err != nil {
		respondError(ctx, c, err)
		return
	}

	token, err := h.users.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		respondError(ctx, c, err)
		return
	}

	c.JSON(consts.StatusOK, model.TokenRes{Token: token})
}
