package model

// 请求/响应数据结构
type (
	SignupReq struct {
		Username string `json:"username" validate:"required,min=3,max=100"`
		Password string `json:"password" validate:"required,min=6,max=72"`
	}

	LoginReq struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	// UserRes 注册响应，不包含密码哈希
	UserRes struct {
		ID       int64  `json:"id"`
		Username string `json:"username"`
	}

	TokenRes struct {
		Token string `json:"token"`
	}

	MessageRes struct {
		Message string `json:"message"`
	}
)
