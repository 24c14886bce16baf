package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"book-review/pkg/core/user/model"
)

const (
	ClaimUserID   = "user_id"
	ClaimUsername = "username"
)

// DefaultTokenTTL ttl 非正数时使用；鉴权中间件要求令牌必须带 exp
const DefaultTokenTTL = 24 * time.Hour

// TokenIssuer 签发和解析 HMAC 令牌
type TokenIssuer struct {
	secret []byte
	method jwt.SigningMethod
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret, algorithm, issuer string, ttl time.Duration) *TokenIssuer {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		method = jwt.SigningMethodHS256
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenIssuer{
		secret: []byte(secret),
		method: method,
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue 生成包含用户ID和用户名的令牌
func (t *TokenIssuer) Issue(user *model.User) (string, error) {
	now := t.now()
	claims := jwt.MapClaims{
		ClaimUserID:   user.ID,
		ClaimUsername: user.Username,
		"iss":         t.issuer,
		"iat":         now.Unix(),
		"exp":         now.Add(t.ttl).Unix(),
	}

	signed, err := jwt.NewWithClaims(t.method, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse 校验签名并还原身份
func (t *TokenIssuer) Parse(tokenStr string) (*model.Identity, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{t.method.Alg()}), jwt.WithTimeFunc(t.now))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	return IdentityFromClaims(claims)
}

// IdentityFromClaims 从 JSON 解码后的 claims 中读取身份，数字为 float64
func IdentityFromClaims(claims map[string]interface{}) (*model.Identity, error) {
	rawID, ok := claims[ClaimUserID].(float64)
	if !ok {
		return nil, fmt.Errorf("invalid %s claim", ClaimUserID)
	}
	username, _ := claims[ClaimUsername].(string)
	return &model.Identity{ID: int64(rawID), Username: username}, nil
}
