// Copyright 2025 Arcade Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-arcade/console-mock/pkg/id"
	"github.com/go-arcade/console-mock/pkg/log"
	"github.com/golang-jwt/jwt/v5"
)

type AuthClaims struct {
	UserId   string `json:"userId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

var (
	issUser = "console-mock"

	ErrTokenExpired = jwt.ErrTokenExpired
	ErrInvalidToken = errors.New("invalid token")
)

// TokenPair access_token 与 refresh_token
type TokenPair struct {
	AccessToken  string
	AccessId     string // access_token 的 jti，作为会话 key
	RefreshToken string
}

// GenToken 生成 access_token 和 refresh_token
func GenToken(userId, username string, secretKey []byte, accessExpired, refreshExpired time.Duration) (*TokenPair, error) {
	now := time.Now()
	accessId := id.GetUlid()

	aClaims := &AuthClaims{
		UserId:   userId,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        accessId,
			Issuer:    issUser,
			Subject:   userId,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(accessExpired)),
		},
	}
	aToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, aClaims).SignedString(secretKey)
	if err != nil {
		log.Errorw("sign access token failed", "error", err)
		return nil, err
	}

	rClaims := jwt.RegisteredClaims{
		ID:        id.GetUlid(),
		Issuer:    issUser,
		Subject:   userId,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(refreshExpired)),
	}
	rToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, rClaims).SignedString(secretKey)
	if err != nil {
		log.Errorw("sign refresh token failed", "error", err)
		return nil, err
	}

	return &TokenPair{AccessToken: aToken, AccessId: accessId, RefreshToken: rToken}, nil
}

// ParseToken 校验 access_token
func ParseToken(aToken, secretKey string) (*AuthClaims, error) {
	claims := new(AuthClaims)
	if err := parse(aToken, secretKey, claims); err != nil {
		return nil, err
	}
	if claims.UserId == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ParseRefreshToken 校验 refresh_token，返回其中的用户 id
func ParseRefreshToken(rToken, secretKey string) (string, error) {
	claims := new(jwt.RegisteredClaims)
	if err := parse(rToken, secretKey, claims); err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

func parse(token, secretKey string, claims jwt.Claims) error {
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (any, error) {
		// 验证签名算法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	}, jwt.WithIssuer(issUser))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrTokenExpired
		}
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return ErrInvalidToken
	}
	return nil
}
