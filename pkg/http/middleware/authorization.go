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

package middleware

import (
	"errors"
	"strings"

	"github.com/go-arcade/console-mock/internal/engine/consts"
	"github.com/go-arcade/console-mock/pkg/cache"
	"github.com/go-arcade/console-mock/pkg/http"
	"github.com/go-arcade/console-mock/pkg/http/jwt"
	"github.com/go-arcade/console-mock/pkg/log"
	"github.com/gofiber/fiber/v2"
)

// AuthorizationMiddleware 认证中间件
// secretKey: 用于验证 JWT 的密钥
// store: 会话存储，登出后 token 即失效
func AuthorizationMiddleware(secretKey string, store cache.ICache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		aToken := c.Get(fiber.HeaderAuthorization)
		if aToken == "" {
			return http.WithRepErr(c, http.Unauthorized, http.AuthorizationEmpty.Msg)
		}

		// 按空格分割
		parts := strings.SplitN(aToken, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return http.WithRepErr(c, http.Unauthorized, http.InvalidToken.Msg)
		}

		claims, err := jwt.ParseToken(parts[1], secretKey)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return http.WithRepErr(c, http.Unauthorized, http.TokenExpired.Msg)
			}
			log.Debugw("parse token failed", "error", err)
			return http.WithRepErr(c, http.Unauthorized, http.InvalidToken.Msg)
		}

		// 检查会话是否仍然存在（登出或过期后被删除）
		exists, err := store.Exists(c.UserContext(), consts.SessionKeyPrefix+claims.ID).Result()
		if err != nil {
			log.Errorw("check session failed", "userId", claims.UserId, "error", err)
			return http.WithRepErr(c, http.InternalError, nil)
		}
		if exists == 0 {
			return http.WithRepErr(c, http.Unauthorized, http.TokenExpired.Msg)
		}

		c.Locals(consts.CLAIMS, claims)
		return c.Next()
	}
}

// GetClaims 获取认证中间件写入的 claims
func GetClaims(c *fiber.Ctx) (*jwt.AuthClaims, bool) {
	claims, ok := c.Locals(consts.CLAIMS).(*jwt.AuthClaims)
	return claims, ok && claims != nil
}
