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

package http

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

/**
 * @author: gagral.x@gmail.com
 * @time: 2024/9/8 15:38
 * @file: http.go
 * @description: http server
 */

type Http struct {
	Host                string
	Port                int
	InternalContextPath string
	AccessLog           bool
	ExposeMetrics       bool
	BodyLimit           int // MB
	ReadTimeout         int
	WriteTimeout        int
	IdleTimeout         int
	ShutdownTimeout     int
	TLS                 TLS
	Auth                Auth
}

type TLS struct {
	CertFile string
	KeyFile  string
}

type Auth struct {
	SecretKey     string
	AccessExpire  time.Duration
	RefreshExpire time.Duration
}

// SetDefaults 返回默认配置
func SetDefaults() *Http {
	return &Http{
		Host:                "0.0.0.0",
		Port:                5320,
		InternalContextPath: "/api",
		AccessLog:           true,
		ExposeMetrics:       true,
		BodyLimit:           4,
		ReadTimeout:         60,
		WriteTimeout:        60,
		IdleTimeout:         120,
		ShutdownTimeout:     10,
		Auth: Auth{
			SecretKey:     "console-mock-secret",
			AccessExpire:  2 * time.Hour,
			RefreshExpire: 7 * 24 * time.Hour,
		},
	}
}

// NewApp 创建 fiber 实例，JSON 编解码统一使用 sonic
func NewApp(cfg *Http) *fiber.App {
	bodyLimit := cfg.BodyLimit
	if bodyLimit <= 0 {
		bodyLimit = 4
	}
	return fiber.New(fiber.Config{
		AppName:               "console-mock",
		DisableStartupMessage: true,
		BodyLimit:             bodyLimit * 1024 * 1024,
		ReadTimeout:           time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout:          time.Duration(cfg.WriteTimeout) * time.Second,
		IdleTimeout:           time.Duration(cfg.IdleTimeout) * time.Second,
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		ErrorHandler:          ErrorHandler,
	})
}

// ErrorHandler 将 fiber 返回的错误统一转换为失败响应
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := InternalError.Msg
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		msg = e.Message
	}
	return WithRepErrMsg(c, code, msg, nil)
}
