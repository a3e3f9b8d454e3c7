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
	"github.com/gofiber/fiber/v2"
)

// Response 统一响应结构
type Response struct {
	Status int    `json:"status"`
	Data   any    `json:"data"`
	Error  any    `json:"error"`
	Msg    string `json:"msg"`
}

// PageResult 分页数据
type PageResult struct {
	Items any `json:"items"`
	Total int `json:"total"`
}

// WithRepJSON 只返回json数据
func WithRepJSON(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(Response{
		Status: Success.Status,
		Data:   data,
		Msg:    Success.Msg,
	})
}

// WithRepNotDetail 只成功的返回操作结果，data 为 null
func WithRepNotDetail(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(Response{
		Status: Success.Status,
		Msg:    Success.Msg,
	})
}
