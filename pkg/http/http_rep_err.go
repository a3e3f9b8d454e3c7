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

// WithRepErr 按预定义的 Code 返回失败结果
func WithRepErr(c *fiber.Ctx, code *Code, detail any) error {
	return WithRepErrMsg(c, code.HttpStatus, code.Msg, detail)
}

// WithRepErrMsg 返回自定义 HTTP 状态码、错误信息和错误详情
func WithRepErrMsg(c *fiber.Ctx, httpStatus int, errMsg string, detail any) error {
	return c.Status(httpStatus).JSON(Response{
		Status: Failure.Status,
		Data:   nil,
		Error:  detail,
		Msg:    errMsg,
	})
}
