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

import "github.com/gofiber/fiber/v2"

// Code 描述一种响应结果：envelope 中的 status、HTTP 状态码和默认信息
type Code struct {
	Status     int
	HttpStatus int
	Msg        string
}

var (
	Success = &Code{Status: 0, HttpStatus: fiber.StatusOK, Msg: "ok"}
	Failure = &Code{Status: -1, HttpStatus: fiber.StatusInternalServerError, Msg: "Request failed"}
)

var (
	// BadRequest 400
	BadRequest                    = failed(fiber.StatusBadRequest, "Bad request")
	RequestParameterParsingFailed = failed(fiber.StatusBadRequest, "Request parameter parsing failed")
	IdIsEmpty                     = failed(fiber.StatusBadRequest, "Id is required")
	UsernameArePasswordIsRequired = failed(fiber.StatusBadRequest, "Username and password are required")

	// Unauthorized 401
	Unauthorized          = failed(fiber.StatusUnauthorized, "Unauthorized Exception")
	AuthorizationEmpty    = failed(fiber.StatusUnauthorized, "Authorization is empty")
	InvalidToken          = failed(fiber.StatusUnauthorized, "Invalid token")
	TokenExpired          = failed(fiber.StatusUnauthorized, "Token is expired")
	UserIncorrectPassword = failed(fiber.StatusUnauthorized, "Username or password is incorrect")

	// NotFound 404
	NotFound = failed(fiber.StatusNotFound, "Not found")

	// Conflict 409
	Conflict = failed(fiber.StatusConflict, "Conflict")

	InternalError = failed(fiber.StatusInternalServerError, "Internal error, please contact the administrator")
)

// failed 构造函数
func failed(httpStatus int, msg string) *Code {
	return &Code{
		Status:     Failure.Status,
		HttpStatus: httpStatus,
		Msg:        msg,
	}
}
