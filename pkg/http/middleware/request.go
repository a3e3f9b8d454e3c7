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
	"github.com/go-arcade/console-mock/pkg/id"
	"github.com/gofiber/fiber/v2"
)

const requestIdHeader = "X-Request-Id"

func RequestMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestId := c.Get(requestIdHeader)
		if requestId == "" {
			requestId = id.GetUUID()
		}
		c.Request().Header.Set(requestIdHeader, requestId)
		c.Set(requestIdHeader, requestId)
		c.Locals("request_id", requestId)
		return c.Next()
	}
}
