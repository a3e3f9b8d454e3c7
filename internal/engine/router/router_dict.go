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

package router

import (
	"github.com/go-arcade/console-mock/internal/engine/consts"
	"github.com/gofiber/fiber/v2"
)

func (rt *Router) dictRouter(r fiber.Router, auth fiber.Handler) {
	r.Get("/system/dict", auth, rt.getDict) // GET /system/dict?dictCode=
}

// getDict 未知的 dictCode 返回空数组
func (rt *Router) getDict(c *fiber.Ctx) error {
	c.Locals(consts.DETAIL, rt.Services.Dict.GetDict(c.Query("dictCode")))
	return nil
}
