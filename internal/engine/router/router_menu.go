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
	"math"
	"strconv"
	"strings"

	"github.com/go-arcade/console-mock/internal/engine/consts"
	"github.com/go-arcade/console-mock/internal/engine/model"
	"github.com/go-arcade/console-mock/pkg/http"
	"github.com/gofiber/fiber/v2"
)

func (rt *Router) menuRouter(r fiber.Router, auth fiber.Handler) {
	menuGroup := r.Group("/system/menu", auth)
	{
		menuGroup.Get("/", rt.listMenus)                    // GET /system/menu - 菜单树，支持过滤
		menuGroup.Post("/", rt.createMenu)                  // POST /system/menu
		menuGroup.Put("/:id", rt.updateMenu)                // PUT /system/menu/:id - 局部更新
		menuGroup.Patch("/:id/status", rt.updateMenuStatus) // PATCH /system/menu/:id/status
		menuGroup.Delete("/:id", rt.deleteMenu)             // DELETE /system/menu/:id
	}
}

// queryMenuStatus 按数字解析 menuStatus，"1.0"、"+1"、"1e0" 都视为 1；
// 为空、不是数字或不是整数时视为未传
func queryMenuStatus(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return nil
	}
	status := int(f)
	return &status
}

func (rt *Router) listMenus(c *fiber.Ctx) error {
	q := model.MenuQuery{
		Name:       c.Query("name"),
		RoutePath:  c.Query("routePath"),
		SysCode:    c.Query("sysCode"),
		MenuStatus: queryMenuStatus(c.Query("menuStatus")),
	}

	c.Locals(consts.DETAIL, rt.Services.Menu.QueryMenus(q))
	return nil
}

func (rt *Router) createMenu(c *fiber.Ctx) error {
	req, err := model.DecodeCreateMenuRequest(c.Body())
	if err != nil {
		return http.WithRepErr(c, http.RequestParameterParsingFailed, err.Error())
	}

	item, err := rt.Services.Menu.CreateMenu(req)
	if err != nil {
		return withServiceErr(c, err)
	}

	c.Locals(consts.DETAIL, item)
	return nil
}

// menuBodyErr 请求体有误时，菜单不存在优先返回 404
func (rt *Router) menuBodyErr(c *fiber.Ctx, id string, decodeErr error) error {
	if _, err := rt.Services.Menu.GetMenu(id); err != nil {
		return withServiceErr(c, err)
	}
	return http.WithRepErr(c, http.RequestParameterParsingFailed, decodeErr.Error())
}

func (rt *Router) updateMenu(c *fiber.Ctx) error {
	id := c.Params("id")
	patch, err := model.DecodeMenuPatch(c.Body())
	if err != nil {
		return rt.menuBodyErr(c, id, err)
	}

	item, err := rt.Services.Menu.UpdateMenu(id, patch)
	if err != nil {
		return withServiceErr(c, err)
	}

	c.Locals(consts.DETAIL, item)
	return nil
}

func (rt *Router) updateMenuStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	status, err := model.DecodeMenuStatus(c.Body())
	if err != nil {
		return rt.menuBodyErr(c, id, err)
	}

	item, err := rt.Services.Menu.UpdateMenuStatus(id, status)
	if err != nil {
		return withServiceErr(c, err)
	}

	c.Locals(consts.DETAIL, item)
	return nil
}

func (rt *Router) deleteMenu(c *fiber.Ctx) error {
	if err := rt.Services.Menu.DeleteMenu(c.Params("id")); err != nil {
		return withServiceErr(c, err)
	}

	c.Locals(consts.OPERATION, "delete menu")
	return nil
}
