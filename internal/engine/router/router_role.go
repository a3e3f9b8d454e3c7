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
	"github.com/go-arcade/console-mock/internal/engine/model"
	"github.com/go-arcade/console-mock/pkg/http"
	"github.com/gofiber/fiber/v2"
)

func (rt *Router) roleRouter(r fiber.Router, auth fiber.Handler) {
	roleGroup := r.Group("/system/role", auth)
	{
		roleGroup.Get("/", rt.listRoles)        // GET /system/role - 分页查询
		roleGroup.Post("/", rt.createRole)      // POST /system/role
		roleGroup.Put("/:id", rt.updateRole)    // PUT /system/role/:id - 局部更新
		roleGroup.Delete("/:id", rt.deleteRole) // DELETE /system/role/:id
	}
}

func roleQuery(c *fiber.Ctx) model.RoleQuery {
	return model.RoleQuery{
		RoleName: c.Query("roleName"),
		AppCode:  c.Query("appCode"),
		SysCode:  c.Query("sysCode"),
	}
}

func (rt *Router) listRoles(c *fiber.Ctx) error {
	page := model.PageQuery{
		PageNo:   c.QueryInt("pageNo", model.DefaultPageNo),
		PageSize: c.QueryInt("pageSize", model.DefaultPageSize),
	}
	items, total := rt.Services.Role.ListRoles(roleQuery(c), page)

	c.Locals(consts.DETAIL, http.PageResult{Items: items, Total: total})
	return nil
}

func (rt *Router) createRole(c *fiber.Ctx) error {
	var req model.CreateRoleRequest
	if err := bodyParser(c, &req); err != nil {
		return http.WithRepErr(c, http.RequestParameterParsingFailed, err.Error())
	}

	role, err := rt.Services.Role.CreateRole(&req)
	if err != nil {
		return withServiceErr(c, err)
	}

	c.Locals(consts.DETAIL, role)
	return nil
}

func (rt *Router) updateRole(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return http.WithRepErr(c, http.IdIsEmpty, c.Params("id"))
	}
	var patch model.RolePatch
	if err := bodyParser(c, &patch); err != nil {
		return http.WithRepErr(c, http.RequestParameterParsingFailed, err.Error())
	}

	role, err := rt.Services.Role.UpdateRole(id, &patch)
	if err != nil {
		return withServiceErr(c, err)
	}

	c.Locals(consts.DETAIL, role)
	return nil
}

func (rt *Router) deleteRole(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return http.WithRepErr(c, http.IdIsEmpty, c.Params("id"))
	}
	if err := rt.Services.Role.DeleteRole(id); err != nil {
		return withServiceErr(c, err)
	}

	c.Locals(consts.OPERATION, "delete role")
	return nil
}

// bodyParser 空 body 视为空对象
func bodyParser(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	return c.BodyParser(out)
}
