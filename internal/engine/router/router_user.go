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

func (rt *Router) userRouter(r fiber.Router, auth fiber.Handler) {
	userGroup := r.Group("/system/users", auth)
	{
		userGroup.Get("/", rt.listUsers)     // GET /system/users - 分页查询
		userGroup.Put("/:id", rt.updateUser) // PUT /system/users/:id - 更新状态和职位
	}

	bindGroup := r.Group("/web-ele/users", auth)
	{
		bindGroup.Get("/binding-role/list", rt.listBindingRoles) // GET 可绑定的角色
		bindGroup.Get("/:userCode/roles", rt.getUserRoles)       // GET 用户已绑定的角色
		bindGroup.Post("/:userCode/roles", rt.bindUserRoles)     // POST 绑定/解绑角色
	}
}

func (rt *Router) listUsers(c *fiber.Ctx) error {
	q := model.UserQuery{
		UserCode:         c.Query("userCode"),
		UserName:         c.Query("userName"),
		EmploymentStatus: model.EmploymentStatus(c.Query("employmentStatus")),
		PageQuery: model.PageQuery{
			PageNo:   c.QueryInt("pageNo", model.DefaultPageNo),
			PageSize: c.QueryInt("pageSize", model.DefaultPageSize),
		},
	}

	c.Locals(consts.DETAIL, rt.Services.User.QueryUsers(q))
	return nil
}

func (rt *Router) updateUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return http.WithRepErr(c, http.IdIsEmpty, c.Params("id"))
	}
	var req model.UpdateUserRequest
	if err := bodyParser(c, &req); err != nil {
		return http.WithRepErr(c, http.RequestParameterParsingFailed, err.Error())
	}

	user, err := rt.Services.User.UpdateUser(id, &req)
	if err != nil {
		return withServiceErr(c, err)
	}

	c.Locals(consts.DETAIL, user)
	return nil
}

func (rt *Router) listBindingRoles(c *fiber.Ctx) error {
	c.Locals(consts.DETAIL, rt.Services.Role.QueryRoles(roleQuery(c)))
	return nil
}

func (rt *Router) getUserRoles(c *fiber.Ctx) error {
	roles, err := rt.Services.User.GetUserRoles(c.Params("userCode"))
	if err != nil {
		return withServiceErr(c, err)
	}

	c.Locals(consts.DETAIL, roles)
	return nil
}

func (rt *Router) bindUserRoles(c *fiber.Ctx) error {
	var req model.BindRolesRequest
	if err := bodyParser(c, &req); err != nil {
		return http.WithRepErr(c, http.RequestParameterParsingFailed, err.Error())
	}

	user, err := rt.Services.User.BindRoles(c.Params("userCode"), &req)
	if err != nil {
		return withServiceErr(c, err)
	}

	c.Locals(consts.DETAIL, user)
	return nil
}
