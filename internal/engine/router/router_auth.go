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
	"github.com/go-arcade/console-mock/pkg/http/middleware"
	"github.com/gofiber/fiber/v2"
)

func (rt *Router) authRouter(r fiber.Router, auth fiber.Handler) {
	authGroup := r.Group("/auth")
	{
		// not auth
		authGroup.Post("/login", rt.login)
		authGroup.Post("/refresh", rt.refresh)

		// auth
		authGroup.Post("/logout", auth, rt.logout)
	}

	r.Get("/user/info", auth, rt.getUserInfo)
}

func (rt *Router) login(c *fiber.Ctx) error {
	var req model.LoginRequest
	if err := bodyParser(c, &req); err != nil {
		return http.WithRepErr(c, http.RequestParameterParsingFailed, err.Error())
	}
	if req.Username == "" || req.Password == "" {
		return http.WithRepErr(c, http.UsernameArePasswordIsRequired, nil)
	}

	resp, err := rt.Services.Auth.Login(c.UserContext(), &req)
	if err != nil {
		return withServiceErr(c, err)
	}

	c.Locals(consts.DETAIL, resp)
	return nil
}

func (rt *Router) refresh(c *fiber.Ctx) error {
	var req model.RefreshRequest
	if err := bodyParser(c, &req); err != nil {
		return http.WithRepErr(c, http.RequestParameterParsingFailed, err.Error())
	}

	resp, err := rt.Services.Auth.Refresh(c.UserContext(), req.RefreshToken)
	if err != nil {
		return withServiceErr(c, err)
	}

	c.Locals(consts.DETAIL, resp)
	return nil
}

func (rt *Router) logout(c *fiber.Ctx) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return http.WithRepErr(c, http.Unauthorized, nil)
	}
	if err := rt.Services.Auth.Logout(c.UserContext(), claims.ID); err != nil {
		return withServiceErr(c, err)
	}

	c.Locals(consts.OPERATION, "logout")
	return nil
}

func (rt *Router) getUserInfo(c *fiber.Ctx) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return http.WithRepErr(c, http.Unauthorized, nil)
	}

	info, err := rt.Services.Auth.UserInfo(claims.UserId)
	if err != nil {
		return withServiceErr(c, err)
	}

	c.Locals(consts.DETAIL, info)
	return nil
}
