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
	"strings"

	"github.com/go-arcade/console-mock/internal/engine/consts"
	"github.com/go-arcade/console-mock/internal/engine/service"
	"github.com/go-arcade/console-mock/pkg/cache"
	"github.com/go-arcade/console-mock/pkg/http"
	"github.com/go-arcade/console-mock/pkg/http/middleware"
	"github.com/go-arcade/console-mock/pkg/log"
	"github.com/go-arcade/console-mock/pkg/metrics"
	"github.com/go-arcade/console-mock/pkg/version"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

type Router struct {
	Http     *http.Http
	Services *service.Services
	Cache    cache.ICache
	Metrics  *metrics.Metrics
}

func NewRouter(httpConf *http.Http, services *service.Services, cache cache.ICache, m *metrics.Metrics) *Router {
	return &Router{
		Http:     httpConf,
		Services: services,
		Cache:    cache,
		Metrics:  m,
	}
}

// Router 创建 fiber 实例并注册全部路由
func (rt *Router) Router() *fiber.App {
	app := http.NewApp(rt.Http)

	// panic recover
	app.Use(middleware.ExceptionMiddleware)
	app.Use(middleware.RequestMiddleware())
	app.Use(middleware.TraceMiddleware())
	app.Use(middleware.CorsMiddleware())

	if rt.Http.AccessLog {
		app.Use(middleware.AccessLogMiddleware(rt.Http))
	}
	if rt.Metrics != nil {
		app.Use(middleware.MetricsMiddleware(rt.Metrics))
		rt.registerGauges()
	}

	// unified response
	app.Use(middleware.UnifiedResponseMiddleware())

	if rt.Http.ExposeMetrics && rt.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(rt.Metrics.Handler()))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	app.Get("/version", func(c *fiber.Ctx) error {
		c.Locals(consts.DETAIL, version.GetVersion())
		return nil
	})

	// engine router, internal api router
	rt.routerGroup(app.Group(contextPath(rt.Http.InternalContextPath)))

	return app
}

func (rt *Router) routerGroup(r fiber.Router) {
	auth := middleware.AuthorizationMiddleware(rt.Http.Auth.SecretKey, rt.Cache)

	rt.authRouter(r, auth)
	rt.menuRouter(r, auth)
	rt.roleRouter(r, auth)
	rt.userRouter(r, auth)
	rt.dictRouter(r, auth)
}

func (rt *Router) registerGauges() {
	gauges := []struct {
		name, help string
		fn         func() int
	}{
		{"menu_items", "Number of menu items", rt.Services.Menu.MenuCount},
		{"roles", "Number of roles", rt.Services.Role.RoleCount},
		{"users", "Number of users", rt.Services.User.UserCount},
	}
	for _, g := range gauges {
		fn := g.fn
		if err := rt.Metrics.RegisterGaugeFunc(g.name, g.help, func() float64 { return float64(fn()) }); err != nil {
			log.Warnw("register gauge failed", "name", g.name, "error", err)
		}
	}
}

func contextPath(p string) string {
	p = "/" + strings.Trim(p, "/")
	if p == "/" {
		return ""
	}
	return p
}

// withServiceErr 把业务错误映射为 HTTP 状态码和统一失败响应
func withServiceErr(c *fiber.Ctx, err error) error {
	se, ok := service.AsError(err)
	if !ok {
		log.WithContext(c.UserContext()).Errorw("request failed", "path", c.Path(), "error", err)
		return http.WithRepErr(c, http.InternalError, nil)
	}

	status := fiber.StatusInternalServerError
	switch se.Kind {
	case service.KindValidation:
		status = fiber.StatusBadRequest
	case service.KindNotFound:
		status = fiber.StatusNotFound
	case service.KindConflict:
		status = fiber.StatusConflict
	case service.KindUnauthorized:
		status = fiber.StatusUnauthorized
	}
	return http.WithRepErrMsg(c, status, se.Msg, se.Detail)
}
