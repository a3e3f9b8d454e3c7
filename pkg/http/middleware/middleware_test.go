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
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-arcade/console-mock/internal/engine/consts"
	"github.com/go-arcade/console-mock/pkg/cache"
	httpx "github.com/go-arcade/console-mock/pkg/http"
	"github.com/go-arcade/console-mock/pkg/http/jwt"
	"github.com/go-arcade/console-mock/pkg/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func decode(t *testing.T, resp *http.Response) httpx.Response {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out httpx.Response
	require.NoError(t, sonic.Unmarshal(body, &out))
	return out
}

func newAuthApp(store cache.ICache) *fiber.App {
	app := fiber.New()
	app.Use(UnifiedResponseMiddleware())
	app.Get("/me", AuthorizationMiddleware(testSecret, store), func(c *fiber.Ctx) error {
		claims, ok := GetClaims(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		c.Locals(consts.DETAIL, claims.Username)
		return nil
	})
	return app
}

func TestAuthorizationMiddleware(t *testing.T) {
	store := cache.NewFastCache(cache.FastCacheConfig{})
	defer store.Clear()
	app := newAuthApp(store)

	pair, err := jwt.GenToken("0", "vben", []byte(testSecret), time.Hour, time.Hour)
	require.NoError(t, err)
	store.Set(context.Background(), consts.SessionKeyPrefix+pair.AccessId, "0", time.Hour)

	revoked, err := jwt.GenToken("1", "admin", []byte(testSecret), time.Hour, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantData   any
	}{
		{name: "missing header", header: "", wantStatus: fiber.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", wantStatus: fiber.StatusUnauthorized},
		{name: "garbage token", header: "Bearer abc", wantStatus: fiber.StatusUnauthorized},
		{name: "no session", header: "Bearer " + revoked.AccessToken, wantStatus: fiber.StatusUnauthorized},
		{name: "valid", header: "Bearer " + pair.AccessToken, wantStatus: fiber.StatusOK, wantData: "vben"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			out := decode(t, resp)
			if tt.wantStatus == fiber.StatusOK {
				assert.Equal(t, 0, out.Status)
				assert.Equal(t, tt.wantData, out.Data)
				return
			}
			assert.Equal(t, -1, out.Status)
			assert.Nil(t, out.Data)
			assert.Equal(t, httpx.Unauthorized.Msg, out.Msg)
		})
	}
}

func TestUnifiedResponseMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(UnifiedResponseMiddleware())
	app.Get("/detail", func(c *fiber.Ctx) error {
		c.Locals(consts.DETAIL, []string{"a"})
		return nil
	})
	app.Delete("/operation", func(c *fiber.Ctx) error {
		c.Locals(consts.OPERATION, "delete")
		return nil
	})
	app.Get("/failed", func(c *fiber.Ctx) error {
		return httpx.WithRepErr(c, httpx.NotFound, "menu_9")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/detail", nil))
	require.NoError(t, err)
	out := decode(t, resp)
	assert.Equal(t, 0, out.Status)
	assert.Equal(t, "ok", out.Msg)
	assert.Equal(t, []any{"a"}, out.Data)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/operation", nil))
	require.NoError(t, err)
	out = decode(t, resp)
	assert.Equal(t, 0, out.Status)
	assert.Nil(t, out.Data)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/failed", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	out = decode(t, resp)
	assert.Equal(t, -1, out.Status)
	assert.Equal(t, "menu_9", out.Error)
}

func TestExceptionMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(ExceptionMiddleware)
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("boom")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/panic", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	out := decode(t, resp)
	assert.Equal(t, -1, out.Status)
	assert.Equal(t, "boom", out.Error)
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.NewMetrics()
	app := fiber.New()
	app.Use(MetricsMiddleware(m))
	app.Get("/menu/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/menu/menu_1", nil))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `console_http_requests_total{method="GET",route="/menu/:id",status="204"} 1`)
}
