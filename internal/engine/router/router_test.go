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
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/go-arcade/console-mock/internal/engine/model"
	"github.com/go-arcade/console-mock/internal/engine/repo"
	"github.com/go-arcade/console-mock/internal/engine/service"
	"github.com/go-arcade/console-mock/pkg/cache"
	httpx "github.com/go-arcade/console-mock/pkg/http"
	"github.com/go-arcade/console-mock/pkg/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	app   *fiber.App
	token string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	conf := httpx.SetDefaults()
	conf.AccessLog = false
	conf.Auth.SecretKey = "router-test-secret"

	seed, err := repo.LoadSeed()
	require.NoError(t, err)
	store := cache.NewFastCache(cache.FastCacheConfig{})
	services := service.NewServices(conf, store, repo.NewRepositories(seed))

	ts := &testServer{app: NewRouter(conf, services, store, metrics.NewMetrics()).Router()}
	ts.token = ts.login(t, "vben", "123456")
	return ts
}

func (ts *testServer) login(t *testing.T, username, password string) string {
	t.Helper()
	resp := ts.do(t, http.MethodPost, "/api/auth/login", map[string]string{"username": username, "password": password}, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out model.LoginResponse
	decodeData(t, resp, &out)
	require.NotEmpty(t, out.AccessToken)
	return out.AccessToken
}

func (ts *testServer) do(t *testing.T, method, target string, body any, token string) *http.Response {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		data, err := sonic.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := ts.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (ts *testServer) authed(t *testing.T, method, target string, body any) *http.Response {
	t.Helper()
	return ts.do(t, method, target, body, ts.token)
}

func decodeEnvelope(t *testing.T, resp *http.Response) httpx.Response {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out httpx.Response
	require.NoError(t, sonic.Unmarshal(raw, &out), string(raw))
	return out
}

// decodeData 解析统一响应并把 data 转成 out 的类型
func decodeData(t *testing.T, resp *http.Response, out any) httpx.Response {
	t.Helper()
	env := decodeEnvelope(t, resp)
	require.Equal(t, 0, env.Status, env.Msg)
	data, err := sonic.Marshal(env.Data)
	require.NoError(t, err)
	require.NoError(t, sonic.Unmarshal(data, out))
	return env
}

func treeIds(nodes []model.MenuNode) []string {
	var ids []string
	for _, node := range nodes {
		ids = append(ids, node.Id)
		ids = append(ids, treeIds(node.Children)...)
	}
	return ids
}

func TestRouter_Operational(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(t, http.MethodGet, "/health", nil, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "ok", string(body))

	resp = ts.do(t, http.MethodGet, "/version", nil, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, decodeEnvelope(t, resp).Status)

	ts.authed(t, http.MethodGet, "/api/system/menu", nil)
	resp = ts.do(t, http.MethodGet, "/metrics", nil, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, _ = io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "console_menu_items 5")
	assert.Contains(t, string(body), "console_http_requests_total")
}

func TestRouter_RequiresAuth(t *testing.T) {
	ts := newTestServer(t)

	for _, target := range []string{"/api/system/menu", "/api/system/role", "/api/system/users", "/api/system/dict", "/api/user/info", "/api/web-ele/users/binding-role/list"} {
		resp := ts.do(t, http.MethodGet, target, nil, "")
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, target)
		env := decodeEnvelope(t, resp)
		assert.Equal(t, -1, env.Status)
		assert.Nil(t, env.Data)
	}
}

func TestRouter_AuthFlow(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(t, http.MethodPost, "/api/auth/login", map[string]string{"username": "vben", "password": "bad"}, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = ts.do(t, http.MethodPost, "/api/auth/login", map[string]string{"username": "vben"}, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var info model.UserInfo
	decodeData(t, ts.authed(t, http.MethodGet, "/api/user/info", nil), &info)
	assert.Equal(t, "vben", info.Username)
	assert.Equal(t, []string{"super"}, info.Roles)

	resp = ts.do(t, http.MethodPost, "/api/auth/login", map[string]string{"username": "admin", "password": "123456"}, "")
	var login model.LoginResponse
	decodeData(t, resp, &login)

	var refreshed model.LoginResponse
	decodeData(t, ts.do(t, http.MethodPost, "/api/auth/refresh", map[string]string{"refreshToken": login.RefreshToken}, ""), &refreshed)
	assert.Equal(t, "admin", refreshed.Username)

	resp = ts.do(t, http.MethodPost, "/api/auth/refresh", map[string]string{"refreshToken": "bad"}, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = ts.authed(t, http.MethodPost, "/api/auth/logout", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.Equal(t, 0, env.Status)
	assert.Nil(t, env.Data)

	// 登出后 token 失效
	resp = ts.authed(t, http.MethodGet, "/api/user/info", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_MenuQuery(t *testing.T) {
	ts := newTestServer(t)

	var tree []model.MenuNode
	decodeData(t, ts.authed(t, http.MethodGet, "/api/system/menu", nil), &tree)
	assert.Equal(t, []string{"menu_1", "menu_2", "menu_2_1", "menu_2_2", "menu_3"}, treeIds(tree))

	decodeData(t, ts.authed(t, http.MethodGet, "/api/system/menu?name=child-1", nil), &tree)
	assert.Equal(t, []string{"menu_1", "menu_2", "menu_2_1"}, treeIds(tree))

	// 非整数的 menuStatus 视为未传
	decodeData(t, ts.authed(t, http.MethodGet, "/api/system/menu?menuStatus=abc", nil), &tree)
	assert.Len(t, treeIds(tree), 5)

	decodeData(t, ts.authed(t, http.MethodGet, "/api/system/menu?menuStatus=0", nil), &tree)
	assert.Empty(t, tree)

	// 按数字解析，等价写法同样生效
	for _, raw := range []string{"0.0", "%2B0", "-0", "0e3"} {
		decodeData(t, ts.authed(t, http.MethodGet, "/api/system/menu?menuStatus="+raw, nil), &tree)
		assert.Empty(t, tree, raw)
	}
	decodeData(t, ts.authed(t, http.MethodGet, "/api/system/menu?menuStatus=1.0", nil), &tree)
	assert.Len(t, treeIds(tree), 5)
}

func TestRouter_MenuMalformedBody(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.authed(t, http.MethodPatch, "/api/system/menu/missing/status", "{bad")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "菜单不存在", decodeEnvelope(t, resp).Msg)

	resp = ts.authed(t, http.MethodPut, "/api/system/menu/missing", "{bad")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = ts.authed(t, http.MethodPatch, "/api/system/menu/menu_1/status", "{bad")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = ts.authed(t, http.MethodPut, "/api/system/menu/menu_1", map[string]any{"menuSort": 9223372036854775807.0})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var tree []model.MenuNode
	decodeData(t, ts.authed(t, http.MethodGet, "/api/system/menu", nil), &tree)
	assert.Equal(t, 100, tree[0].MenuSort)
}

func TestRouter_MenuCommands(t *testing.T) {
	ts := newTestServer(t)

	payload := map[string]any{
		"name":      "菜单",
		"menuType":  "menu",
		"routePath": "/system/menu",
		"sysCode":   "sys_a",
	}
	resp := ts.authed(t, http.MethodPost, "/api/system/menu", payload)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.Equal(t, -1, env.Status)
	assert.Equal(t, "路由地址已存在", env.Msg)
	assert.Equal(t, "/system/menu", env.Error)

	payload["routePath"] = "/system/unique"
	payload["menuSort"] = "high"
	var created model.MenuItem
	decodeData(t, ts.authed(t, http.MethodPost, "/api/system/menu", payload), &created)
	assert.Equal(t, "menu_6", created.Id)
	assert.Equal(t, 0, created.MenuSort)
	assert.Equal(t, 1, created.MenuStatus)
	assert.Nil(t, created.ParentId)

	resp = ts.authed(t, http.MethodPost, "/api/system/menu", map[string]any{"name": "x", "sysCode": "sys_a", "menuType": "menu"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var updated model.MenuItem
	decodeData(t, ts.authed(t, http.MethodPut, "/api/system/menu/menu_6", map[string]any{"parentId": "menu_1", "menuSort": 3}), &updated)
	assert.Equal(t, "menu_1", *updated.ParentId)
	assert.Equal(t, 3, updated.MenuSort)
	assert.Equal(t, "/system/unique", updated.RoutePath)

	resp = ts.authed(t, http.MethodPut, "/api/system/menu/menu_6", map[string]any{"routePath": "/system/role"})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	resp = ts.authed(t, http.MethodPut, "/api/system/menu/menu_1", map[string]any{"parentId": "menu_2_1"})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	resp = ts.authed(t, http.MethodPut, "/api/system/menu/missing", map[string]any{"name": "x"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp = ts.authed(t, http.MethodPut, "/api/system/menu/menu_6", map[string]any{"menuSort": "x"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	decodeData(t, ts.authed(t, http.MethodPatch, "/api/system/menu/menu_6/status", map[string]any{"menuStatus": 0}), &updated)
	assert.Equal(t, 0, updated.MenuStatus)
	resp = ts.authed(t, http.MethodPatch, "/api/system/menu/menu_6/status", map[string]any{"menuStatus": 5})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	resp = ts.authed(t, http.MethodPatch, "/api/system/menu/missing/status", map[string]any{"menuStatus": 1})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRouter_MenuDelete(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.authed(t, http.MethodDelete, "/api/system/menu/menu_2", nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "存在子菜单，无法删除", decodeEnvelope(t, resp).Msg)

	resp = ts.authed(t, http.MethodDelete, "/api/system/menu/menu_2_1", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.Equal(t, 0, env.Status)
	assert.Nil(t, env.Data)

	resp = ts.authed(t, http.MethodDelete, "/api/system/menu/menu_2_1", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRouter_Roles(t *testing.T) {
	ts := newTestServer(t)

	var page struct {
		Items []model.RoleItem `json:"items"`
		Total int              `json:"total"`
	}
	decodeData(t, ts.authed(t, http.MethodGet, "/api/system/role?pageNo=1&pageSize=2", nil), &page)
	assert.Equal(t, 5, page.Total)
	assert.Len(t, page.Items, 2)

	var role model.RoleItem
	decodeData(t, ts.authed(t, http.MethodPost, "/api/system/role", map[string]any{"roleCode": "auditor", "roleName": "审计"}), &role)
	assert.Equal(t, 6, role.Id)

	resp := ts.authed(t, http.MethodPost, "/api/system/role", map[string]any{"roleCode": "auditor", "roleName": "审计"})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	decodeData(t, ts.authed(t, http.MethodPut, "/api/system/role/6", map[string]any{"roleStatus": "DISABLE"}), &role)
	assert.Equal(t, model.RoleStatusDisable, role.RoleStatus)

	resp = ts.authed(t, http.MethodDelete, "/api/system/role/2", nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	resp = ts.authed(t, http.MethodDelete, "/api/system/role/6", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp = ts.authed(t, http.MethodDelete, "/api/system/role/abc", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRouter_Users(t *testing.T) {
	ts := newTestServer(t)

	var page model.UserPage
	decodeData(t, ts.authed(t, http.MethodGet, "/api/system/users?employmentStatus=ON_JOB&pageSize=1&pageNo=9", nil), &page)
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, 2, page.CurrentPage)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "USER002", page.Data[0].UserCode)

	var user model.UserItem
	decodeData(t, ts.authed(t, http.MethodPut, "/api/system/users/3", map[string]any{"status": "ENABLE"}), &user)
	assert.Equal(t, model.UserStatusEnable, user.UserStatus)
	assert.Equal(t, "MIDDLE_ENGINEER", user.CompanyPosition)

	resp := ts.authed(t, http.MethodPut, "/api/system/users/abc", map[string]any{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	resp = ts.authed(t, http.MethodPut, "/api/system/users/99", map[string]any{})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	decodeData(t, ts.authed(t, http.MethodPost, "/api/web-ele/users/USER002/roles", map[string]any{"addRoleIds": []string{"tester"}}), &user)
	assert.Equal(t, []string{"product_manager", "tester"}, user.Roles)

	var roles []model.RoleItem
	decodeData(t, ts.authed(t, http.MethodGet, "/api/web-ele/users/USER002/roles", nil), &roles)
	require.Len(t, roles, 2)

	resp = ts.authed(t, http.MethodPost, "/api/web-ele/users/USER002/roles", map[string]any{"addRoleIds": []string{"ghost"}})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "角色 ghost 不存在", decodeEnvelope(t, resp).Msg)

	decodeData(t, ts.authed(t, http.MethodGet, "/api/web-ele/users/binding-role/list?roleName=%E7%BB%8F%E7%90%86", nil), &roles)
	require.Len(t, roles, 1)
	assert.Equal(t, "product_manager", roles[0].RoleCode)
}

func TestRouter_Dict(t *testing.T) {
	ts := newTestServer(t)

	var items []model.DictItem
	decodeData(t, ts.authed(t, http.MethodGet, "/api/system/dict?dictCode=sysCode", nil), &items)
	assert.Len(t, items, 3)

	resp := ts.authed(t, http.MethodGet, "/api/system/dict?dictCode=missing", nil)
	env := decodeEnvelope(t, resp)
	assert.Equal(t, []any{}, env.Data)
}

func TestContextPath(t *testing.T) {
	assert.Equal(t, "/api", contextPath("api"))
	assert.Equal(t, "/api", contextPath("/api/"))
	assert.Equal(t, "", contextPath("/"))
	assert.Equal(t, "", contextPath(""))
}
