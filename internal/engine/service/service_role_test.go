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

package service

import (
	"sync"
	"testing"
	"time"

	"github.com/go-arcade/console-mock/internal/engine/model"
	"github.com/go-arcade/console-mock/internal/engine/repo"
	"github.com/go-arcade/console-mock/pkg/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoleService(t *testing.T) *RoleService {
	t.Helper()
	repos := newTestRepos(t)
	return NewRoleService(nil, repos.Role, repos.User)
}

func roleCodes(roles []model.RoleItem) []string {
	codes := make([]string, 0, len(roles))
	for _, role := range roles {
		codes = append(codes, role.RoleCode)
	}
	return codes
}

func TestRoleService_QueryRoles(t *testing.T) {
	rs := newRoleService(t)

	assert.Len(t, rs.QueryRoles(model.RoleQuery{}), 5)
	assert.Equal(t, []string{"admin"}, roleCodes(rs.QueryRoles(model.RoleQuery{RoleName: "管理员"})))
	assert.Len(t, rs.QueryRoles(model.RoleQuery{AppCode: "SYSTEM", SysCode: "SYS_A"}), 5)
	assert.Empty(t, rs.QueryRoles(model.RoleQuery{SysCode: "sys_b"}))
}

func TestRoleService_ListRoles_Pagination(t *testing.T) {
	rs := newRoleService(t)

	items, total := rs.ListRoles(model.RoleQuery{}, model.PageQuery{PageNo: 2, PageSize: 2})
	assert.Equal(t, 5, total)
	assert.Equal(t, []string{"product_manager", "tester"}, roleCodes(items))

	// 超出最后一页时返回最后一页
	items, _ = rs.ListRoles(model.RoleQuery{}, model.PageQuery{PageNo: 9, PageSize: 2})
	assert.Equal(t, []string{"operator"}, roleCodes(items))

	items, total = rs.ListRoles(model.RoleQuery{RoleName: "none"}, model.PageQuery{})
	assert.Equal(t, 0, total)
	assert.Empty(t, items)
}

func TestRoleService_CreateRole(t *testing.T) {
	rs := newRoleService(t)

	role, err := rs.CreateRole(&model.CreateRoleRequest{RoleCode: "auditor", RoleName: "审计"})
	require.NoError(t, err)
	assert.Equal(t, 6, role.Id)
	assert.Equal(t, model.RoleStatusEnable, role.RoleStatus)

	_, err = rs.CreateRole(&model.CreateRoleRequest{RoleCode: "auditor", RoleName: "again"})
	assert.Equal(t, KindConflict, KindOf(err))

	_, err = rs.CreateRole(&model.CreateRoleRequest{RoleCode: "x"})
	assert.Equal(t, KindValidation, KindOf(err))

	_, err = rs.CreateRole(&model.CreateRoleRequest{RoleCode: "y", RoleName: "y", RoleStatus: "ON"})
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestRoleService_UpdateRole(t *testing.T) {
	rs := newRoleService(t)

	status := model.RoleStatusDisable
	role, err := rs.UpdateRole(2, &model.RolePatch{RoleStatus: &status})
	require.NoError(t, err)
	assert.Equal(t, model.RoleStatusDisable, role.RoleStatus)
	assert.Equal(t, "developer", role.RoleCode)

	_, err = rs.UpdateRole(99, &model.RolePatch{})
	assert.Equal(t, KindNotFound, KindOf(err))

	_, err = rs.UpdateRole(2, &model.RolePatch{RoleName: ptr("")})
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestRoleService_DeleteRole(t *testing.T) {
	rs := newRoleService(t)

	// developer 仍被用户绑定
	assert.Equal(t, KindConflict, KindOf(rs.DeleteRole(2)))
	require.NoError(t, rs.DeleteRole(4))
	assert.Equal(t, KindNotFound, KindOf(rs.DeleteRole(4)))
	assert.Equal(t, 4, rs.RoleCount())
}

// hookedRoleRepo 第一次 GetRoleByCode 返回前执行 after
type hookedRoleRepo struct {
	repo.IRoleRepository
	once  sync.Once
	after func()
}

func (r *hookedRoleRepo) GetRoleByCode(roleCode string) (*model.RoleItem, bool) {
	role, ok := r.IRoleRepository.GetRoleByCode(roleCode)
	r.once.Do(r.after)
	return role, ok
}

func TestServices_DeleteRoleWhileBinding(t *testing.T) {
	repos := newTestRepos(t)

	var services *Services
	var deleteErr error
	deleted := make(chan struct{})
	repos.Role = &hookedRoleRepo{
		IRoleRepository: repos.Role,
		after: func() {
			// 绑定已查到 tester，此时并发删除 tester
			go func() {
				defer close(deleted)
				deleteErr = services.Role.DeleteRole(4)
			}()
			select {
			case <-deleted:
			case <-time.After(50 * time.Millisecond):
			}
		},
	}
	services = NewServices(&http.Http{}, nil, repos)

	user, err := services.User.BindRoles("USER003", &model.BindRolesRequest{AddRoleIds: []string{"tester"}})
	require.NoError(t, err)
	<-deleted

	assert.Contains(t, user.Roles, "tester")
	assert.Equal(t, KindConflict, KindOf(deleteErr))
	_, exists := repos.Role.GetRoleByCode("tester")
	assert.True(t, exists)
}
