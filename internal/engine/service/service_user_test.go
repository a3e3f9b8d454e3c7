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
	"testing"
	"time"

	"github.com/go-arcade/console-mock/internal/engine/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	repos := newTestRepos(t)
	us := NewUserService(nil, repos.User, repos.Role)
	us.now = func() time.Time { return time.Date(2025, 3, 1, 8, 30, 0, 0, time.Local) }
	return us
}

func TestUserService_QueryUsers(t *testing.T) {
	us := newUserService(t)

	tests := []struct {
		name      string
		query     model.UserQuery
		wantCodes []string
		wantPage  int
		wantTotal int
	}{
		{"all", model.UserQuery{}, []string{"USER001", "USER002", "USER003"}, 1, 1},
		{"userCode insensitive", model.UserQuery{UserCode: "user00"}, []string{"USER001", "USER002", "USER003"}, 1, 1},
		{"userName", model.UserQuery{UserName: "李"}, []string{"USER002"}, 1, 1},
		{"employment", model.UserQuery{EmploymentStatus: model.EmploymentOffJob}, []string{"USER003"}, 1, 1},
		{"employment unknown ignored", model.UserQuery{EmploymentStatus: model.EmploymentUnknown}, []string{"USER001", "USER002", "USER003"}, 1, 1},
		{"second page", model.UserQuery{PageQuery: model.PageQuery{PageNo: 2, PageSize: 2}}, []string{"USER003"}, 2, 2},
		{"page clamps", model.UserQuery{PageQuery: model.PageQuery{PageNo: 5, PageSize: 2}}, []string{"USER003"}, 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := us.QueryUsers(tt.query)
			codes := make([]string, 0, len(page.Data))
			for _, u := range page.Data {
				codes = append(codes, u.UserCode)
			}
			assert.Equal(t, tt.wantCodes, codes)
			assert.Equal(t, tt.wantPage, page.CurrentPage)
			assert.Equal(t, tt.wantTotal, page.TotalPage)
		})
	}

	empty := us.QueryUsers(model.UserQuery{UserName: "nobody"})
	assert.Equal(t, 0, empty.Total)
	assert.Equal(t, 1, empty.CurrentPage)
	assert.Equal(t, 0, empty.TotalPage)
	assert.Equal(t, 10, empty.PageSize)
	assert.NotNil(t, empty.Data)
}

func TestUserService_UpdateUser(t *testing.T) {
	us := newUserService(t)

	status := model.UserStatusDisable
	user, err := us.UpdateUser(1, &model.UpdateUserRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, model.UserStatusDisable, user.UserStatus)
	assert.Equal(t, "SENIOR_ENGINEER", user.CompanyPosition)
	assert.Equal(t, "2025-03-01 08:30:00", user.UpdateTime)

	user, err = us.UpdateUser(1, &model.UpdateUserRequest{Position: ptr("CTO")})
	require.NoError(t, err)
	assert.Equal(t, "CTO", user.CompanyPosition)
	assert.Equal(t, model.UserStatusDisable, user.UserStatus)

	bad := model.UserStatus("LOCKED")
	_, err = us.UpdateUser(1, &model.UpdateUserRequest{Status: &bad})
	assert.Equal(t, KindValidation, KindOf(err))

	_, err = us.UpdateUser(42, &model.UpdateUserRequest{})
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestUserService_GetUserRoles(t *testing.T) {
	us := newUserService(t)

	roles, err := us.GetUserRoles("USER001")
	require.NoError(t, err)
	assert.Equal(t, []string{"admin", "developer"}, roleCodes(roles))

	_, err = us.GetUserRoles("USER404")
	assert.Equal(t, KindNotFound, KindOf(err))
	_, err = us.GetUserRoles("")
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestUserService_BindRoles(t *testing.T) {
	us := newUserService(t)

	user, err := us.BindRoles("USER001", &model.BindRolesRequest{
		AddRoleIds: []string{"tester", "admin", "tester"},
		DelRoleIds: []string{"developer"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"admin", "tester"}, user.Roles)

	_, err = us.BindRoles("USER001", &model.BindRolesRequest{AddRoleIds: []string{"ghost"}})
	assert.Equal(t, KindNotFound, KindOf(err))
	se, _ := AsError(err)
	assert.Equal(t, "ghost", se.Detail)

	// 失败时不修改绑定
	roles, err := us.GetUserRoles("USER001")
	require.NoError(t, err)
	assert.Equal(t, []string{"admin", "tester"}, roleCodes(roles))

	user, err = us.BindRoles("USER003", &model.BindRolesRequest{DelRoleIds: []string{"developer"}})
	require.NoError(t, err)
	assert.NotNil(t, user.Roles)
	assert.Empty(t, user.Roles)

	_, err = us.BindRoles("USER404", nil)
	assert.Equal(t, KindNotFound, KindOf(err))
}
