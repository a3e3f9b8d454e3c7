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
	"slices"
	"sync"
	"time"

	"github.com/go-arcade/console-mock/internal/engine/model"
	"github.com/go-arcade/console-mock/internal/engine/repo"
)

const (
	msgUserNotFound  = "用户不存在"
	msgUserCodeEmpty = "用户编码不能为空"
	msgUserStatus    = "用户状态只能为 ENABLE / DISABLE / UNKNOWN"
	timeLayout       = "2006-01-02 15:04:05"
)

// UserService 用户服务
type UserService struct {
	mu       *sync.Mutex
	userRepo repo.IUserRepository
	roleRepo repo.IRoleRepository
	now      func() time.Time
}

// NewUserService cmdMu 为 nil 时单独加锁
func NewUserService(cmdMu *sync.Mutex, userRepo repo.IUserRepository, roleRepo repo.IRoleRepository) *UserService {
	if cmdMu == nil {
		cmdMu = &sync.Mutex{}
	}
	return &UserService{
		mu:       cmdMu,
		userRepo: userRepo,
		roleRepo: roleRepo,
		now:      time.Now,
	}
}

func matchUser(user model.UserItem, q model.UserQuery) bool {
	if !containsFold(user.UserCode, q.UserCode) || !containsFold(user.UserName, q.UserName) {
		return false
	}
	if q.EmploymentStatus != "" && q.EmploymentStatus != model.EmploymentUnknown &&
		user.EmploymentStatus != q.EmploymentStatus {
		return false
	}
	return true
}

// QueryUsers 过滤后分页
func (us *UserService) QueryUsers(q model.UserQuery) *model.UserPage {
	users := us.userRepo.ListUsers()
	filtered := make([]model.UserItem, 0, len(users))
	for _, user := range users {
		if matchUser(user, q) {
			filtered = append(filtered, user)
		}
	}

	page := q.PageQuery.Normalize()
	start, end, currentPage, totalPage := model.Paginate(len(filtered), page)
	return &model.UserPage{
		Data:        filtered[start:end],
		Total:       len(filtered),
		CurrentPage: currentPage,
		PageSize:    page.PageSize,
		TotalPage:   totalPage,
	}
}

// UpdateUser 更新用户状态和职位，未传的字段保持不变
func (us *UserService) UpdateUser(id int, req *model.UpdateUserRequest) (*model.UserItem, error) {
	if req == nil {
		req = &model.UpdateUserRequest{}
	}
	if req.Status != nil && !req.Status.Valid() {
		return nil, Validation(msgBadParam, msgUserStatus)
	}

	us.mu.Lock()
	defer us.mu.Unlock()

	user, ok := us.userRepo.UpdateUser(id, &model.UserPatch{
		UserStatus:      req.Status,
		CompanyPosition: req.Position,
		UpdateTime:      us.now().Format(timeLayout),
	})
	if !ok {
		return nil, NotFound(msgUserNotFound, id)
	}
	return user, nil
}

// GetUserRoles 用户已绑定的角色，按角色列表顺序返回
func (us *UserService) GetUserRoles(userCode string) ([]model.RoleItem, error) {
	if userCode == "" {
		return nil, Validation(msgUserCodeEmpty, nil)
	}
	user, ok := us.userRepo.GetUserByCode(userCode)
	if !ok {
		return nil, NotFound(msgUserNotFound, userCode)
	}

	roles := us.roleRepo.ListRoles()
	bound := make([]model.RoleItem, 0, len(user.Roles))
	for _, role := range roles {
		if slices.Contains(user.Roles, role.RoleCode) {
			bound = append(bound, role)
		}
	}
	return bound, nil
}

// BindRoles 先移除 DelRoleIds，再追加 AddRoleIds 并去重；AddRoleIds 中任一角色不存在则整体失败
func (us *UserService) BindRoles(userCode string, req *model.BindRolesRequest) (*model.UserItem, error) {
	if userCode == "" {
		return nil, Validation(msgUserCodeEmpty, nil)
	}
	if req == nil {
		req = &model.BindRolesRequest{}
	}

	us.mu.Lock()
	defer us.mu.Unlock()

	user, ok := us.userRepo.GetUserByCode(userCode)
	if !ok {
		return nil, NotFound(msgUserNotFound, userCode)
	}

	roles := slices.DeleteFunc(slices.Clone(user.Roles), func(code string) bool {
		return slices.Contains(req.DelRoleIds, code)
	})
	for _, code := range req.AddRoleIds {
		if _, exists := us.roleRepo.GetRoleByCode(code); !exists {
			return nil, NotFound("角色 "+code+" 不存在", code)
		}
	}
	for _, code := range req.AddRoleIds {
		if !slices.Contains(roles, code) {
			roles = append(roles, code)
		}
	}
	if roles == nil {
		roles = []string{}
	}

	updated, ok := us.userRepo.UpdateUser(user.Id, &model.UserPatch{Roles: roles})
	if !ok {
		return nil, NotFound(msgUserNotFound, userCode)
	}
	return updated, nil
}

func (us *UserService) UserCount() int {
	return us.userRepo.Count()
}
