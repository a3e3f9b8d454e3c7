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

	"github.com/go-arcade/console-mock/internal/engine/model"
	"github.com/go-arcade/console-mock/internal/engine/repo"
	"github.com/go-arcade/console-mock/pkg/log"
)

const (
	msgRoleNotFound  = "角色不存在"
	msgRoleCodeUsed  = "角色编码已存在"
	msgRoleStillUsed = "角色已绑定用户，无法删除"
)

// RoleService 角色服务
type RoleService struct {
	mu       *sync.Mutex // 与 UserService 共用，绑定检查和删除之间不会插入角色绑定
	roleRepo repo.IRoleRepository
	userRepo repo.IUserRepository
}

// NewRoleService cmdMu 为 nil 时单独加锁
func NewRoleService(cmdMu *sync.Mutex, roleRepo repo.IRoleRepository, userRepo repo.IUserRepository) *RoleService {
	if cmdMu == nil {
		cmdMu = &sync.Mutex{}
	}
	return &RoleService{
		mu:       cmdMu,
		roleRepo: roleRepo,
		userRepo: userRepo,
	}
}

func matchRole(role model.RoleItem, q model.RoleQuery) bool {
	return containsFold(role.RoleName, q.RoleName) &&
		containsFold(role.AppCode, q.AppCode) &&
		containsFold(role.SysCode, q.SysCode)
}

// QueryRoles 按条件过滤角色，空条件返回全部
func (rs *RoleService) QueryRoles(q model.RoleQuery) []model.RoleItem {
	roles := rs.roleRepo.ListRoles()
	result := make([]model.RoleItem, 0, len(roles))
	for _, role := range roles {
		if matchRole(role, q) {
			result = append(result, role)
		}
	}
	return result
}

// ListRoles 过滤后分页，页码超出时落到最后一页
func (rs *RoleService) ListRoles(q model.RoleQuery, page model.PageQuery) ([]model.RoleItem, int) {
	roles := rs.QueryRoles(q)
	start, end, _, _ := model.Paginate(len(roles), page)
	return roles[start:end], len(roles)
}

// CreateRole 新增角色，roleCode 唯一
func (rs *RoleService) CreateRole(req *model.CreateRoleRequest) (*model.RoleItem, error) {
	if req.RoleCode == "" || req.RoleName == "" {
		return nil, Validation(msgBadParam, "角色编码和角色名称为必填")
	}
	status := req.RoleStatus
	if status == "" {
		status = model.RoleStatusEnable
	}
	if !status.Valid() {
		return nil, Validation(msgBadParam, "角色状态只能为 ENABLE / DISABLE / UNKNOWN")
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()

	if _, exists := rs.roleRepo.GetRoleByCode(req.RoleCode); exists {
		return nil, Conflict(msgRoleCodeUsed, req.RoleCode)
	}
	role := rs.roleRepo.AddRole(model.RoleItem{
		RoleCode:   req.RoleCode,
		RoleName:   req.RoleName,
		AppCode:    req.AppCode,
		SysCode:    req.SysCode,
		RoleStatus: status,
	})
	log.Infow("role created", "id", role.Id, "roleCode", role.RoleCode)
	return &role, nil
}

// UpdateRole 局部更新角色
func (rs *RoleService) UpdateRole(id int, patch *model.RolePatch) (*model.RoleItem, error) {
	if patch == nil {
		patch = &model.RolePatch{}
	}
	if patch.RoleName != nil && *patch.RoleName == "" {
		return nil, Validation(msgBadParam, "角色名称不能为空")
	}
	if patch.RoleStatus != nil && !patch.RoleStatus.Valid() {
		return nil, Validation(msgBadParam, "角色状态只能为 ENABLE / DISABLE / UNKNOWN")
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()

	role, ok := rs.roleRepo.UpdateRole(id, patch)
	if !ok {
		return nil, NotFound(msgRoleNotFound, id)
	}
	return role, nil
}

// DeleteRole 删除角色，仍被用户绑定时拒绝
func (rs *RoleService) DeleteRole(id int) error {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	role, ok := rs.roleRepo.GetRole(id)
	if !ok {
		return NotFound(msgRoleNotFound, id)
	}
	if rs.userRepo.IsRoleBound(role.RoleCode) {
		return Conflict(msgRoleStillUsed, role.RoleCode)
	}
	if !rs.roleRepo.RemoveRole(id) {
		return NotFound(msgRoleNotFound, id)
	}
	log.Infow("role deleted", "id", id, "roleCode", role.RoleCode)
	return nil
}

func (rs *RoleService) RoleCount() int {
	return rs.roleRepo.Count()
}
