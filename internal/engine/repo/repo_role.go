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

package repo

import (
	"slices"
	"sync"

	"github.com/go-arcade/console-mock/internal/engine/model"
)

type IRoleRepository interface {
	ListRoles() []model.RoleItem
	GetRole(id int) (*model.RoleItem, bool)
	GetRoleByCode(roleCode string) (*model.RoleItem, bool)
	AddRole(role model.RoleItem) model.RoleItem
	UpdateRole(id int, patch *model.RolePatch) (*model.RoleItem, bool)
	RemoveRole(id int) bool
	Count() int
}

type RoleRepo struct {
	mu     sync.RWMutex
	once   sync.Once
	seed   []model.RoleItem
	items  []model.RoleItem
	nextId int
}

func NewRoleRepo(seed []model.RoleItem) IRoleRepository {
	return &RoleRepo{seed: seed}
}

func (r *RoleRepo) init() {
	r.once.Do(func() {
		r.items = slices.Clone(r.seed)
		if r.items == nil {
			r.items = []model.RoleItem{}
		}
		for _, role := range r.items {
			r.nextId = max(r.nextId, role.Id)
		}
	})
}

func (r *RoleRepo) indexOf(id int) int {
	return slices.IndexFunc(r.items, func(role model.RoleItem) bool { return role.Id == id })
}

// ListRoles 返回全部角色
func (r *RoleRepo) ListRoles() []model.RoleItem {
	r.init()
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.items)
}

// GetRole 根据 id 获取角色
func (r *RoleRepo) GetRole(id int) (*model.RoleItem, bool) {
	r.init()
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, false
	}
	role := r.items[idx]
	return &role, true
}

// GetRoleByCode 根据 roleCode 获取角色
func (r *RoleRepo) GetRoleByCode(roleCode string) (*model.RoleItem, bool) {
	r.init()
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := slices.IndexFunc(r.items, func(role model.RoleItem) bool { return role.RoleCode == roleCode })
	if idx < 0 {
		return nil, false
	}
	role := r.items[idx]
	return &role, true
}

// AddRole 分配自增 id 后追加
func (r *RoleRepo) AddRole(role model.RoleItem) model.RoleItem {
	r.init()
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextId++
	role.Id = r.nextId
	r.items = append(r.items, role)
	return role
}

func (r *RoleRepo) UpdateRole(id int, patch *model.RolePatch) (*model.RoleItem, bool) {
	r.init()
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, false
	}
	patch.Apply(&r.items[idx])
	role := r.items[idx]
	return &role, true
}

func (r *RoleRepo) RemoveRole(id int) bool {
	r.init()
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return false
	}
	r.items = slices.Delete(r.items, idx, idx+1)
	return true
}

func (r *RoleRepo) Count() int {
	r.init()
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
