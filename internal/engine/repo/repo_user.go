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

type IUserRepository interface {
	ListUsers() []model.UserItem
	GetUser(id int) (*model.UserItem, bool)
	GetUserByCode(userCode string) (*model.UserItem, bool)
	UpdateUser(id int, patch *model.UserPatch) (*model.UserItem, bool)
	IsRoleBound(roleCode string) bool
	Count() int
}

type UserRepo struct {
	mu    sync.RWMutex
	once  sync.Once
	seed  []model.UserItem
	items []model.UserItem
}

func NewUserRepo(seed []model.UserItem) IUserRepository {
	return &UserRepo{seed: seed}
}

func (r *UserRepo) init() {
	r.once.Do(func() {
		r.items = make([]model.UserItem, 0, len(r.seed))
		for _, user := range r.seed {
			r.items = append(r.items, user.Clone())
		}
	})
}

func (r *UserRepo) find(match func(user model.UserItem) bool) (*model.UserItem, bool) {
	r.init()
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := slices.IndexFunc(r.items, match)
	if idx < 0 {
		return nil, false
	}
	user := r.items[idx].Clone()
	return &user, true
}

// ListUsers 返回全部用户的拷贝
func (r *UserRepo) ListUsers() []model.UserItem {
	r.init()
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]model.UserItem, len(r.items))
	for i, user := range r.items {
		users[i] = user.Clone()
	}
	return users
}

func (r *UserRepo) GetUser(id int) (*model.UserItem, bool) {
	return r.find(func(user model.UserItem) bool { return user.Id == id })
}

// GetUserByCode userCode 精确匹配
func (r *UserRepo) GetUserByCode(userCode string) (*model.UserItem, bool) {
	return r.find(func(user model.UserItem) bool { return user.UserCode == userCode })
}

func (r *UserRepo) UpdateUser(id int, patch *model.UserPatch) (*model.UserItem, bool) {
	r.init()
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := slices.IndexFunc(r.items, func(user model.UserItem) bool { return user.Id == id })
	if idx < 0 {
		return nil, false
	}
	patch.Apply(&r.items[idx])
	user := r.items[idx].Clone()
	return &user, true
}

// IsRoleBound 是否有用户绑定了该角色
func (r *UserRepo) IsRoleBound(roleCode string) bool {
	r.init()
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.ContainsFunc(r.items, func(user model.UserItem) bool {
		return slices.Contains(user.Roles, roleCode)
	})
}

func (r *UserRepo) Count() int {
	r.init()
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
