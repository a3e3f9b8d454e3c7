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
	"fmt"
	"slices"
	"sync"

	"github.com/go-arcade/console-mock/internal/engine/model"
)

type IMenuRepository interface {
	GetMenus() []model.MenuItem
	GetMenu(id string) (*model.MenuItem, bool)
	HasChildren(id string) bool
	CountChildren(id string) int
	RoutePathExists(routePath, excludeId string) bool
	AddMenu(item model.MenuItem) model.MenuItem
	UpdateMenu(id string, patch *model.MenuPatch) (*model.MenuItem, bool)
	RemoveMenu(id string) bool
	Count() int
}

// MenuRepo 内存菜单仓储，独占扁平菜单列表和 id 计数器
type MenuRepo struct {
	mu      sync.RWMutex
	once    sync.Once
	seed    []model.MenuItem
	items   []model.MenuItem
	issued  map[string]struct{} // 出现过的全部 id，删除后也不复用
	counter int
}

func NewMenuRepo(seed []model.MenuItem) IMenuRepository {
	return &MenuRepo{seed: seed}
}

// init 第一次访问时载入种子数据，之后即使列表被删空也不会重新载入
func (r *MenuRepo) init() {
	r.once.Do(func() {
		r.items = make([]model.MenuItem, 0, len(r.seed))
		r.issued = make(map[string]struct{}, len(r.seed))
		for _, item := range r.seed {
			r.items = append(r.items, item.Clone())
			r.issued[item.Id] = struct{}{}
		}
		r.counter = len(r.seed)
	})
}

func (r *MenuRepo) nextId() string {
	for {
		r.counter++
		id := fmt.Sprintf("menu_%d", r.counter)
		if _, used := r.issued[id]; !used {
			r.issued[id] = struct{}{}
			return id
		}
	}
}

func (r *MenuRepo) indexOf(id string) int {
	return slices.IndexFunc(r.items, func(item model.MenuItem) bool {
		return item.Id == id
	})
}

// GetMenus 返回当前全部菜单的快照，保持插入顺序
func (r *MenuRepo) GetMenus() []model.MenuItem {
	r.init()
	r.mu.RLock()
	defer r.mu.RUnlock()

	menus := make([]model.MenuItem, len(r.items))
	for i, item := range r.items {
		menus[i] = item.Clone()
	}
	return menus
}

// GetMenu 获取菜单
func (r *MenuRepo) GetMenu(id string) (*model.MenuItem, bool) {
	r.init()
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, false
	}
	menu := r.items[idx].Clone()
	return &menu, true
}

// HasChildren 是否存在 parentId 指向 id 的菜单
func (r *MenuRepo) HasChildren(id string) bool {
	return r.CountChildren(id) > 0
}

// CountChildren 直接子菜单数量
func (r *MenuRepo) CountChildren(id string) int {
	r.init()
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, item := range r.items {
		if item.ParentId != nil && *item.ParentId == id {
			n++
		}
	}
	return n
}

// RoutePathExists 路由地址是否已被 excludeId 以外的菜单使用，excludeId 为空表示不排除
func (r *MenuRepo) RoutePathExists(routePath, excludeId string) bool {
	r.init()
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.ContainsFunc(r.items, func(item model.MenuItem) bool {
		return item.RoutePath == routePath && (excludeId == "" || item.Id != excludeId)
	})
}

// AddMenu 分配新 id 并追加到末尾，传入的 Id 会被忽略
func (r *MenuRepo) AddMenu(item model.MenuItem) model.MenuItem {
	r.init()
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := item.Clone()
	stored.Id = r.nextId()
	r.items = append(r.items, stored)
	return stored.Clone()
}

// UpdateMenu 合并 patch 中出现的字段，id 不存在时返回 false
func (r *MenuRepo) UpdateMenu(id string, patch *model.MenuPatch) (*model.MenuItem, bool) {
	r.init()
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, false
	}
	patch.Apply(&r.items[idx])
	updated := r.items[idx].Clone()
	return &updated, true
}

// RemoveMenu 删除菜单，不检查子菜单
func (r *MenuRepo) RemoveMenu(id string) bool {
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

func (r *MenuRepo) Count() int {
	r.init()
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
