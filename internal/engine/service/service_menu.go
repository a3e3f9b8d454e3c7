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
	msgBadParam       = "参数错误"
	msgMenuIdEmpty    = "缺少菜单 id"
	msgMenuNotFound   = "菜单不存在"
	msgRoutePathUsed  = "路由地址已存在"
	msgMenuHasChild   = "存在子菜单，无法删除"
	msgMenuParentLoop = "上级菜单不能是自身或其子菜单"
	msgMenuStatus     = "menuStatus 必须为 0 或 1"
)

// MenuService 菜单服务，命令在 mu 下串行执行，保证校验和写入之间不被打断
type MenuService struct {
	mu       sync.Mutex
	menuRepo repo.IMenuRepository
}

func NewMenuService(menuRepo repo.IMenuRepository) *MenuService {
	return &MenuService{
		menuRepo: menuRepo,
	}
}

// QueryMenus 按条件查询菜单树，命中项的祖先一并返回
func (s *MenuService) QueryMenus(q model.MenuQuery) []model.MenuNode {
	return QueryMenuTree(s.menuRepo.GetMenus(), q)
}

// GetMenuTree 从 parentId 开始构建菜单子树
func (s *MenuService) GetMenuTree(parentId *string) []model.MenuNode {
	return BuildMenuTree(s.menuRepo.GetMenus(), parentId)
}

func (s *MenuService) GetMenu(id string) (*model.MenuItem, error) {
	if id == "" {
		return nil, Validation(msgMenuIdEmpty, nil)
	}
	item, ok := s.menuRepo.GetMenu(id)
	if !ok {
		return nil, NotFound(msgMenuNotFound, id)
	}
	return item, nil
}

// CreateMenu 新增菜单
func (s *MenuService) CreateMenu(req *model.CreateMenuRequest) (*model.MenuItem, error) {
	if req.Name == "" || req.RoutePath == nil {
		return nil, Validation(msgBadParam, "菜单名称和路由地址为必填")
	}
	if req.SysCode == "" {
		return nil, Validation(msgBadParam, "系统为必填")
	}
	if !req.MenuType.Valid() {
		return nil, Validation(msgBadParam, "菜单类型为必填，且只能为 catalog / menu / button")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.menuRepo.RoutePathExists(*req.RoutePath, "") {
		return nil, Conflict(msgRoutePathUsed, *req.RoutePath)
	}

	status := model.MenuEnabled
	if req.MenuStatus == model.MenuDisabled {
		status = model.MenuDisabled
	}
	item := s.menuRepo.AddMenu(model.MenuItem{
		ParentId:   model.CloneString(req.ParentId),
		Name:       req.Name,
		MenuType:   req.MenuType,
		RoutePath:  *req.RoutePath,
		MenuIcon:   req.MenuIcon,
		MenuSort:   req.MenuSort,
		MenuStatus: status,
		SysCode:    req.SysCode,
	})
	log.Infow("menu created", "id", item.Id, "routePath", item.RoutePath)
	return &item, nil
}

// UpdateMenu 局部更新，只写入 patch 中出现的字段
func (s *MenuService) UpdateMenu(id string, patch *model.MenuPatch) (*model.MenuItem, error) {
	if id == "" {
		return nil, Validation(msgMenuIdEmpty, nil)
	}
	if patch == nil {
		patch = &model.MenuPatch{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.menuRepo.GetMenu(id); !ok {
		return nil, NotFound(msgMenuNotFound, id)
	}
	if patch.RoutePath != nil && s.menuRepo.RoutePathExists(*patch.RoutePath, id) {
		return nil, Conflict(msgRoutePathUsed, *patch.RoutePath)
	}
	if patch.MenuType != nil && !patch.MenuType.Valid() {
		return nil, Validation(msgBadParam, "菜单类型只能为 catalog / menu / button")
	}
	if patch.MenuStatus != nil && !validMenuStatus(*patch.MenuStatus) {
		return nil, Validation(msgMenuStatus, *patch.MenuStatus)
	}
	if patch.ParentSet && patch.ParentId != nil && s.createsCycle(id, *patch.ParentId) {
		return nil, Conflict(msgMenuParentLoop, *patch.ParentId)
	}

	updated, ok := s.menuRepo.UpdateMenu(id, patch)
	if !ok {
		return nil, NotFound(msgMenuNotFound, id)
	}
	return updated, nil
}

// UpdateMenuStatus 切换启用状态，status 必须为 0 或 1
func (s *MenuService) UpdateMenuStatus(id string, status *int) (*model.MenuItem, error) {
	if id == "" {
		return nil, Validation(msgMenuIdEmpty, nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.menuRepo.GetMenu(id); !ok {
		return nil, NotFound(msgMenuNotFound, id)
	}
	if status == nil || !validMenuStatus(*status) {
		return nil, Validation(msgMenuStatus, nil)
	}

	updated, ok := s.menuRepo.UpdateMenu(id, &model.MenuPatch{MenuStatus: status})
	if !ok {
		return nil, NotFound(msgMenuNotFound, id)
	}
	return updated, nil
}

// DeleteMenu 删除菜单，存在子菜单时拒绝
func (s *MenuService) DeleteMenu(id string) error {
	if id == "" {
		return Validation(msgMenuIdEmpty, nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.menuRepo.GetMenu(id); !ok {
		return NotFound(msgMenuNotFound, id)
	}
	if n := s.menuRepo.CountChildren(id); n > 0 {
		return Conflict(msgMenuHasChild, n)
	}
	if !s.menuRepo.RemoveMenu(id) {
		return NotFound(msgMenuNotFound, id)
	}
	log.Infow("menu deleted", "id", id)
	return nil
}

// MenuCount 当前菜单数量
func (s *MenuService) MenuCount() int {
	return s.menuRepo.Count()
}

// createsCycle 把 id 挂到 parentId 下是否会形成环：parentId 是自身或沿祖先链能走回 id
func (s *MenuService) createsCycle(id, parentId string) bool {
	seen := map[string]bool{}
	for cur := parentId; ; {
		if cur == id {
			return true
		}
		if seen[cur] {
			return false
		}
		seen[cur] = true
		parent, ok := s.menuRepo.GetMenu(cur)
		if !ok || parent.ParentId == nil {
			return false
		}
		cur = *parent.ParentId
	}
}

func validMenuStatus(status int) bool {
	return status == model.MenuEnabled || status == model.MenuDisabled
}
