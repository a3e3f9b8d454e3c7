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

package model

// MenuType 菜单类型：目录、菜单、按钮
type MenuType string

const (
	MenuTypeCatalog MenuType = "catalog"
	MenuTypeMenu    MenuType = "menu"
	MenuTypeButton  MenuType = "button"
)

// Valid 是否为合法的菜单类型
func (t MenuType) Valid() bool {
	switch t {
	case MenuTypeCatalog, MenuTypeMenu, MenuTypeButton:
		return true
	}
	return false
}

// 菜单启用状态常量
const (
	MenuEnabled  = 1 // 启用
	MenuDisabled = 0 // 禁用
)

// MenuItem 菜单项，扁平存储，层级由 ParentId 表示
type MenuItem struct {
	Id         string   `json:"id"`
	ParentId   *string  `json:"parentId"` // nil 表示顶级菜单
	Name       string   `json:"name"`
	MenuType   MenuType `json:"menuType"`
	RoutePath  string   `json:"routePath"` // 全局唯一
	MenuIcon   string   `json:"menuIcon"`
	MenuSort   int      `json:"menuSort"` // 同级排序，升序
	MenuStatus int      `json:"menuStatus"`
	SysCode    string   `json:"sysCode"`
}

// MenuNode 树形菜单节点
type MenuNode struct {
	MenuItem
	Children []MenuNode `json:"children"`
}

// MenuQuery 菜单查询条件，零值字段表示不过滤
type MenuQuery struct {
	Name       string
	RoutePath  string
	MenuStatus *int
	SysCode    string
}

func (q MenuQuery) IsEmpty() bool {
	return q.Name == "" && q.RoutePath == "" && q.MenuStatus == nil && q.SysCode == ""
}

// CreateMenuRequest 新增菜单参数
type CreateMenuRequest struct {
	ParentId   *string
	Name       string
	MenuType   MenuType
	RoutePath  *string // nil 表示未传，空串是合法值
	MenuIcon   string
	MenuSort   int
	MenuStatus int
	SysCode    string
}

// MenuPatch 菜单局部更新，只有非 nil 的字段会被写入
type MenuPatch struct {
	ParentSet  bool // ParentId 是否出现在请求中（null 表示移到顶级）
	ParentId   *string
	Name       *string
	MenuType   *MenuType
	RoutePath  *string
	MenuIcon   *string
	MenuSort   *int
	MenuStatus *int
	SysCode    *string
}

// Apply 把 patch 合并到 item 上
func (p *MenuPatch) Apply(item *MenuItem) {
	if p == nil {
		return
	}
	if p.ParentSet {
		item.ParentId = CloneString(p.ParentId)
	}
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.MenuType != nil {
		item.MenuType = *p.MenuType
	}
	if p.RoutePath != nil {
		item.RoutePath = *p.RoutePath
	}
	if p.MenuIcon != nil {
		item.MenuIcon = *p.MenuIcon
	}
	if p.MenuSort != nil {
		item.MenuSort = *p.MenuSort
	}
	if p.MenuStatus != nil {
		item.MenuStatus = *p.MenuStatus
	}
	if p.SysCode != nil {
		item.SysCode = *p.SysCode
	}
}

// Clone 深拷贝，避免调用方通过 ParentId 修改仓储内数据
func (m MenuItem) Clone() MenuItem {
	m.ParentId = CloneString(m.ParentId)
	return m
}
