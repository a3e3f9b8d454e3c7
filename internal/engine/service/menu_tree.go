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
	"cmp"
	"slices"

	"github.com/go-arcade/console-mock/internal/engine/model"
)

const rootKey = "\x00root"

func parentKey(parentId *string) string {
	if parentId == nil {
		return rootKey
	}
	return *parentId
}

// BuildMenuTree 以 parentId 为根构建菜单树，parentId 为 nil 时从顶级菜单开始
// 同级按 menuSort 升序，相同时保持输入顺序
func BuildMenuTree(items []model.MenuItem, parentId *string) []model.MenuNode {
	children := make(map[string][]model.MenuItem, len(items))
	for _, item := range items {
		key := parentKey(item.ParentId)
		children[key] = append(children[key], item)
	}
	for _, list := range children {
		slices.SortStableFunc(list, func(a, b model.MenuItem) int {
			return cmp.Compare(a.MenuSort, b.MenuSort)
		})
	}
	return buildLevel(children, parentKey(parentId), map[string]bool{})
}

// buildLevel path 记录当前递归路径上的 id，遇到环时截断
func buildLevel(children map[string][]model.MenuItem, key string, path map[string]bool) []model.MenuNode {
	list := children[key]
	nodes := make([]model.MenuNode, 0, len(list))
	for _, item := range list {
		node := model.MenuNode{MenuItem: item.Clone(), Children: []model.MenuNode{}}
		if !path[item.Id] {
			path[item.Id] = true
			node.Children = buildLevel(children, item.Id, path)
			delete(path, item.Id)
		}
		nodes = append(nodes, node)
	}
	return nodes
}
