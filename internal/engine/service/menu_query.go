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
	"strings"

	"github.com/go-arcade/console-mock/internal/engine/model"
	"golang.org/x/text/cases"
)

// containsFold 不区分大小写的子串匹配，空 sub 总是匹配
// Caser 有状态，不能跨 goroutine 共享
func containsFold(s, sub string) bool {
	if sub == "" {
		return true
	}
	folder := cases.Fold()
	return strings.Contains(folder.String(s), folder.String(sub))
}

func matchMenu(item model.MenuItem, q model.MenuQuery) bool {
	if !containsFold(item.Name, q.Name) {
		return false
	}
	if !containsFold(item.RoutePath, q.RoutePath) {
		return false
	}
	if q.MenuStatus != nil && item.MenuStatus != *q.MenuStatus {
		return false
	}
	if q.SysCode != "" && item.SysCode != q.SysCode {
		return false
	}
	return true
}

// QueryMenuTree 过滤菜单并补齐命中项的全部祖先，再构建成树
func QueryMenuTree(items []model.MenuItem, q model.MenuQuery) []model.MenuNode {
	if q.IsEmpty() {
		return BuildMenuTree(items, nil)
	}

	byId := make(map[string]model.MenuItem, len(items))
	for _, item := range items {
		byId[item.Id] = item
	}

	keep := make(map[string]bool)
	for _, item := range items {
		if !matchMenu(item, q) {
			continue
		}
		keep[item.Id] = true
		// 向上补齐祖先，遇到顶级、悬空的 parentId 或已收集的 id 时停止
		parentId := item.ParentId
		for parentId != nil && !keep[*parentId] {
			parent, ok := byId[*parentId]
			if !ok {
				break
			}
			keep[parent.Id] = true
			parentId = parent.ParentId
		}
	}

	subset := make([]model.MenuItem, 0, len(keep))
	for _, item := range items {
		if keep[item.Id] {
			subset = append(subset, item)
		}
	}
	return BuildMenuTree(subset, nil)
}
