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
	"math"
	"testing"

	"github.com/go-arcade/console-mock/internal/engine/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menu(id string, parentId *string, sort int) model.MenuItem {
	return model.MenuItem{
		Id:         id,
		ParentId:   parentId,
		Name:       id,
		MenuType:   model.MenuTypeMenu,
		RoutePath:  "/" + id,
		MenuSort:   sort,
		MenuStatus: model.MenuEnabled,
		SysCode:    "sys_a",
	}
}

func ptr[T any](v T) *T { return &v }

func countNodes(nodes []model.MenuNode) int {
	n := 0
	for _, node := range nodes {
		n += 1 + countNodes(node.Children)
	}
	return n
}

func collectIds(nodes []model.MenuNode) []string {
	var ids []string
	for _, node := range nodes {
		ids = append(ids, node.Id)
		ids = append(ids, collectIds(node.Children)...)
	}
	return ids
}

func nodeIds(nodes []model.MenuNode) []string {
	ids := make([]string, 0, len(nodes))
	for _, node := range nodes {
		ids = append(ids, node.Id)
	}
	return ids
}

func TestBuildMenuTree_EveryItemOnce(t *testing.T) {
	items := []model.MenuItem{
		menu("c", ptr("b"), 0),
		menu("a", nil, 2),
		menu("b", ptr("a"), 0),
		menu("d", nil, 1),
		menu("e", ptr("d"), 0),
		menu("f", ptr("b"), 1),
	}

	tree := BuildMenuTree(items, nil)
	assert.Equal(t, len(items), countNodes(tree))
	assert.ElementsMatch(t, []string{"a", "b", "c", "d", "e", "f"}, collectIds(tree))
	assert.Equal(t, []string{"d", "a"}, nodeIds(tree))
	require.Len(t, tree[1].Children, 1)
	assert.Equal(t, []string{"c", "f"}, nodeIds(tree[1].Children[0].Children))
}

func TestBuildMenuTree_StableSiblingOrder(t *testing.T) {
	items := []model.MenuItem{
		menu("x1", nil, 5),
		menu("x2", nil, 1),
		menu("x3", nil, 5),
		menu("x4", nil, 1),
		menu("x5", nil, -3),
	}

	tree := BuildMenuTree(items, nil)
	assert.Equal(t, []string{"x5", "x2", "x4", "x1", "x3"}, nodeIds(tree))
}

func TestBuildMenuTree_ExtremeSortValues(t *testing.T) {
	items := []model.MenuItem{
		menu("a", nil, 1),
		menu("b", nil, math.MinInt),
		menu("c", nil, math.MaxInt),
		menu("d", nil, -1),
	}

	assert.Equal(t, []string{"b", "d", "a", "c"}, nodeIds(BuildMenuTree(items, nil)))
}

func TestBuildMenuTree_LeavesHaveEmptyChildren(t *testing.T) {
	tree := BuildMenuTree([]model.MenuItem{menu("leaf", nil, 0)}, nil)
	require.Len(t, tree, 1)
	assert.NotNil(t, tree[0].Children)
	assert.Empty(t, tree[0].Children)

	empty := BuildMenuTree(nil, nil)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestBuildMenuTree_FromParent(t *testing.T) {
	items := []model.MenuItem{
		menu("a", nil, 0),
		menu("b", ptr("a"), 1),
		menu("c", ptr("a"), 0),
		menu("d", ptr("b"), 0),
	}

	tree := BuildMenuTree(items, ptr("a"))
	assert.Equal(t, []string{"c", "b"}, nodeIds(tree))
	assert.Equal(t, []string{"d"}, nodeIds(tree[1].Children))

	assert.Empty(t, BuildMenuTree(items, ptr("missing")))
}

func TestBuildMenuTree_DanglingAndCyclicInput(t *testing.T) {
	items := []model.MenuItem{
		menu("root", nil, 0),
		menu("orphan", ptr("ghost"), 0),
		menu("p", ptr("q"), 0),
		menu("q", ptr("p"), 0),
	}

	// 悬空和成环的菜单不会出现在从顶级开始的树中
	tree := BuildMenuTree(items, nil)
	assert.Equal(t, []string{"root"}, collectIds(tree))

	// 从环内开始构建时递归会被截断
	cyclic := BuildMenuTree(items, ptr("p"))
	require.Len(t, cyclic, 1)
	assert.Equal(t, "q", cyclic[0].Id)
	require.Len(t, cyclic[0].Children, 1)
	assert.Equal(t, "p", cyclic[0].Children[0].Id)
	require.Len(t, cyclic[0].Children[0].Children, 1)
	assert.Equal(t, "q", cyclic[0].Children[0].Children[0].Id)
	assert.Empty(t, cyclic[0].Children[0].Children[0].Children)
}

func TestBuildMenuTree_DoesNotMutateInput(t *testing.T) {
	items := []model.MenuItem{
		menu("a", nil, 0),
		menu("c", ptr("a"), 3),
		menu("b", ptr("a"), 1),
	}

	tree := BuildMenuTree(items, nil)
	require.Len(t, tree[0].Children, 2)
	*tree[0].Children[0].ParentId = "x"

	assert.Equal(t, []string{"a", "c", "b"}, []string{items[0].Id, items[1].Id, items[2].Id})
	assert.Equal(t, "a", *items[1].ParentId)
	assert.Equal(t, "a", *items[2].ParentId)
}
