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
	"maps"
	"slices"

	"github.com/go-arcade/console-mock/internal/engine/model"
)

type IDictRepository interface {
	GetDict(dictCode string) []model.DictItem
}

// DictRepo 字典只读
type DictRepo struct {
	dicts map[string][]model.DictItem
}

func NewDictRepo(seed map[string][]model.DictItem) IDictRepository {
	dicts := maps.Clone(seed)
	if dicts == nil {
		dicts = map[string][]model.DictItem{}
	}
	return &DictRepo{dicts: dicts}
}

// GetDict 未知的 dictCode 返回空切片
func (r *DictRepo) GetDict(dictCode string) []model.DictItem {
	items := slices.Clone(r.dicts[dictCode])
	if items == nil {
		return []model.DictItem{}
	}
	return items
}
