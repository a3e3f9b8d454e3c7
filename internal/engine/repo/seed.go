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
	"embed"

	"github.com/go-arcade/console-mock/internal/engine/model"
	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

//go:embed seed/*.yaml
var seedFS embed.FS

// Seed 内置的初始数据，每个仓储在第一次访问时拷贝一份
type Seed struct {
	Menus    []model.MenuItem            `json:"menus"`
	Roles    []model.RoleItem            `json:"roles"`
	Users    []model.UserItem            `json:"users"`
	Dicts    map[string][]model.DictItem `json:"dicts"`
	Accounts []model.Account             `json:"accounts"`
}

var seedFiles = []string{
	"seed/menus.yaml",
	"seed/roles.yaml",
	"seed/users.yaml",
	"seed/dicts.yaml",
	"seed/accounts.yaml",
}

// LoadSeed 解析内置的 yaml 种子数据
func LoadSeed() (*Seed, error) {
	seed := &Seed{}
	for _, name := range seedFiles {
		data, err := seedFS.ReadFile(name)
		if err != nil {
			return nil, errors.Wrapf(err, "read seed %s", name)
		}
		// 各文件只填充自己的顶层字段
		if err := yaml.Unmarshal(data, seed); err != nil {
			return nil, errors.Wrapf(err, "parse seed %s", name)
		}
	}
	return seed, nil
}
