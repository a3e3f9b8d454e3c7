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

// Repositories 统一管理所有 repository
type Repositories struct {
	Menu    IMenuRepository
	Role    IRoleRepository
	User    IUserRepository
	Dict    IDictRepository
	Account IAccountRepository
}

// NewRepositories 用种子数据初始化所有 repository，每次调用得到互相独立的数据集
func NewRepositories(seed *Seed) *Repositories {
	return &Repositories{
		Menu:    NewMenuRepo(seed.Menus),
		Role:    NewRoleRepo(seed.Roles),
		User:    NewUserRepo(seed.Users),
		Dict:    NewDictRepo(seed.Dicts),
		Account: NewAccountRepo(seed.Accounts),
	}
}
