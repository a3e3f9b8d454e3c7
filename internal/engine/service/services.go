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

	"github.com/go-arcade/console-mock/internal/engine/repo"
	"github.com/go-arcade/console-mock/pkg/cache"
	"github.com/go-arcade/console-mock/pkg/http"
)

// Services 统一管理所有 service
type Services struct {
	Menu *MenuService
	Role *RoleService
	User *UserService
	Dict *DictService
	Auth *AuthService
}

// NewServices 初始化所有 service
// 角色和用户的写操作共用一把锁，角色删除与角色绑定互斥
func NewServices(httpConf *http.Http, cache cache.ICache, repos *repo.Repositories) *Services {
	cmdMu := &sync.Mutex{}
	return &Services{
		Menu: NewMenuService(repos.Menu),
		Role: NewRoleService(cmdMu, repos.Role, repos.User),
		User: NewUserService(cmdMu, repos.User, repos.Role),
		Dict: NewDictService(repos.Dict),
		Auth: NewAuthService(httpConf.Auth, cache, repos.Account),
	}
}
