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
	"slices"
	"sync"

	"github.com/go-arcade/console-mock/internal/engine/model"
	"github.com/go-arcade/console-mock/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

type IAccountRepository interface {
	GetAccount(id string) (*model.Account, bool)
	GetAccountByUsername(username string) (*model.Account, bool)
}

// AccountRepo 登录账号，只读，密码在首次访问时转为 bcrypt hash
type AccountRepo struct {
	once  sync.Once
	seed  []model.Account
	items []model.Account
}

func NewAccountRepo(seed []model.Account) IAccountRepository {
	return &AccountRepo{seed: seed}
}

func (r *AccountRepo) init() {
	r.once.Do(func() {
		r.items = make([]model.Account, 0, len(r.seed))
		for _, account := range r.seed {
			hash, err := bcrypt.GenerateFromPassword([]byte(account.Password), bcrypt.DefaultCost)
			if err != nil {
				log.Errorw("hash account password failed", "username", account.Username, "error", err)
				continue
			}
			account.Password = string(hash)
			account.Roles = slices.Clone(account.Roles)
			r.items = append(r.items, account)
		}
	})
}

func (r *AccountRepo) find(match func(account model.Account) bool) (*model.Account, bool) {
	r.init()
	idx := slices.IndexFunc(r.items, match)
	if idx < 0 {
		return nil, false
	}
	account := r.items[idx]
	account.Roles = slices.Clone(account.Roles)
	return &account, true
}

func (r *AccountRepo) GetAccount(id string) (*model.Account, bool) {
	return r.find(func(account model.Account) bool { return account.Id == id })
}

func (r *AccountRepo) GetAccountByUsername(username string) (*model.Account, bool) {
	return r.find(func(account model.Account) bool { return account.Username == username })
}
