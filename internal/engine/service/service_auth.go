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
	"context"

	"github.com/go-arcade/console-mock/internal/engine/consts"
	"github.com/go-arcade/console-mock/internal/engine/model"
	"github.com/go-arcade/console-mock/internal/engine/repo"
	"github.com/go-arcade/console-mock/pkg/cache"
	"github.com/go-arcade/console-mock/pkg/http"
	"github.com/go-arcade/console-mock/pkg/http/jwt"
	"github.com/go-arcade/console-mock/pkg/log"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

const (
	msgBadCredentials  = "用户名或密码错误"
	msgInvalidRefresh  = "refresh token 无效或已过期"
	msgAccountNotFound = "账号不存在"
)

// AuthService 签发和吊销 token，会话以 access_token 的 jti 为 key 存放在缓存中
type AuthService struct {
	auth        http.Auth
	cache       cache.ICache
	accountRepo repo.IAccountRepository
}

func NewAuthService(auth http.Auth, cache cache.ICache, accountRepo repo.IAccountRepository) *AuthService {
	return &AuthService{
		auth:        auth,
		cache:       cache,
		accountRepo: accountRepo,
	}
}

// Login 校验账号密码并签发 token
func (as *AuthService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	if req == nil || req.Username == "" || req.Password == "" {
		return nil, Validation("用户名和密码为必填", nil)
	}
	account, ok := as.accountRepo.GetAccountByUsername(req.Username)
	if !ok {
		return nil, Unauthorized(msgBadCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.Password)); err != nil {
		log.WithContext(ctx).Warnw("login failed", "username", req.Username)
		return nil, Unauthorized(msgBadCredentials)
	}
	return as.issue(ctx, account)
}

// Refresh 用 refresh_token 换取新的 token
func (as *AuthService) Refresh(ctx context.Context, refreshToken string) (*model.LoginResponse, error) {
	if refreshToken == "" {
		return nil, Unauthorized(msgInvalidRefresh)
	}
	userId, err := jwt.ParseRefreshToken(refreshToken, as.auth.SecretKey)
	if err != nil {
		return nil, Unauthorized(msgInvalidRefresh)
	}
	account, ok := as.accountRepo.GetAccount(userId)
	if !ok {
		return nil, Unauthorized(msgInvalidRefresh)
	}
	return as.issue(ctx, account)
}

// Logout 吊销 access_token 对应的会话
func (as *AuthService) Logout(ctx context.Context, accessId string) error {
	if err := as.cache.Del(ctx, consts.SessionKeyPrefix+accessId).Err(); err != nil {
		return errors.Wrapf(err, "delete session %s", accessId)
	}
	return nil
}

// UserInfo 当前登录账号信息
func (as *AuthService) UserInfo(userId string) (*model.UserInfo, error) {
	account, ok := as.accountRepo.GetAccount(userId)
	if !ok {
		return nil, NotFound(msgAccountNotFound, userId)
	}
	return &model.UserInfo{
		Id:       account.Id,
		Username: account.Username,
		RealName: account.RealName,
		Roles:    account.Roles,
		HomePath: account.HomePath,
	}, nil
}

func (as *AuthService) issue(ctx context.Context, account *model.Account) (*model.LoginResponse, error) {
	pair, err := jwt.GenToken(account.Id, account.Username, []byte(as.auth.SecretKey), as.auth.AccessExpire, as.auth.RefreshExpire)
	if err != nil {
		return nil, errors.Wrap(err, "generate token")
	}
	key := consts.SessionKeyPrefix + pair.AccessId
	if err := as.cache.Set(ctx, key, account.Id, as.auth.AccessExpire).Err(); err != nil {
		return nil, errors.Wrapf(err, "save session %s", key)
	}
	log.WithContext(ctx).Infow("account logged in", "username", account.Username)

	return &model.LoginResponse{
		Id:           account.Id,
		Username:     account.Username,
		RealName:     account.RealName,
		Roles:        account.Roles,
		HomePath:     account.HomePath,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}
