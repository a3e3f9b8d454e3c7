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

// Account 可登录的控制台账号
type Account struct {
	Id       string   `json:"id"`
	Username string   `json:"username"`
	Password string   `json:"password,omitempty"` // 种子中为明文，加载后替换为 bcrypt hash
	RealName string   `json:"realName"`
	Roles    []string `json:"roles"`
	HomePath string   `json:"homePath"`
}

// LoginRequest 登录参数
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse 登录结果
type LoginResponse struct {
	Id           string   `json:"id"`
	Username     string   `json:"username"`
	RealName     string   `json:"realName"`
	Roles        []string `json:"roles"`
	HomePath     string   `json:"homePath"`
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
}

// RefreshRequest 刷新 token 参数
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// UserInfo 当前登录账号信息
type UserInfo struct {
	Id       string   `json:"id"`
	Username string   `json:"username"`
	RealName string   `json:"realName"`
	Roles    []string `json:"roles"`
	HomePath string   `json:"homePath"`
}
