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

// RoleStatus 角色状态
type RoleStatus string

const (
	RoleStatusEnable  RoleStatus = "ENABLE"
	RoleStatusDisable RoleStatus = "DISABLE"
	RoleStatusUnknown RoleStatus = "UNKNOWN"
)

func (s RoleStatus) Valid() bool {
	switch s {
	case RoleStatusEnable, RoleStatusDisable, RoleStatusUnknown:
		return true
	}
	return false
}

// RoleItem 角色
type RoleItem struct {
	Id         int        `json:"id"`
	RoleCode   string     `json:"roleCode"` // 唯一，用户通过 roleCode 绑定角色
	RoleName   string     `json:"roleName"`
	AppCode    string     `json:"appCode"`
	SysCode    string     `json:"sysCode"`
	RoleStatus RoleStatus `json:"roleStatus"`
}

// RoleQuery 角色查询，三个条件均为不区分大小写的子串匹配
type RoleQuery struct {
	RoleName string
	AppCode  string
	SysCode  string
}

// CreateRoleRequest 新增角色参数
type CreateRoleRequest struct {
	RoleCode   string     `json:"roleCode"`
	RoleName   string     `json:"roleName"`
	AppCode    string     `json:"appCode"`
	SysCode    string     `json:"sysCode"`
	RoleStatus RoleStatus `json:"roleStatus"`
}

// RolePatch 角色局部更新，roleCode 创建后不可修改
type RolePatch struct {
	RoleName   *string     `json:"roleName"`
	AppCode    *string     `json:"appCode"`
	SysCode    *string     `json:"sysCode"`
	RoleStatus *RoleStatus `json:"roleStatus"`
}

func (p *RolePatch) Apply(item *RoleItem) {
	if p == nil {
		return
	}
	if p.RoleName != nil {
		item.RoleName = *p.RoleName
	}
	if p.AppCode != nil {
		item.AppCode = *p.AppCode
	}
	if p.SysCode != nil {
		item.SysCode = *p.SysCode
	}
	if p.RoleStatus != nil {
		item.RoleStatus = *p.RoleStatus
	}
}
