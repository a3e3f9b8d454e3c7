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

import "slices"

// UserStatus 用户状态
type UserStatus string

const (
	UserStatusEnable  UserStatus = "ENABLE"
	UserStatusDisable UserStatus = "DISABLE"
	UserStatusUnknown UserStatus = "UNKNOWN"
)

func (s UserStatus) Valid() bool {
	switch s {
	case UserStatusEnable, UserStatusDisable, UserStatusUnknown:
		return true
	}
	return false
}

// EmploymentStatus 在职状态
type EmploymentStatus string

const (
	EmploymentOnJob   EmploymentStatus = "ON_JOB"
	EmploymentOffJob  EmploymentStatus = "OFF_JOB"
	EmploymentUnknown EmploymentStatus = "UNKNOWN"
)

// Gender 性别
type Gender string

const (
	GenderMale    Gender = "MALE"
	GenderFemale  Gender = "FEMALE"
	GenderUnknown Gender = "UNKNOWN"
)

// UserItem 用户
type UserItem struct {
	Id               int              `json:"id"`
	UserUid          string           `json:"userUid"`
	UserCode         string           `json:"userCode"`
	UserName         string           `json:"userName"`
	Email            string           `json:"email"`
	EmploymentStatus EmploymentStatus `json:"employmentStatus"`
	Gender           Gender           `json:"gender"`
	DeptName         string           `json:"deptName"`
	DeptCode         string           `json:"deptCode"`
	ParentDeptName   string           `json:"parentDeptName"`
	CreateTime       string           `json:"createTime"`
	UpdateTime       string           `json:"updateTime"`
	UserStatus       UserStatus       `json:"userStatus"`
	CompanyPosition  string           `json:"companyPosition"`
	Roles            []string         `json:"roles"` // 绑定的 roleCode
}

func (u UserItem) Clone() UserItem {
	u.Roles = slices.Clone(u.Roles)
	if u.Roles == nil {
		u.Roles = []string{}
	}
	return u
}

// UserQuery 用户列表查询
type UserQuery struct {
	UserCode         string
	UserName         string
	EmploymentStatus EmploymentStatus // 为空或 UNKNOWN 时不过滤
	PageQuery
}

// UserPage 用户分页结果
type UserPage struct {
	Data        []UserItem `json:"data"`
	Total       int        `json:"total"`
	CurrentPage int        `json:"currentPage"`
	PageSize    int        `json:"pageSize"`
	TotalPage   int        `json:"totalPage"`
}

// UpdateUserRequest 更新用户状态和职位
type UpdateUserRequest struct {
	Status   *UserStatus `json:"status"`
	Position *string     `json:"position"`
}

// UserPatch 用户局部更新
type UserPatch struct {
	UserStatus      *UserStatus
	CompanyPosition *string
	Roles           []string // nil 表示不修改
	UpdateTime      string
}

func (p *UserPatch) Apply(item *UserItem) {
	if p == nil {
		return
	}
	if p.UserStatus != nil {
		item.UserStatus = *p.UserStatus
	}
	if p.CompanyPosition != nil {
		item.CompanyPosition = *p.CompanyPosition
	}
	if p.Roles != nil {
		item.Roles = slices.Clone(p.Roles)
	}
	if p.UpdateTime != "" {
		item.UpdateTime = p.UpdateTime
	}
}

// BindRolesRequest 用户角色绑定变更
type BindRolesRequest struct {
	AddRoleIds []string `json:"addRoleIds"`
	DelRoleIds []string `json:"delRoleIds"`
}
