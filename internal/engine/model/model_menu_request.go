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

import (
	"fmt"
	"math"

	"github.com/bytedance/sonic"
)

// FieldError 请求字段类型错误
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func decodeBody(body []byte) (map[string]any, error) {
	fields := map[string]any{}
	if len(body) == 0 {
		return fields, nil
	}
	if err := sonic.Unmarshal(body, &fields); err != nil {
		return nil, &FieldError{Field: "body", Reason: "must be a JSON object"}
	}
	return fields, nil
}

// DecodeCreateMenuRequest 解析新增菜单请求。
// menuSort 非数字时取 0，menuStatus 只有严格等于 0 时为禁用。
func DecodeCreateMenuRequest(body []byte) (*CreateMenuRequest, error) {
	fields, err := decodeBody(body)
	if err != nil {
		return nil, err
	}

	req := &CreateMenuRequest{MenuStatus: MenuEnabled}
	req.Name, _ = fields["name"].(string)
	req.SysCode, _ = fields["sysCode"].(string)
	req.MenuIcon, _ = fields["menuIcon"].(string)
	if t, ok := fields["menuType"].(string); ok {
		req.MenuType = MenuType(t)
	}

	switch v := fields["routePath"].(type) {
	case nil:
	case string:
		req.RoutePath = &v
	default:
		return nil, &FieldError{Field: "routePath", Reason: "must be a string"}
	}

	switch v := fields["parentId"].(type) {
	case nil:
	case string:
		req.ParentId = &v
	default:
		return nil, &FieldError{Field: "parentId", Reason: "must be a string or null"}
	}

	if n, ok := fields["menuSort"].(float64); ok {
		if !inIntRange(n) {
			return nil, errOutOfRange("menuSort")
		}
		req.MenuSort = int(n)
	}
	if n, ok := fields["menuStatus"].(float64); ok && n == MenuDisabled {
		req.MenuStatus = MenuDisabled
	}
	return req, nil
}

// DecodeMenuPatch 解析菜单更新请求，只保留请求中出现的字段
func DecodeMenuPatch(body []byte) (*MenuPatch, error) {
	fields, err := decodeBody(body)
	if err != nil {
		return nil, err
	}

	patch := &MenuPatch{}
	if v, ok := fields["parentId"]; ok {
		patch.ParentSet = true
		switch p := v.(type) {
		case nil:
		case string:
			patch.ParentId = &p
		default:
			return nil, &FieldError{Field: "parentId", Reason: "must be a string or null"}
		}
	}

	strFields := []struct {
		name string
		dst  **string
	}{
		{"name", &patch.Name},
		{"routePath", &patch.RoutePath},
		{"menuIcon", &patch.MenuIcon},
		{"sysCode", &patch.SysCode},
	}
	for _, f := range strFields {
		v, ok := fields[f.name]
		if !ok {
			continue
		}
		s, ok := v.(string)
		if !ok {
			return nil, &FieldError{Field: f.name, Reason: "must be a string"}
		}
		*f.dst = &s
	}

	if v, ok := fields["menuType"]; ok {
		s, ok := v.(string)
		if !ok {
			return nil, &FieldError{Field: "menuType", Reason: "must be a string"}
		}
		t := MenuType(s)
		patch.MenuType = &t
	}

	intFields := []struct {
		name string
		dst  **int
	}{
		{"menuSort", &patch.MenuSort},
		{"menuStatus", &patch.MenuStatus},
	}
	for _, f := range intFields {
		v, ok := fields[f.name]
		if !ok {
			continue
		}
		n, ok, err := toInt(f.name, v)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &FieldError{Field: f.name, Reason: "must be an integer"}
		}
		*f.dst = &n
	}
	return patch, nil
}

// DecodeMenuStatus 解析 {"menuStatus": 0|1}，缺失或非整数时返回 nil
func DecodeMenuStatus(body []byte) (*int, error) {
	fields, err := decodeBody(body)
	if err != nil {
		return nil, err
	}
	n, ok, err := toInt("menuStatus", fields["menuStatus"])
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &n, nil
}

// inIntRange float64(math.MaxInt) 会进位到 2^63，因此上界不取等
func inIntRange(f float64) bool {
	return f >= float64(math.MinInt) && f < float64(math.MaxInt)
}

func errOutOfRange(field string) error {
	return &FieldError{Field: field, Reason: "is out of integer range"}
}

// toInt 只接受整数值，超出 int 范围返回错误而不是截断
func toInt(field string, v any) (int, bool, error) {
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, false, nil
	}
	if !inIntRange(f) {
		return 0, false, errOutOfRange(field)
	}
	return int(f), true, nil
}
