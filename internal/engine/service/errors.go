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
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind 业务错误分类，路由层据此映射 HTTP 状态码
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindUnauthorized
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not found"
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	}
	return "internal"
}

// Error 业务错误，Detail 携带冲突值等附加信息
type Error struct {
	Kind   ErrorKind
	Msg    string
	Detail any
}

func (e *Error) Error() string {
	if e.Detail == nil {
		return e.Msg
	}
	return fmt.Sprintf("%s: %v", e.Msg, e.Detail)
}

func Validation(msg string, detail any) error {
	return &Error{Kind: KindValidation, Msg: msg, Detail: detail}
}

func NotFound(msg string, detail any) error {
	return &Error{Kind: KindNotFound, Msg: msg, Detail: detail}
}

func Conflict(msg string, detail any) error {
	return &Error{Kind: KindConflict, Msg: msg, Detail: detail}
}

func Unauthorized(msg string) error {
	return &Error{Kind: KindUnauthorized, Msg: msg}
}

// KindOf 取出 err 链上的业务错误分类，非业务错误返回 KindInternal
func KindOf(err error) ErrorKind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}

// AsError 取出 err 链上的业务错误
func AsError(err error) (*Error, bool) {
	var se *Error
	ok := errors.As(err, &se)
	return se, ok
}
