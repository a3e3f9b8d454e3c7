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

import "math"

// CloneString 拷贝字符串指针
func CloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// PageQuery 分页参数，pageNo 从 1 开始
type PageQuery struct {
	PageNo   int
	PageSize int
}

const (
	DefaultPageNo   = 1
	DefaultPageSize = 10
)

// Normalize 填充默认值
func (p PageQuery) Normalize() PageQuery {
	if p.PageNo <= 0 {
		p.PageNo = DefaultPageNo
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	return p
}

// Paginate 返回第 pageNo 页的切片区间，pageNo 超出最后一页时落到最后一页
func Paginate(total int, page PageQuery) (start, end, currentPage, totalPage int) {
	page = page.Normalize()
	totalPage = int(math.Ceil(float64(total) / float64(page.PageSize)))
	currentPage = page.PageNo
	if currentPage > totalPage {
		currentPage = max(1, totalPage)
	}
	start = min((currentPage-1)*page.PageSize, total)
	end = min(start+page.PageSize, total)
	return start, end, currentPage, totalPage
}
