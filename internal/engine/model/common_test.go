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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name                               string
		total                              int
		page                               PageQuery
		start, end, currentPage, totalPage int
	}{
		{name: "defaults", total: 3, page: PageQuery{}, start: 0, end: 3, currentPage: 1, totalPage: 1},
		{name: "second page", total: 25, page: PageQuery{PageNo: 2, PageSize: 10}, start: 10, end: 20, currentPage: 2, totalPage: 3},
		{name: "last partial page", total: 25, page: PageQuery{PageNo: 3, PageSize: 10}, start: 20, end: 25, currentPage: 3, totalPage: 3},
		{name: "beyond last page clamps", total: 25, page: PageQuery{PageNo: 9, PageSize: 10}, start: 20, end: 25, currentPage: 3, totalPage: 3},
		{name: "empty", total: 0, page: PageQuery{PageNo: 4, PageSize: 10}, start: 0, end: 0, currentPage: 1, totalPage: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, currentPage, totalPage := Paginate(tt.total, tt.page)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
			assert.Equal(t, tt.currentPage, currentPage)
			assert.Equal(t, tt.totalPage, totalPage)
		})
	}
}
