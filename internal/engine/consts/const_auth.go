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

package consts

const (
	// CLAIMS 认证通过后 access_token 的 claims 存放在 c.Locals(CLAIMS)
	CLAIMS = "claims"

	// SessionKeyPrefix 会话 key 前缀，完整 key 为前缀 + access_token 的 jti
	SessionKeyPrefix = "console:session:"
)
