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

package cache

import (
	"github.com/go-arcade/console-mock/pkg/log"
	"github.com/google/wire"
)

// ProviderSet 提供缓存依赖：配置了 Redis 地址时使用 Redis，否则使用本地 FastCache
var ProviderSet = wire.NewSet(ProvideICache)

// ProvideICache 提供 ICache 接口实例
func ProvideICache(conf *Redis) (ICache, func(), error) {
	if conf == nil || conf.Address == "" {
		log.Infow("session store uses local fastcache")
		fc := NewFastCache(FastCacheConfig{MaxBytes: conf.localMaxBytes()})
		return fc, fc.Clear, nil
	}

	client, err := NewRedis(conf)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := client.Close(); err != nil {
			log.Warnw("close redis failed", "error", err)
		}
	}
	return NewRedisCache(client), cleanup, nil
}

func (r *Redis) localMaxBytes() int {
	if r == nil {
		return 0
	}
	return r.LocalMaxBytes
}
