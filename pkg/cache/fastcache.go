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
	"context"
	"sync"
	"time"

	"github.com/VictoriaMetrics/fastcache"
	"github.com/bytedance/sonic"
	"github.com/go-arcade/console-mock/pkg/safe"
	"github.com/redis/go-redis/v9"
)

// FastCacheConfig holds fastcache configuration
type FastCacheConfig struct {
	MaxBytes int // Maximum bytes for fastcache, default 16MB
}

// FastCache is a local cache implementation using VictoriaMetrics fastcache.
// fastcache has no TTL support, expirations are tracked beside it.
type FastCache struct {
	cache *fastcache.Cache
	ttls  sync.Map // map[string]time.Time
	mu    sync.RWMutex
}

// NewFastCache creates a new FastCache instance
func NewFastCache(conf FastCacheConfig) *FastCache {
	maxBytes := conf.MaxBytes
	if maxBytes <= 0 {
		maxBytes = 16 * 1024 * 1024
	}

	return &FastCache{
		cache: fastcache.New(maxBytes),
	}
}

// Get returns the value for the given key
func (fc *FastCache) Get(ctx context.Context, key string) *redis.StringCmd {
	fc.mu.RLock()
	defer fc.mu.RUnlock()

	cmd := redis.NewStringCmd(ctx, "get", key)
	if fc.expired(key) {
		cmd.SetErr(redis.Nil)
		return cmd
	}

	value, ok := fc.cache.HasGet(nil, []byte(key))
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(string(value))
	return cmd
}

// Set sets the value for the given key with expiration
func (fc *FastCache) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	cmd := redis.NewStatusCmd(ctx, "set", key)

	var valueBytes []byte
	switch v := value.(type) {
	case string:
		valueBytes = []byte(v)
	case []byte:
		valueBytes = v
	default:
		data, err := sonic.Marshal(v)
		if err != nil {
			cmd.SetErr(err)
			return cmd
		}
		valueBytes = data
	}

	fc.cache.Set([]byte(key), valueBytes)

	if expiration > 0 {
		fc.ttls.Store(key, time.Now().Add(expiration))
		safe.GoWith(func(args cleanupArgs) {
			<-time.After(args.delay)
			fc.cleanupExpiredKey(args.key)
		}, cleanupArgs{key: key, delay: expiration})
	} else {
		fc.ttls.Delete(key)
	}

	cmd.SetVal("OK")
	return cmd
}

// cleanupArgs holds arguments for cleanup goroutine
type cleanupArgs struct {
	key   string
	delay time.Duration
}

// Del deletes the given keys
func (fc *FastCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	var count int64
	for _, key := range keys {
		if fc.cache.Has([]byte(key)) && !fc.expired(key) {
			count++
		}
		fc.cache.Del([]byte(key))
		fc.ttls.Delete(key)
	}

	cmd := redis.NewIntCmd(ctx, "del")
	cmd.SetVal(count)
	return cmd
}

// Exists checks how many of the keys exist in the cache
func (fc *FastCache) Exists(ctx context.Context, keys ...string) *redis.IntCmd {
	fc.mu.RLock()
	defer fc.mu.RUnlock()

	var count int64
	for _, key := range keys {
		if !fc.expired(key) && fc.cache.Has([]byte(key)) {
			count++
		}
	}

	cmd := redis.NewIntCmd(ctx, "exists")
	cmd.SetVal(count)
	return cmd
}

// Stats returns fastcache statistics
func (fc *FastCache) Stats() fastcache.Stats {
	var stats fastcache.Stats
	fc.cache.UpdateStats(&stats)
	return stats
}

// Clear removes all entries
func (fc *FastCache) Clear() {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	fc.cache.Reset()
	fc.ttls.Range(func(k, _ any) bool {
		fc.ttls.Delete(k)
		return true
	})
}

// expired reports whether key carries a ttl that has passed, caller holds mu
func (fc *FastCache) expired(key string) bool {
	exp, ok := fc.ttls.Load(key)
	return ok && time.Now().After(exp.(time.Time))
}

// cleanupExpiredKey removes a key if it has expired
func (fc *FastCache) cleanupExpiredKey(key string) {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	if fc.expired(key) {
		fc.cache.Del([]byte(key))
		fc.ttls.Delete(key)
	}
}
