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
	"crypto/tls"
	"strings"
	"time"

	"github.com/go-arcade/console-mock/pkg/log"
	"github.com/go-arcade/console-mock/pkg/retry"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

type Redis struct {
	Mode             string
	Address          string
	Password         string
	DB               int
	PoolSize         int
	UseTLS           bool
	MasterName       string
	SentinelUsername string
	SentinelPassword string
	DialTimeout      time.Duration // 连接超时（秒）
	ReadTimeout      time.Duration // 读超时（秒）
	WriteTimeout     time.Duration // 写超时（秒）
	LocalMaxBytes    int           // 未配置 Address 时本地缓存大小
}

// SetDefaults 返回默认配置，Address 为空表示使用本地缓存
func SetDefaults() *Redis {
	return &Redis{
		Mode:          "single",
		PoolSize:      10,
		DialTimeout:   5,
		ReadTimeout:   3,
		WriteTimeout:  3,
		LocalMaxBytes: 32 * 1024 * 1024,
	}
}

func NewRedis(cfg *Redis) (*redis.Client, error) {
	var redisClient *redis.Client
	switch cfg.Mode {
	case "", "single":
		redisOptions := &redis.Options{
			Addr:         cfg.Address,
			Password:     cfg.Password,
			DB:           cfg.DB,
			PoolSize:     cfg.PoolSize,
			DialTimeout:  cfg.DialTimeout * time.Second,
			ReadTimeout:  cfg.ReadTimeout * time.Second,
			WriteTimeout: cfg.WriteTimeout * time.Second,
		}
		if cfg.UseTLS {
			redisOptions.TLSConfig = &tls.Config{}
		}
		redisClient = redis.NewClient(redisOptions)
	case "sentinel":
		redisOptions := &redis.FailoverOptions{
			MasterName:       cfg.MasterName,
			SentinelAddrs:    strings.Split(cfg.Address, ","),
			Password:         cfg.Password,
			DB:               cfg.DB,
			PoolSize:         cfg.PoolSize,
			SentinelUsername: cfg.SentinelUsername,
			SentinelPassword: cfg.SentinelPassword,
			DialTimeout:      cfg.DialTimeout * time.Second,
			ReadTimeout:      cfg.ReadTimeout * time.Second,
			WriteTimeout:     cfg.WriteTimeout * time.Second,
		}
		if cfg.UseTLS {
			redisOptions.TLSConfig = &tls.Config{}
		}
		redisClient = redis.NewFailoverClient(redisOptions)
	default:
		return nil, errors.Errorf("redis mode %q is illegal", cfg.Mode)
	}

	ping := func(ctx context.Context) error {
		return redisClient.Ping(ctx).Err()
	}
	err := retry.Do(context.Background(), ping,
		retry.WithAttempts(3),
		retry.WithBackoff(retry.Exponential(200*time.Millisecond, 2*time.Second)),
		retry.OnRetry(func(attempt int, err error) {
			log.Warnw("redis ping failed, retrying", "attempt", attempt, "error", err)
		}),
	)
	if err != nil {
		log.Errorw("failed to connect redis", "address", cfg.Address, "error", err)
		_ = redisClient.Close()
		return nil, errors.Wrap(err, "ping redis")
	}

	log.Infow("redis connected", "mode", cfg.Mode, "address", cfg.Address)
	return redisClient, nil
}
