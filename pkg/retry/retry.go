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


package retry

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// Func 可重试的操作，需要遵守 ctx 的取消
type Func func(ctx context.Context) error

// Backoff 第 attempt 次失败后的等待时间，attempt 从 0 开始
type Backoff func(attempt int) time.Duration

// Fixed 固定间隔
func Fixed(interval time.Duration) Backoff {
	return func(int) time.Duration { return interval }
}

// Exponential 指数退避，max 为 0 时不设上限
func Exponential(base, max time.Duration) Backoff {
	return func(attempt int) time.Duration {
		d := base
		for i := 0; i < attempt; i++ {
			d *= 2
			if max > 0 && d >= max {
				return max
			}
		}
		if max > 0 && d > max {
			return max
		}
		return d
	}
}

type config struct {
	attempts int
	backoff  Backoff
	onRetry  func(attempt int, err error)
}

type Option func(*config)

// WithAttempts 最大尝试次数，包含第一次
func WithAttempts(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.attempts = n
		}
	}
}

func WithBackoff(b Backoff) Option {
	return func(c *config) {
		if b != nil {
			c.backoff = b
		}
	}
}

// OnRetry 每次失败且还会重试时回调
func OnRetry(fn func(attempt int, err error)) Option {
	return func(c *config) {
		c.onRetry = fn
	}
}

// Do 执行 fn 直到成功、次数用尽或 ctx 结束，返回最后一次错误
func Do(ctx context.Context, fn Func, opts ...Option) error {
	cfg := &config{attempts: 3, backoff: Fixed(time.Second)}
	for _, opt := range opts {
		opt(cfg)
	}

	var lastErr error
	for attempt := 0; attempt < cfg.attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			if lastErr != nil {
				return errors.Wrap(lastErr, err.Error())
			}
			return err
		}
		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if errors.Is(lastErr, context.Canceled) || errors.Is(lastErr, context.DeadlineExceeded) {
			return lastErr
		}
		if attempt == cfg.attempts-1 {
			break
		}
		if cfg.onRetry != nil {
			cfg.onRetry(attempt+1, lastErr)
		}

		timer := time.NewTimer(cfg.backoff(attempt))
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return errors.Wrap(lastErr, ctx.Err().Error())
		}
	}
	return lastErr
}
