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

package config

import (
	"github.com/go-arcade/console-mock/pkg/cache"
	"github.com/go-arcade/console-mock/pkg/http"
	"github.com/go-arcade/console-mock/pkg/log"
	"github.com/go-arcade/console-mock/pkg/trace"
	"github.com/google/wire"
)

// ProviderSet 提供配置层相关的依赖
var ProviderSet = wire.NewSet(
	ProvideConf,
	ProvideHttpConfig,
	ProvideLogConfig,
	ProvideRedisConfig,
	ProvideTraceConfig,
)

// ProvideConf 提供应用配置
func ProvideConf(configPath string) (*AppConfig, error) {
	return LoadConfigFile(configPath)
}

// ProvideHttpConfig 提供 HTTP 配置
func ProvideHttpConfig(appConf *AppConfig) *http.Http {
	return &appConf.Http
}

// ProvideLogConfig 提供日志配置
func ProvideLogConfig(appConf *AppConfig) *log.Conf {
	return &appConf.Log
}

// ProvideRedisConfig 提供 Redis 配置
func ProvideRedisConfig(appConf *AppConfig) *cache.Redis {
	return &appConf.Redis
}

// ProvideTraceConfig 提供 Trace 配置
func ProvideTraceConfig(appConf *AppConfig) *trace.Conf {
	return &appConf.Trace
}
