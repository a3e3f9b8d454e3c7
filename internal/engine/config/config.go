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
	"reflect"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/go-arcade/console-mock/pkg/cache"
	"github.com/go-arcade/console-mock/pkg/http"
	"github.com/go-arcade/console-mock/pkg/log"
	"github.com/go-arcade/console-mock/pkg/trace"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix 环境变量前缀，如 CONSOLE_HTTP_PORT 覆盖 Http.Port
const EnvPrefix = "CONSOLE"

type AppConfig struct {
	Log   log.Conf
	Http  http.Http
	Redis cache.Redis
	Trace trace.Conf
}

// Default 各模块的默认配置
func Default() *AppConfig {
	return &AppConfig{
		Log:   *log.SetDefaults(),
		Http:  *http.SetDefaults(),
		Redis: *cache.SetDefaults(),
		Trace: *trace.SetDefaults(),
	}
}

// LoadConfigFile 读取 toml 配置，path 为空时只使用默认值和环境变量
func LoadConfigFile(path string) (*AppConfig, error) {
	cfg := Default()

	v := viper.New()
	// 注册所有 key，环境变量才能覆盖配置文件中没有出现的字段
	setDefaults(v, "", reflect.ValueOf(cfg).Elem())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path) //文件名
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read configuration file %s", path)
		}
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal configuration")
	}

	if path != "" {
		v.OnConfigChange(func(e fsnotify.Event) {
			// 目前只有日志级别支持热更新
			level := v.GetString("log.level")
			log.SetLevel(level)
			log.Infow("config file changed", "file", e.Name, "log.level", level)
		})
		v.WatchConfig()
	}

	log.Infow("config loaded", "path", path)
	return cfg, nil
}

func setDefaults(v *viper.Viper, prefix string, rv reflect.Value) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		key := strings.ToLower(field.Name)
		if prefix != "" {
			key = prefix + "." + key
		}
		value := rv.Field(i)
		switch value.Kind() {
		case reflect.Struct:
			setDefaults(v, key, value)
			continue
		case reflect.Map, reflect.Slice:
			if value.IsNil() {
				continue
			}
		}
		v.SetDefault(key, value.Interface())
	}
}
