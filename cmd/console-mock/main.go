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

package main

import (
	"context"

	"github.com/go-arcade/console-mock/internal/engine/bootstrap"
	"github.com/go-arcade/console-mock/pkg/version"
	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "console-mock",
	Short: "console-mock is an in-memory mock backend for the admin console",
	Long:  "console-mock serves users, roles, dicts and the menu hierarchy of the admin console from process memory",
	// 不带子命令时直接启动服务
	RunE: serve,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  serve,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "conf", "conf.d/config.toml", "conf file path, e.g. --conf ./conf.d/config.toml")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(version.VersionCmd)
}

func serve(cmd *cobra.Command, _ []string) error {
	// Bootstrap 初始化应用
	app, cleanup, err := bootstrap.Bootstrap(configFile, initApp)
	if err != nil {
		return err
	}

	// 启动应用并等待退出信号
	return bootstrap.Run(context.Background(), app, cleanup)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		panic(err)
	}
}
