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

package bootstrap

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-arcade/console-mock/internal/engine/config"
	"github.com/go-arcade/console-mock/pkg/log"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

type App struct {
	HttpApp        *fiber.App
	Logger         *log.Logger
	TracerProvider trace.TracerProvider
	AppConf        *config.AppConfig
}

// InitAppFunc init app function type
type InitAppFunc func(configPath string) (*App, func(), error)

func NewApp(
	httpApp *fiber.App,
	logger *log.Logger,
	tp trace.TracerProvider,
	appConf *config.AppConfig,
) *App {
	return &App{
		HttpApp:        httpApp,
		Logger:         logger,
		TracerProvider: tp,
		AppConf:        appConf,
	}
}

// Bootstrap init app, return App instance and cleanup function
func Bootstrap(configFile string, initApp InitAppFunc) (*App, func(), error) {
	app, cleanup, err := initApp(configFile)
	if err != nil {
		return nil, nil, errors.Wrap(err, "init app")
	}
	return app, cleanup, nil
}

// Addr HTTP 监听地址
func (a *App) Addr() string {
	return fmt.Sprintf("%s:%d", a.AppConf.Http.Host, a.AppConf.Http.Port)
}

// Run 启动 HTTP 服务，收到退出信号或 ctx 取消后优雅关闭
func Run(ctx context.Context, app *App, cleanup func()) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	addr := app.Addr()
	g.Go(func() error {
		log.Infow("HTTP listener started", "address", addr)
		tls := app.AppConf.Http.TLS
		var err error
		if tls.CertFile != "" && tls.KeyFile != "" {
			err = app.HttpApp.ListenTLS(addr, tls.CertFile, tls.KeyFile)
		} else {
			err = app.HttpApp.Listen(addr)
		}
		if err != nil {
			return errors.Wrapf(err, "listen %s", addr)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Infow("shutting down gracefully...")

		timeout := time.Duration(app.AppConf.Http.ShutdownTimeout) * time.Second
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := app.HttpApp.ShutdownWithContext(shutdownCtx); err != nil {
			log.Errorw("HTTP server shutdown error", "error", err)
			return errors.Wrap(err, "shutdown http server")
		}
		log.Infow("HTTP server shut down gracefully")
		return nil
	})

	err := g.Wait()
	if cleanup != nil {
		cleanup()
	}
	log.Infow("server shutdown complete")
	_ = log.Sync()
	return err
}
