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

package trace

import (
	"context"
	"time"

	"github.com/go-arcade/console-mock/pkg/log"
	"github.com/go-arcade/console-mock/pkg/version"
	"github.com/google/wire"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const instrumentationName = "github.com/go-arcade/console-mock"

// ProviderSet is the Wire provider set for the trace package.
var ProviderSet = wire.NewSet(ProvideTracerProvider)

// Conf Trace 配置
type Conf struct {
	// Enabled 是否启用 trace，未启用时使用 noop provider
	Enabled bool
	// Endpoint OTLP HTTP 端点（host:port）
	Endpoint string
	// URLPath 上报路径，默认 /v1/traces
	URLPath string
	// ServiceName 服务名称
	ServiceName string
	// Insecure 是否使用 http 上报
	Insecure bool
	// Headers 额外的 HTTP 头
	Headers map[string]string
	// BatchTimeout 批量发送超时时间（秒）
	BatchTimeout int
	// ExportTimeout 导出超时时间（秒）
	ExportTimeout int
	// MaxExportBatchSize 最大批量大小
	MaxExportBatchSize int
	// SampleRatio 采样比例，(0, 1]
	SampleRatio float64
}

// SetDefaults 返回默认配置
func SetDefaults() *Conf {
	return &Conf{
		Enabled:            false,
		Endpoint:           "localhost:4318",
		URLPath:            "/v1/traces",
		ServiceName:        "console-mock",
		Insecure:           true,
		BatchTimeout:       5,
		ExportTimeout:      30,
		MaxExportBatchSize: 512,
		SampleRatio:        1,
	}
}

// ProvideTracerProvider 初始化全局 TracerProvider，返回的 cleanup 负责 flush 与关闭
func ProvideTracerProvider(conf *Conf) (trace.TracerProvider, func(), error) {
	return InitTracerProvider(context.Background(), conf)
}

// InitTracerProvider 初始化 TracerProvider
func InitTracerProvider(ctx context.Context, conf *Conf) (trace.TracerProvider, func(), error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if conf == nil || !conf.Enabled {
		tp := noop.NewTracerProvider()
		otel.SetTracerProvider(tp)
		log.Debug("tracing disabled, using noop tracer provider")
		return tp, func() {}, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(conf.ServiceName),
			semconv.ServiceVersionKey.String(version.GetVersion().Version),
		),
	)
	if err != nil {
		return nil, nil, errors.Wrap(err, "create trace resource")
	}

	opts := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(conf.Endpoint),
		otlptracehttp.WithURLPath(conf.URLPath),
		otlptracehttp.WithTimeout(time.Duration(conf.ExportTimeout) * time.Second),
	}
	if conf.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	if len(conf.Headers) > 0 {
		opts = append(opts, otlptracehttp.WithHeaders(conf.Headers))
	}
	exporter, err := otlptrace.New(ctx, otlptracehttp.NewClient(opts...))
	if err != nil {
		return nil, nil, errors.Wrap(err, "create otlp http exporter")
	}

	ratio := conf.SampleRatio
	if ratio <= 0 || ratio > 1 {
		ratio = 1
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter,
			sdktrace.WithBatchTimeout(time.Duration(conf.BatchTimeout)*time.Second),
			sdktrace.WithExportTimeout(time.Duration(conf.ExportTimeout)*time.Second),
			sdktrace.WithMaxExportBatchSize(conf.MaxExportBatchSize),
		),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))),
	)
	otel.SetTracerProvider(tp)

	log.Infow("tracing initialized",
		"endpoint", conf.Endpoint,
		"service", conf.ServiceName,
	)

	cleanup := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Warnw("shutdown tracer provider failed", "error", err)
		}
	}
	return tp, cleanup, nil
}

// Tracer 返回当前全局 provider 下的 tracer
func Tracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}

// StartSpan 在 ctx 上开启一个子 span
func StartSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	return Tracer().Start(ctx, name, opts...)
}
