// Package main 公估业务 API 服务入口
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"claims-ai-api/internal/application/assist"
	appreport "claims-ai-api/internal/application/report"
	"claims-ai-api/internal/config"
	"claims-ai-api/internal/infrastructure/llm"
	"claims-ai-api/internal/infrastructure/ocr"
	"claims-ai-api/internal/infrastructure/persistence/memory"
	"claims-ai-api/internal/interfaces/http/handler"
	"claims-ai-api/internal/interfaces/http/router"
	"claims-ai-api/pkg/logger"
	"claims-ai-api/pkg/tracer"
)

// Version 版本信息，构建时注入
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// 加载 .env 文件（如果存在）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(
		cfg.Observability.Logging.Level,
		cfg.Observability.Logging.Format,
	)

	ctx := context.Background()
	log := logger.FromContext(ctx)
	log.Info("starting api-server",
		"version", Version,
		"build_time", BuildTime,
		"env", cfg.App.Env,
	)

	// 初始化追踪
	shutdown, err := tracer.Init(ctx, tracer.Config{
		ServiceName: cfg.App.Name,
		Endpoint:    cfg.Observability.Tracing.Endpoint,
		SampleRate:  cfg.Observability.Tracing.SampleRate,
		Enabled:     cfg.Observability.Tracing.Enabled,
	})
	if err != nil {
		log.Error("failed to init tracer", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.Error("failed to shutdown tracer", "error", err)
		}
	}()

	// 仓储（内存实现）
	reportRepo := memory.NewReportRepository()
	fileRepo := memory.NewFileRepository()

	// 章节生成管线
	catalog := appreport.NewCatalog()
	generator := appreport.NewGenerator(catalog, reportRepo)
	exporter := appreport.NewExporter(reportRepo)
	templateRepo := memory.NewTemplateRepository(catalog.List())

	// AI 对话管线
	registry := assist.NewModeRegistry()
	builder := assist.NewContextBuilder(registry)
	dispatcher := assist.NewDispatcher(
		llm.NewClientFactory(),
		cfg.LLM.DefaultModel,
		cfg.LLM.DefaultBaseURL,
		cfg.LLM.Timeout,
	)

	// OCR mock
	recognizer := ocr.NewRecognizer(cfg.OCR.SimulatedDelay, cfg.OCR.Language)

	r := router.New(cfg, router.Handlers{
		Health:   handler.NewHealthHandler(cfg.App.Version),
		Assist:   handler.NewAssistHandler(registry, builder, dispatcher),
		Generate: handler.NewGenerateHandler(generator, reportRepo),
		Report:   handler.NewReportHandler(reportRepo, exporter),
		Template: handler.NewTemplateHandler(templateRepo),
		File:     handler.NewFileHandler(fileRepo, recognizer, cfg.Upload.MaxFileSize, cfg.Upload.MaxConcurrency),
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.HTTP.Host, cfg.Server.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.HTTP.ReadTimeout,
		WriteTimeout: cfg.Server.HTTP.WriteTimeout,
		IdleTimeout:  cfg.Server.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("http server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
	}

	log.Info("server exited")
}
