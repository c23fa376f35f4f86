// Package router 提供 HTTP 路由配置
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"claims-ai-api/internal/config"
	"claims-ai-api/internal/interfaces/http/handler"
	"claims-ai-api/internal/interfaces/http/middleware"
)

// Handlers 路由依赖的全部处理器
type Handlers struct {
	Health   *handler.HealthHandler
	Assist   *handler.AssistHandler
	Generate *handler.GenerateHandler
	Report   *handler.ReportHandler
	Template *handler.TemplateHandler
	File     *handler.FileHandler
}

// Router HTTP 路由器
type Router struct {
	engine *gin.Engine
	cfg    *config.Config
}

// New 创建新的路由器
func New(cfg *config.Config, h Handlers) *Router {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := &Router{
		engine: gin.New(),
		cfg:    cfg,
	}

	r.setupMiddleware()
	r.setupRoutes(h)

	return r
}

// Engine 返回 Gin Engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// setupMiddleware 配置中间件
func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestID())

	r.engine.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: r.cfg.Security.CORS.AllowedOrigins,
		AllowedMethods: r.cfg.Security.CORS.AllowedMethods,
		AllowedHeaders: r.cfg.Security.CORS.AllowedHeaders,
	}))

	if r.cfg.Observability.Tracing.Enabled {
		r.engine.Use(middleware.Trace(r.cfg.App.Name))
		r.engine.Use(middleware.TraceContext())
	}

	if r.cfg.Observability.Metrics.Enabled {
		r.engine.Use(middleware.Metrics())
	}
}

// setupRoutes 配置路由
func (r *Router) setupRoutes(h Handlers) {
	// 系统端点
	r.engine.GET("/health", h.Health.Health)
	r.engine.GET("/ready", h.Health.Ready)
	r.engine.GET("/live", h.Health.Live)

	if r.cfg.Observability.Metrics.Enabled {
		r.engine.GET(r.cfg.Observability.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	v1 := r.engine.Group("/api/v1")
	{
		// AI 能力
		ai := v1.Group("/ai")
		{
			ai.POST("/chat", h.Assist.Chat)
			ai.GET("/modes", h.Assist.ListModes)
			ai.GET("/generate/:reportId", h.Generate.GetGenerationConfig)
			ai.POST("/generate/:reportId", h.Generate.GenerateChapter)
		}

		// 报告管理
		reports := v1.Group("/reports")
		{
			reports.GET("", h.Report.ListReports)
			reports.POST("", h.Report.CreateReport)
			reports.GET("/:id", h.Report.GetReport)
			reports.PUT("/:id", h.Report.UpdateReport)
			reports.DELETE("/:id", h.Report.DeleteReport)
			reports.PUT("/:id/chapters/:chapterId", h.Report.UpdateChapter)
			reports.GET("/:id/export", h.Report.ExportReport)
		}

		// 模板库
		templates := v1.Group("/templates")
		{
			templates.GET("", h.Template.ListTemplates)
			templates.POST("", h.Template.CreateTemplate)
			templates.GET("/:id", h.Template.GetTemplate)
			templates.PUT("/:id", h.Template.UpdateTemplate)
			templates.DELETE("/:id", h.Template.DeleteTemplate)
		}

		// 文件与 OCR
		files := v1.Group("/files")
		{
			files.POST("/upload", h.File.Upload)
			files.GET("/list/:reportId", h.File.ListByReport)
			files.POST("/:fileId/ocr", h.File.RunOCR)
			files.GET("/:fileId/ocr", h.File.GetOCRResult)
		}
	}
}
