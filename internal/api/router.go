package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobsearch/internal/api/middleware"
	"jobsearch/internal/config"
	"jobsearch/internal/metrics"
	"jobsearch/internal/schema"
)

// NewRouter 构建 Gin 路由引擎，挂载通用中间件以及健康检查和指标端点。
func NewRouter(_ *config.Config, logger *slog.Logger) *gin.Engine {
	schema.RegisterFieldNames()

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.CorrelationIDMiddleware(),
		middleware.SlogLoggerMiddleware(logger),
		metrics.GinMiddleware(),
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	return router
}
