// Package router 注册HTTP路由.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/archivault/pkg/internal/handle"
)

// RegisterRoutes 注册归档API与健康检查路由.
// 根路径是对外契约，/api 前缀是内嵌浏览器端使用的别名.
func RegisterRoutes(engine *gin.Engine, h *handle.ArchiveHandlers) {
	engine.POST("/upload", h.Upload)
	engine.GET("/archives", h.List)
	engine.GET("/archive/:id", h.GetOne)
	engine.GET("/download/:id", h.Download)
	engine.DELETE("/archive/:id", h.Delete)
	engine.GET("/stats", h.Stats)
	engine.GET("/recent", h.Recent)
	engine.GET("/categories", h.Categories)
	engine.GET("/export", h.Export)

	api := engine.Group("/api")
	{
		api.POST("/upload", h.Upload)
		api.GET("/archives", h.List)
		api.GET("/archives/:id", h.GetOne)
		api.GET("/archives/:id/download", h.Download)
		api.DELETE("/archives/:id", h.Delete)
		api.GET("/stats", h.Stats)
		api.GET("/recent", h.Recent)
		api.GET("/categories", h.Categories)
		api.GET("/export", h.Export)
	}

	health := engine.Group("/healthz")
	{
		health.GET("", handle.Health)
		health.GET("/db", handle.HealthDB)
		health.GET("/s3", handle.HealthS3)
	}
}
