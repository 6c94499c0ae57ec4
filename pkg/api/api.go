// Package api 组装HTTP接口层：由服务实例构建处理集合并挂载路由.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/archivault/pkg/internal/handle"
	"github.com/yeisme/archivault/pkg/internal/router"
	"github.com/yeisme/archivault/pkg/internal/service"
)

// Register 将归档API注册到引擎.
func Register(engine *gin.Engine, svc *service.CatalogService) {
	router.RegisterRoutes(engine, handle.NewArchiveHandlers(svc))
}
