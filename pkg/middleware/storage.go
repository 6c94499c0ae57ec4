package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/archivault/pkg/context"
	"github.com/yeisme/archivault/pkg/internal/storage"
)

// StorageMiddleware 把存储管理器注入请求上下文，供健康检查等处理器取用.
func StorageMiddleware(manager *storage.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.WithStorageManager(c.Request.Context(), manager)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
