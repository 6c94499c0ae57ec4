package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appctx "github.com/yeisme/archivault/pkg/context"
	"github.com/yeisme/archivault/pkg/internal/types"
)

// Health 进程存活检查.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// HealthDB 元数据库连通性检查.
func HealthDB(c *gin.Context) {
	client := appctx.GetDBClient(c.Request.Context())
	if client == nil {
		c.JSON(http.StatusServiceUnavailable, types.ErrorResponse{Error: "database client not initialized"})

		return
	}

	sqlDB, err := client.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}

	if err != nil {
		c.JSON(http.StatusServiceUnavailable, types.ErrorResponse{Error: "database unreachable"})

		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// HealthS3 对象存储连通性检查.
func HealthS3(c *gin.Context) {
	client := appctx.GetS3Client(c.Request.Context())
	if client == nil {
		c.JSON(http.StatusServiceUnavailable, types.ErrorResponse{Error: "s3 client not initialized"})

		return
	}

	if err := client.HealthCheck(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, types.ErrorResponse{Error: "object storage unreachable"})

		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
