// Package handle 实现HTTP处理函数，将服务层错误映射为状态码.
package handle

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/archivault/pkg/internal/service"
	"github.com/yeisme/archivault/pkg/internal/types"
	nlog "github.com/yeisme/archivault/pkg/log"
)

// ArchiveHandlers 归档相关的HTTP处理集合.
type ArchiveHandlers struct {
	svc *service.CatalogService
}

// NewArchiveHandlers 创建处理集合.
func NewArchiveHandlers(svc *service.CatalogService) *ArchiveHandlers {
	return &ArchiveHandlers{svc: svc}
}

// writeError 将服务层错误映射为HTTP响应.
// 校验错误原样返回，未找到返回404，其余统一用 fallback 文案，细节只进日志.
func writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, types.ErrorResponse{Error: "Archive not found"})
	default:
		nlog.WithComponent("http").Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: fallback})
	}
}
