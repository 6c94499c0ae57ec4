package handle

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Stats 归档统计
//
//	@Summary	返回归档总数、总大小与分类数
//	@Success	200	{object}	types.StatsResponse
//	@Router		/api/stats [get]
func (h *ArchiveHandlers) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to fetch stats")

		return
	}

	c.JSON(http.StatusOK, stats)
}

// Recent 最近上传的归档，limit 非法或缺省时取默认值.
func (h *ArchiveHandlers) Recent(c *gin.Context) {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		limit = 0
	}

	recs, err := h.svc.Recent(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err, "Failed to fetch recent archives")

		return
	}

	c.JSON(http.StatusOK, recs)
}

// Categories 全部分类，按首次出现顺序.
func (h *ArchiveHandlers) Categories(c *gin.Context) {
	cats, err := h.svc.Categories(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to fetch categories")

		return
	}

	c.JSON(http.StatusOK, cats)
}
