package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/archivault/pkg/internal/types"
)

// Upload 上传归档
//
//	@Summary	上传文件并登记元数据
//	@Accept		multipart/form-data
//	@Param		file	formData	file	true	"文件内容"
//	@Success	200		{object}	types.UploadResponse
//	@Router		/api/upload [post]
func (h *ArchiveHandlers) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "No file uploaded"})

		return
	}
	defer func() { _ = file.Close() }()

	name := c.PostForm("filename")
	if name == "" {
		name = header.Filename
	}

	in := types.CreateArchiveInput{
		FileName:    name,
		ContentType: header.Header.Get("Content-Type"),
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
		Uploader:    c.PostForm("uploader"),
		Size:        header.Size,
		Reader:      file,
	}

	_, resp, err := h.svc.CreateArchive(c.Request.Context(), in)
	if err != nil {
		writeError(c, err, "Failed to upload file")

		return
	}

	c.JSON(http.StatusOK, resp)
}

// List 列出归档，支持 search/category/sort 查询参数
//
//	@Summary	查询归档列表
//	@Param		search		query		string	false	"文件名或描述子串"
//	@Param		category	query		string	false	"分类精确匹配"
//	@Param		sort		query		string	false	"date 或 filename"
//	@Success	200			{array}		model.Archive
//	@Router		/api/archives [get]
func (h *ArchiveHandlers) List(c *gin.Context) {
	var q types.ListArchivesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})

		return
	}

	recs, err := h.svc.ListArchives(c.Request.Context(), q)
	if err != nil {
		writeError(c, err, "Failed to fetch archives")

		return
	}

	c.JSON(http.StatusOK, recs)
}

// GetOne 按 id 获取单条归档.
func (h *ArchiveHandlers) GetOne(c *gin.Context) {
	rec, err := h.svc.GetArchive(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "Failed to fetch archive")

		return
	}

	c.JSON(http.StatusOK, rec)
}

// Download 生成短期预签名链接并重定向.
func (h *ArchiveHandlers) Download(c *gin.Context) {
	url, err := h.svc.DownloadURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "Failed to generate download link")

		return
	}

	c.Redirect(http.StatusFound, url)
}

// Delete 删除归档及其对象.
func (h *ArchiveHandlers) Delete(c *gin.Context) {
	if err := h.svc.DeleteArchive(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err, "Failed to delete archive")

		return
	}

	c.JSON(http.StatusOK, types.MessageResponse{Message: "Archive deleted successfully"})
}

// Export 导出全部元数据为JSON附件.
func (h *ArchiveHandlers) Export(c *gin.Context) {
	recs, err := h.svc.ExportAll(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to export archives")

		return
	}

	c.Header("Content-Disposition", `attachment; filename="archives.json"`)
	c.JSON(http.StatusOK, recs)
}
