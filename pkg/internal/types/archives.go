// Package types 定义 API 层与服务层共享的请求/响应类型.
package types

import "io"

// 列表排序方式.
const (
	SortByDate     = "date"
	SortByFilename = "filename"
)

// CreateArchiveInput 上传归档的输入.
type CreateArchiveInput struct {
	FileName    string
	ContentType string
	Description string
	Category    string
	Uploader    string
	Size        int64
	Reader      io.Reader
}

// ListArchivesQuery 列表查询参数，全部可选.
type ListArchivesQuery struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Sort     string `form:"sort"`
}

// UploadResponse 上传成功响应.
type UploadResponse struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// StatsResponse 归档统计响应.
type StatsResponse struct {
	TotalArchives int64 `json:"totalArchives"`
	TotalSize     int64 `json:"totalSize"`
	Categories    int   `json:"categories"`
}

// MessageResponse 通用消息响应.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse 通用错误响应.
type ErrorResponse struct {
	Error string `json:"error"`
}
