// Package service 实现归档目录的业务逻辑：上传、查询、下载链接、删除与统计.
package service

import (
	"context"
	"io"
	"time"

	"github.com/yeisme/archivault/pkg/internal/model"
)

// 预签名链接有效期.
const (
	uploadURLExpiry   = 7 * 24 * time.Hour
	downloadURLExpiry = 5 * time.Minute
)

// BlobStore 对象存储抽象，由 S3 客户端实现.
type BlobStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Remove(ctx context.Context, key string) error
	PresignedGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// MetadataStore 元数据存储抽象，由 GORM 归档存取器实现.
// Get 对不存在的键返回 (nil, nil)，Delete 幂等.
type MetadataStore interface {
	Put(ctx context.Context, rec *model.Archive) error
	Get(ctx context.Context, id string) (*model.Archive, error)
	ScanAll(ctx context.Context) ([]model.Archive, error)
	Delete(ctx context.Context, id string) error
}

// CatalogService 归档目录服务.
type CatalogService struct {
	blob BlobStore
	meta MetadataStore
}

// NewCatalogService 创建目录服务.
func NewCatalogService(blob BlobStore, meta MetadataStore) *CatalogService {
	return &CatalogService{blob: blob, meta: meta}
}
