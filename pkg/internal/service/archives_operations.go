package service

import (
	"context"
	"fmt"

	"github.com/yeisme/archivault/pkg/internal/model"
	nlog "github.com/yeisme/archivault/pkg/log"
	"github.com/yeisme/archivault/pkg/metrics"
)

// DeleteArchive 删除归档：先删对象，再删元数据.
// 对象删除失败时保留元数据，记录仍可见可重试.
func (s *CatalogService) DeleteArchive(ctx context.Context, id string) error {
	rec, err := s.GetArchive(ctx, id)
	if err != nil {
		return err
	}

	if err := s.blob.Remove(ctx, rec.BlobKey); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageDelete, err)
	}

	if err := s.meta.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", ErrMetadataDelete, err)
	}

	metrics.DeletesTotal.Inc()

	nlog.WithComponent("catalog").Info().
		Str("id", id).
		Str("filename", rec.Filename).
		Msg("archive deleted")

	return nil
}

// ExportAll 导出全部归档元数据，供备份下载.
func (s *CatalogService) ExportAll(ctx context.Context) ([]model.Archive, error) {
	recs, err := s.meta.ScanAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMetadataRead, err)
	}

	return recs, nil
}
