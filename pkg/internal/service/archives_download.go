package service

import (
	"context"
	"fmt"

	"github.com/yeisme/archivault/pkg/metrics"
)

// DownloadURL 为归档生成短期预签名下载链接.
func (s *CatalogService) DownloadURL(ctx context.Context, id string) (string, error) {
	rec, err := s.GetArchive(ctx, id)
	if err != nil {
		return "", err
	}

	url, err := s.blob.PresignedGet(ctx, rec.BlobKey, downloadURLExpiry)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStorageRead, err)
	}

	metrics.DownloadLinksTotal.Inc()

	return url, nil
}
