package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/yeisme/archivault/pkg/internal/model"
	"github.com/yeisme/archivault/pkg/internal/types"
)

const defaultRecentLimit = 5

// Stats 汇总归档数量、总字节数与去重后的分类数.
func (s *CatalogService) Stats(ctx context.Context) (*types.StatsResponse, error) {
	recs, err := s.meta.ScanAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMetadataRead, err)
	}

	cats := make(map[string]struct{})

	var totalSize int64

	for _, r := range recs {
		totalSize += r.Size
		cats[r.Category] = struct{}{}
	}

	return &types.StatsResponse{
		TotalArchives: int64(len(recs)),
		TotalSize:     totalSize,
		Categories:    len(cats),
	}, nil
}

// Recent 按上传时间降序返回最近 limit 条归档，limit <= 0 时取默认值 5.
func (s *CatalogService) Recent(ctx context.Context, limit int) ([]model.Archive, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	recs, err := s.meta.ScanAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMetadataRead, err)
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].UploadDate.After(recs[j].UploadDate)
	})

	if len(recs) > limit {
		recs = recs[:limit]
	}

	return recs, nil
}

// Categories 返回全部分类，按首次出现顺序去重.
func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	recs, err := s.meta.ScanAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMetadataRead, err)
	}

	seen := make(map[string]struct{}, len(recs))
	out := make([]string, 0, len(recs))

	for _, r := range recs {
		if _, ok := seen[r.Category]; ok {
			continue
		}

		seen[r.Category] = struct{}{}
		out = append(out, r.Category)
	}

	return out, nil
}
