package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/yeisme/archivault/pkg/internal/model"
	"github.com/yeisme/archivault/pkg/internal/types"
)

// ListArchives 列出归档，按需过滤与排序.
// search 对文件名与描述做大小写不敏感的子串匹配，category 精确匹配，
// sort 支持 date（上传时间降序）与 filename（按本地化规则升序）.
func (s *CatalogService) ListArchives(ctx context.Context, q types.ListArchivesQuery) ([]model.Archive, error) {
	recs, err := s.meta.ScanAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMetadataRead, err)
	}

	out := filterArchives(recs, q.Search, q.Category)
	sortArchives(out, q.Sort)

	return out, nil
}

// GetArchive 按 id 获取单条归档.
func (s *CatalogService) GetArchive(ctx context.Context, id string) (*model.Archive, error) {
	rec, err := s.meta.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMetadataRead, err)
	}

	if rec == nil {
		return nil, ErrNotFound
	}

	return rec, nil
}

func filterArchives(recs []model.Archive, search, category string) []model.Archive {
	out := make([]model.Archive, 0, len(recs))
	needle := strings.ToLower(search)

	for _, r := range recs {
		if needle != "" &&
			!strings.Contains(strings.ToLower(r.Filename), needle) &&
			!strings.Contains(strings.ToLower(r.Description), needle) {
			continue
		}

		if category != "" && r.Category != category {
			continue
		}

		out = append(out, r)
	}

	return out
}

func sortArchives(recs []model.Archive, by string) {
	switch by {
	case types.SortByDate:
		sort.SliceStable(recs, func(i, j int) bool {
			return recs[i].UploadDate.After(recs[j].UploadDate)
		})
	case types.SortByFilename:
		col := collate.New(language.Und)

		sort.SliceStable(recs, func(i, j int) bool {
			return col.CompareString(recs[i].Filename, recs[j].Filename) < 0
		})
	}
}
