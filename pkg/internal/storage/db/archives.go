package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yeisme/archivault/pkg/internal/model"
)

// ArchiveStore 基于 GORM 的归档元数据存取. 实现目录服务的 MetadataStore 约定：
// Get 对不存在的键返回 (nil, nil)，Delete 对不存在的键不报错（幂等）.
type ArchiveStore struct {
	db *gorm.DB
}

// NewArchiveStore 创建归档元数据存取器.
func NewArchiveStore(c *Client) *ArchiveStore {
	return &ArchiveStore{db: c.DB}
}

// Migrate 建表/更新归档表结构.
func (s *ArchiveStore) Migrate() error {
	if err := s.db.AutoMigrate(&model.Archive{}); err != nil {
		return fmt.Errorf("migrate archives table: %w", err)
	}

	return nil
}

// Put 写入一条归档记录.
func (s *ArchiveStore) Put(ctx context.Context, rec *model.Archive) error {
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("insert archive %s: %w", rec.ID, err)
	}

	return nil
}

// Get 按 id 查询归档记录，不存在时返回 (nil, nil).
func (s *ArchiveStore) Get(ctx context.Context, id string) (*model.Archive, error) {
	var rec model.Archive

	err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("query archive %s: %w", id, err)
	}

	return &rec, nil
}

// ScanAll 全表扫描，返回全部归档记录. 顺序为存储原生扫描顺序，未指定.
func (s *ArchiveStore) ScanAll(ctx context.Context) ([]model.Archive, error) {
	var recs []model.Archive

	if err := s.db.WithContext(ctx).Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("scan archives: %w", err)
	}

	return recs, nil
}

// Delete 按 id 删除归档记录，键不存在时不报错.
func (s *ArchiveStore) Delete(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Delete(&model.Archive{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete archive %s: %w", id, err)
	}

	return nil
}
