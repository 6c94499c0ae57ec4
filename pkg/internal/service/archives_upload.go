package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yeisme/archivault/pkg/internal/model"
	"github.com/yeisme/archivault/pkg/internal/types"
	nlog "github.com/yeisme/archivault/pkg/log"
	"github.com/yeisme/archivault/pkg/metrics"
	"github.com/yeisme/archivault/pkg/rule"
)

// CreateArchive 上传归档：先写对象存储，再写元数据，最后生成预签名访问链接.
// 对象键加 uuid 前缀避免同名覆盖. 元数据写入失败时对象已落盘，记录告警日志.
func (s *CatalogService) CreateArchive(ctx context.Context, in types.CreateArchiveInput) (*model.Archive, *types.UploadResponse, error) {
	if in.FileName == "" || in.Reader == nil || in.Size <= 0 {
		return nil, nil, fmt.Errorf("%w: file content is required", ErrValidation)
	}

	// 字段长度与数据库列宽一致
	if err := rule.ValidateVar(in.FileName, "max=512"); err != nil {
		return nil, nil, fmt.Errorf("%w: filename too long", ErrValidation)
	}

	if err := rule.ValidateVar(in.Category, "omitempty,max=128"); err != nil {
		return nil, nil, fmt.Errorf("%w: category too long", ErrValidation)
	}

	if err := rule.ValidateVar(in.Uploader, "omitempty,max=255"); err != nil {
		return nil, nil, fmt.Errorf("%w: uploader too long", ErrValidation)
	}

	blobKey := uuid.NewString() + "-" + in.FileName

	if err := s.blob.Put(ctx, blobKey, in.Reader, in.Size, in.ContentType); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}

	rec := &model.Archive{
		ID:          uuid.NewString(),
		Filename:    in.FileName,
		BlobKey:     blobKey,
		Size:        in.Size,
		UploadDate:  time.Now().UTC(),
		ContentType: in.ContentType,
		Description: in.Description,
		Category:    in.Category,
		Uploader:    in.Uploader,
	}

	if rec.Category == "" {
		rec.Category = model.DefaultCategory
	}

	if rec.Uploader == "" {
		rec.Uploader = model.DefaultUploader
	}

	if err := s.meta.Put(ctx, rec); err != nil {
		nlog.WithComponent("catalog").Warn().
			Str("blobKey", blobKey).
			Err(err).
			Msg("metadata write failed after blob upload, orphan blob left behind")

		return nil, nil, fmt.Errorf("%w: %v", ErrMetadataWrite, err)
	}

	metrics.UploadsTotal.Inc()

	nlog.WithComponent("catalog").Info().
		Str("id", rec.ID).
		Str("filename", rec.Filename).
		Int64("size", rec.Size).
		Msg("archive created")

	url, err := s.blob.PresignedGet(ctx, blobKey, uploadURLExpiry)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrStorageRead, err)
	}

	resp := &types.UploadResponse{
		Message:  "File uploaded successfully",
		Filename: in.FileName,
		URL:      url,
	}

	return rec, resp, nil
}
