package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/yeisme/archivault/pkg/internal/model"
	"github.com/yeisme/archivault/pkg/internal/types"
)

// memBlob 内存对象存储，测试用.
type memBlob struct {
	mu      sync.Mutex
	objects map[string][]byte

	putErr    error
	removeErr error
	signErr   error
}

func newMemBlob() *memBlob {
	return &memBlob{objects: make(map[string][]byte)}
}

func (m *memBlob) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	if m.putErr != nil {
		return m.putErr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = data

	return nil
}

func (m *memBlob) Remove(_ context.Context, key string) error {
	if m.removeErr != nil {
		return m.removeErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)

	return nil
}

func (m *memBlob) PresignedGet(_ context.Context, key string, expiry time.Duration) (string, error) {
	if m.signErr != nil {
		return "", m.signErr
	}

	return fmt.Sprintf("http://blob.test/%s?expires=%d", key, int(expiry.Seconds())), nil
}

// memMeta 内存元数据存储，测试用.
type memMeta struct {
	mu   sync.Mutex
	recs []model.Archive

	putErr  error
	scanErr error
}

func (m *memMeta) Put(_ context.Context, rec *model.Archive) error {
	if m.putErr != nil {
		return m.putErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.recs = append(m.recs, *rec)

	return nil
}

func (m *memMeta) Get(_ context.Context, id string) (*model.Archive, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.recs {
		if m.recs[i].ID == id {
			rec := m.recs[i]

			return &rec, nil
		}
	}

	return nil, nil
}

func (m *memMeta) ScanAll(_ context.Context) ([]model.Archive, error) {
	if m.scanErr != nil {
		return nil, m.scanErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]model.Archive, len(m.recs))
	copy(out, m.recs)

	return out, nil
}

func (m *memMeta) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.recs {
		if m.recs[i].ID == id {
			m.recs = append(m.recs[:i], m.recs[i+1:]...)

			return nil
		}
	}

	return nil
}

func newTestService() (*CatalogService, *memBlob, *memMeta) {
	blob := newMemBlob()
	meta := &memMeta{}

	return NewCatalogService(blob, meta), blob, meta
}

func mustUpload(t *testing.T, svc *CatalogService, name, desc, category string) *model.Archive {
	t.Helper()

	content := []byte("content of " + name)
	rec, _, err := svc.CreateArchive(context.Background(), types.CreateArchiveInput{
		FileName:    name,
		ContentType: "text/plain",
		Description: desc,
		Category:    category,
		Size:        int64(len(content)),
		Reader:      bytes.NewReader(content),
	})
	if err != nil {
		t.Fatalf("CreateArchive(%s) error: %v", name, err)
	}

	return rec
}

func TestCreateArchiveValidation(t *testing.T) {
	svc, _, _ := newTestService()

	_, _, err := svc.CreateArchive(context.Background(), types.CreateArchiveInput{
		FileName: "",
		Size:     3,
		Reader:   strings.NewReader("abc"),
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("empty filename: expected ErrValidation, got %v", err)
	}

	_, _, err = svc.CreateArchive(context.Background(), types.CreateArchiveInput{
		FileName: "a.txt",
		Size:     0,
		Reader:   strings.NewReader(""),
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("zero size: expected ErrValidation, got %v", err)
	}
}

func TestCreateArchiveDefaultsAndResponse(t *testing.T) {
	svc, blob, _ := newTestService()

	content := []byte("hello")
	rec, resp, err := svc.CreateArchive(context.Background(), types.CreateArchiveInput{
		FileName:    "hello.txt",
		ContentType: "text/plain",
		Size:        int64(len(content)),
		Reader:      bytes.NewReader(content),
	})
	if err != nil {
		t.Fatalf("CreateArchive error: %v", err)
	}

	if rec.Category != model.DefaultCategory {
		t.Errorf("category = %q, want %q", rec.Category, model.DefaultCategory)
	}

	if rec.Uploader != model.DefaultUploader {
		t.Errorf("uploader = %q, want %q", rec.Uploader, model.DefaultUploader)
	}

	if !strings.HasSuffix(rec.BlobKey, "-hello.txt") || rec.BlobKey == "-hello.txt" {
		t.Errorf("blobKey = %q, want uuid prefix before -hello.txt", rec.BlobKey)
	}

	if resp.Message != "File uploaded successfully" || resp.Filename != "hello.txt" {
		t.Errorf("unexpected response: %+v", resp)
	}

	if !strings.Contains(resp.URL, rec.BlobKey) {
		t.Errorf("url %q should reference blob key %q", resp.URL, rec.BlobKey)
	}

	if got := blob.objects[rec.BlobKey]; !bytes.Equal(got, content) {
		t.Errorf("stored blob = %q, want %q", got, content)
	}
}

func TestCreateArchiveMetadataFailureKeepsError(t *testing.T) {
	svc, blob, meta := newTestService()
	meta.putErr = errors.New("dynamo down")

	_, _, err := svc.CreateArchive(context.Background(), types.CreateArchiveInput{
		FileName: "x.bin",
		Size:     1,
		Reader:   strings.NewReader("x"),
	})
	if !errors.Is(err, ErrMetadataWrite) {
		t.Fatalf("expected ErrMetadataWrite, got %v", err)
	}

	// 对象已写入，留作孤儿，由后台清理处理.
	if len(blob.objects) != 1 {
		t.Errorf("expected 1 orphan blob, got %d", len(blob.objects))
	}
}

func TestListArchivesFilterAndSort(t *testing.T) {
	svc, _, meta := newTestService()

	mustUpload(t, svc, "b.txt", "monthly report", "Docs")
	mustUpload(t, svc, "a.txt", "vacation photo", "Images")
	mustUpload(t, svc, "c.log", "server REPORT dump", "Docs")

	// 时间错开，便于校验 date 排序.
	meta.recs[0].UploadDate = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	meta.recs[1].UploadDate = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	meta.recs[2].UploadDate = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	all, err := svc.ListArchives(context.Background(), types.ListArchivesQuery{})
	if err != nil {
		t.Fatalf("ListArchives error: %v", err)
	}

	if len(all) != 3 {
		t.Fatalf("expected 3 archives, got %d", len(all))
	}

	bySearch, err := svc.ListArchives(context.Background(), types.ListArchivesQuery{Search: "report"})
	if err != nil {
		t.Fatalf("search error: %v", err)
	}

	if len(bySearch) != 2 {
		t.Fatalf("search 'report': expected 2 matches, got %d", len(bySearch))
	}

	byCat, err := svc.ListArchives(context.Background(), types.ListArchivesQuery{Category: "Images"})
	if err != nil {
		t.Fatalf("category error: %v", err)
	}

	if len(byCat) != 1 || byCat[0].Filename != "a.txt" {
		t.Fatalf("category Images: got %+v", byCat)
	}

	byName, err := svc.ListArchives(context.Background(), types.ListArchivesQuery{Sort: types.SortByFilename})
	if err != nil {
		t.Fatalf("sort filename error: %v", err)
	}

	if byName[0].Filename != "a.txt" || byName[1].Filename != "b.txt" || byName[2].Filename != "c.log" {
		t.Errorf("filename sort order wrong: %s, %s, %s", byName[0].Filename, byName[1].Filename, byName[2].Filename)
	}

	byDate, err := svc.ListArchives(context.Background(), types.ListArchivesQuery{Sort: types.SortByDate})
	if err != nil {
		t.Fatalf("sort date error: %v", err)
	}

	if byDate[0].Filename != "a.txt" || byDate[2].Filename != "b.txt" {
		t.Errorf("date sort should be newest first: %s, %s, %s", byDate[0].Filename, byDate[1].Filename, byDate[2].Filename)
	}
}

func TestStatsAndCategories(t *testing.T) {
	svc, _, _ := newTestService()

	mustUpload(t, svc, "a.txt", "", "Docs")
	mustUpload(t, svc, "b.txt", "", "Docs")
	mustUpload(t, svc, "c.txt", "", "Images")
	mustUpload(t, svc, "d.txt", "", "")

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats error: %v", err)
	}

	if stats.TotalArchives != 4 {
		t.Errorf("totalArchives = %d, want 4", stats.TotalArchives)
	}

	var wantSize int64
	for _, name := range []string{"a.txt", "b.txt", "c.txt", "d.txt"} {
		wantSize += int64(len("content of " + name))
	}

	if stats.TotalSize != wantSize {
		t.Errorf("totalSize = %d, want %d", stats.TotalSize, wantSize)
	}

	if stats.Categories != 3 {
		t.Errorf("categories = %d, want 3 (Docs, Images, Uncategorized)", stats.Categories)
	}

	cats, err := svc.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories error: %v", err)
	}

	want := []string{"Docs", "Images", model.DefaultCategory}
	if len(cats) != len(want) {
		t.Fatalf("categories = %v, want %v", cats, want)
	}

	for i := range want {
		if cats[i] != want[i] {
			t.Errorf("categories[%d] = %q, want %q", i, cats[i], want[i])
		}
	}
}

func TestRecent(t *testing.T) {
	svc, _, meta := newTestService()

	for i := range 7 {
		mustUpload(t, svc, fmt.Sprintf("f%d.txt", i), "", "")
	}

	for i := range meta.recs {
		meta.recs[i].UploadDate = time.Date(2026, 1, 1+i, 0, 0, 0, 0, time.UTC)
	}

	recent, err := svc.Recent(context.Background(), 0)
	if err != nil {
		t.Fatalf("Recent error: %v", err)
	}

	if len(recent) != 5 {
		t.Fatalf("default limit: expected 5, got %d", len(recent))
	}

	if recent[0].Filename != "f6.txt" || recent[4].Filename != "f2.txt" {
		t.Errorf("recent order wrong: first=%s last=%s", recent[0].Filename, recent[4].Filename)
	}

	two, err := svc.Recent(context.Background(), 2)
	if err != nil {
		t.Fatalf("Recent(2) error: %v", err)
	}

	if len(two) != 2 {
		t.Errorf("limit 2: got %d", len(two))
	}
}

func TestDownloadURL(t *testing.T) {
	svc, _, _ := newTestService()

	rec := mustUpload(t, svc, "dl.txt", "", "")

	url, err := svc.DownloadURL(context.Background(), rec.ID)
	if err != nil {
		t.Fatalf("DownloadURL error: %v", err)
	}

	if !strings.Contains(url, rec.BlobKey) || !strings.Contains(url, "expires=300") {
		t.Errorf("unexpected url %q", url)
	}

	_, err = svc.DownloadURL(context.Background(), "missing-id")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteArchive(t *testing.T) {
	svc, blob, meta := newTestService()

	rec := mustUpload(t, svc, "gone.txt", "", "")

	if err := svc.DeleteArchive(context.Background(), rec.ID); err != nil {
		t.Fatalf("DeleteArchive error: %v", err)
	}

	if _, ok := blob.objects[rec.BlobKey]; ok {
		t.Error("blob should be removed")
	}

	if len(meta.recs) != 0 {
		t.Error("metadata should be removed")
	}

	if err := svc.DeleteArchive(context.Background(), rec.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: expected ErrNotFound, got %v", err)
	}
}

func TestDeleteArchiveBlobFailureKeepsMetadata(t *testing.T) {
	svc, blob, meta := newTestService()

	rec := mustUpload(t, svc, "stuck.txt", "", "")
	blob.removeErr = errors.New("s3 down")

	err := svc.DeleteArchive(context.Background(), rec.ID)
	if !errors.Is(err, ErrStorageDelete) {
		t.Fatalf("expected ErrStorageDelete, got %v", err)
	}

	if len(meta.recs) != 1 {
		t.Error("metadata should survive failed blob delete")
	}
}

func TestExportAll(t *testing.T) {
	svc, _, _ := newTestService()

	mustUpload(t, svc, "x.txt", "", "")
	mustUpload(t, svc, "y.txt", "", "")

	recs, err := svc.ExportAll(context.Background())
	if err != nil {
		t.Fatalf("ExportAll error: %v", err)
	}

	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
}
