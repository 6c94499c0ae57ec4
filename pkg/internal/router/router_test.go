package router_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/archivault/pkg/internal/handle"
	"github.com/yeisme/archivault/pkg/internal/model"
	"github.com/yeisme/archivault/pkg/internal/router"
	"github.com/yeisme/archivault/pkg/internal/service"
)

type stubBlob struct{}

func (stubBlob) Put(context.Context, string, io.Reader, int64, string) error { return nil }

func (stubBlob) Remove(context.Context, string) error { return nil }

func (stubBlob) PresignedGet(context.Context, string, time.Duration) (string, error) {
	return "http://blob.test/x", nil
}

type stubMeta struct {
	recs []model.Archive
}

func (s *stubMeta) Put(_ context.Context, rec *model.Archive) error {
	s.recs = append(s.recs, *rec)

	return nil
}

func (s *stubMeta) Get(_ context.Context, id string) (*model.Archive, error) {
	for i := range s.recs {
		if s.recs[i].ID == id {
			rec := s.recs[i]

			return &rec, nil
		}
	}

	return nil, nil
}

func (s *stubMeta) ScanAll(context.Context) ([]model.Archive, error) {
	out := make([]model.Archive, len(s.recs))
	copy(out, s.recs)

	return out, nil
}

func (s *stubMeta) Delete(_ context.Context, id string) error {
	for i := range s.recs {
		if s.recs[i].ID == id {
			s.recs = append(s.recs[:i], s.recs[i+1:]...)

			return nil
		}
	}

	return nil
}

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := service.NewCatalogService(stubBlob{}, &stubMeta{})
	engine := gin.New()
	router.RegisterRoutes(engine, handle.NewArchiveHandlers(svc))

	return engine
}

func do(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	return rec
}

// TestContractPaths 根路径是对外契约，必须全部命中目录处理器而不是落到404.
func TestContractPaths(t *testing.T) {
	engine := newTestEngine()

	okPaths := []string{"/archives", "/stats", "/recent", "/categories", "/export"}
	for _, p := range okPaths {
		if rec := do(engine, http.MethodGet, p); rec.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", p, rec.Code)
		}
	}

	// id 路由按目录查找返回 404 JSON，而不是路由未命中
	lookupPaths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/archive/missing"},
		{http.MethodGet, "/download/missing"},
		{http.MethodDelete, "/archive/missing"},
	}

	for _, c := range lookupPaths {
		rec := do(engine, c.method, c.path)
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s %s = %d, want 404", c.method, c.path, rec.Code)
		}

		if !strings.Contains(rec.Body.String(), "Archive not found") {
			t.Errorf("%s %s: body %q should come from the catalog lookup", c.method, c.path, rec.Body.String())
		}
	}

	if rec := do(engine, http.MethodPost, "/upload"); rec.Code != http.StatusBadRequest {
		t.Errorf("POST /upload without file = %d, want 400", rec.Code)
	}
}

// TestAPIAliases /api 前缀别名与根路径指向同一组处理器.
func TestAPIAliases(t *testing.T) {
	engine := newTestEngine()

	for _, p := range []string{"/api/archives", "/api/stats", "/api/recent", "/api/categories", "/api/export"} {
		if rec := do(engine, http.MethodGet, p); rec.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", p, rec.Code)
		}
	}

	rec := do(engine, http.MethodGet, "/api/archives/missing")
	if rec.Code != http.StatusNotFound || !strings.Contains(rec.Body.String(), "Archive not found") {
		t.Errorf("GET /api/archives/missing = %d, body %q", rec.Code, rec.Body.String())
	}
}
