// Package app 提供应用程序的初始化和配置功能.
package app

import (
	contextPkg "context"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yeisme/archivault/pkg/api"
	"github.com/yeisme/archivault/pkg/configs"
	"github.com/yeisme/archivault/pkg/internal/service"
	"github.com/yeisme/archivault/pkg/internal/storage"
	dbc "github.com/yeisme/archivault/pkg/internal/storage/db"
	"github.com/yeisme/archivault/pkg/log"
	"github.com/yeisme/archivault/pkg/metrics"
	"github.com/yeisme/archivault/pkg/middleware"
	"github.com/yeisme/archivault/pkg/web/static"
)

type App struct {
	Engine *gin.Engine
	config *configs.AppConfig
}

func NewApp(configPath string) *App {
	ctx := contextPkg.Background()

	// 初始化配置
	if err := configs.InitConfig(configPath); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		os.Exit(1)
	}

	config := configs.GetConfig()

	log.Init()

	engine := gin.New()

	// 初始化监控
	if err := metrics.InitMetrics(config.Metrics); err != nil {
		fmt.Printf("Error initializing metrics: %v\n", err)
		os.Exit(1)
	}

	manager, err := storage.Init(ctx)
	if err != nil {
		fmt.Printf("Error initializing storage: %v\n", err)
		os.Exit(1)
	}

	l := log.Logger()
	gin.DefaultWriter = log.NewGinWriter(l, zerolog.InfoLevel)
	gin.DefaultErrorWriter = log.NewGinWriter(l, zerolog.ErrorLevel)

	engine.Use(
		gin.Recovery(),
		middleware.CORSMiddleware(config.Server),
		middleware.GinLoggerMiddleware(),
		middleware.PrometheusMiddleware(),
		gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/api/upload"})),
		middleware.StorageMiddleware(manager),
	)

	if config.Metrics.Enabled {
		_ = metrics.StartMetricsServer(config.Metrics, engine)
	}

	svc := service.NewCatalogService(
		manager.GetS3Client(),
		dbc.NewArchiveStore(manager.GetDBClient()),
	)

	api.Register(engine, svc)
	registerStatic(engine)

	return &App{
		Engine: engine,
		config: config,
	}
}

// registerStatic 挂载内嵌的浏览器客户端.
// index.html 不能走 http.FileServer，其对 /index.html 的规范化重定向会造成循环.
func registerStatic(engine *gin.Engine) {
	engine.GET("/", func(c *gin.Context) {
		page, err := fs.ReadFile(static.FS, "index.html")
		if err != nil {
			c.Status(http.StatusInternalServerError)

			return
		}

		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	})

	engine.NoRoute(func(c *gin.Context) {
		p := strings.TrimPrefix(c.Request.URL.Path, "/")
		if _, err := fs.Stat(static.FS, p); err != nil {
			c.Status(http.StatusNotFound)

			return
		}

		c.FileFromFS(p, http.FS(static.FS))
	})
}

func (a *App) Run() error {
	return a.Engine.Run(fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port))
}
