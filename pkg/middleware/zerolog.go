package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/archivault/pkg/log"
)

// quietPaths 探活与指标拉取的例行请求，不记请求日志.
var quietPaths = map[string]struct{}{
	"/healthz":    {},
	"/healthz/db": {},
	"/healthz/s3": {},
	"/metrics":    {},
}

// GinLoggerMiddleware 使用zerolog记录Gin请求日志的中间件.
func GinLoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery
		method := c.Request.Method
		clientIP := c.ClientIP()

		// 执行下一个中间件/处理器
		c.Next()

		if _, ok := quietPaths[path]; ok {
			return
		}

		latency := time.Since(start)
		statusCode := c.Writer.Status()

		// 如果有查询参数，添加到路径中
		if raw != "" {
			path = path + "?" + raw
		}

		// 获取错误信息（如果有）
		var errorMsg string
		if len(c.Errors) > 0 {
			errorMsg = c.Errors.String()
		}

		logger := log.WithComponent("http")
		event := logger.Info().
			Int("status", statusCode).
			Dur("latency", latency).
			Str("method", method).
			Str("path", path).
			Str("client_ip", clientIP).
			Int("bytes", c.Writer.Size())

		if errorMsg != "" {
			event = event.Str("error", errorMsg)
		}

		event.Msg("HTTP request")
	}
}
