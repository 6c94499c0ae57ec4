// Package static 内嵌浏览器客户端资源，随二进制一起分发.
package static

import "embed"

// FS 客户端静态资源.
//
//go:embed index.html app.js style.css
var FS embed.FS
