package middleware

import (
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware 处理跨域请求；allowOrigins 为空时放行所有来源
func CORSMiddleware(allowOrigins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AddAllowHeaders("Authorization", TraceHeader)
	cfg.AddExposeHeaders(TraceHeader, "Content-Disposition")
	cfg.AllowCredentials = true
	cfg.AllowOriginFunc = func(origin string) bool {
		return len(allowOrigins) == 0 || slices.Contains(allowOrigins, origin)
	}
	return cors.New(cfg)
}
