package middleware

import (
	"time"

	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GinZap 요청마다 한 줄씩 남긴다
func GinZap() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		fields := []zap.Field{
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			log.L.Error(c.Errors.String(), fields...)
			return
		}
		if c.Writer.Status() >= 500 {
			log.L.Warn("request", fields...)
			return
		}
		log.L.Info("request", fields...)
	}
}
