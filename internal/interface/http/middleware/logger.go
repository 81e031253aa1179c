package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/xiebiao/bookpos/pkg/metrics"
)

// Logger 请求日志中间件
// 设计说明:
// 1. 记录每个请求的方法、路径、状态码、耗时
// 2. 生成唯一的请求ID并通过X-Request-ID响应头返回,便于排查问题
// 3. 同时上报Prometheus指标(请求数、耗时分布)
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. 生成请求ID
		requestID := uuid.New().String()
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		// 2. 记录开始时间
		start := time.Now()

		// 3. 处理请求
		c.Next()

		// 4. 记录请求信息并上报指标
		latency := time.Since(start)
		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path // 未匹配路由(404)
		}

		log.Info().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("request")

		metrics.ObserveHTTPRequest(c.Request.Method, path, strconv.Itoa(status), latency.Seconds())
	}
}
