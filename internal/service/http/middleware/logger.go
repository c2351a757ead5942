package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/reusedev/draw-edit/internal/consts"
	"github.com/reusedev/draw-edit/internal/modules/logs"
	"github.com/reusedev/draw-edit/internal/modules/observer"
)

// RequestID reuses an incoming X-Request-Id or generates one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(consts.RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(consts.RequestIDKey, id)
		c.Header(consts.RequestIDHeader, id)
		c.Next()
	}
}

func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method
		clientIP := c.ClientIP()

		c.Next()

		statusCode := c.Writer.Status()
		duration := time.Since(start)

		logs.Logger.Info().Str("method", method).
			Str("path", path).
			Str("client_ip", clientIP).
			Str("request_id", c.GetString(consts.RequestIDKey)).
			Int("status", statusCode).
			Dur("duration", duration).
			Msg("request log")
	}
}

// Metrics reports every request to obs, labelled by the matched route.
func Metrics(obs observer.Observer) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		obs.Update(observer.EventHTTPRequest, observer.HTTPRequest{
			Method:   c.Request.Method,
			Route:    route,
			Status:   c.Writer.Status(),
			Duration: time.Since(start),
		})
	}
}
