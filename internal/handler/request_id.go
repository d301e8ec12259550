package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader     = "X-Request-ID"
	requestIDContextKey = "__request_id"
	maxRequestIDLength  = 64
)

// RequestID 为每个请求分配 ID，沿用上游传入的值，便于在日志中串联失败请求。
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}
		c.Set(requestIDContextKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func requestID(c *gin.Context) string {
	if value, exists := c.Get(requestIDContextKey); exists {
		if id, ok := value.(string); ok {
			return id
		}
	}
	return "-"
}
