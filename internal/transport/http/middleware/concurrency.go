package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"

	"go-gin-shop-api/internal/transport/http/response"
)

// ConcurrencyLimit 限制同时在处理的请求数
func ConcurrencyLimit(max int64) gin.HandlerFunc {
	sem := semaphore.NewWeighted(max)
	return func(c *gin.Context) {
		if err := sem.Acquire(c, 1); err != nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable,
				response.Err("SERVER_BUSY", "server busy", http.StatusServiceUnavailable))
			return
		}
		defer sem.Release(1)
		c.Next()
	}
}
