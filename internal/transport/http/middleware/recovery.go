package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-gin-shop-api/internal/transport/http/response"
)

func SimpleRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					response.Err(response.CodeInternal, "internal server error", http.StatusInternalServerError))
			}
		}()
		c.Next()
	}
}
