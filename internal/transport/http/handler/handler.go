package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-gin-shop-api/internal/transport/http/response"
)

func fail(c *gin.Context, err error) {
	status, body := response.FromError(err)
	c.JSON(status, body)
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest,
		response.Err("BAD_REQUEST", err.Error(), http.StatusBadRequest))
}
