package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-gin-shop-api/internal/domain"
	"go-gin-shop-api/internal/dto"
	"go-gin-shop-api/internal/service"
	"go-gin-shop-api/internal/transport/http/response"
)

// OrderHandler 覆盖订单的基础 CRUD；
// 状态流转（status/cancel）作为动作挂在 router 里
type OrderHandler struct {
	svc *service.OrderService
}

func NewOrderHandler(svc *service.OrderService) *OrderHandler { return &OrderHandler{svc: svc} }

func (h *OrderHandler) Mount(g *gin.RouterGroup) {
	g.GET("/orders", h.List)
	g.GET("/orders/:id", h.Get)
	g.POST("/orders", h.Create)
	g.DELETE("/orders/:id", h.Delete)
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.svc.GetAllOrders(c.Query("userId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.List(orders, len(orders)))
}

func (h *OrderHandler) Get(c *gin.Context) {
	o, err := h.svc.GetOrderByID(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(o))
}

func (h *OrderHandler) Create(c *gin.Context) {
	var d dto.CreateOrderDTO
	if err := c.ShouldBindJSON(&d); err != nil {
		badRequest(c, err)
		return
	}
	d.Normalize()
	if errs := d.Validate(); errs != nil {
		fail(c, domain.ValidationFields(errs))
		return
	}
	o, err := h.svc.CreateOrder(&d)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.WithMessage(o, "order created"))
}

func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteOrder(c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
