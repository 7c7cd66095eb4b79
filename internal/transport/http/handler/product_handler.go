package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-gin-shop-api/internal/domain"
	"go-gin-shop-api/internal/dto"
	"go-gin-shop-api/internal/service"
	"go-gin-shop-api/internal/transport/http/response"
)

type ProductHandler struct {
	svc *service.ProductService
}

func NewProductHandler(svc *service.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

func (h *ProductHandler) Mount(g *gin.RouterGroup) {
	g.GET("/products", h.List)
	g.GET("/products/:id", h.Get)
	g.POST("/products", h.Create)
	g.PUT("/products/:id", h.Update)
	g.DELETE("/products/:id", h.Delete)
}

func atoiOrZero(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

// List ?page=&limit= 都给出时分页，否则全量；total 恒为集合大小
func (h *ProductHandler) List(c *gin.Context) {
	page := atoiOrZero(c.Query("page"))
	limit := atoiOrZero(c.Query("limit"))

	products, total, err := h.svc.GetAllProducts(page, limit)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.List(products, total))
}

func (h *ProductHandler) Get(c *gin.Context) {
	p, err := h.svc.GetProductByID(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(p))
}

func (h *ProductHandler) Create(c *gin.Context) {
	var d dto.CreateProductDTO
	if err := c.ShouldBindJSON(&d); err != nil {
		badRequest(c, err)
		return
	}
	d.Normalize()
	if errs := d.Validate(); errs != nil {
		fail(c, domain.ValidationFields(errs))
		return
	}
	p, err := h.svc.CreateProduct(&d)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.WithMessage(p, "product created"))
}

func (h *ProductHandler) Update(c *gin.Context) {
	var d dto.UpdateProductDTO
	if err := c.ShouldBindJSON(&d); err != nil {
		badRequest(c, err)
		return
	}
	d.Normalize()
	if errs := d.Validate(); errs != nil {
		fail(c, domain.ValidationFields(errs))
		return
	}
	p, err := h.svc.UpdateProduct(c.Param("id"), &d)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.WithMessage(p, "product updated"))
}

func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteProduct(c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
