package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-gin-shop-api/internal/domain"
	"go-gin-shop-api/internal/dto"
	"go-gin-shop-api/internal/service"
	"go-gin-shop-api/internal/transport/http/response"
)

type CategoryHandler struct {
	svc *service.CategoryService
}

func NewCategoryHandler(svc *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

func (h *CategoryHandler) Mount(g *gin.RouterGroup) {
	g.GET("/categories", h.List)
	g.GET("/categories/:id", h.Get)
	g.POST("/categories", h.Create)
	g.PUT("/categories/:id", h.Update)
	g.DELETE("/categories/:id", h.Delete)
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.svc.GetAllCategories()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.List(categories, len(categories)))
}

func (h *CategoryHandler) Get(c *gin.Context) {
	cat, err := h.svc.GetCategoryByID(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(cat))
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var d dto.CreateCategoryDTO
	if err := c.ShouldBindJSON(&d); err != nil {
		badRequest(c, err)
		return
	}
	d.Normalize()
	if errs := d.Validate(); errs != nil {
		fail(c, domain.ValidationFields(errs))
		return
	}
	cat, err := h.svc.CreateCategory(&d)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.WithMessage(cat, "category created"))
}

func (h *CategoryHandler) Update(c *gin.Context) {
	var d dto.UpdateCategoryDTO
	if err := c.ShouldBindJSON(&d); err != nil {
		badRequest(c, err)
		return
	}
	d.Normalize()
	if errs := d.Validate(); errs != nil {
		fail(c, domain.ValidationFields(errs))
		return
	}
	cat, err := h.svc.UpdateCategory(c.Param("id"), &d)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.WithMessage(cat, "category updated"))
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteCategory(c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
