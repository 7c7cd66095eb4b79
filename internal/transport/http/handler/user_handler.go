package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-gin-shop-api/internal/domain"
	"go-gin-shop-api/internal/dto"
	"go-gin-shop-api/internal/service"
	"go-gin-shop-api/internal/transport/http/response"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler { return &UserHandler{svc: svc} }

func (h *UserHandler) Mount(g *gin.RouterGroup) {
	g.GET("/users", h.List)
	g.GET("/users/:id", h.Get)
	g.POST("/users", h.Create)
	g.PUT("/users/:id", h.Update)
	g.DELETE("/users/:id", h.Delete)
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.svc.GetAllUsers()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.List(users, len(users)))
}

func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.svc.GetUserByID(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(u))
}

func (h *UserHandler) Create(c *gin.Context) {
	var d dto.CreateUserDTO
	if err := c.ShouldBindJSON(&d); err != nil {
		badRequest(c, err)
		return
	}
	d.Normalize()
	if errs := d.Validate(); errs != nil {
		fail(c, domain.ValidationFields(errs))
		return
	}
	u, err := h.svc.CreateUser(&d)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.WithMessage(u, "user created"))
}

func (h *UserHandler) Update(c *gin.Context) {
	var d dto.UpdateUserDTO
	if err := c.ShouldBindJSON(&d); err != nil {
		badRequest(c, err)
		return
	}
	d.Normalize()
	if errs := d.Validate(); errs != nil {
		fail(c, domain.ValidationFields(errs))
		return
	}
	u, err := h.svc.UpdateUser(c.Param("id"), &d)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.WithMessage(u, "user updated"))
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteUser(c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
