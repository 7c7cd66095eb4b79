package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-gin-shop-api/internal/domain"
	"go-gin-shop-api/internal/dto"
	"go-gin-shop-api/internal/service"
	httpez "go-gin-shop-api/internal/transport/http/ez"
)

// 订单的状态流转不走实体 CRUD，用 Action 方式集中注册
func mountOrderActions(api *gin.RouterGroup, svc *service.OrderService) {
	ezAPI := httpez.New(api)

	// PATCH /orders/:id/status 无条件置状态（存在性检查除外）
	httpez.RegisterAction[dto.UpdateOrderStatusDTO, *domain.Order](ezAPI,
		httpez.Action[dto.UpdateOrderStatusDTO, *domain.Order]{
			Method: http.MethodPatch,
			Path:   "/orders/:id/status",
			Binder: httpez.BindJSON,
			Handler: func(c *gin.Context, in *dto.UpdateOrderStatusDTO) (*domain.Order, error) {
				in.Normalize()
				if errs := in.Validate(); errs != nil {
					return nil, domain.ValidationFields(errs)
				}
				return svc.UpdateOrderStatus(c.Param("id"), in.Status)
			},
		})

	// POST /orders/:id/cancel 已送达订单会被拒绝
	httpez.RegisterAction[struct{}, *domain.Order](ezAPI,
		httpez.Action[struct{}, *domain.Order]{
			Method: http.MethodPost,
			Path:   "/orders/:id/cancel",
			Binder: httpez.BindNone,
			Handler: func(c *gin.Context, _ *struct{}) (*domain.Order, error) {
				return svc.CancelOrder(c.Param("id"))
			},
		})
}
