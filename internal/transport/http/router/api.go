package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"go-gin-shop-api/internal/core/config"
	"go-gin-shop-api/internal/core/storage"
	"go-gin-shop-api/internal/repo"
	"go-gin-shop-api/internal/service"
	"go-gin-shop-api/internal/transport/http/handler"
	mdw "go-gin-shop-api/internal/transport/http/middleware"
	"go-gin-shop-api/internal/transport/http/response"
)

func New(l *zap.Logger, store *storage.Store, cfg *config.Config) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(rate.Limit(cfg.Limits.RPS), cfg.Limits.Burst),
		mdw.ConcurrencyLimit(cfg.Limits.MaxConcurrent),
		mdw.MaxBodyBytes(int64(cfg.Limits.MaxBodyMB)<<20),
		mdw.Timeout(time.Duration(cfg.Limits.TimeoutSec)*time.Second),
		mdw.SimpleRecovery(),
		mdw.SecureHeaders(),
		mdw.Metrics(),
		mdw.AccessLog(l),
		corsFrom(cfg),
	)

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, response.WithMessage(nil, "API online"))
	})

	// 依赖装配：Store → 仓储 → 服务 → Handler
	userRepo := repo.NewUserRepo(store)
	productRepo := repo.NewProductRepo(store)
	categoryRepo := repo.NewCategoryRepo(store)
	orderRepo := repo.NewOrderRepo(store)

	userSvc := service.NewUserService(userRepo, l)
	productSvc := service.NewProductService(productRepo, categoryRepo, l)
	categorySvc := service.NewCategoryService(categoryRepo, productRepo, l)
	orderSvc := service.NewOrderService(orderRepo, productRepo, userRepo, l)

	api := r.Group("/api/v1")
	handler.NewUserHandler(userSvc).Mount(api)
	handler.NewProductHandler(productSvc).Mount(api)
	handler.NewCategoryHandler(categorySvc).Mount(api)
	handler.NewOrderHandler(orderSvc).Mount(api)

	// 订单状态动作
	mountOrderActions(api, orderSvc)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, response.Err(
			"NOT_FOUND",
			"route "+c.Request.Method+" "+c.Request.URL.Path+" not found",
			http.StatusNotFound,
		))
	})

	return r
}

func corsFrom(cfg *config.Config) gin.HandlerFunc {
	if len(cfg.CORS.Origins) == 0 {
		return cors.Default()
	}
	return cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.Origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
