package router

import (
	"fmt"
	"strings"

	"github.com/emily-flower/api/internal/cache"
	"github.com/emily-flower/api/internal/config"
	adminhandlers "github.com/emily-flower/api/internal/http/handlers/admin"
	publichandlers "github.com/emily-flower/api/internal/http/handlers/public"
	"github.com/emily-flower/api/internal/logger"
	"github.com/emily-flower/api/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "ef"
	}
	redisClient := cache.Client()
	adminLoginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:admin_login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		MessageKey:    "error.login_too_many",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 静态文件服务（上传的图片）
	r.Static("/uploads", "./uploads")

	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/config", publicHandler.GetConfig)
			public.GET("/products", publicHandler.GetProducts)
			public.GET("/products/featured", publicHandler.GetFeaturedProducts)
			public.GET("/products/:slug", publicHandler.GetProduct)
			public.GET("/categories", publicHandler.GetCategories)
		}

		// 购物车接口（X-Cart-Token 识别访客）
		cart := apiV1.Group("/cart")
		{
			cart.GET("", publicHandler.GetCart)
			cart.POST("/items", publicHandler.AddCartItem)
			cart.PUT("/items/:product_id", publicHandler.UpdateCartItem)
			cart.DELETE("/items/:product_id", publicHandler.RemoveCartItem)
			cart.DELETE("", publicHandler.ClearCart)
			cart.PUT("/open", publicHandler.SetCartOpen)
		}

		// 结算流程接口
		checkout := apiV1.Group("/checkout")
		{
			checkout.POST("/open", publicHandler.OpenCheckout)
			checkout.GET("", publicHandler.GetCheckout)
			checkout.POST("/info", publicHandler.SubmitCheckoutInfo)
			checkout.POST("/back", publicHandler.CheckoutBack)
			checkout.POST("/submit", publicHandler.SubmitCheckout)
			checkout.POST("/dismiss", publicHandler.DismissCheckout)
		}

		// 管理员接口
		admin := apiV1.Group("/admin")
		{
			admin.POST("/login", RateLimitMiddleware(redisClient, adminLoginRule, KeyByIP), adminHandler.Login)

			authorized := admin.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo))
			{
				// 商品管理
				authorized.GET("/products", adminHandler.GetProducts)
				authorized.GET("/products/:id", adminHandler.GetProduct)
				authorized.POST("/products", adminHandler.CreateProduct)
				authorized.PUT("/products/:id", adminHandler.UpdateProduct)
				authorized.DELETE("/products/:id", adminHandler.DeleteProduct)

				// 分类管理
				authorized.GET("/categories", adminHandler.GetCategories)
				authorized.POST("/categories", adminHandler.CreateCategory)
				authorized.PUT("/categories/:id", adminHandler.UpdateCategory)
				authorized.DELETE("/categories/:id", adminHandler.DeleteCategory)

				// 订单管理
				authorized.GET("/orders", adminHandler.GetOrders)
				authorized.GET("/orders/:id", adminHandler.GetOrder)
				authorized.PATCH("/orders/:id", adminHandler.UpdateOrderStatus)

				// 设置管理
				authorized.GET("/settings/smtp", adminHandler.GetSMTPSettings)
				authorized.PUT("/settings/smtp", adminHandler.UpdateSMTPSettings)
				authorized.POST("/settings/smtp/test", adminHandler.TestSMTPSettings)
				authorized.PUT("/password", adminHandler.UpdatePassword)

				// 文件上传
				authorized.POST("/upload", adminHandler.UploadFile)
			}
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
