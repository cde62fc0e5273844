package provider

import (
	"time"

	"github.com/emily-flower/api/internal/cache"
	"github.com/emily-flower/api/internal/cartstore"
	"github.com/emily-flower/api/internal/checkout"
	"github.com/emily-flower/api/internal/config"
	"github.com/emily-flower/api/internal/logger"
	"github.com/emily-flower/api/internal/models"
	"github.com/emily-flower/api/internal/queue"
	"github.com/emily-flower/api/internal/repository"
	"github.com/emily-flower/api/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AdminRepo    repository.AdminRepository
	CategoryRepo repository.CategoryRepository
	ProductRepo  repository.ProductRepository
	OrderRepo    repository.OrderRepository
	SettingRepo  repository.SettingRepository

	// Services
	AuthService     *service.AuthService
	EmailService    *service.EmailService
	UploadService   *service.UploadService
	ProductService  *service.ProductService
	CategoryService *service.CategoryService
	SettingService  *service.SettingService
	CartService     *service.CartService
	OrderService    *service.OrderService

	// 购物车与结算
	CartStore       *cartstore.Store
	CheckoutManager *checkout.Manager
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()
	c.initCheckout()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.SettingRepo = repository.NewSettingRepository(db)
}

func (c *Container) initServices() {
	c.EmailService = service.NewEmailService(&c.Config.Email, c.Config.Shop.Name)
	c.SettingService = service.NewSettingService(c.Config, c.SettingRepo, c.EmailService)
	c.SettingService.ApplySavedSMTPSetting()

	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.UploadService = service.NewUploadService(c.Config)
	c.ProductService = service.NewProductService(c.ProductRepo, c.CategoryRepo)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo)
}

func (c *Container) initCheckout() {
	var storage cartstore.Storage
	if cache.Enabled() {
		ttl := time.Duration(c.Config.Checkout.CartTTLHours) * time.Hour
		storage = cartstore.NewRedisStorage(cache.Client(), cache.Prefix(), ttl)
	} else {
		logger.Warnw("provider_cart_storage_fallback_memory")
		storage = cartstore.NewMemoryStorage()
	}
	c.CartStore = cartstore.NewStore(storage)
	c.CartService = service.NewCartService(c.CartStore, c.ProductRepo)

	c.CheckoutManager = checkout.NewManager(checkout.Options{
		Notifier:      c.EmailService,
		Carts:         c.CartStore,
		CompleteDelay: time.Duration(c.Config.Checkout.CompleteDelaySeconds) * time.Second,
		SubmitTimeout: time.Duration(c.Config.Checkout.SubmitTimeoutSeconds) * time.Second,
		OnCompleted:   c.onCheckoutCompleted,
	})
}

// onCheckoutCompleted 提交成功后的落库与买家确认邮件投递。
// 订单通知已在状态机内同步送达，这里的失败不影响前台结果。
func (c *Container) onCheckoutCompleted(result checkout.Result) {
	order, err := c.OrderService.RecordCheckout(result, result.ClientIP)
	if err != nil {
		logger.Errorw("checkout_order_record_failed", "token", result.Token, "error", err)
		return
	}
	logger.Infow("checkout_order_recorded",
		"order_no", order.OrderNo,
		"total_amount", order.TotalAmount.String(),
		"payment_method", order.PaymentMethod,
	)

	if c.QueueClient.Enabled() {
		err := c.QueueClient.EnqueueOrderConfirmationEmail(queue.OrderConfirmationEmailPayload{
			OrderID: order.ID,
			Locale:  result.Locale,
		})
		if err != nil {
			logger.Warnw("checkout_confirmation_enqueue_failed", "order_no", order.OrderNo, "error", err)
		}
	}
}
