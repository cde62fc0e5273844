package public

import (
	"time"

	"github.com/emily-flower/api/internal/cache"
	"github.com/emily-flower/api/internal/constants"
	"github.com/emily-flower/api/internal/http/response"
	"github.com/emily-flower/api/internal/i18n"

	"github.com/gin-gonic/gin"
)

const (
	publicConfigCacheKey = "public:config"
	publicConfigCacheTTL = 60 * time.Second
)

// GetConfig 获取前台全局配置（店铺名、语言、支付方式、转账信息）
func (h *Handler) GetConfig(c *gin.Context) {
	var cached map[string]interface{}
	if hit, err := cache.GetJSON(c.Request.Context(), publicConfigCacheKey, &cached); err == nil && hit {
		response.Success(c, cached)
		return
	}

	data := map[string]interface{}{
		"shop_name": h.Config.Shop.Name,
		"languages": []string{i18n.LocaleVI, i18n.LocaleEN},
		"payment_methods": []string{
			constants.PaymentMethodCOD,
			constants.PaymentMethodBank,
		},
		"bank_transfer": map[string]interface{}{
			"bank_name":    h.Config.Shop.BankName,
			"account_no":   h.Config.Shop.BankAccountNo,
			"account_name": h.Config.Shop.BankAccount,
		},
	}

	_ = cache.SetJSON(c.Request.Context(), publicConfigCacheKey, data, publicConfigCacheTTL)
	response.Success(c, data)
}
