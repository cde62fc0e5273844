package public

import (
	"strings"

	"github.com/emily-flower/api/internal/constants"
	handlershared "github.com/emily-flower/api/internal/http/handlers/shared"
	"github.com/emily-flower/api/internal/http/response"
	"github.com/emily-flower/api/internal/i18n"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

func normalizePagination(page, pageSize int) (int, int) {
	return handlershared.NormalizePagination(page, pageSize)
}

// cartToken 读取购物车标识请求头，缺失时返回 400
func cartToken(c *gin.Context) (string, bool) {
	token := strings.TrimSpace(c.GetHeader(constants.CartTokenHeader))
	if token == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return "", false
	}
	return token, true
}

func requestLocale(c *gin.Context) string {
	return i18n.ResolveLocale(c)
}
