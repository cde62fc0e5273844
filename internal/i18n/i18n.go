package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// 站点语言常量
const (
	LocaleVI = "vi-VN"
	LocaleEN = "en-US"
)

// DefaultLocale 默认语言
const DefaultLocale = LocaleVI

// T 按语言查找文案，找不到时回退默认语言，再找不到返回 key 本身
func T(locale, key string) string {
	normalized := Normalize(locale)
	if catalog, ok := catalogs[normalized]; ok {
		if message, ok := catalog[key]; ok {
			return message
		}
	}
	if normalized != DefaultLocale {
		if message, ok := catalogs[DefaultLocale][key]; ok {
			return message
		}
	}
	return key
}

// Sprintf 按语言格式化文案
func Sprintf(locale, key string, args ...interface{}) string {
	format := T(locale, key)
	if format == key {
		return key
	}
	return fmt.Sprintf(format, args...)
}

// Normalize 规范化语言标识
func Normalize(locale string) string {
	l := strings.ToLower(strings.TrimSpace(locale))
	switch {
	case strings.HasPrefix(l, "en"):
		return LocaleEN
	case strings.HasPrefix(l, "vi"):
		return LocaleVI
	default:
		return DefaultLocale
	}
}

// ResolveLocale 从请求中解析语言（?lang= 优先，其次 Accept-Language）
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale
	}
	if lang := strings.TrimSpace(c.Query("lang")); lang != "" {
		return Normalize(lang)
	}
	header := c.GetHeader("Accept-Language")
	if header == "" {
		return DefaultLocale
	}
	// 只看权重最高的第一段
	first := header
	if idx := strings.IndexAny(header, ",;"); idx >= 0 {
		first = header[:idx]
	}
	return Normalize(first)
}
