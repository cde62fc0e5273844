package checkout

import (
	"fmt"
	"strings"

	"github.com/emily-flower/api/internal/cartstore"
	"github.com/emily-flower/api/internal/constants"
	"github.com/emily-flower/api/internal/i18n"
	"github.com/emily-flower/api/internal/models"
)

// PaymentMethodLabel 支付方式展示文案
func PaymentMethodLabel(locale, method string) string {
	switch method {
	case constants.PaymentMethodBank:
		return i18n.T(locale, "checkout.payment_bank")
	default:
		return i18n.T(locale, "checkout.payment_cod")
	}
}

// BuildSubject 订单通知主题
func BuildSubject(locale, recipientName string) string {
	return i18n.Sprintf(locale, "checkout.subject", recipientName)
}

// BuildBody 组装订单摘要正文：买家信息块、逐行商品明细、
// 运费（免运费）与合计。金额按 vi-VN 千分位（点号）格式化。
func BuildBody(locale string, draft Draft, items []cartstore.Item) string {
	var b strings.Builder

	b.WriteString(i18n.T(locale, "checkout.heading"))
	b.WriteString("\n\n")
	writeLabeled(&b, locale, "checkout.customer", draft.RecipientName)
	writeLabeled(&b, locale, "checkout.phone", draft.Phone)
	writeLabeled(&b, locale, "checkout.email", draft.Email)
	writeLabeled(&b, locale, "checkout.address", draft.Address)
	if strings.TrimSpace(draft.Note) != "" {
		writeLabeled(&b, locale, "checkout.note", draft.Note)
	}
	writeLabeled(&b, locale, "checkout.payment_method", PaymentMethodLabel(locale, draft.PaymentMethod))

	b.WriteString("\n")
	b.WriteString(i18n.T(locale, "checkout.order_details"))
	b.WriteString("\n")

	total := models.NewMoneyFromInt(0)
	for _, item := range items {
		lineTotal := item.LineTotal()
		total = total.Add(lineTotal)
		b.WriteString(fmt.Sprintf("- %s × %d — %sđ\n", item.Name, item.Quantity, lineTotal.Format()))
	}

	b.WriteString("\n")
	writeLabeled(&b, locale, "checkout.total", total.Format()+"đ")
	writeLabeled(&b, locale, "checkout.shipping_fee", i18n.T(locale, "checkout.shipping_free"))
	writeLabeled(&b, locale, "checkout.grand_total", total.Format()+"đ")

	return b.String()
}

func writeLabeled(b *strings.Builder, locale, key, value string) {
	b.WriteString(i18n.T(locale, key))
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString("\n")
}
