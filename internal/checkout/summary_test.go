package checkout

import (
	"strings"
	"testing"

	"github.com/emily-flower/api/internal/cartstore"
	"github.com/emily-flower/api/internal/constants"
	"github.com/emily-flower/api/internal/i18n"
	"github.com/emily-flower/api/internal/models"
)

func summaryDraft(method string) Draft {
	return Draft{
		RecipientName: "Nguyễn Thị Lan",
		Phone:         "0901234567",
		Email:         "lan@example.com",
		Address:       "12 Lê Lợi, Quận 1, TP.HCM",
		PaymentMethod: method,
	}
}

func summaryItems() []cartstore.Item {
	return []cartstore.Item{
		{ProductID: "p1", Name: "Bó hoa sáp hồng", Price: models.NewMoneyFromInt(450000), Quantity: 1},
		{ProductID: "p2", Name: "Hộp quà hoa đỏ", Price: models.NewMoneyFromInt(650000), Quantity: 2},
	}
}

func TestBuildBodyVietnameseFormat(t *testing.T) {
	body := BuildBody(i18n.LocaleVI, summaryDraft(constants.PaymentMethodCOD), summaryItems())

	wantLines := []string{
		"Thông tin đặt hàng:",
		"Khách hàng: Nguyễn Thị Lan",
		"Số điện thoại: 0901234567",
		"Email: lan@example.com",
		"Địa chỉ giao hàng: 12 Lê Lợi, Quận 1, TP.HCM",
		"Phương thức thanh toán: COD - Thanh toán khi nhận hàng",
		"Chi tiết đơn hàng:",
		"- Bó hoa sáp hồng × 1 — 450.000đ",
		"- Hộp quà hoa đỏ × 2 — 1.300.000đ",
		"Tổng tiền: 1.750.000đ",
		"Phí vận chuyển: Miễn phí",
		"Thành tiền: 1.750.000đ",
	}
	for _, line := range wantLines {
		if !strings.Contains(body, line) {
			t.Fatalf("body missing %q:\n%s", line, body)
		}
	}
}

func TestBuildBodyOmitsEmptyNote(t *testing.T) {
	draft := summaryDraft(constants.PaymentMethodCOD)
	body := BuildBody(i18n.LocaleVI, draft, summaryItems())
	if strings.Contains(body, "Ghi chú") {
		t.Fatalf("empty note should be omitted:\n%s", body)
	}

	draft.Note = "Giao giờ hành chính"
	body = BuildBody(i18n.LocaleVI, draft, summaryItems())
	if !strings.Contains(body, "Ghi chú: Giao giờ hành chính") {
		t.Fatalf("note line missing:\n%s", body)
	}
}

func TestBuildBodyBankTransferLabel(t *testing.T) {
	body := BuildBody(i18n.LocaleVI, summaryDraft(constants.PaymentMethodBank), summaryItems())
	if !strings.Contains(body, "Phương thức thanh toán: Chuyển khoản ngân hàng") {
		t.Fatalf("bank transfer label missing:\n%s", body)
	}
}

func TestBuildBodyEnglishLocale(t *testing.T) {
	body := BuildBody(i18n.LocaleEN, summaryDraft(constants.PaymentMethodCOD), summaryItems())
	wantLines := []string{
		"Order information:",
		"Customer: Nguyễn Thị Lan",
		"Payment method: COD - Cash on delivery",
		"Shipping fee: Free",
		"Grand total: 1.750.000đ",
	}
	for _, line := range wantLines {
		if !strings.Contains(body, line) {
			t.Fatalf("body missing %q:\n%s", line, body)
		}
	}
}

func TestBuildSubject(t *testing.T) {
	subject := BuildSubject(i18n.LocaleVI, "Nguyễn Thị Lan")
	if subject != "🌸 Đơn hàng mới từ Nguyễn Thị Lan" {
		t.Fatalf("unexpected subject: %s", subject)
	}
}
