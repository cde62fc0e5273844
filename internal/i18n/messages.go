package i18n

// catalogs 文案目录（越南语为默认站点语言，英语为次语言）
var catalogs = map[string]map[string]string{
	LocaleVI: {
		"error.bad_request":             "Dữ liệu không hợp lệ",
		"error.unauthorized":            "Bạn cần đăng nhập",
		"error.forbidden":               "Bạn không có quyền thực hiện hành động này",
		"error.not_found":               "Không tìm thấy dữ liệu",
		"error.internal":                "Có lỗi xảy ra, vui lòng thử lại sau",
		"error.login_too_many":          "Đăng nhập sai quá nhiều lần, vui lòng thử lại sau %d giây",
		"error.rate_limited":            "Thao tác quá nhanh, vui lòng thử lại sau %d giây",
		"error.rate_limit_unavailable":  "Không thể kiểm tra giới hạn truy cập, vui lòng thử lại",
		"error.admin_login_invalid":     "Tên đăng nhập hoặc mật khẩu không đúng",
		"error.login_failed":            "Đăng nhập thất bại",
		"error.token_invalid":           "Phiên đăng nhập không hợp lệ",
		"error.auth_header_missing":     "Thiếu thông tin xác thực",
		"error.auth_header_invalid":     "Thông tin xác thực không hợp lệ",
		"error.product_not_found":       "Không tìm thấy sản phẩm",
		"error.product_fetch_failed":    "Có lỗi xảy ra khi lấy danh sách sản phẩm",
		"error.product_save_failed":     "Có lỗi xảy ra khi lưu sản phẩm",
		"error.product_price_invalid":   "Giá sản phẩm không hợp lệ",
		"error.slug_exists":             "Slug đã tồn tại",
		"error.category_not_found":      "Không tìm thấy danh mục",
		"error.category_fetch_failed":   "Có lỗi xảy ra khi lấy danh mục",
		"error.category_save_failed":    "Có lỗi xảy ra khi lưu danh mục",
		"error.category_in_use":         "Danh mục đang được sử dụng",
		"error.cart_item_invalid":       "Sản phẩm trong giỏ hàng không hợp lệ",
		"error.cart_update_failed":      "Có lỗi xảy ra khi cập nhật giỏ hàng",
		"error.cart_empty":              "Giỏ hàng trống",
		"error.checkout_not_found":      "Không có phiên đặt hàng nào đang mở",
		"error.checkout_state_invalid":  "Bước đặt hàng không hợp lệ",
		"error.checkout_field_required": "Vui lòng điền đầy đủ thông tin bắt buộc",
		"error.payment_method_invalid":  "Phương thức thanh toán không hợp lệ",
		"error.submit_in_flight":        "Đơn hàng đang được xử lý, vui lòng đợi",
		"error.order_submit_failed":     "Có lỗi xảy ra khi đặt hàng. Vui lòng thử lại.",
		"error.order_not_found":         "Không tìm thấy đơn hàng",
		"error.order_fetch_failed":      "Có lỗi xảy ra khi lấy đơn hàng",
		"error.order_status_invalid":    "Trạng thái đơn hàng không hợp lệ",
		"error.upload_failed":           "Tải tệp lên thất bại",
		"error.email_disabled":          "Dịch vụ email chưa được bật",
		"error.email_not_configured":    "Dịch vụ email chưa được cấu hình",
		"error.email_invalid":           "Địa chỉ email không hợp lệ",
		"error.email_send_failed":       "Gửi email thất bại",
		"error.smtp_setting_invalid":    "Cấu hình SMTP không hợp lệ",
		"error.settings_fetch_failed":   "Có lỗi xảy ra khi lấy cấu hình",
		"error.settings_save_failed":    "Có lỗi xảy ra khi lưu cấu hình",
		"error.password_old_invalid":    "Mật khẩu cũ không đúng",
		"error.password_weak":           "Mật khẩu mới quá yếu",
		"error.save_failed":             "Lưu thất bại",
		"error.file_missing":            "Thiếu tệp tải lên",
		"error.admin_id_invalid":        "Thông tin quản trị viên không hợp lệ",
		"error.admin_id_type_invalid":   "Thông tin quản trị viên không hợp lệ",

		"checkout.subject":           "🌸 Đơn hàng mới từ %s",
		"checkout.heading":           "Thông tin đặt hàng:",
		"checkout.customer":          "Khách hàng",
		"checkout.phone":             "Số điện thoại",
		"checkout.email":             "Email",
		"checkout.address":           "Địa chỉ giao hàng",
		"checkout.note":              "Ghi chú",
		"checkout.payment_method":    "Phương thức thanh toán",
		"checkout.payment_cod":       "COD - Thanh toán khi nhận hàng",
		"checkout.payment_bank":      "Chuyển khoản ngân hàng",
		"checkout.order_details":     "Chi tiết đơn hàng:",
		"checkout.total":             "Tổng tiền",
		"checkout.shipping_fee":      "Phí vận chuyển",
		"checkout.shipping_free":     "Miễn phí",
		"checkout.grand_total":       "Thành tiền",
		"checkout.confirm_subject":   "🌸 %s - Xác nhận đơn hàng %s",
		"checkout.confirm_greeting":  "Cảm ơn bạn đã đặt hàng tại %s!",
		"checkout.confirm_order_no":  "Mã đơn hàng",
		"checkout.confirm_follow_up": "Chúng tôi sẽ liên hệ với bạn để xác nhận đơn hàng trong thời gian sớm nhất.",
	},
	LocaleEN: {
		"error.bad_request":             "Invalid request data",
		"error.unauthorized":            "You need to sign in",
		"error.forbidden":               "You are not allowed to perform this action",
		"error.not_found":               "Not found",
		"error.internal":                "Something went wrong, please try again later",
		"error.login_too_many":          "Too many failed logins, please retry in %d seconds",
		"error.rate_limited":            "Too many requests, please retry in %d seconds",
		"error.rate_limit_unavailable":  "Rate limiter is unavailable, please try again",
		"error.admin_login_invalid":     "Invalid username or password",
		"error.login_failed":            "Login failed",
		"error.token_invalid":           "Invalid session",
		"error.auth_header_missing":     "Missing authorization header",
		"error.auth_header_invalid":     "Invalid authorization header",
		"error.product_not_found":       "Product not found",
		"error.product_fetch_failed":    "Failed to fetch products",
		"error.product_save_failed":     "Failed to save product",
		"error.product_price_invalid":   "Invalid product price",
		"error.slug_exists":             "Slug already exists",
		"error.category_not_found":      "Category not found",
		"error.category_fetch_failed":   "Failed to fetch categories",
		"error.category_save_failed":    "Failed to save category",
		"error.category_in_use":         "Category is still in use",
		"error.cart_item_invalid":       "Invalid cart item",
		"error.cart_update_failed":      "Failed to update cart",
		"error.cart_empty":              "Cart is empty",
		"error.checkout_not_found":      "No open checkout session",
		"error.checkout_state_invalid":  "Invalid checkout step",
		"error.checkout_field_required": "Please fill in all required fields",
		"error.payment_method_invalid":  "Invalid payment method",
		"error.submit_in_flight":        "Your order is being processed, please wait",
		"error.order_submit_failed":     "Failed to place the order. Please try again.",
		"error.order_not_found":         "Order not found",
		"error.order_fetch_failed":      "Failed to fetch orders",
		"error.order_status_invalid":    "Invalid order status",
		"error.upload_failed":           "Upload failed",
		"error.email_disabled":          "Email service is disabled",
		"error.email_not_configured":    "Email service is not configured",
		"error.email_invalid":           "Invalid email address",
		"error.email_send_failed":       "Failed to send email",
		"error.smtp_setting_invalid":    "Invalid SMTP settings",
		"error.settings_fetch_failed":   "Failed to fetch settings",
		"error.settings_save_failed":    "Failed to save settings",
		"error.password_old_invalid":    "Current password is incorrect",
		"error.password_weak":           "New password is too weak",
		"error.save_failed":             "Save failed",
		"error.file_missing":            "Upload file is missing",
		"error.admin_id_invalid":        "Invalid admin identity",
		"error.admin_id_type_invalid":   "Invalid admin identity",

		"checkout.subject":           "🌸 New order from %s",
		"checkout.heading":           "Order information:",
		"checkout.customer":          "Customer",
		"checkout.phone":             "Phone",
		"checkout.email":             "Email",
		"checkout.address":           "Shipping address",
		"checkout.note":              "Note",
		"checkout.payment_method":    "Payment method",
		"checkout.payment_cod":       "COD - Cash on delivery",
		"checkout.payment_bank":      "Bank transfer",
		"checkout.order_details":     "Order details:",
		"checkout.total":             "Total",
		"checkout.shipping_fee":      "Shipping fee",
		"checkout.shipping_free":     "Free",
		"checkout.grand_total":       "Grand total",
		"checkout.confirm_subject":   "🌸 %s - Order confirmation %s",
		"checkout.confirm_greeting":  "Thank you for your order at %s!",
		"checkout.confirm_order_no":  "Order number",
		"checkout.confirm_follow_up": "We will contact you shortly to confirm your order.",
	},
}
