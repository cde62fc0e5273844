package admin

import (
	"errors"

	"github.com/emily-flower/api/internal/http/response"
	"github.com/emily-flower/api/internal/service"

	"github.com/gin-gonic/gin"
)

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token     string                 `json:"token"`
	User      map[string]interface{} `json:"user"`
	ExpiresAt string                 `json:"expires_at"`
}

// Login 管理员登录
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	admin, token, expiresAt, err := h.AuthService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, response.CodeUnauthorized, "error.admin_login_invalid", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.login_failed", err)
		return
	}
	requestLog(c).Infow("admin_login_success", "admin_id", admin.ID, "username", admin.Username)
	response.Success(c, LoginResponse{
		Token: token,
		User: map[string]interface{}{
			"id":           admin.ID,
			"username":     admin.Username,
			"display_name": admin.DisplayName,
		},
		ExpiresAt: expiresAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// UpdatePasswordRequest 修改密码请求
type UpdatePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// UpdatePassword 修改管理员密码
func (h *Handler) UpdatePassword(c *gin.Context) {
	id, ok := getAdminID(c)
	if !ok {
		return
	}

	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.AuthService.ChangePassword(id, req.OldPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPassword):
			respondError(c, response.CodeBadRequest, "error.password_old_invalid", nil)
		case errors.Is(err, service.ErrInvalidInput):
			respondError(c, response.CodeBadRequest, "error.password_weak", nil)
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.not_found", nil)
		default:
			respondError(c, response.CodeInternal, "error.save_failed", err)
		}
		return
	}

	response.Success(c, nil)
}
