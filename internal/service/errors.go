package service

import "errors"

// 服务层哨兵错误，handler 通过 errors.Is 映射到响应码
var (
	ErrNotFound                  = errors.New("record not found")
	ErrInvalidInput              = errors.New("invalid input")
	ErrInvalidCredentials        = errors.New("invalid credentials")
	ErrInvalidPassword           = errors.New("invalid password")
	ErrTooManyAttempts           = errors.New("too many login attempts")
	ErrSlugExists                = errors.New("slug already exists")
	ErrInvalidPrice              = errors.New("invalid price")
	ErrCategoryInUse             = errors.New("category still in use")
	ErrInvalidOrderStatus        = errors.New("invalid order status")
	ErrInvalidUpload             = errors.New("invalid upload")
	ErrEmailServiceDisabled      = errors.New("email service disabled")
	ErrEmailServiceNotConfigured = errors.New("email service not configured")
	ErrInvalidEmail              = errors.New("invalid email address")
	ErrSMTPConfigInvalid         = errors.New("invalid smtp config")
)
