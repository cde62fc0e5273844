package service

import (
	"encoding/json"
	"fmt"
	"net/mail"
	"strings"

	"github.com/emily-flower/api/internal/config"
	"github.com/emily-flower/api/internal/models"
)

// SMTPSetting 后台可编辑的 SMTP 配置实体
type SMTPSetting struct {
	Enabled  bool   `json:"enabled"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	From     string `json:"from"`
	FromName string `json:"from_name"`
	UseTLS   bool   `json:"use_tls"`
	UseSSL   bool   `json:"use_ssl"`
	OrderTo  string `json:"order_to"` // 接收订单通知的店铺邮箱
}

// SMTPSettingPatch SMTP 配置补丁（支持部分更新）
type SMTPSettingPatch struct {
	Enabled  *bool   `json:"enabled"`
	Host     *string `json:"host"`
	Port     *int    `json:"port"`
	Username *string `json:"username"`
	Password *string `json:"password"`
	From     *string `json:"from"`
	FromName *string `json:"from_name"`
	UseTLS   *bool   `json:"use_tls"`
	UseSSL   *bool   `json:"use_ssl"`
	OrderTo  *string `json:"order_to"`
}

// SMTPDefaultSetting 根据静态配置生成默认 SMTP 设置
func SMTPDefaultSetting(cfg config.EmailConfig) SMTPSetting {
	return NormalizeSMTPSetting(SMTPSetting{
		Enabled:  cfg.Enabled,
		Host:     cfg.Host,
		Port:     cfg.Port,
		Username: cfg.Username,
		Password: cfg.Password,
		From:     cfg.From,
		FromName: cfg.FromName,
		UseTLS:   cfg.UseTLS,
		UseSSL:   cfg.UseSSL,
		OrderTo:  cfg.OrderTo,
	})
}

// NormalizeSMTPSetting 归一化 SMTP 配置并补齐默认值
func NormalizeSMTPSetting(setting SMTPSetting) SMTPSetting {
	setting.Host = strings.TrimSpace(setting.Host)
	setting.Username = strings.TrimSpace(setting.Username)
	setting.Password = strings.TrimSpace(setting.Password)
	setting.From = strings.TrimSpace(setting.From)
	setting.FromName = strings.TrimSpace(setting.FromName)
	setting.OrderTo = strings.TrimSpace(setting.OrderTo)

	if setting.Port <= 0 || setting.Port > 65535 {
		setting.Port = 587
	}
	return setting
}

// ValidateSMTPSetting 校验 SMTP 配置合法性
func ValidateSMTPSetting(setting SMTPSetting) error {
	if setting.Port <= 0 || setting.Port > 65535 {
		return fmt.Errorf("%w: port must be 1-65535", ErrSMTPConfigInvalid)
	}
	if setting.UseTLS && setting.UseSSL {
		return fmt.Errorf("%w: tls and ssl are mutually exclusive", ErrSMTPConfigInvalid)
	}
	if setting.From != "" {
		if _, err := mail.ParseAddress(setting.From); err != nil {
			return fmt.Errorf("%w: invalid from address", ErrSMTPConfigInvalid)
		}
	}
	if setting.OrderTo != "" {
		if _, err := mail.ParseAddress(setting.OrderTo); err != nil {
			return fmt.Errorf("%w: invalid order inbox address", ErrSMTPConfigInvalid)
		}
	}
	if setting.Enabled {
		if setting.Host == "" {
			return fmt.Errorf("%w: host required", ErrSMTPConfigInvalid)
		}
		if setting.From == "" {
			return fmt.Errorf("%w: from address required", ErrSMTPConfigInvalid)
		}
	}
	return nil
}

// ApplySMTPSettingPatch 应用补丁，nil 字段保持原值
func ApplySMTPSettingPatch(setting SMTPSetting, patch SMTPSettingPatch) SMTPSetting {
	if patch.Enabled != nil {
		setting.Enabled = *patch.Enabled
	}
	if patch.Host != nil {
		setting.Host = *patch.Host
	}
	if patch.Port != nil {
		setting.Port = *patch.Port
	}
	if patch.Username != nil {
		setting.Username = *patch.Username
	}
	if patch.Password != nil {
		setting.Password = *patch.Password
	}
	if patch.From != nil {
		setting.From = *patch.From
	}
	if patch.FromName != nil {
		setting.FromName = *patch.FromName
	}
	if patch.UseTLS != nil {
		setting.UseTLS = *patch.UseTLS
	}
	if patch.UseSSL != nil {
		setting.UseSSL = *patch.UseSSL
	}
	if patch.OrderTo != nil {
		setting.OrderTo = *patch.OrderTo
	}
	return NormalizeSMTPSetting(setting)
}

// MaskSMTPSettingForAdmin 返回后台展示用的脱敏副本
func MaskSMTPSettingForAdmin(setting SMTPSetting) SMTPSetting {
	if setting.Password != "" {
		setting.Password = "******"
	}
	return setting
}

// ToEmailConfig 转换为邮件服务运行时配置
func (s SMTPSetting) ToEmailConfig() *config.EmailConfig {
	return &config.EmailConfig{
		Enabled:  s.Enabled,
		Host:     s.Host,
		Port:     s.Port,
		Username: s.Username,
		Password: s.Password,
		From:     s.From,
		FromName: s.FromName,
		UseTLS:   s.UseTLS,
		UseSSL:   s.UseSSL,
		OrderTo:  s.OrderTo,
	}
}

// ToJSON 序列化为 settings 表存储格式
func (s SMTPSetting) ToJSON() (models.JSON, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var out models.JSON
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SMTPSettingFromJSON 从 settings 表存储格式还原
func SMTPSettingFromJSON(value models.JSON) (SMTPSetting, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return SMTPSetting{}, err
	}
	var setting SMTPSetting
	if err := json.Unmarshal(raw, &setting); err != nil {
		return SMTPSetting{}, err
	}
	return NormalizeSMTPSetting(setting), nil
}
