package service

import (
	"github.com/emily-flower/api/internal/config"
	"github.com/emily-flower/api/internal/constants"
	"github.com/emily-flower/api/internal/logger"
	"github.com/emily-flower/api/internal/repository"
)

// SettingService 系统设置服务
type SettingService struct {
	cfg         *config.Config
	settingRepo repository.SettingRepository
	email       *EmailService
}

// NewSettingService 创建设置服务实例
func NewSettingService(cfg *config.Config, settingRepo repository.SettingRepository, email *EmailService) *SettingService {
	return &SettingService{
		cfg:         cfg,
		settingRepo: settingRepo,
		email:       email,
	}
}

// GetSMTPSetting 读取 SMTP 设置，未保存过时回落到静态配置
func (s *SettingService) GetSMTPSetting() (SMTPSetting, error) {
	record, err := s.settingRepo.GetByKey(constants.SettingKeySMTP)
	if err != nil {
		return SMTPSetting{}, err
	}
	if record == nil {
		return SMTPDefaultSetting(s.cfg.Email), nil
	}
	setting, err := SMTPSettingFromJSON(record.ValueJSON)
	if err != nil {
		logger.Warnw("smtp_setting_decode_failed", "error", err)
		return SMTPDefaultSetting(s.cfg.Email), nil
	}
	return setting, nil
}

// UpdateSMTPSetting 应用补丁并保存，同时刷新邮件服务运行时配置
func (s *SettingService) UpdateSMTPSetting(patch SMTPSettingPatch) (SMTPSetting, error) {
	current, err := s.GetSMTPSetting()
	if err != nil {
		return SMTPSetting{}, err
	}

	next := ApplySMTPSettingPatch(current, patch)
	if err := ValidateSMTPSetting(next); err != nil {
		return SMTPSetting{}, err
	}

	value, err := next.ToJSON()
	if err != nil {
		return SMTPSetting{}, err
	}
	if _, err := s.settingRepo.Upsert(constants.SettingKeySMTP, value); err != nil {
		return SMTPSetting{}, err
	}

	if s.email != nil {
		s.email.SetConfig(next.ToEmailConfig())
	}
	logger.Infow("smtp_setting_updated", "enabled", next.Enabled, "host", next.Host)
	return next, nil
}

// ApplySavedSMTPSetting 启动时加载已保存的 SMTP 设置到邮件服务
func (s *SettingService) ApplySavedSMTPSetting() {
	setting, err := s.GetSMTPSetting()
	if err != nil {
		logger.Warnw("smtp_setting_load_failed", "error", err)
		return
	}
	if s.email != nil {
		s.email.SetConfig(setting.ToEmailConfig())
	}
}
