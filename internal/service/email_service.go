package service

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net/mail"
	"net/smtp"
	"strings"
	"sync"

	"github.com/emily-flower/api/internal/checkout"
	"github.com/emily-flower/api/internal/config"
	"github.com/emily-flower/api/internal/i18n"
)

// EmailService 邮件发送服务，同时作为结算流程的订单通知协作方
type EmailService struct {
	mu       sync.RWMutex
	cfg      *config.EmailConfig
	shopName string
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig, shopName string) *EmailService {
	return &EmailService{cfg: cfg, shopName: shopName}
}

// SetConfig 更新运行时邮件配置（后台 SMTP 设置保存后调用）
func (s *EmailService) SetConfig(cfg *config.EmailConfig) {
	if cfg == nil {
		return
	}
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
}

func (s *EmailService) config() *config.EmailConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Send 投递订单通知到店铺收单邮箱。实现 checkout.Notifier。
func (s *EmailService) Send(ctx context.Context, payload checkout.Payload) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cfg := s.config()
	if cfg == nil || strings.TrimSpace(cfg.OrderTo) == "" {
		return ErrEmailServiceNotConfigured
	}
	return s.sendTextEmail(cfg.OrderTo, payload.Subject, payload.Body)
}

// SendOrderConfirmation 给买家发送下单确认邮件（worker 异步投递）
func (s *EmailService) SendOrderConfirmation(toEmail, orderNo, summary, locale string) error {
	subject := i18n.Sprintf(locale, "checkout.confirm_subject", s.shopName, orderNo)

	var b strings.Builder
	b.WriteString(i18n.Sprintf(locale, "checkout.confirm_greeting", s.shopName))
	b.WriteString("\n\n")
	b.WriteString(i18n.T(locale, "checkout.confirm_order_no"))
	b.WriteString(": ")
	b.WriteString(orderNo)
	b.WriteString("\n\n")
	b.WriteString(summary)
	b.WriteString("\n")
	b.WriteString(i18n.T(locale, "checkout.confirm_follow_up"))

	return s.sendTextEmail(toEmail, subject, b.String())
}

// SendCustomEmail 发送测试邮件或自定义邮件
func (s *EmailService) SendCustomEmail(toEmail, subject, body string) error {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		subject = fmt.Sprintf("%s SMTP test", s.shopName)
	}
	body = strings.TrimSpace(body)
	if body == "" {
		body = fmt.Sprintf("This is a test email from %s. Your SMTP settings are working.", s.shopName)
	}
	return s.sendTextEmail(toEmail, subject, body)
}

func (s *EmailService) sendTextEmail(toEmail, subject, body string) error {
	cfg := s.config()
	if cfg == nil || !cfg.Enabled {
		return ErrEmailServiceDisabled
	}
	if cfg.Host == "" || cfg.Port == 0 || cfg.From == "" {
		return ErrEmailServiceNotConfigured
	}
	if _, err := mail.ParseAddress(toEmail); err != nil {
		return ErrInvalidEmail
	}

	from := buildFromAddress(cfg.From, cfg.FromName)
	msg := buildEmailMessage(from, toEmail, subject, body)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	var auth smtp.Auth
	if cfg.Username != "" || cfg.Password != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	if cfg.UseSSL {
		return sendMailWithSSL(addr, auth, cfg.Host, cfg.From, []string{toEmail}, []byte(msg))
	}
	if cfg.UseTLS {
		return sendMailWithStartTLS(addr, auth, cfg.Host, cfg.From, []string{toEmail}, []byte(msg))
	}
	return sendMailPlain(addr, auth, cfg.From, []string{toEmail}, []byte(msg))
}

func buildFromAddress(from, name string) string {
	if strings.TrimSpace(name) == "" {
		return from
	}
	encoded := mime.QEncoding.Encode("UTF-8", name)
	return (&mail.Address{Name: encoded, Address: from}).String()
}

func buildEmailMessage(from, to, subject, body string) string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("From: %s\r\n", from))
	buf.WriteString(fmt.Sprintf("To: %s\r\n", to))
	buf.WriteString(fmt.Sprintf("Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", subject)))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(body)
	return buf.String()
}

func sendMailWithSSL(addr string, auth smtp.Auth, host, from string, to []string, msg []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: host})
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, host)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := authenticate(client, auth); err != nil {
		return err
	}
	return sendSMTPData(client, from, to, msg)
}

func sendMailWithStartTLS(addr string, auth smtp.Auth, host, from string, to []string, msg []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.StartTLS(&tls.Config{ServerName: host}); err != nil {
		return err
	}
	if err := authenticate(client, auth); err != nil {
		return err
	}
	return sendSMTPData(client, from, to, msg)
}

func sendMailPlain(addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := authenticate(client, auth); err != nil {
		return err
	}
	return sendSMTPData(client, from, to, msg)
}

func authenticate(client *smtp.Client, auth smtp.Auth) error {
	if auth == nil {
		return nil
	}
	if ok, _ := client.Extension("AUTH"); !ok {
		return nil
	}
	return client.Auth(auth)
}

func sendSMTPData(client *smtp.Client, from string, to []string, msg []byte) error {
	if err := client.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}
