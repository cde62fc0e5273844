package service

import (
	"errors"
	"testing"

	"github.com/emily-flower/api/internal/config"
)

func TestSMTPDefaultSettingFromConfig(t *testing.T) {
	setting := SMTPDefaultSetting(config.EmailConfig{
		Enabled:  true,
		Host:     "smtp.gmail.com",
		From:     "shop@emilyflower.vn",
		FromName: "Emily Flower",
		OrderTo:  "orders@emilyflower.vn",
	})
	if setting.Port != 587 {
		t.Fatalf("default port want 587 got %d", setting.Port)
	}
	if setting.OrderTo != "orders@emilyflower.vn" {
		t.Fatalf("order inbox lost: %+v", setting)
	}
}

func TestApplySMTPSettingPatchPartialUpdate(t *testing.T) {
	base := SMTPSetting{Enabled: true, Host: "smtp.gmail.com", Port: 465, From: "shop@emilyflower.vn", UseSSL: true}
	host := "smtp.mailgun.org"
	enabled := false

	next := ApplySMTPSettingPatch(base, SMTPSettingPatch{Host: &host, Enabled: &enabled})
	if next.Host != "smtp.mailgun.org" {
		t.Fatalf("host not patched: %+v", next)
	}
	if next.Enabled {
		t.Fatalf("enabled not patched: %+v", next)
	}
	if next.Port != 465 || !next.UseSSL {
		t.Fatalf("untouched fields changed: %+v", next)
	}
}

func TestValidateSMTPSetting(t *testing.T) {
	valid := SMTPSetting{Enabled: true, Host: "smtp.gmail.com", Port: 587, From: "shop@emilyflower.vn", UseTLS: true}
	if err := ValidateSMTPSetting(valid); err != nil {
		t.Fatalf("valid setting rejected: %v", err)
	}

	both := valid
	both.UseSSL = true
	if err := ValidateSMTPSetting(both); !errors.Is(err, ErrSMTPConfigInvalid) {
		t.Fatalf("tls+ssl should be rejected, got %v", err)
	}

	noHost := valid
	noHost.Host = ""
	if err := ValidateSMTPSetting(noHost); !errors.Is(err, ErrSMTPConfigInvalid) {
		t.Fatalf("enabled without host should be rejected, got %v", err)
	}

	badFrom := valid
	badFrom.From = "not-an-address"
	if err := ValidateSMTPSetting(badFrom); !errors.Is(err, ErrSMTPConfigInvalid) {
		t.Fatalf("bad from should be rejected, got %v", err)
	}
}

func TestSMTPSettingJSONRoundTrip(t *testing.T) {
	setting := SMTPSetting{Enabled: true, Host: "smtp.gmail.com", Port: 587, From: "shop@emilyflower.vn", OrderTo: "orders@emilyflower.vn"}
	value, err := setting.ToJSON()
	if err != nil {
		t.Fatalf("to json failed: %v", err)
	}
	restored, err := SMTPSettingFromJSON(value)
	if err != nil {
		t.Fatalf("from json failed: %v", err)
	}
	if restored != setting {
		t.Fatalf("round trip mismatch:\nwant %+v\ngot  %+v", setting, restored)
	}
}
