package email_test

import (
	"strings"
	"testing"

	"github.com/ferdiebergado/gastos/internal/config"
	"github.com/ferdiebergado/gastos/internal/platform/email"
)

func newTestMailer(t *testing.T) *email.SMTPMailer {
	t.Helper()

	smtpCfg := &email.SMTPConfig{
		Host:     "localhost",
		Port:     1025,
		User:     "noreply@gastos.app",
		Password: "unused",
	}
	emailCfg := &config.EmailOptions{
		Templates: "../../../templates",
		Layout:    "layout.html",
		Sender:    "noreply@gastos.app",
	}

	mailer, err := email.NewSMTPMailer(smtpCfg, emailCfg)
	if err != nil {
		t.Fatal(err)
	}
	return mailer
}

func TestSMTPMailer_Render(t *testing.T) {
	t.Parallel()

	mailer := newTestMailer(t)

	tests := []struct {
		name     string
		tmplName string
		link     string
	}{
		{
			"Verification email",
			"verification",
			"http://localhost:3000/verify-email/tok-1",
		},
		{
			"Password reset email",
			"reset_password",
			"http://localhost:3000/reset-password/tok-2",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			data := map[string]string{
				"Title":  "Gastos",
				"Header": "Hello",
				"Link":   tc.link,
			}
			html, err := mailer.Render(tc.tmplName, data)
			if err != nil {
				t.Fatal(err)
			}

			for _, want := range []string{tc.link, "Hello", "<title>Gastos</title>"} {
				if !strings.Contains(html, want) {
					t.Errorf("rendered %q does not contain %q", tc.tmplName, want)
				}
			}
		})
	}
}

func TestSMTPMailer_Render_UnknownTemplate(t *testing.T) {
	t.Parallel()

	mailer := newTestMailer(t)

	if _, err := mailer.Render("no-such-page", nil); err == nil {
		t.Error("err = nil, want an error for an unknown template")
	}
}
