// Package mail sends transactional email through the Resend API.
package mail

import (
	"context"
	"fmt"
	"log/slog"

	"skillconnect/config"
	"skillconnect/internal/domain/service"

	pkgerrors "github.com/pkg/errors"
	"github.com/resend/resend-go/v3"
)

type resendMailer struct {
	client    *resend.Client
	fromEmail string
	appURL    string
	logger    *slog.Logger
}

// NewResendMailer creates a Mailer backed by the Resend API. The sender
// address must belong to a domain verified in the Resend dashboard.
func NewResendMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	if cfg.Email == nil || cfg.Email.APIKey == "" {
		return nil, pkgerrors.New("email API key must be provided")
	}

	return &resendMailer{
		client:    resend.NewClient(cfg.Email.APIKey),
		fromEmail: cfg.Email.FromEmail,
		appURL:    cfg.Email.AppURL,
		logger:    logger,
	}, nil
}

func (m *resendMailer) SendApplicationReceived(ctx context.Context, toEmail, seekerName, jobTitle string) error {
	html := fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;background-color:#f4f6f8;font-family:Arial,Helvetica,sans-serif;">
  <table width="100%%" cellpadding="0" cellspacing="0" style="padding:40px 0;">
    <tr>
      <td align="center">
        <table width="480" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:8px;padding:40px;">
          <tr>
            <td>
              <h1 style="color:#16a34a;font-size:22px;margin:0 0 8px 0;">SkillConnect</h1>
              <h2 style="color:#1f2937;font-size:18px;margin:0 0 24px 0;">New Application Received</h2>
              <p style="color:#4b5563;font-size:15px;line-height:1.6;margin:0 0 24px 0;">
                %s has applied for your job posting <strong>%s</strong>.
                Sign in to review the application.
              </p>
              <table cellpadding="0" cellspacing="0">
                <tr>
                  <td style="background-color:#16a34a;border-radius:6px;padding:12px 32px;">
                    <a href="%s/employer/dashboard" style="color:#ffffff;text-decoration:none;font-size:15px;font-weight:600;">
                      Review Application
                    </a>
                  </td>
                </tr>
              </table>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`, seekerName, jobTitle, m.appURL)

	return m.send(ctx, toEmail, fmt.Sprintf("New application for %s", jobTitle), html)
}

func (m *resendMailer) SendApplicationStatusChanged(ctx context.Context, toEmail, jobTitle, status string) error {
	html := fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;background-color:#f4f6f8;font-family:Arial,Helvetica,sans-serif;">
  <table width="100%%" cellpadding="0" cellspacing="0" style="padding:40px 0;">
    <tr>
      <td align="center">
        <table width="480" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:8px;padding:40px;">
          <tr>
            <td>
              <h1 style="color:#16a34a;font-size:22px;margin:0 0 8px 0;">SkillConnect</h1>
              <h2 style="color:#1f2937;font-size:18px;margin:0 0 24px 0;">Application Update</h2>
              <p style="color:#4b5563;font-size:15px;line-height:1.6;margin:0 0 24px 0;">
                Your application for <strong>%s</strong> is now <strong>%s</strong>.
              </p>
              <p style="color:#6b7280;font-size:13px;line-height:1.6;margin:0;">
                <a href="%s/seeker/dashboard" style="color:#16a34a;">View your applications</a>
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`, jobTitle, status, m.appURL)

	return m.send(ctx, toEmail, fmt.Sprintf("Your application for %s was updated", jobTitle), html)
}

func (m *resendMailer) send(ctx context.Context, toEmail, subject, html string) error {
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("SkillConnect <%s>", m.fromEmail),
		To:      []string{toEmail},
		Subject: subject,
		Html:    html,
	}

	if _, err := m.client.Emails.SendWithContext(ctx, params); err != nil {
		m.logger.Error("failed to send email",
			slog.String("to", toEmail),
			slog.String("subject", subject),
			slog.Any("error", err))

		return pkgerrors.Wrap(err, "failed to send email")
	}

	return nil
}
