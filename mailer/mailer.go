package mailer

import (
	"errors"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/rdeano/dentacare/config"
)

// SendVerification mails the account verification link for a new admin.
func SendVerification(cfg *config.Config, toEmail, token string) error {
	if cfg.SendGridKey == "" {
		return errors.New("SENDGRID_API_KEY not set")
	}

	link := fmt.Sprintf("%s/api/auth/verify?token=%s", cfg.PublicURL, token)

	from := mail.NewEmail("DentaCare", cfg.MailFrom)
	to := mail.NewEmail("", toEmail)
	subject := "Verify your DentaCare admin account"
	plain := "Confirm your email to finish setting up your admin account: " + link
	html := fmt.Sprintf(`<p>Confirm your email to finish setting up your admin account.</p><p><a href="%s">Verify email</a></p>`, link)

	message := mail.NewSingleEmail(from, subject, to, plain, html)
	client := sendgrid.NewSendClient(cfg.SendGridKey)

	resp, err := client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid responded %d", resp.StatusCode)
	}
	return nil
}
