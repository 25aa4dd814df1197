package notify

import (
	"log/slog"

	"github.com/wneessen/go-mail"

	"github.com/founditapp/foundit/internal/model"
)

// Mailer delivers match notifications over SMTP.
type Mailer struct {
	cfg Config
}

func (m *Mailer) Notify(report model.LostReport, item model.Item) {
	subject, body, err := RenderMessage(report, item)
	if err != nil {
		slog.Error("failed to render match notification", "error", err)
		return
	}

	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		slog.Error("invalid notification sender", "from", m.cfg.From, "error", err)
		return
	}
	if err := msg.To(report.OwnerEmail); err != nil {
		slog.Error("invalid notification recipient", "to", report.OwnerEmail, "error", err)
		return
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
	}
	if m.cfg.SSL {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	client, err := mail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		slog.Error("failed to create SMTP client", "host", m.cfg.Host, "error", err)
		return
	}

	if err := client.DialAndSend(msg); err != nil {
		slog.Error("failed to send match notification",
			"to", report.OwnerEmail,
			"lost_report", report.ID,
			"item", item.ID,
			"error", err,
		)
		return
	}

	slog.Info("match notification sent", "to", report.OwnerEmail, "lost_report", report.ID, "item", item.ID)
}
