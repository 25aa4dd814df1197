// Package notify delivers the "we found your item" message to a lost
// report's owner. Delivery is best-effort: failures are logged and never
// surfaced to the caller.
package notify

import (
	"bytes"
	"fmt"
	"log/slog"
	"text/template"

	"github.com/founditapp/foundit/internal/model"
)

// Notifier sends a match-found message. Implementations must not panic and
// must swallow delivery errors (logging them) so a failed notification can
// never fail the match that triggered it.
type Notifier interface {
	Notify(report model.LostReport, item model.Item)
}

// Config selects and configures the delivery strategy. The choice is made
// once at process start.
type Config struct {
	Enabled  bool
	Host     string
	Port     int
	Username string
	Password string
	From     string
	SSL      bool
}

// Configured reports whether SMTP delivery is fully set up. Anything less
// falls back to demo mode.
func (c Config) Configured() bool {
	return c.Enabled && c.Host != "" && c.Username != "" && c.Password != "" && c.From != ""
}

// New returns the SMTP mailer when fully configured, otherwise the
// demo-mode log notifier.
func New(cfg Config) Notifier {
	if cfg.Configured() {
		slog.Info("match notifications via SMTP", "host", cfg.Host, "from", cfg.From)
		return &Mailer{cfg: cfg}
	}
	slog.Info("match notifications in demo mode (logged, not sent)")
	return &LogNotifier{}
}

var bodyTemplate = template.Must(template.New("match").Parse(`Hi {{.Report.OwnerName}},

Good news! An item matching your lost item report "{{.Report.Title}}" has
been turned in to the lost and found.

Found item details:
  Title:    {{.Item.Title}}
  Category: {{.Item.Category}}
  Found at: {{.Item.Location}}
  Found on: {{.Item.DateFound}}

Please visit the front office with proof of ownership to pick it up.

— FoundIt Lost & Found
`))

// RenderMessage produces the subject and plain-text body for a match.
func RenderMessage(report model.LostReport, item model.Item) (subject, body string, err error) {
	subject = fmt.Sprintf("Good news! We may have found your %s", report.Title)

	var buf bytes.Buffer
	data := struct {
		Report model.LostReport
		Item   model.Item
	}{report, item}
	if err := bodyTemplate.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("rendering notification body: %w", err)
	}
	return subject, buf.String(), nil
}

// LogNotifier is the demo-mode strategy: it writes the fully rendered
// message to the log so an operator can see what would have been sent.
type LogNotifier struct{}

func (n *LogNotifier) Notify(report model.LostReport, item model.Item) {
	subject, body, err := RenderMessage(report, item)
	if err != nil {
		slog.Error("failed to render match notification", "error", err)
		return
	}
	slog.Info("match notification (demo mode)",
		"to", report.OwnerEmail,
		"subject", subject,
		"body", body,
	)
}
