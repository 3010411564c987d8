package notify

import (
	"context"
	"fmt"
	"html"
	"net/smtp"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Config holds configuration for failure notification emails.
type Config struct {
	// Host is the SMTP host. Empty disables email and falls back to
	// log-only notifications.
	Host string `mapstructure:"host" default:""`
	// Port is the SMTP port.
	Port int `mapstructure:"port" default:"587"`
	// Username authenticates against the SMTP server when non-empty.
	Username string `mapstructure:"username" default:""`
	// Password is the SMTP password.
	Password string `mapstructure:"password" default:""`
	// From is the sender address.
	From string `mapstructure:"from" default:"post-sync@localhost"`
	// FromName is the sender display name.
	FromName string `mapstructure:"from_name" default:"Post Sync"`
	// To is the recipient of failure notifications.
	To string `mapstructure:"to" default:""`
}

// Mailer sends one HTML email per failure via SMTP. Send errors are logged
// and swallowed: notification delivery must never take a sync run down.
type Mailer struct {
	cfg    Config
	logger *zap.Logger
}

// New returns the configured Notifier: an SMTP mailer when a host and
// recipient are set, otherwise a log-only notifier.
func New(cfg Config, logger *zap.Logger) Notifier {
	if cfg.Host == "" || cfg.To == "" {
		return NewLogNotifier(logger)
	}
	return &Mailer{cfg: cfg, logger: logger}
}

// Notify builds and sends the failure email for the given kind.
func (m *Mailer) Notify(_ context.Context, kind Kind, fields map[string]string) {
	subject, body := composeMessage(kind, fields)
	if err := m.send(subject, body); err != nil {
		m.logger.Error("Failed to send failure notification",
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
		return
	}
	m.logger.Info("Sent failure notification", zap.String("kind", string(kind)))
}

func (m *Mailer) send(subject, htmlBody string) error {
	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s <%s>\r\n", m.cfg.FromName, m.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", m.cfg.To)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}
	return smtp.SendMail(addr, auth, m.cfg.From, []string{m.cfg.To}, []byte(msg.String()))
}

// composeMessage returns the subject and HTML body for a failure kind.
// Context fields (status code, record title, ...) are appended as a
// definition list.
func composeMessage(kind Kind, fields map[string]string) (string, string) {
	var subject, intro string

	switch kind {
	case KindAPIURLMissing:
		subject = "Sync Failed - API URL does not exist"
		intro = "The sync process has failed due to the API URL not being found. Please make sure that the API settings are set up correctly."
	case KindBadStatus:
		subject = "Sync Failed - API response is not valid"
		intro = "The sync process could not be completed due to an incorrect API response. Please check the API and try again."
	case KindMalformed:
		subject = "Sync Failed - Response could not be decoded"
		intro = "The sync process has failed because the API response body could not be decoded. Please verify the response format."
	case KindNoRecords:
		subject = "Sync Failed - Post details not found"
		intro = "The sync process has failed because the post details could not be found in the response. Please verify that the required post information is available and correctly mapped in the API response before retrying the sync."
	case KindTitleMissing:
		subject = "Sync Failed - Post Title Missing"
		intro = "The sync process has failed because the post title was not found in the response. Please ensure that the post title exists and is correctly mapped in the API response before attempting the sync again."
	case KindUpsertFailed:
		subject = "Post Sync Failed - Error while inserting post"
		intro = "We encountered an issue during the post sync process due to an error while inserting the post. Please review the sync details and try again."
	default:
		subject = "Sync Failed"
		intro = "The sync process has failed."
	}

	var body strings.Builder
	body.WriteString("<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"UTF-8\"></head><body>")
	body.WriteString("<div class=\"email-body\"><p>Hello Admin,</p>")
	fmt.Fprintf(&body, "<p>%s</p>", html.EscapeString(intro))

	if len(fields) > 0 {
		// Deterministic field order keeps the output stable.
		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&body, "<p><strong>%s:</strong> %s</p>",
				html.EscapeString(name), html.EscapeString(fields[name]))
		}
	}

	body.WriteString("</div></body></html>")
	return subject, body.String()
}
