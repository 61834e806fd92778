package sinks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"attempt-stats/internal/models"

	"github.com/wneessen/go-mail"
)

const smtpTimeout = 30 * time.Second

type EmailOptions struct {
	SMTPServer string
	Port       int
	Sender     string
	Password   string
	Recipient  string
}

// mailSender is the part of *mail.Client the notifier uses.
type mailSender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

type emailNotifier struct {
	sender mailSender
	opts   EmailOptions
}

// NewEmailNotifier sends plain-text reports over implicit TLS with PLAIN auth as the sender account.
func NewEmailNotifier(opts EmailOptions) (Notifier, error) {
	client, err := mail.NewClient(opts.SMTPServer,
		mail.WithPort(opts.Port),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(opts.Sender),
		mail.WithPassword(opts.Password),
		mail.WithTimeout(smtpTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}
	return newEmailNotifier(client, opts), nil
}

func newEmailNotifier(sender mailSender, opts EmailOptions) *emailNotifier {
	return &emailNotifier{sender: sender, opts: opts}
}

func (n *emailNotifier) Notify(ctx context.Context, report *models.BatchReport) error {
	msg, err := n.buildMessage(report)
	if err != nil {
		return errNotificationBuildFailed(err)
	}
	if err := n.sender.DialAndSendWithContext(ctx, msg); err != nil {
		return errNotificationSendFailed(err)
	}
	return nil
}

func (n *emailNotifier) buildMessage(report *models.BatchReport) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(n.opts.Sender); err != nil {
		return nil, err
	}
	if err := msg.To(n.opts.Recipient); err != nil {
		return nil, err
	}
	msg.Subject(NotificationSubject(report))
	msg.SetDate()
	msg.SetBodyString(mail.TypeTextPlain, NotificationBody(report))
	return msg, nil
}

// NotificationSubject differs for failed, partially delivered and successful batches.
func NotificationSubject(report *models.BatchReport) string {
	switch report.Status {
	case models.BatchFailed:
		return "Attempt statistics batch failed"
	case models.BatchPartiallyDelivered:
		return "Attempt statistics batch partially delivered"
	default:
		return "Attempt statistics batch succeeded"
	}
}

func NotificationBody(report *models.BatchReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Batch: %s\n", report.BatchID)
	fmt.Fprintf(&b, "Window: %s - %s\n", report.Window.StartParam(), report.Window.EndParam())
	fmt.Fprintf(&b, "Status: %s\n", report.Status)

	if report.Status == models.BatchFailed {
		fmt.Fprintf(&b, "\nThe batch could not be processed.\nError: %s\n", report.Error)
		return b.String()
	}

	fmt.Fprintf(&b, "\nFetched records: %d\nSkipped records: %d\n", report.Fetched, report.Skipped)
	if report.Summary != nil {
		for _, entry := range report.Summary.Entries() {
			fmt.Fprintf(&b, "%s: %d\n", entry.Name, entry.Value)
		}
	}
	if len(report.Deliveries) > 0 {
		b.WriteString("\nDeliveries:\n")
		for _, d := range report.Deliveries {
			if d.Delivered {
				fmt.Fprintf(&b, "- %s: delivered\n", d.Sink)
				continue
			}
			fmt.Fprintf(&b, "- %s: failed (%s) %s\n", d.Sink, d.ErrorCode, d.Error)
		}
	}
	return b.String()
}
