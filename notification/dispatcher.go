// Package notification sends the transactional emails that follow a payment
// status change.
package notification

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"log/slog"
	"net/url"
	texttemplate "text/template"
	"time"

	"github.com/International-Combat-Archery-Alliance/email"
	"github.com/accessviewafrica/summit-registration/events"
	"github.com/accessviewafrica/summit-registration/queue"
	"github.com/accessviewafrica/summit-registration/registration"
)

//go:embed templates
var templates embed.FS

var (
	htmlTemplates = htmltemplate.Must(htmltemplate.ParseFS(templates, "templates/*.html.tmpl"))
	textTemplates = texttemplate.Must(texttemplate.ParseFS(templates, "templates/*.txt.tmpl"))
)

// StatusPublisher receives a copy of every confirmation and failure notice.
type StatusPublisher interface {
	Publish(ctx context.Context, evt queue.PaymentStatusChanged) error
}

type Config struct {
	FromAddress  string
	BaseURL      string
	SummitName   string
	SupportEmail string
}

var _ registration.Notifier = &Dispatcher{}

type Dispatcher struct {
	sender    email.Sender
	eventRepo events.Repository
	cfg       Config
	logger    *slog.Logger
	qr        QRUploader
	publisher StatusPublisher
}

type Option func(*Dispatcher)

func WithQRUploader(u QRUploader) Option {
	return func(d *Dispatcher) {
		d.qr = u
	}
}

func WithStatusPublisher(p StatusPublisher) Option {
	return func(d *Dispatcher) {
		d.publisher = p
	}
}

func NewDispatcher(sender email.Sender, eventRepo events.Repository, cfg Config, logger *slog.Logger, opts ...Option) *Dispatcher {
	if cfg.SummitName == "" {
		cfg.SummitName = "Value Creation Summit"
	}

	d := &Dispatcher{
		sender:    sender,
		eventRepo: eventRepo,
		cfg:       cfg,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

type emailData struct {
	SummitName   string
	SupportEmail string
	Registration registration.Registration
	Event        events.Event
	Amount       string
	QRCode       htmltemplate.URL
	VerifyURL    string
	Link         string
}

func (d *Dispatcher) SendConfirmation(ctx context.Context, reg registration.Registration) error {
	data, err := d.newEmailData(ctx, reg)
	if err != nil {
		return err
	}
	data.QRCode = d.qrCode(ctx, reg.ClientReference, data.VerifyURL)

	err = d.send(ctx, reg, fmt.Sprintf("Registration Confirmation - %s", data.Event.Title), "payment-success", data)
	if err != nil {
		return err
	}

	d.publish(ctx, reg)
	return nil
}

func (d *Dispatcher) SendFailureNotice(ctx context.Context, reg registration.Registration) error {
	data, err := d.newEmailData(ctx, reg)
	if err != nil {
		return err
	}
	data.Link = d.RegistrationLink(reg)

	err = d.send(ctx, reg, fmt.Sprintf("Payment Failed - %s", data.Event.Title), "payment-failed", data)
	if err != nil {
		return err
	}

	d.publish(ctx, reg)
	return nil
}

func (d *Dispatcher) SendReminder(ctx context.Context, reg registration.Registration, link string) error {
	data, err := d.newEmailData(ctx, reg)
	if err != nil {
		return err
	}
	if link == "" {
		link = d.RegistrationLink(reg)
	}
	data.Link = link

	return d.send(ctx, reg, fmt.Sprintf("Payment Reminder - %s", data.Event.Title), "payment-reminder", data)
}

// RegistrationLink points at the registration form pre-filled with reg's details.
func (d *Dispatcher) RegistrationLink(reg registration.Registration) string {
	query := url.Values{}
	query.Set("event", reg.EventType)
	query.Set("ref", reg.ClientReference)
	return fmt.Sprintf("%s/register?%s", d.cfg.BaseURL, query.Encode())
}

// VerifyURL is what the entry QR code encodes.
func (d *Dispatcher) VerifyURL(clientReference string) string {
	return fmt.Sprintf("%s/verify/%s", d.cfg.BaseURL, url.PathEscape(clientReference))
}

func (d *Dispatcher) newEmailData(ctx context.Context, reg registration.Registration) (emailData, error) {
	event, err := d.eventRepo.GetEvent(ctx, reg.EventType)
	if err != nil {
		return emailData{}, fmt.Errorf("failed to look up event %q: %w", reg.EventType, err)
	}

	amount := event.Price
	if reg.PaymentData != nil && reg.PaymentData.Amount != nil {
		amount = reg.PaymentData.Amount
	}

	data := emailData{
		SummitName:   d.cfg.SummitName,
		SupportEmail: d.cfg.SupportEmail,
		Registration: reg,
		Event:        event,
		VerifyURL:    d.VerifyURL(reg.ClientReference),
	}
	if amount != nil {
		data.Amount = amount.Display()
	}
	return data, nil
}

func (d *Dispatcher) send(ctx context.Context, reg registration.Registration, subject string, name string, data emailData) error {
	var htmlBody bytes.Buffer
	err := htmlTemplates.ExecuteTemplate(&htmlBody, name+".html.tmpl", data)
	if err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	var textBody bytes.Buffer
	err = textTemplates.ExecuteTemplate(&textBody, name+".txt.tmpl", data)
	if err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	err = d.sender.SendEmail(ctx, email.Email{
		FromAddress: d.cfg.FromAddress,
		ToAddresses: []string{reg.CustomerInfo.Email},
		Subject:     subject,
		HTMLBody:    htmlBody.String(),
		TextBody:    textBody.String(),
	})
	if err != nil {
		return fmt.Errorf("failed to send %s email: %w", name, err)
	}

	d.logger.InfoContext(ctx, "Sent email",
		slog.String("template", name),
		slog.String("client-reference", reg.ClientReference),
	)
	return nil
}

func (d *Dispatcher) publish(ctx context.Context, reg registration.Registration) {
	if d.publisher == nil {
		return
	}

	evt := queue.PaymentStatusChanged{
		ClientReference: reg.ClientReference,
		EventType:       reg.EventType,
		Status:          reg.PaymentStatus.String(),
		OccurredAt:      reg.UpdatedAt,
	}
	if evt.OccurredAt.IsZero() {
		evt.OccurredAt = time.Now()
	}
	if reg.PaymentData != nil && reg.PaymentData.Amount != nil {
		evt.Amount = reg.PaymentData.Amount.Amount()
		evt.Currency = reg.PaymentData.Amount.Currency().Code
	}

	err := d.publisher.Publish(ctx, evt)
	if err != nil {
		d.logger.WarnContext(ctx, "Failed to publish payment status event",
			slog.String("client-reference", reg.ClientReference),
			slog.String("error", err.Error()),
		)
	}
}
