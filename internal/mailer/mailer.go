package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"

	"billun/internal/config"
	apperrors "billun/internal/errors"
	"billun/internal/logger"
)

const (
	tempPasswordSubject = "Votre mot de passe temporaire - Billun"
	apkLinkSubject      = "Votre lien de téléchargement - Billun"
	sendTimeout         = 15 * time.Second
)

// Sender delivers the transactional emails of the service.
type Sender interface {
	SendTempPassword(ctx context.Context, to, password string) error
	SendAPKLink(ctx context.Context, to, link string) error
}

// SMTPMailer sends emails through an SMTP relay using STARTTLS and PLAIN auth.
type SMTPMailer struct {
	cfg  config.SMTPConfig
	send func(ctx context.Context, msg *mail.Msg) error
}

// NewSMTPMailer creates a mailer for the given relay settings.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	m := &SMTPMailer{cfg: cfg}
	m.send = m.dialAndSend
	return m
}

// SendTempPassword mails a freshly generated password to a new user.
func (m *SMTPMailer) SendTempPassword(ctx context.Context, to, password string) error {
	msg, err := newMessage(m.cfg.User, to, tempPasswordSubject, tempPasswordBody(password))
	if err != nil {
		return err
	}
	return m.deliver(ctx, to, msg)
}

// SendAPKLink mails the mobile application download link.
func (m *SMTPMailer) SendAPKLink(ctx context.Context, to, link string) error {
	msg, err := newMessage(m.cfg.User, to, apkLinkSubject, apkLinkBody(link))
	if err != nil {
		return err
	}
	return m.deliver(ctx, to, msg)
}

func (m *SMTPMailer) deliver(ctx context.Context, to string, msg *mail.Msg) error {
	if err := m.send(ctx, msg); err != nil {
		logger.FromContext(ctx).WithError(err).WithField("to", to).Error("smtp send failed")
		return fmt.Errorf("%w: %v", apperrors.ErrMailDelivery, err)
	}
	logger.FromContext(ctx).WithField("to", to).Info("email sent")
	return nil
}

func (m *SMTPMailer) dialAndSend(ctx context.Context, msg *mail.Msg) error {
	client, err := mail.NewClient(m.cfg.Server,
		mail.WithPort(m.cfg.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.User),
		mail.WithPassword(m.cfg.Password),
		mail.WithTimeout(sendTimeout),
	)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}
	return client.DialAndSendWithContext(ctx, msg)
}

func newMessage(from, to, subject, body string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(to); err != nil {
		return nil, apperrors.NewValidationError("email", "invalid recipient address")
	}
	msg.Subject(subject)
	msg.SetDate()
	msg.SetBodyString(mail.TypeTextPlain, body)
	return msg, nil
}

func tempPasswordBody(password string) string {
	return fmt.Sprintf(`Bonjour,

Voici votre mot de passe temporaire pour Billun : %s

Merci de le modifier après votre première connexion.

Cordialement,
L'équipe Billun.`, password)
}

func apkLinkBody(link string) string {
	return fmt.Sprintf(`Bonjour,

Vous pouvez télécharger l'application mobile Billun à l'adresse suivante :
%s

Cordialement,
L'équipe Billun.`, link)
}
