package service

import (
	"context"

	"billun/internal/logger"
	"billun/internal/mailer"
)

// ContactService handles inbound contact messages and download link requests.
type ContactService interface {
	ReceiveMessage(ctx context.Context, fields map[string]interface{})
	SendAPKLink(ctx context.Context, email, link string) error
}

type contactService struct {
	mailer mailer.Sender
}

// NewContactService creates a new contact service.
func NewContactService(mailer mailer.Sender) ContactService {
	return &contactService{mailer: mailer}
}

// ReceiveMessage only records the message; nothing is stored.
func (s *contactService) ReceiveMessage(ctx context.Context, fields map[string]interface{}) {
	logger.FromContext(ctx).WithField("fields", len(fields)).Info("contact message received")
}

func (s *contactService) SendAPKLink(ctx context.Context, email, link string) error {
	return s.mailer.SendAPKLink(ctx, email, link)
}
