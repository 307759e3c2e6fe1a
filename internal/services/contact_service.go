package services

import (
	"context"
	"fmt"
	"log/slog"

	apperrors "github.com/acadegrade/result-service/internal/errors"
	"github.com/acadegrade/result-service/internal/events"
	"github.com/acadegrade/result-service/internal/mailer"
	"github.com/acadegrade/result-service/internal/models"
	"github.com/acadegrade/result-service/internal/repositories"
	"github.com/acadegrade/result-service/internal/validator"
)

type ContactService interface {
	// Submit persists the message, then attempts email delivery. A delivery
	// failure degrades the reported status; the stored message survives.
	Submit(ctx context.Context, req *ContactRequest) (*ContactResult, error)
}

type contactService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	mailer    mailer.Mailer
	recipient string
	publisher events.EventPublisher
}

func NewContactService(
	repo repositories.Repository,
	logger *slog.Logger,
	validator *validator.Validator,
	mail mailer.Mailer,
	recipient string,
	publisher events.EventPublisher,
) ContactService {
	return &contactService{
		repo:      repo,
		logger:    logger,
		validator: validator,
		mailer:    mail,
		recipient: recipient,
		publisher: publisher,
	}
}

func (s *contactService) Submit(ctx context.Context, req *ContactRequest) (*ContactResult, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, apperrors.ToValidationErrors(err)
	}

	msg := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if err := s.repo.Contact().Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to store contact message: %w", err)
	}

	delivered := s.deliverEmails(ctx, req)

	s.publishEvent(ctx, events.NewNotificationEvent(events.EventContactReceived, events.ContactReceivedEvent{
		MessageID:      msg.ID,
		Name:           msg.Name,
		Email:          msg.Email,
		EmailDelivered: delivered,
	}))

	status := "success"
	if !delivered {
		status = "error"
	}
	return &ContactResult{Status: status}, nil
}

// deliverEmails forwards the message to the site inbox and acknowledges the
// sender. Both sends must succeed for the submission to count as delivered.
func (s *contactService) deliverEmails(ctx context.Context, req *ContactRequest) bool {
	delivered := true

	forward := &mailer.Message{
		ToName:   "Support",
		ToEmail:  s.recipient,
		Subject:  fmt.Sprintf("New contact message from %s", req.Name),
		TextBody: fmt.Sprintf("From: %s <%s>\n\n%s", req.Name, req.Email, req.Message),
	}
	if err := s.mailer.Send(ctx, forward); err != nil {
		s.logger.Error("Failed to forward contact message", "email", req.Email, "error", err)
		delivered = false
	}

	ack := &mailer.Message{
		ToName:   req.Name,
		ToEmail:  req.Email,
		Subject:  "We received your message",
		TextBody: fmt.Sprintf("Hi %s,\n\nThanks for reaching out. We received your message and will get back to you soon.", req.Name),
		HTMLBody: fmt.Sprintf("<p>Hi %s,</p><p>Thanks for reaching out. We received your message and will get back to you soon.</p>", req.Name),
	}
	if err := s.mailer.Send(ctx, ack); err != nil {
		s.logger.Error("Failed to acknowledge contact message", "email", req.Email, "error", err)
		delivered = false
	}

	return delivered
}

func (s *contactService) publishEvent(ctx context.Context, event *events.NotificationEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishNotificationEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish contact event", "event_type", event.Type, "error", err)
	}
}
