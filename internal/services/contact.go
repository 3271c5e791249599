package services

import (
	"context"
	"log"

	"gorm.io/gorm"

	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/metrics"
	apperrors "portfolio-backend/pkg/errors"
)

// ContactService handles contact form submissions and the admin listing
type ContactService struct {
	db       *gorm.DB
	notifier Notifier
}

// NewContactService creates a new contact service
func NewContactService(db *gorm.DB, notifier Notifier) *ContactService {
	return &ContactService{
		db:       db,
		notifier: notifier,
	}
}

// Submit validates and persists a contact message. The three fields are
// stored verbatim. The operator notification runs in a detached goroutine:
// the caller gets success as soon as the insert commits, and a notification
// failure is logged and swallowed.
func (s *ContactService) Submit(ctx context.Context, name, email, message string) (*domain.ContactMessage, error) {
	if name == "" || email == "" || message == "" {
		log.Printf("[CONTACT] Submit rejected: missing required field")
		return nil, apperrors.Validation("All fields are required")
	}

	msg := &domain.ContactMessage{
		Name:    name,
		Email:   email,
		Message: message,
	}

	if err := s.db.WithContext(ctx).Create(msg).Error; err != nil {
		log.Printf("[CONTACT] Submit failed: database error: %v", err)
		return nil, apperrors.Persistence("Error saving message", err)
	}

	log.Printf("[CONTACT] New message from %s (%s), id=%d", msg.Name, msg.Email, msg.ID)
	metrics.RecordContactSubmission()

	// Best-effort notification, never ties back to the request outcome.
	go func(m domain.ContactMessage) {
		if err := s.notifier.NotifySubmission(&m); err != nil {
			log.Printf("[CONTACT] Warning: failed to send notification email: %v", err)
			metrics.RecordContactNotification(false)
			return
		}
		log.Printf("[CONTACT] Notification email sent for message id=%d", m.ID)
		metrics.RecordContactNotification(true)
	}(*msg)

	return msg, nil
}

// List returns all stored messages, most recent first.
func (s *ContactService) List(ctx context.Context) ([]domain.ContactMessage, error) {
	var messages []domain.ContactMessage

	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&messages).Error; err != nil {
		log.Printf("[CONTACT] List failed: database error: %v", err)
		return nil, apperrors.Persistence("Error fetching messages", err)
	}

	log.Printf("[CONTACT] List successful: returned %d messages", len(messages))
	return messages, nil
}
