package repositories

import (
	"context"

	"github.com/acadegrade/result-service/internal/models"
)

// ContactRepository persists contact-form messages.
type ContactRepository interface {
	Create(ctx context.Context, msg *models.ContactMessage) error
	List(ctx context.Context, limit, offset int) ([]*models.ContactMessage, int64, error)
}
