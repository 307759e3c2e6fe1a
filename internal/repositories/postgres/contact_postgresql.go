package postgres

import (
	"context"
	"fmt"

	"github.com/acadegrade/result-service/internal/models"
	"github.com/acadegrade/result-service/internal/repositories"
	"gorm.io/gorm"
)

type ContactPostgreSQL struct {
	db *gorm.DB
}

func NewContactPostgreSQL(db *gorm.DB) repositories.ContactRepository {
	return &ContactPostgreSQL{db: db}
}

func (c *ContactPostgreSQL) Create(ctx context.Context, msg *models.ContactMessage) error {
	if err := c.db.WithContext(ctx).Create(msg).Error; err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

func (c *ContactPostgreSQL) List(ctx context.Context, limit, offset int) ([]*models.ContactMessage, int64, error) {
	query := c.db.WithContext(ctx).Model(&models.ContactMessage{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = 50
	}

	var messages []*models.ContactMessage
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&messages).Error
	if err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}
