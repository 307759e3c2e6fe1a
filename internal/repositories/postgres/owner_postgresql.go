package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/acadegrade/result-service/internal/models"
	"github.com/acadegrade/result-service/internal/repositories"
	"gorm.io/gorm"
)

type OwnerPostgreSQL struct {
	db *gorm.DB
}

func NewOwnerPostgreSQL(db *gorm.DB) repositories.OwnerRepository {
	return &OwnerPostgreSQL{db: db}
}

func (o *OwnerPostgreSQL) GetByUID(ctx context.Context, uid string) (*models.Owner, error) {
	var owner models.Owner
	if err := o.db.WithContext(ctx).Where("uid = ?", uid).First(&owner).Error; err != nil {
		return nil, err
	}
	return &owner, nil
}

func (o *OwnerPostgreSQL) GetByEmail(ctx context.Context, email string) (*models.Owner, error) {
	var owner models.Owner
	if err := o.db.WithContext(ctx).Where("email = ?", email).First(&owner).Error; err != nil {
		return nil, err
	}
	return &owner, nil
}

// Upsert creates or refreshes the owner keyed by UID. If the email is already
// bound to a different UID the existing record is rebound instead, since the
// identity provider may reissue UIDs for a known address.
func (o *OwnerPostgreSQL) Upsert(ctx context.Context, owner *models.Owner) (bool, error) {
	created := false

	err := o.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Owner
		err := tx.Where("uid = ?", owner.UID).First(&existing).Error
		switch {
		case err == nil:
			existing.Name = owner.Name
			existing.Email = owner.Email
			if owner.University != nil {
				existing.University = owner.University
			}
			if err := tx.Save(&existing).Error; err != nil {
				return fmt.Errorf("failed to update owner: %w", err)
			}
			*owner = existing
			return nil

		case errors.Is(err, gorm.ErrRecordNotFound):
			var byEmail models.Owner
			if err := tx.Where("email = ?", owner.Email).First(&byEmail).Error; err == nil {
				byEmail.UID = owner.UID
				byEmail.Name = owner.Name
				if err := tx.Save(&byEmail).Error; err != nil {
					return fmt.Errorf("failed to rebind owner uid: %w", err)
				}
				*owner = byEmail
				return nil
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			if err := tx.Create(owner).Error; err != nil {
				return fmt.Errorf("failed to create owner: %w", err)
			}
			created = true
			return nil

		default:
			return err
		}
	})

	return created, err
}
