package repositories

import (
	"context"

	"github.com/acadegrade/result-service/internal/models"
)

// OwnerRepository persists the local owner records resolved from verified
// identity claims.
type OwnerRepository interface {
	GetByUID(ctx context.Context, uid string) (*models.Owner, error)
	GetByEmail(ctx context.Context, email string) (*models.Owner, error)

	// Upsert creates or updates the owner keyed by UID and reports whether a
	// new record was created. An email already bound to another UID rebinds
	// that record to the new UID instead of failing the unique constraint.
	Upsert(ctx context.Context, owner *models.Owner) (created bool, err error)
}
