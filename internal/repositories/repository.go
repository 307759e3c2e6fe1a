package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// Repository bundles the per-entity repositories behind one injection point.
type Repository interface {
	Owner() OwnerRepository
	Sheet() SheetRepository
	Course() CourseRepository
	Contact() ContactRepository
}

// IsNotFoundError reports whether err is the store's missing-record error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
