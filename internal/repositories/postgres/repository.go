package postgres

import (
	"github.com/acadegrade/result-service/internal/repositories"
	"gorm.io/gorm"
)

type repository struct {
	owner   repositories.OwnerRepository
	sheet   repositories.SheetRepository
	course  repositories.CourseRepository
	contact repositories.ContactRepository
}

// NewRepository wires the gorm-backed repositories over one database handle.
func NewRepository(db *gorm.DB) repositories.Repository {
	return &repository{
		owner:   NewOwnerPostgreSQL(db),
		sheet:   NewSheetPostgreSQL(db),
		course:  NewCoursePostgreSQL(db),
		contact: NewContactPostgreSQL(db),
	}
}

func (r *repository) Owner() repositories.OwnerRepository     { return r.owner }
func (r *repository) Sheet() repositories.SheetRepository     { return r.sheet }
func (r *repository) Course() repositories.CourseRepository   { return r.course }
func (r *repository) Contact() repositories.ContactRepository { return r.contact }
