package repositories

import (
	"context"

	"github.com/acadegrade/result-service/internal/models"
)

// SheetRepository persists sheets and their generated year/semester trees.
type SheetRepository interface {
	// CreateWithStructure persists the sheet together with its nested years,
	// semesters and seed courses in one transaction; a sheet without its
	// structure is never observable.
	CreateWithStructure(ctx context.Context, sheet *models.Sheet) error

	GetByID(ctx context.Context, id uint) (*models.Sheet, error)

	// GetByIDWithTree loads the full ordered year -> semester -> course tree.
	GetByIDWithTree(ctx context.Context, id uint) (*models.Sheet, error)

	// GetForOwner loads a sheet only when it belongs to the given owner UID;
	// a foreign sheet reads as not found.
	GetForOwner(ctx context.Context, id uint, ownerUID string) (*models.Sheet, error)

	// ListByOwner returns the owner's sheets with trees preloaded so the
	// caller can compute each CGPA.
	ListByOwner(ctx context.Context, ownerUID string) ([]*models.Sheet, error)

	Update(ctx context.Context, sheet *models.Sheet) error
	Delete(ctx context.Context, id uint) error

	// SemestersWithoutCourses lists the sheet's semesters that currently have
	// no courses, for the zeros-mode backfill pass.
	SemestersWithoutCourses(ctx context.Context, sheetID uint) ([]*models.Semester, error)
}
