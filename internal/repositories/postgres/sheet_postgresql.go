package postgres

import (
	"context"
	"fmt"

	"github.com/acadegrade/result-service/internal/models"
	"github.com/acadegrade/result-service/internal/repositories"
	"gorm.io/gorm"
)

type SheetPostgreSQL struct {
	db *gorm.DB
}

func NewSheetPostgreSQL(db *gorm.DB) repositories.SheetRepository {
	return &SheetPostgreSQL{db: db}
}

// CreateWithStructure persists the sheet and its nested tree atomically.
// The sheet's Years slice must already carry the generated semesters and any
// seed courses; gorm inserts the associations inside the transaction.
func (s *SheetPostgreSQL) CreateWithStructure(ctx context.Context, sheet *models.Sheet) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sheet).Error; err != nil {
			return fmt.Errorf("failed to create sheet with structure: %w", err)
		}
		return nil
	})
}

func (s *SheetPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Sheet, error) {
	var sheet models.Sheet
	if err := s.db.WithContext(ctx).First(&sheet, id).Error; err != nil {
		return nil, err
	}
	return &sheet, nil
}

func (s *SheetPostgreSQL) GetByIDWithTree(ctx context.Context, id uint) (*models.Sheet, error) {
	var sheet models.Sheet
	err := s.db.WithContext(ctx).
		Preload("Years", func(db *gorm.DB) *gorm.DB {
			return db.Order("index ASC")
		}).
		Preload("Years.Semesters", func(db *gorm.DB) *gorm.DB {
			return db.Order("index ASC")
		}).
		Preload("Years.Semesters.Courses", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		First(&sheet, id).Error
	if err != nil {
		return nil, err
	}
	return &sheet, nil
}

// GetForOwner loads a sheet scoped to its owner's UID. A sheet that exists
// but belongs to someone else is reported as not found ("not found or not
// yours").
func (s *SheetPostgreSQL) GetForOwner(ctx context.Context, id uint, ownerUID string) (*models.Sheet, error) {
	var sheet models.Sheet
	err := s.db.WithContext(ctx).
		Joins("JOIN owners ON owners.id = sheets.owner_id").
		Where("sheets.id = ? AND owners.uid = ?", id, ownerUID).
		First(&sheet).Error
	if err != nil {
		return nil, err
	}
	return &sheet, nil
}

func (s *SheetPostgreSQL) ListByOwner(ctx context.Context, ownerUID string) ([]*models.Sheet, error) {
	var sheets []*models.Sheet
	err := s.db.WithContext(ctx).
		Joins("JOIN owners ON owners.id = sheets.owner_id").
		Where("owners.uid = ?", ownerUID).
		Preload("Years.Semesters.Courses").
		Order("sheets.created_at DESC").
		Find(&sheets).Error
	if err != nil {
		return nil, err
	}
	return sheets, nil
}

func (s *SheetPostgreSQL) Update(ctx context.Context, sheet *models.Sheet) error {
	if err := s.db.WithContext(ctx).Save(sheet).Error; err != nil {
		return fmt.Errorf("failed to update sheet: %w", err)
	}
	return nil
}

// Delete removes the sheet; years, semesters and courses go with it via the
// cascade constraints.
func (s *SheetPostgreSQL) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Sheet{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete sheet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *SheetPostgreSQL) SemestersWithoutCourses(ctx context.Context, sheetID uint) ([]*models.Semester, error) {
	var semesters []*models.Semester
	err := s.db.WithContext(ctx).
		Joins("JOIN years ON years.id = semesters.year_id").
		Where("years.sheet_id = ?", sheetID).
		Where("NOT EXISTS (SELECT 1 FROM courses WHERE courses.semester_id = semesters.id)").
		Order("years.index ASC, semesters.index ASC").
		Find(&semesters).Error
	if err != nil {
		return nil, err
	}
	return semesters, nil
}
