package postgres

import (
	"context"
	"fmt"

	"github.com/acadegrade/result-service/internal/models"
	"github.com/acadegrade/result-service/internal/repositories"
	"gorm.io/gorm"
)

type CoursePostgreSQL struct {
	db *gorm.DB
}

func NewCoursePostgreSQL(db *gorm.DB) repositories.CourseRepository {
	return &CoursePostgreSQL{db: db}
}

func (c *CoursePostgreSQL) Create(ctx context.Context, course *models.Course) error {
	if err := c.db.WithContext(ctx).Create(course).Error; err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}
	return nil
}

func (c *CoursePostgreSQL) GetByID(ctx context.Context, id uint) (*models.Course, error) {
	var course models.Course
	if err := c.db.WithContext(ctx).First(&course, id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (c *CoursePostgreSQL) GetBySemester(ctx context.Context, semesterID uint) ([]models.Course, error) {
	var courses []models.Course
	err := c.db.WithContext(ctx).
		Where("semester_id = ?", semesterID).
		Order("id ASC").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *CoursePostgreSQL) Update(ctx context.Context, course *models.Course) error {
	if err := c.db.WithContext(ctx).Save(course).Error; err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}
	return nil
}

func (c *CoursePostgreSQL) Delete(ctx context.Context, id uint) error {
	result := c.db.WithContext(ctx).Delete(&models.Course{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete course: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReplaceForSemester swaps the semester's course set in one transaction so a
// failed batch never leaves the semester half-replaced.
func (c *CoursePostgreSQL) ReplaceForSemester(ctx context.Context, semesterID uint, courses []models.Course) ([]models.Course, error) {
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("semester_id = ?", semesterID).Delete(&models.Course{}).Error; err != nil {
			return fmt.Errorf("failed to clear semester courses: %w", err)
		}
		for i := range courses {
			courses[i].ID = 0
			courses[i].SemesterID = semesterID
			if err := tx.Create(&courses[i]).Error; err != nil {
				return fmt.Errorf("failed to insert replacement course: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *CoursePostgreSQL) CountBySemester(ctx context.Context, semesterID uint) (int64, error) {
	var count int64
	err := c.db.WithContext(ctx).
		Model(&models.Course{}).
		Where("semester_id = ?", semesterID).
		Count(&count).Error
	return count, err
}

func (c *CoursePostgreSQL) GetSemester(ctx context.Context, semesterID uint) (*models.Semester, error) {
	var semester models.Semester
	if err := c.db.WithContext(ctx).First(&semester, semesterID).Error; err != nil {
		return nil, err
	}
	return &semester, nil
}

// ResolveOwnership walks course -> semester -> year -> sheet -> owner with
// explicit lookups rather than relation preloads, so each hop's failure is
// a plain missing-record error.
func (c *CoursePostgreSQL) ResolveOwnership(ctx context.Context, courseID uint) (*repositories.CourseOwnership, error) {
	db := c.db.WithContext(ctx)

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return nil, err
	}

	var semester models.Semester
	if err := db.First(&semester, course.SemesterID).Error; err != nil {
		return nil, fmt.Errorf("failed to resolve semester of course %d: %w", courseID, err)
	}

	var year models.Year
	if err := db.First(&year, semester.YearID).Error; err != nil {
		return nil, fmt.Errorf("failed to resolve year of semester %d: %w", semester.ID, err)
	}

	var sheet models.Sheet
	if err := db.First(&sheet, year.SheetID).Error; err != nil {
		return nil, fmt.Errorf("failed to resolve sheet of year %d: %w", year.ID, err)
	}

	var owner models.Owner
	if err := db.First(&owner, sheet.OwnerID).Error; err != nil {
		return nil, fmt.Errorf("failed to resolve owner of sheet %d: %w", sheet.ID, err)
	}

	return &repositories.CourseOwnership{
		Course:   &course,
		Semester: &semester,
		Year:     &year,
		Sheet:    &sheet,
		OwnerUID: owner.UID,
	}, nil
}
