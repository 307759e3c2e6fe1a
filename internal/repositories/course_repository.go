package repositories

import (
	"context"

	"github.com/acadegrade/result-service/internal/models"
)

// CourseOwnership is the resolved ancestry of a course, walked up the
// course -> semester -> year -> sheet -> owner chain.
type CourseOwnership struct {
	Course   *models.Course
	Semester *models.Semester
	Year     *models.Year
	Sheet    *models.Sheet
	OwnerUID string
}

// CourseRepository persists courses and resolves their ownership chain.
type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id uint) (*models.Course, error)
	GetBySemester(ctx context.Context, semesterID uint) ([]models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id uint) error

	// ReplaceForSemester removes every course of the semester and inserts the
	// given set in order, in one transaction.
	ReplaceForSemester(ctx context.Context, semesterID uint, courses []models.Course) ([]models.Course, error)

	CountBySemester(ctx context.Context, semesterID uint) (int64, error)
	GetSemester(ctx context.Context, semesterID uint) (*models.Semester, error)

	// ResolveOwnership walks the four parent hops explicitly instead of
	// relying on relation preloads.
	ResolveOwnership(ctx context.Context, courseID uint) (*CourseOwnership, error)
}
