package services

import (
	"context"
	"io"
	"log/slog"

	"github.com/acadegrade/result-service/internal/models"
	"github.com/acadegrade/result-service/internal/repositories"
	"github.com/stretchr/testify/mock"
)

// MockOwnerRepository is a mock implementation of OwnerRepository
type MockOwnerRepository struct {
	mock.Mock
}

func (m *MockOwnerRepository) GetByUID(ctx context.Context, uid string) (*models.Owner, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Owner), args.Error(1)
}

func (m *MockOwnerRepository) GetByEmail(ctx context.Context, email string) (*models.Owner, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Owner), args.Error(1)
}

func (m *MockOwnerRepository) Upsert(ctx context.Context, owner *models.Owner) (bool, error) {
	args := m.Called(ctx, owner)
	return args.Bool(0), args.Error(1)
}

// MockSheetRepository is a mock implementation of SheetRepository
type MockSheetRepository struct {
	mock.Mock
}

func (m *MockSheetRepository) CreateWithStructure(ctx context.Context, sheet *models.Sheet) error {
	args := m.Called(ctx, sheet)
	return args.Error(0)
}

func (m *MockSheetRepository) GetByID(ctx context.Context, id uint) (*models.Sheet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Sheet), args.Error(1)
}

func (m *MockSheetRepository) GetByIDWithTree(ctx context.Context, id uint) (*models.Sheet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Sheet), args.Error(1)
}

func (m *MockSheetRepository) GetForOwner(ctx context.Context, id uint, ownerUID string) (*models.Sheet, error) {
	args := m.Called(ctx, id, ownerUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Sheet), args.Error(1)
}

func (m *MockSheetRepository) ListByOwner(ctx context.Context, ownerUID string) ([]*models.Sheet, error) {
	args := m.Called(ctx, ownerUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Sheet), args.Error(1)
}

func (m *MockSheetRepository) Update(ctx context.Context, sheet *models.Sheet) error {
	args := m.Called(ctx, sheet)
	return args.Error(0)
}

func (m *MockSheetRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSheetRepository) SemestersWithoutCourses(ctx context.Context, sheetID uint) ([]*models.Semester, error) {
	args := m.Called(ctx, sheetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Semester), args.Error(1)
}

// MockCourseRepository is a mock implementation of CourseRepository
type MockCourseRepository struct {
	mock.Mock
}

func (m *MockCourseRepository) Create(ctx context.Context, course *models.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseRepository) GetByID(ctx context.Context, id uint) (*models.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

func (m *MockCourseRepository) GetBySemester(ctx context.Context, semesterID uint) ([]models.Course, error) {
	args := m.Called(ctx, semesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Course), args.Error(1)
}

func (m *MockCourseRepository) Update(ctx context.Context, course *models.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCourseRepository) ReplaceForSemester(ctx context.Context, semesterID uint, courses []models.Course) ([]models.Course, error) {
	args := m.Called(ctx, semesterID, courses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Course), args.Error(1)
}

func (m *MockCourseRepository) CountBySemester(ctx context.Context, semesterID uint) (int64, error) {
	args := m.Called(ctx, semesterID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCourseRepository) GetSemester(ctx context.Context, semesterID uint) (*models.Semester, error) {
	args := m.Called(ctx, semesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Semester), args.Error(1)
}

func (m *MockCourseRepository) ResolveOwnership(ctx context.Context, courseID uint) (*repositories.CourseOwnership, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.CourseOwnership), args.Error(1)
}

// MockContactRepository is a mock implementation of ContactRepository
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockContactRepository) List(ctx context.Context, limit, offset int) ([]*models.ContactMessage, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*models.ContactMessage), args.Get(1).(int64), args.Error(2)
}

// mockRepository bundles the entity mocks behind the Repository interface.
type mockRepository struct {
	owner   *MockOwnerRepository
	sheet   *MockSheetRepository
	course  *MockCourseRepository
	contact *MockContactRepository
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		owner:   &MockOwnerRepository{},
		sheet:   &MockSheetRepository{},
		course:  &MockCourseRepository{},
		contact: &MockContactRepository{},
	}
}

func (r *mockRepository) Owner() repositories.OwnerRepository     { return r.owner }
func (r *mockRepository) Sheet() repositories.SheetRepository     { return r.sheet }
func (r *mockRepository) Course() repositories.CourseRepository   { return r.course }
func (r *mockRepository) Contact() repositories.ContactRepository { return r.contact }

// staticOwnerResolver returns a fixed owner, or the configured error.
type staticOwnerResolver struct {
	owner *models.Owner
	err   error
}

func (r *staticOwnerResolver) ResolveOwner(ctx context.Context, uid string) (*models.Owner, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.owner, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
