package services

import (
	"context"
	"testing"

	"github.com/acadegrade/result-service/internal/events"
	"github.com/acadegrade/result-service/internal/models"
	"github.com/acadegrade/result-service/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newSheetServiceForTest(repo *mockRepository, resolver OwnerResolver) (SheetService, *events.MockEventPublisher) {
	publisher := events.NewMockEventPublisher(testLogger())
	svc := NewSheetService(repo, resolver, testLogger(), validator.New(), publisher)
	return svc, publisher
}

func TestSheetServiceCreateGeneratesStructure(t *testing.T) {
	repo := newMockRepository()
	resolver := &staticOwnerResolver{owner: &models.Owner{ID: 7, UID: "u1"}}
	svc, publisher := newSheetServiceForTest(repo, resolver)

	var created *models.Sheet
	repo.sheet.On("CreateWithStructure", mock.Anything, mock.AnythingOfType("*models.Sheet")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*models.Sheet)
			created.ID = 42
		}).
		Return(nil)

	stored := &models.Sheet{
		ID:               42,
		OwnerID:          7,
		StudentName:      "Ada Obi",
		YearsOfStudy:     2,
		SemestersPerYear: 2,
		EntryYear:        "2021/2022",
		Mode:             models.ModeZeros,
	}
	repo.sheet.On("GetByIDWithTree", mock.Anything, uint(42)).Return(stored, nil)

	resp, err := svc.Create(context.Background(), &CreateSheetRequest{
		StudentName:      "Ada Obi",
		YearsOfStudy:     2,
		SemestersPerYear: 2,
		EntryYear:        "2021/2022",
	}, "u1")

	assert.NoError(t, err)
	assert.Equal(t, uint(42), resp.ID)

	// Default mode is zeros and the whole tree is created with the sheet.
	assert.Equal(t, models.ModeZeros, created.Mode)
	assert.Equal(t, uint(7), created.OwnerID)
	assert.Len(t, created.Years, 2)
	assert.Equal(t, "2021/2022 Year 1", created.Years[0].Label)
	assert.Equal(t, "2022/2023 Year 2", created.Years[1].Label)
	for _, year := range created.Years {
		assert.Len(t, year.Semesters, 2)
		for _, sem := range year.Semesters {
			assert.Len(t, sem.Courses, 1)
			assert.Equal(t, "C code 1", sem.Courses[0].Code)
			assert.Equal(t, 1, sem.Courses[0].CreditUnit)
		}
	}

	assert.Len(t, publisher.PublishedEvents(), 1)
	assert.Equal(t, events.EventSheetCreated, publisher.PublishedEvents()[0].Type)
}

func TestSheetServiceCreateAvailableModeSkipsPlaceholders(t *testing.T) {
	repo := newMockRepository()
	resolver := &staticOwnerResolver{owner: &models.Owner{ID: 7, UID: "u1"}}
	svc, _ := newSheetServiceForTest(repo, resolver)

	var created *models.Sheet
	repo.sheet.On("CreateWithStructure", mock.Anything, mock.AnythingOfType("*models.Sheet")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*models.Sheet)
			created.ID = 5
		}).
		Return(nil)
	repo.sheet.On("GetByIDWithTree", mock.Anything, uint(5)).Return(&models.Sheet{ID: 5}, nil)

	_, err := svc.Create(context.Background(), &CreateSheetRequest{
		StudentName:      "Ada Obi",
		YearsOfStudy:     1,
		SemestersPerYear: 2,
		Mode:             models.ModeAvailable,
	}, "u1")

	assert.NoError(t, err)
	for _, year := range created.Years {
		for _, sem := range year.Semesters {
			assert.Empty(t, sem.Courses)
		}
	}
}

func TestSheetServiceCreateValidation(t *testing.T) {
	repo := newMockRepository()
	svc, _ := newSheetServiceForTest(repo, &staticOwnerResolver{owner: &models.Owner{ID: 1}})

	_, err := svc.Create(context.Background(), &CreateSheetRequest{
		YearsOfStudy:     4,
		SemestersPerYear: 2,
	}, "u1")

	assert.Error(t, err)
	assert.True(t, IsValidation(err))
	repo.sheet.AssertNotCalled(t, "CreateWithStructure", mock.Anything, mock.Anything)
}

func TestSheetServiceCreateUnknownOwner(t *testing.T) {
	repo := newMockRepository()
	svc, _ := newSheetServiceForTest(repo, &staticOwnerResolver{err: ErrOwnerNotFound})

	_, err := svc.Create(context.Background(), &CreateSheetRequest{
		StudentName:      "Ada Obi",
		YearsOfStudy:     4,
		SemestersPerYear: 2,
	}, "u1")

	assert.ErrorIs(t, err, ErrOwnerNotFound)
}

func TestSheetServiceGetNotFound(t *testing.T) {
	repo := newMockRepository()
	svc, _ := newSheetServiceForTest(repo, &staticOwnerResolver{})

	repo.sheet.On("GetByIDWithTree", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Get(context.Background(), 9)
	assert.ErrorIs(t, err, ErrSheetNotFound)
}

func TestSheetServiceGetComputesAggregates(t *testing.T) {
	repo := newMockRepository()
	svc, _ := newSheetServiceForTest(repo, &staticOwnerResolver{})

	sheet := &models.Sheet{
		ID:          3,
		StudentName: "Ada Obi",
		Years: []models.Year{{
			ID: 1, Index: 1, Label: "Year 1",
			Semesters: []models.Semester{{
				ID: 1, Index: 1, Label: "1st Semester",
				Courses: []models.Course{
					{ID: 1, CreditUnit: 3, Incourse: 30, Exam: 45},
					{ID: 2, CreditUnit: 2, Incourse: 20, Exam: 35},
				},
			}},
		}},
	}
	repo.sheet.On("GetByIDWithTree", mock.Anything, uint(3)).Return(sheet, nil)

	resp, err := svc.Get(context.Background(), 3)
	assert.NoError(t, err)

	sem := resp.Years[0].Semesters[0]
	assert.Equal(t, "A", sem.Courses[0].Grade)
	assert.Equal(t, 5, sem.Courses[0].GradePoint)
	assert.Equal(t, "C", sem.Courses[1].Grade)
	// (3*5 + 2*3) / 5 = 4.2
	assert.InDelta(t, 4.2, sem.GPA, 0.001)
	assert.InDelta(t, 4.2, resp.CGPA, 0.001)
}

func TestSheetServiceUpdateBackfillsOnModeSwitch(t *testing.T) {
	repo := newMockRepository()
	svc, _ := newSheetServiceForTest(repo, &staticOwnerResolver{})

	sheet := &models.Sheet{ID: 4, OwnerID: 7, StudentName: "Ada Obi", Mode: models.ModeAvailable}
	repo.sheet.On("GetForOwner", mock.Anything, uint(4), "u1").Return(sheet, nil)
	repo.sheet.On("Update", mock.Anything, sheet).Return(nil)
	repo.sheet.On("SemestersWithoutCourses", mock.Anything, uint(4)).
		Return([]*models.Semester{{ID: 11}, {ID: 12}}, nil)
	repo.course.On("Create", mock.Anything, mock.AnythingOfType("*models.Course")).Return(nil)
	repo.sheet.On("GetByIDWithTree", mock.Anything, uint(4)).Return(sheet, nil)

	mode := models.ModeZeros
	_, err := svc.Update(context.Background(), 4, &UpdateSheetRequest{Mode: &mode}, "u1")
	assert.NoError(t, err)

	repo.course.AssertNumberOfCalls(t, "Create", 2)
	createdCourse := repo.course.Calls[0].Arguments.Get(1).(*models.Course)
	assert.Equal(t, "C code 1", createdCourse.Code)
	assert.Equal(t, uint(11), createdCourse.SemesterID)
}

func TestSheetServiceUpdateForeignSheet(t *testing.T) {
	repo := newMockRepository()
	svc, _ := newSheetServiceForTest(repo, &staticOwnerResolver{})

	repo.sheet.On("GetForOwner", mock.Anything, uint(4), "intruder").Return(nil, gorm.ErrRecordNotFound)

	name := "New Name"
	_, err := svc.Update(context.Background(), 4, &UpdateSheetRequest{StudentName: &name}, "intruder")
	assert.ErrorIs(t, err, ErrSheetNotFound)
	repo.sheet.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSheetServiceDelete(t *testing.T) {
	repo := newMockRepository()
	svc, _ := newSheetServiceForTest(repo, &staticOwnerResolver{})

	repo.sheet.On("GetForOwner", mock.Anything, uint(4), "u1").Return(&models.Sheet{ID: 4}, nil)
	repo.sheet.On("Delete", mock.Anything, uint(4)).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), 4, "u1"))
	repo.sheet.AssertCalled(t, "Delete", mock.Anything, uint(4))
}

func TestSheetServiceListEmptyForUnknownOwner(t *testing.T) {
	repo := newMockRepository()
	svc, _ := newSheetServiceForTest(repo, &staticOwnerResolver{})

	repo.sheet.On("ListByOwner", mock.Anything, "ghost").Return([]*models.Sheet{}, nil)

	resp, err := svc.List(context.Background(), "ghost")
	assert.NoError(t, err)
	assert.Equal(t, 0, resp.Total)
	assert.Empty(t, resp.Sheets)
}
