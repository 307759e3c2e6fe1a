package services

import (
	"context"
	"fmt"
	"log/slog"

	apperrors "github.com/acadegrade/result-service/internal/errors"
	"github.com/acadegrade/result-service/internal/events"
	"github.com/acadegrade/result-service/internal/grading"
	"github.com/acadegrade/result-service/internal/models"
	"github.com/acadegrade/result-service/internal/repositories"
	"github.com/acadegrade/result-service/internal/validator"
)

type SheetService interface {
	Create(ctx context.Context, req *CreateSheetRequest, ownerUID string) (*SheetDetailResponse, error)
	Get(ctx context.Context, id uint) (*SheetDetailResponse, error)
	List(ctx context.Context, ownerUID string) (*SheetListResponse, error)
	Update(ctx context.Context, id uint, req *UpdateSheetRequest, ownerUID string) (*SheetDetailResponse, error)
	Delete(ctx context.Context, id uint, ownerUID string) error
}

type sheetService struct {
	repo      repositories.Repository
	owners    OwnerResolver
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
}

func NewSheetService(
	repo repositories.Repository,
	owners OwnerResolver,
	logger *slog.Logger,
	validator *validator.Validator,
	publisher events.EventPublisher,
) SheetService {
	return &sheetService{
		repo:      repo,
		owners:    owners,
		logger:    logger,
		validator: validator,
		publisher: publisher,
	}
}

// ===== CORE CRUD OPERATIONS =====

func (s *sheetService) Create(ctx context.Context, req *CreateSheetRequest, ownerUID string) (*SheetDetailResponse, error) {
	s.logger.Info("Creating sheet", "owner_uid", ownerUID, "student_name", req.StudentName)

	if ownerUID == "" {
		return nil, ErrUnauthorized
	}
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, apperrors.ToValidationErrors(err)
	}

	owner, err := s.owners.ResolveOwner(ctx, ownerUID)
	if err != nil {
		return nil, err
	}

	mode := req.Mode
	if mode == "" {
		mode = models.ModeZeros
	}

	sheet := &models.Sheet{
		OwnerID:          owner.ID,
		StudentName:      req.StudentName,
		University:       req.University,
		Faculty:          req.Faculty,
		Department:       req.Department,
		YearsOfStudy:     req.YearsOfStudy,
		SemestersPerYear: req.SemestersPerYear,
		EntryYear:        req.EntryYear,
		Mode:             mode,
	}
	sheet.Years = buildYears(grading.GenerateStructure(
		req.YearsOfStudy, req.SemestersPerYear, req.EntryYear, mode == models.ModeZeros))

	if err := s.repo.Sheet().CreateWithStructure(ctx, sheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	s.publishEvent(ctx, events.NewNotificationEvent(events.EventSheetCreated, events.SheetCreatedEvent{
		SheetID:          sheet.ID,
		OwnerUID:         ownerUID,
		StudentName:      sheet.StudentName,
		YearsOfStudy:     sheet.YearsOfStudy,
		SemestersPerYear: sheet.SemestersPerYear,
		Mode:             string(sheet.Mode),
	}))

	return s.Get(ctx, sheet.ID)
}

func (s *sheetService) Get(ctx context.Context, id uint) (*SheetDetailResponse, error) {
	sheet, err := s.repo.Sheet().GetByIDWithTree(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSheetNotFound
		}
		return nil, fmt.Errorf("failed to get sheet: %w", err)
	}
	return buildSheetDetail(sheet), nil
}

func (s *sheetService) List(ctx context.Context, ownerUID string) (*SheetListResponse, error) {
	if ownerUID == "" {
		return nil, ErrUnauthorized
	}

	sheets, err := s.repo.Sheet().ListByOwner(ctx, ownerUID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sheets: %w", err)
	}

	resp := &SheetListResponse{
		Sheets: make([]SheetSummaryResponse, 0, len(sheets)),
		Total:  len(sheets),
	}
	for _, sheet := range sheets {
		resp.Sheets = append(resp.Sheets, buildSheetSummary(sheet))
	}
	return resp, nil
}

func (s *sheetService) Update(ctx context.Context, id uint, req *UpdateSheetRequest, ownerUID string) (*SheetDetailResponse, error) {
	s.logger.Info("Updating sheet", "sheet_id", id, "owner_uid", ownerUID)

	if ownerUID == "" {
		return nil, ErrUnauthorized
	}
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, apperrors.ToValidationErrors(err)
	}

	sheet, err := s.repo.Sheet().GetForOwner(ctx, id, ownerUID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSheetNotFound
		}
		return nil, fmt.Errorf("failed to load sheet for update: %w", err)
	}

	previousMode := sheet.Mode
	applySheetUpdate(sheet, req)

	if err := s.repo.Sheet().Update(ctx, sheet); err != nil {
		return nil, fmt.Errorf("failed to update sheet: %w", err)
	}

	// Switching into the build-up mode backfills every empty semester with
	// the placeholder course so the mode invariant holds immediately.
	if previousMode != models.ModeZeros && sheet.Mode == models.ModeZeros {
		if err := s.backfillEmptySemesters(ctx, sheet.ID); err != nil {
			return nil, err
		}
	}

	return s.Get(ctx, sheet.ID)
}

func (s *sheetService) Delete(ctx context.Context, id uint, ownerUID string) error {
	s.logger.Info("Deleting sheet", "sheet_id", id, "owner_uid", ownerUID)

	if ownerUID == "" {
		return ErrUnauthorized
	}

	if _, err := s.repo.Sheet().GetForOwner(ctx, id, ownerUID); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrSheetNotFound
		}
		return fmt.Errorf("failed to load sheet for delete: %w", err)
	}

	if err := s.repo.Sheet().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrSheetNotFound
		}
		return fmt.Errorf("failed to delete sheet: %w", err)
	}
	return nil
}

// ===== HELPERS =====

func (s *sheetService) backfillEmptySemesters(ctx context.Context, sheetID uint) error {
	semesters, err := s.repo.Sheet().SemestersWithoutCourses(ctx, sheetID)
	if err != nil {
		return fmt.Errorf("failed to find empty semesters: %w", err)
	}
	for _, sem := range semesters {
		plan := grading.PlaceholderCourse()
		course := &models.Course{
			SemesterID: sem.ID,
			Code:       plan.Code,
			Title:      plan.Title,
			CreditUnit: plan.CreditUnit,
			Incourse:   plan.Incourse,
			Exam:       plan.Exam,
		}
		if err := s.repo.Course().Create(ctx, course); err != nil {
			return fmt.Errorf("failed to backfill semester %d: %w", sem.ID, err)
		}
	}
	return nil
}

func (s *sheetService) publishEvent(ctx context.Context, event *events.NotificationEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishNotificationEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish sheet event", "event_type", event.Type, "error", err)
	}
}

func applySheetUpdate(sheet *models.Sheet, req *UpdateSheetRequest) {
	if req.StudentName != nil {
		sheet.StudentName = *req.StudentName
	}
	if req.University != nil {
		sheet.University = *req.University
	}
	if req.Faculty != nil {
		sheet.Faculty = *req.Faculty
	}
	if req.Department != nil {
		sheet.Department = *req.Department
	}
	if req.EntryYear != nil {
		sheet.EntryYear = *req.EntryYear
	}
	if req.Mode != nil {
		sheet.Mode = *req.Mode
	}
}

// buildYears converts the generated structure into nested records so the
// whole tree is inserted alongside the sheet.
func buildYears(plans []grading.YearPlan) []models.Year {
	years := make([]models.Year, 0, len(plans))
	for _, yp := range plans {
		year := models.Year{Index: yp.Index, Label: yp.Label}
		for _, sp := range yp.Semesters {
			sem := models.Semester{Index: sp.Index, Label: sp.Label}
			for _, cp := range sp.Courses {
				sem.Courses = append(sem.Courses, models.Course{
					Code:       cp.Code,
					Title:      cp.Title,
					CreditUnit: cp.CreditUnit,
					Incourse:   cp.Incourse,
					Exam:       cp.Exam,
				})
			}
			year.Semesters = append(year.Semesters, sem)
		}
		years = append(years, year)
	}
	return years
}
