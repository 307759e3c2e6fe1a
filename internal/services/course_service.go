package services

import (
	"context"
	"fmt"
	"log/slog"

	apperrors "github.com/acadegrade/result-service/internal/errors"
	"github.com/acadegrade/result-service/internal/models"
	"github.com/acadegrade/result-service/internal/repositories"
	"github.com/acadegrade/result-service/internal/validator"
)

type CourseService interface {
	Add(ctx context.Context, req *CreateCourseRequest) (*CourseResponse, error)
	Get(ctx context.Context, id uint) (*CourseResponse, error)
	ListBySemester(ctx context.Context, semesterID uint) (*SemesterResponse, error)
	Update(ctx context.Context, id uint, req *UpdateCourseRequest) (*CourseResponse, error)
	ReplaceBatch(ctx context.Context, req *ReplaceCoursesRequest) ([]CourseResponse, error)
	Delete(ctx context.Context, id uint, ownerUID string) error
}

type courseService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewCourseService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) CourseService {
	return &courseService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

// ===== CORE CRUD OPERATIONS =====

func (s *courseService) Add(ctx context.Context, req *CreateCourseRequest) (*CourseResponse, error) {
	s.logger.Info("Adding course", "semester_id", req.SemesterID, "code", req.Code)

	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, apperrors.ToValidationErrors(err)
	}

	if _, err := s.repo.Course().GetSemester(ctx, req.SemesterID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSemesterNotFound
		}
		return nil, fmt.Errorf("failed to load semester: %w", err)
	}

	course := &models.Course{
		SemesterID: req.SemesterID,
		Code:       req.Code,
		Title:      req.Title,
		CreditUnit: req.CreditUnit,
		Incourse:   req.Incourse,
		Exam:       req.Exam,
	}
	if err := s.repo.Course().Create(ctx, course); err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	resp := buildCourseResponse(*course)
	return &resp, nil
}

func (s *courseService) Get(ctx context.Context, id uint) (*CourseResponse, error) {
	course, err := s.repo.Course().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	resp := buildCourseResponse(*course)
	return &resp, nil
}

func (s *courseService) ListBySemester(ctx context.Context, semesterID uint) (*SemesterResponse, error) {
	semester, err := s.repo.Course().GetSemester(ctx, semesterID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSemesterNotFound
		}
		return nil, fmt.Errorf("failed to load semester: %w", err)
	}

	courses, err := s.repo.Course().GetBySemester(ctx, semesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list semester courses: %w", err)
	}

	resp := buildSemesterResponse(*semester, courses)
	return &resp, nil
}

func (s *courseService) Update(ctx context.Context, id uint, req *UpdateCourseRequest) (*CourseResponse, error) {
	s.logger.Info("Updating course", "course_id", id)

	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, apperrors.ToValidationErrors(err)
	}

	course, err := s.repo.Course().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to load course for update: %w", err)
	}

	applyCourseUpdate(course, req)

	if err := s.repo.Course().Update(ctx, course); err != nil {
		return nil, fmt.Errorf("failed to update course: %w", err)
	}

	resp := buildCourseResponse(*course)
	return &resp, nil
}

// ReplaceBatch swaps a semester's whole course set in order, as one unit.
func (s *courseService) ReplaceBatch(ctx context.Context, req *ReplaceCoursesRequest) ([]CourseResponse, error) {
	s.logger.Info("Replacing semester courses", "semester_id", req.SemesterID, "count", len(req.Courses))

	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, apperrors.ToValidationErrors(err)
	}

	if _, err := s.repo.Course().GetSemester(ctx, req.SemesterID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSemesterNotFound
		}
		return nil, fmt.Errorf("failed to load semester: %w", err)
	}

	courses := make([]models.Course, 0, len(req.Courses))
	for _, in := range req.Courses {
		courses = append(courses, models.Course{
			Code:       in.Code,
			Title:      in.Title,
			CreditUnit: in.CreditUnit,
			Incourse:   in.Incourse,
			Exam:       in.Exam,
		})
	}

	stored, err := s.repo.Course().ReplaceForSemester(ctx, req.SemesterID, courses)
	if err != nil {
		return nil, fmt.Errorf("failed to replace semester courses: %w", err)
	}

	responses := make([]CourseResponse, 0, len(stored))
	for _, c := range stored {
		responses = append(responses, buildCourseResponse(c))
	}
	return responses, nil
}

// Delete removes a course after checking ownership. On a build-up sheet the
// last course of a semester cannot be deleted.
func (s *courseService) Delete(ctx context.Context, id uint, ownerUID string) error {
	s.logger.Info("Deleting course", "course_id", id, "owner_uid", ownerUID)

	if ownerUID == "" {
		return ErrUnauthorized
	}

	ownership, err := s.repo.Course().ResolveOwnership(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrCourseNotFound
		}
		return fmt.Errorf("failed to resolve course ownership: %w", err)
	}
	if ownership.OwnerUID != ownerUID {
		return ErrNotSheetOwner
	}

	if ownership.Sheet.Mode == models.ModeZeros {
		count, err := s.repo.Course().CountBySemester(ctx, ownership.Course.SemesterID)
		if err != nil {
			return fmt.Errorf("failed to count semester courses: %w", err)
		}
		if count <= 1 {
			return ErrLastCourseLocked
		}
	}

	if err := s.repo.Course().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrCourseNotFound
		}
		return fmt.Errorf("failed to delete course: %w", err)
	}
	return nil
}

// ===== HELPERS =====

func applyCourseUpdate(course *models.Course, req *UpdateCourseRequest) {
	if req.Code != nil {
		course.Code = *req.Code
	}
	if req.Title != nil {
		course.Title = *req.Title
	}
	if req.CreditUnit != nil {
		course.CreditUnit = *req.CreditUnit
	}
	if req.Incourse != nil {
		course.Incourse = *req.Incourse
	}
	if req.Exam != nil {
		course.Exam = *req.Exam
	}
}
