package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/acadegrade/result-service/internal/events"
	"github.com/acadegrade/result-service/internal/repositories"
	"github.com/xuri/excelize/v2"
)

const exportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportService interface {
	// ExportSheet renders the sheet as a downloadable workbook. A non-nil
	// semesterID narrows the document to that semester's results.
	ExportSheet(ctx context.Context, sheetID uint, semesterID *uint) (*ExportResult, error)
}

type exportService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	publisher events.EventPublisher
}

func NewExportService(repo repositories.Repository, logger *slog.Logger, publisher events.EventPublisher) ExportService {
	return &exportService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
	}
}

func (s *exportService) ExportSheet(ctx context.Context, sheetID uint, semesterID *uint) (*ExportResult, error) {
	s.logger.Info("Exporting sheet", "sheet_id", sheetID)

	sheet, err := s.repo.Sheet().GetByIDWithTree(ctx, sheetID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSheetNotFound
		}
		return nil, fmt.Errorf("failed to load sheet for export: %w", err)
	}

	detail := buildSheetDetail(sheet)

	if semesterID != nil {
		detail, err = narrowToSemester(detail, *semesterID)
		if err != nil {
			return nil, err
		}
	}

	content, err := renderWorkbook(detail)
	if err != nil {
		return nil, err
	}

	result := &ExportResult{
		Filename:    fmt.Sprintf("ResultSheet_%s.xlsx", detail.StudentName),
		ContentType: exportContentType,
		Content:     content,
	}

	s.publishEvent(ctx, events.NewNotificationEvent(events.EventSheetExported, events.SheetExportedEvent{
		SheetID:    sheetID,
		SemesterID: semesterID,
		Filename:   result.Filename,
		ExportedAt: time.Now().UTC(),
	}))

	return result, nil
}

func (s *exportService) publishEvent(ctx context.Context, event *events.NotificationEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishNotificationEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish export event", "event_type", event.Type, "error", err)
	}
}

// narrowToSemester trims the detail view down to the single requested
// semester, keeping its enclosing year for the section heading.
func narrowToSemester(detail *SheetDetailResponse, semesterID uint) (*SheetDetailResponse, error) {
	for _, year := range detail.Years {
		for _, sem := range year.Semesters {
			if sem.ID == semesterID {
				year.Semesters = []SemesterResponse{sem}
				narrowed := *detail
				narrowed.Years = []YearResponse{year}
				return &narrowed, nil
			}
		}
	}
	return nil, ErrSemesterNotFound
}

// renderWorkbook lays the result sheet out on a single worksheet: a student
// info block, one table per semester with its GPA, and a closing CGPA block.
func renderWorkbook(detail *SheetDetailResponse) ([]byte, error) {
	f := excelize.NewFile()
	sheetName := "Result Sheet"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create workbook sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	row := 1
	writeRow := func(values ...interface{}) {
		for col, value := range values {
			cell := fmt.Sprintf("%c%d", 'A'+col, row)
			f.SetCellValue(sheetName, cell, value)
		}
		row++
	}

	writeRow("Student Name", detail.StudentName)
	if detail.University != "" {
		writeRow("University", detail.University)
	}
	if detail.Faculty != "" {
		writeRow("Faculty", detail.Faculty)
	}
	if detail.Department != "" {
		writeRow("Department", detail.Department)
	}
	if detail.EntryYear != "" {
		writeRow("Entry Year", detail.EntryYear)
	}
	row++

	for _, year := range detail.Years {
		writeRow(year.Label)
		for _, sem := range year.Semesters {
			writeRow(sem.Label)
			writeRow("Code", "Title", "Credit Unit", "CA", "Exam", "Score", "Grade", "Grade Point")
			for _, course := range sem.Courses {
				writeRow(course.Code, course.Title, course.CreditUnit,
					course.Incourse, course.Exam, course.Score, course.Grade, course.GradePoint)
			}
			writeRow("GPA", sem.GPA)
			row++
		}
		writeRow("Year GPA", year.GPA)
		row++
	}

	writeRow("CGPA", detail.CGPA)
	writeRow("Generated", time.Now().Format("2006-01-02 15:04:05"))

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
