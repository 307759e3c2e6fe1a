package services

import (
	"time"

	"github.com/acadegrade/result-service/internal/models"
)

// ===== REQUESTS =====

type CreateSheetRequest struct {
	StudentName      string                `json:"student_name" validate:"required,min=1,max=200"`
	University       string                `json:"university" validate:"max=200"`
	Faculty          string                `json:"faculty" validate:"max=200"`
	Department       string                `json:"department" validate:"max=200"`
	YearsOfStudy     int                   `json:"years_of_study" validate:"required,min=1,max=10"`
	SemestersPerYear int                   `json:"semesters_per_year" validate:"required,min=1,max=4"`
	EntryYear        string                `json:"entry_year" validate:"max=20"`
	Mode             models.PopulationMode `json:"mode" validate:"omitempty,population_mode"`
}

// UpdateSheetRequest mutates only the fields supplied. Duration parameters
// are fixed at creation; the structure is never regenerated.
type UpdateSheetRequest struct {
	StudentName *string                `json:"student_name" validate:"omitempty,min=1,max=200"`
	University  *string                `json:"university" validate:"omitempty,max=200"`
	Faculty     *string                `json:"faculty" validate:"omitempty,max=200"`
	Department  *string                `json:"department" validate:"omitempty,max=200"`
	EntryYear   *string                `json:"entry_year" validate:"omitempty,max=20"`
	Mode        *models.PopulationMode `json:"mode" validate:"omitempty,population_mode"`
}

type CreateCourseRequest struct {
	SemesterID uint   `json:"semester_id" validate:"required"`
	Code       string `json:"code" validate:"max=50"`
	Title      string `json:"title" validate:"max=200"`
	CreditUnit int    `json:"credit_unit" validate:"min=0"`
	Incourse   int    `json:"incourse" validate:"min=0"`
	Exam       int    `json:"exam" validate:"min=0"`
}

type UpdateCourseRequest struct {
	Code       *string `json:"code" validate:"omitempty,max=50"`
	Title      *string `json:"title" validate:"omitempty,max=200"`
	CreditUnit *int    `json:"credit_unit" validate:"omitempty,min=0"`
	Incourse   *int    `json:"incourse" validate:"omitempty,min=0"`
	Exam       *int    `json:"exam" validate:"omitempty,min=0"`
}

type CourseInput struct {
	Code       string `json:"code" validate:"max=50"`
	Title      string `json:"title" validate:"max=200"`
	CreditUnit int    `json:"credit_unit" validate:"min=0"`
	Incourse   int    `json:"incourse" validate:"min=0"`
	Exam       int    `json:"exam" validate:"min=0"`
}

// ReplaceCoursesRequest replaces the semester's whole course set, in order.
type ReplaceCoursesRequest struct {
	SemesterID uint          `json:"semester_id" validate:"required"`
	Courses    []CourseInput `json:"courses" validate:"dive"`
}

type SyncIdentityRequest struct {
	Name string `json:"name" validate:"max=150"`
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// ===== RESPONSES =====

// CourseResponse carries the stored fields plus the derived score, grade and
// grade point; the derived fields are computed on every read.
type CourseResponse struct {
	ID         uint   `json:"id"`
	Code       string `json:"code"`
	Title      string `json:"title"`
	CreditUnit int    `json:"credit_unit"`
	Incourse   int    `json:"incourse"`
	Exam       int    `json:"exam"`
	Score      int    `json:"score"`
	Grade      string `json:"grade"`
	GradePoint int    `json:"grade_point"`
}

type SemesterResponse struct {
	ID      uint             `json:"id"`
	Index   int              `json:"index"`
	Label   string           `json:"label"`
	GPA     float64          `json:"gpa"`
	Courses []CourseResponse `json:"courses"`
}

type YearResponse struct {
	ID        uint               `json:"id"`
	Index     int                `json:"index"`
	Label     string             `json:"year_label"`
	GPA       float64            `json:"year_gpa"`
	Semesters []SemesterResponse `json:"semesters"`
}

type SheetSummaryResponse struct {
	ID               uint                  `json:"id"`
	StudentName      string                `json:"student_name"`
	University       string                `json:"university"`
	Faculty          string                `json:"faculty"`
	Department       string                `json:"department"`
	YearsOfStudy     int                   `json:"years_of_study"`
	SemestersPerYear int                   `json:"semesters_per_year"`
	EntryYear        string                `json:"entry_year"`
	Mode             models.PopulationMode `json:"mode"`
	CGPA             float64               `json:"cgpa"`
	CreatedAt        time.Time             `json:"created_at"`
}

type SheetDetailResponse struct {
	SheetSummaryResponse
	Years []YearResponse `json:"years"`
}

type SheetListResponse struct {
	Sheets []SheetSummaryResponse `json:"sheets"`
	Total  int                    `json:"total"`
}

type OwnerResponse struct {
	UID   string `json:"uid"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type SyncIdentityResponse struct {
	Created bool          `json:"created"`
	Owner   OwnerResponse `json:"user"`
}

// ExportResult is the rendered document payload with its download metadata.
type ExportResult struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ContactResult reports the user-facing outcome of a contact submission.
// Status degrades to "error" when email delivery fails even though the
// message itself is already persisted.
type ContactResult struct {
	Status string `json:"status"`
}
