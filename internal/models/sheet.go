package models

import (
	"time"
)

type PopulationMode string

const (
	// ModeZeros pre-populates every semester with one zero-valued course so
	// the sheet can be built up as results arrive.
	ModeZeros PopulationMode = "zeros"
	// ModeAvailable leaves semesters empty until results are available.
	ModeAvailable PopulationMode = "available"
)

// Sheet is a student's full academic record container for one study program.
type Sheet struct {
	ID      uint `json:"id" gorm:"primaryKey"`
	OwnerID uint `json:"owner_id" gorm:"not null;index"`

	StudentName string `json:"student_name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	University  string `json:"university" gorm:"size:200"`
	Faculty     string `json:"faculty" gorm:"size:200"`
	Department  string `json:"department" gorm:"size:200"`

	YearsOfStudy     int            `json:"years_of_study" gorm:"not null;default:4" validate:"required,min=1"`
	SemestersPerYear int            `json:"semesters_per_year" gorm:"not null;default:2" validate:"required,min=1"`
	EntryYear        string         `json:"entry_year" gorm:"size:20"` // e.g. "2021/2022"
	Mode             PopulationMode `json:"mode" gorm:"size:32;default:zeros" validate:"omitempty,population_mode"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Owner Owner  `json:"-" gorm:"foreignKey:OwnerID"`
	Years []Year `json:"years,omitempty" gorm:"foreignKey:SheetID;constraint:OnDelete:CASCADE"`
}

func (Sheet) TableName() string {
	return "sheets"
}

// TotalSemesters returns the declared semester count of the study program.
func (s *Sheet) TotalSemesters() int {
	return s.YearsOfStudy * s.SemestersPerYear
}

// Year is one academic year of a sheet, ordered by its 1-based index.
type Year struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	SheetID uint   `json:"sheet_id" gorm:"not null;uniqueIndex:uq_years_sheet_index"`
	Index   int    `json:"index" gorm:"not null;uniqueIndex:uq_years_sheet_index"`
	Label   string `json:"label" gorm:"not null;size:40"` // e.g. "2021/2022 Year 1"

	CreatedAt time.Time `json:"created_at"`

	Semesters []Semester `json:"semesters,omitempty" gorm:"foreignKey:YearID;constraint:OnDelete:CASCADE"`
}

func (Year) TableName() string {
	return "years"
}

// Semester is one semester of a year, ordered by its 1-based index.
type Semester struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	YearID uint   `json:"year_id" gorm:"not null;uniqueIndex:uq_semesters_year_index"`
	Index  int    `json:"index" gorm:"not null;uniqueIndex:uq_semesters_year_index"`
	Label  string `json:"label" gorm:"not null;size:80"` // e.g. "1st Semester"

	CreatedAt time.Time `json:"created_at"`

	Courses []Course `json:"courses,omitempty" gorm:"foreignKey:SemesterID;constraint:OnDelete:CASCADE"`
}

func (Semester) TableName() string {
	return "semesters"
}

// Course stores the two input scores; score, grade and grade point are
// derived at read time and never persisted.
type Course struct {
	ID         uint `json:"id" gorm:"primaryKey"`
	SemesterID uint `json:"semester_id" gorm:"not null;index"`

	Code       string `json:"code" gorm:"size:50"`
	Title      string `json:"title" gorm:"size:200"`
	CreditUnit int    `json:"credit_unit" gorm:"not null;default:0" validate:"min=0"`
	Incourse   int    `json:"incourse" gorm:"not null;default:0" validate:"min=0"`
	Exam       int    `json:"exam" gorm:"not null;default:0" validate:"min=0"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Course) TableName() string {
	return "courses"
}
