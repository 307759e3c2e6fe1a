package grading

import (
	"fmt"
	"strconv"
	"strings"
)

// CoursePlan describes a course to seed into a generated semester.
type CoursePlan struct {
	Code       string
	Title      string
	CreditUnit int
	Incourse   int
	Exam       int
}

// SemesterPlan is one generated semester with its optional seed courses.
type SemesterPlan struct {
	Index   int
	Label   string
	Courses []CoursePlan
}

// YearPlan is one generated academic year with its semesters.
type YearPlan struct {
	Index     int
	Label     string
	Semesters []SemesterPlan
}

// PlaceholderCourse returns the single zero-valued course seeded into a
// semester under the build-up ("zeros") population mode.
func PlaceholderCourse() CoursePlan {
	return CoursePlan{
		Code:       "C code 1",
		Title:      "C title 1",
		CreditUnit: 1,
		Incourse:   0,
		Exam:       0,
	}
}

// GenerateStructure materializes the full year/semester tree for a sheet.
// When withPlaceholders is true every semester is seeded with exactly one
// placeholder course so it is never empty.
func GenerateStructure(yearsOfStudy, semestersPerYear int, entryYear string, withPlaceholders bool) []YearPlan {
	startLeft, hasStart := parseEntryYear(entryYear)

	years := make([]YearPlan, 0, yearsOfStudy)
	for y := 1; y <= yearsOfStudy; y++ {
		label := fmt.Sprintf("Year %d", y)
		if hasStart {
			left := startLeft + (y - 1)
			label = fmt.Sprintf("%d/%d Year %d", left, left+1, y)
		}

		semesters := make([]SemesterPlan, 0, semestersPerYear)
		for s := 1; s <= semestersPerYear; s++ {
			sem := SemesterPlan{Index: s, Label: SemesterLabel(s)}
			if withPlaceholders {
				sem.Courses = []CoursePlan{PlaceholderCourse()}
			}
			semesters = append(semesters, sem)
		}

		years = append(years, YearPlan{Index: y, Label: label, Semesters: semesters})
	}
	return years
}

// SemesterLabel renders the display label for a 1-based semester position.
// Positions beyond 2 all take the "th" suffix ("3th Semester" included);
// existing sheets depend on the labels staying stable.
func SemesterLabel(n int) string {
	suffix := "th"
	switch n {
	case 1:
		suffix = "st"
	case 2:
		suffix = "nd"
	}
	return fmt.Sprintf("%d%s Semester", n, suffix)
}

// parseEntryYear extracts the leading year from an entry label such as
// "2021/2022". A label that does not parse is treated as absent, not an
// error; the caller falls back to plain year labels.
func parseEntryYear(entry string) (int, bool) {
	entry = strings.TrimSpace(entry)
	if entry == "" || !strings.Contains(entry, "/") {
		return 0, false
	}
	left, err := strconv.Atoi(strings.SplitN(entry, "/", 2)[0])
	if err != nil || left == 0 {
		return 0, false
	}
	return left, true
}
