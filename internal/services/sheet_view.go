package services

import (
	"github.com/acadegrade/result-service/internal/grading"
	"github.com/acadegrade/result-service/internal/models"
)

// View builders shared by the sheet, course and export services. Grades,
// GPAs and the CGPA are derived from the stored scores on every read.

func courseResults(courses []models.Course) []grading.CourseResult {
	results := make([]grading.CourseResult, 0, len(courses))
	for _, c := range courses {
		results = append(results, grading.CourseResult{
			CreditUnit: c.CreditUnit,
			Incourse:   c.Incourse,
			Exam:       c.Exam,
		})
	}
	return results
}

func buildCourseResponse(c models.Course) CourseResponse {
	score := grading.Score(c.Incourse, c.Exam)
	return CourseResponse{
		ID:         c.ID,
		Code:       c.Code,
		Title:      c.Title,
		CreditUnit: c.CreditUnit,
		Incourse:   c.Incourse,
		Exam:       c.Exam,
		Score:      score,
		Grade:      grading.Grade(score),
		GradePoint: grading.GradePoint(score),
	}
}

func buildSemesterResponse(sem models.Semester, courses []models.Course) SemesterResponse {
	resp := SemesterResponse{
		ID:      sem.ID,
		Index:   sem.Index,
		Label:   sem.Label,
		GPA:     grading.GPA(courseResults(courses)),
		Courses: make([]CourseResponse, 0, len(courses)),
	}
	for _, c := range courses {
		resp.Courses = append(resp.Courses, buildCourseResponse(c))
	}
	return resp
}

func buildYearResponse(year models.Year) YearResponse {
	resp := YearResponse{
		ID:        year.ID,
		Index:     year.Index,
		Label:     year.Label,
		Semesters: make([]SemesterResponse, 0, len(year.Semesters)),
	}

	var yearCourses []models.Course
	for _, sem := range year.Semesters {
		yearCourses = append(yearCourses, sem.Courses...)
		resp.Semesters = append(resp.Semesters, buildSemesterResponse(sem, sem.Courses))
	}
	resp.GPA = grading.GPA(courseResults(yearCourses))
	return resp
}

func sheetCourses(sheet *models.Sheet) []models.Course {
	var courses []models.Course
	for _, year := range sheet.Years {
		for _, sem := range year.Semesters {
			courses = append(courses, sem.Courses...)
		}
	}
	return courses
}

func buildSheetSummary(sheet *models.Sheet) SheetSummaryResponse {
	return SheetSummaryResponse{
		ID:               sheet.ID,
		StudentName:      sheet.StudentName,
		University:       sheet.University,
		Faculty:          sheet.Faculty,
		Department:       sheet.Department,
		YearsOfStudy:     sheet.YearsOfStudy,
		SemestersPerYear: sheet.SemestersPerYear,
		EntryYear:        sheet.EntryYear,
		Mode:             sheet.Mode,
		CGPA:             grading.GPA(courseResults(sheetCourses(sheet))),
		CreatedAt:        sheet.CreatedAt,
	}
}

func buildSheetDetail(sheet *models.Sheet) *SheetDetailResponse {
	detail := &SheetDetailResponse{
		SheetSummaryResponse: buildSheetSummary(sheet),
		Years:                make([]YearResponse, 0, len(sheet.Years)),
	}
	for _, year := range sheet.Years {
		detail.Years = append(detail.Years, buildYearResponse(year))
	}
	return detail
}
