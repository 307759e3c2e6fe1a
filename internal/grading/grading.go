// Package grading holds the pure result arithmetic: letter grades, grade
// points and credit-weighted GPA aggregation. It has no persistence or
// transport dependencies so it can be called freely at read time.
package grading

import "math"

// CourseResult carries the stored integers a GPA aggregation needs.
type CourseResult struct {
	CreditUnit int
	Incourse   int
	Exam       int
}

// Score returns the total score of a course.
func Score(incourse, exam int) int {
	return incourse + exam
}

// Grade maps a total score to its letter grade. Thresholds are inclusive on
// the lower bound, first match wins.
func Grade(score int) string {
	switch {
	case score >= 70:
		return "A"
	case score >= 60:
		return "B"
	case score >= 50:
		return "C"
	case score >= 45:
		return "D"
	case score >= 40:
		return "E"
	default:
		return "F"
	}
}

// GradePoint maps a total score to its grade-point value on the 5-point scale.
func GradePoint(score int) int {
	switch {
	case score >= 70:
		return 5
	case score >= 60:
		return 4
	case score >= 50:
		return 3
	case score >= 45:
		return 2
	case score >= 40:
		return 1
	default:
		return 0
	}
}

// GPA computes the credit-weighted grade-point average over a course set,
// rounded to two decimals. A set with zero total credit units yields 0 so a
// freshly generated or empty semester never divides by zero.
func GPA(results []CourseResult) float64 {
	var totalPoints, totalCredits int
	for _, r := range results {
		totalPoints += r.CreditUnit * GradePoint(Score(r.Incourse, r.Exam))
		totalCredits += r.CreditUnit
	}
	if totalCredits == 0 {
		return 0
	}
	return Round2(float64(totalPoints) / float64(totalCredits))
}

// Round2 rounds to two decimal places for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
