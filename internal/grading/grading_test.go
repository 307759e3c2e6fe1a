package grading

import "testing"

func TestGradeTable(t *testing.T) {
	cases := []struct {
		score int
		grade string
		point int
	}{
		{100, "A", 5},
		{75, "A", 5},
		{70, "A", 5},
		{69, "B", 4},
		{60, "B", 4},
		{59, "C", 3},
		{50, "C", 3},
		{49, "D", 2},
		{45, "D", 2},
		{44, "E", 1},
		{40, "E", 1},
		{39, "F", 0},
		{35, "F", 0},
		{0, "F", 0},
	}

	for _, tc := range cases {
		if got := Grade(tc.score); got != tc.grade {
			t.Errorf("Grade(%d) = %q, want %q", tc.score, got, tc.grade)
		}
		if got := GradePoint(tc.score); got != tc.point {
			t.Errorf("GradePoint(%d) = %d, want %d", tc.score, got, tc.point)
		}
	}
}

func TestGradeDependsOnSumOnly(t *testing.T) {
	// Any split of the same total must grade identically.
	splits := [][2]int{{30, 45}, {45, 30}, {0, 75}, {75, 0}, {37, 38}}
	for _, sp := range splits {
		score := Score(sp[0], sp[1])
		if score != 75 {
			t.Fatalf("Score(%d, %d) = %d, want 75", sp[0], sp[1], score)
		}
		if Grade(score) != "A" || GradePoint(score) != 5 {
			t.Errorf("split %v: got grade %q point %d, want A/5", sp, Grade(score), GradePoint(score))
		}
	}
}

func TestGPAEmptySet(t *testing.T) {
	if got := GPA(nil); got != 0 {
		t.Errorf("GPA(nil) = %v, want 0", got)
	}
	// Courses present but zero total credit units must not divide by zero.
	zeroCredit := []CourseResult{{CreditUnit: 0, Incourse: 40, Exam: 40}}
	if got := GPA(zeroCredit); got != 0 {
		t.Errorf("GPA(zero credits) = %v, want 0", got)
	}
}

func TestGPAWeightedAverage(t *testing.T) {
	courses := []CourseResult{
		{CreditUnit: 3, Incourse: 30, Exam: 45}, // score 75 -> A -> 5
		{CreditUnit: 2, Incourse: 20, Exam: 42}, // score 62 -> B -> 4
		{CreditUnit: 1, Incourse: 20, Exam: 15}, // score 35 -> F -> 0
	}
	// (3*5 + 2*4 + 1*0) / 6 = 23/6 = 3.8333... -> 3.83
	if got := GPA(courses); got != 3.83 {
		t.Errorf("GPA = %v, want 3.83", got)
	}
}

func TestGPAOrderInvariant(t *testing.T) {
	a := []CourseResult{
		{CreditUnit: 3, Incourse: 30, Exam: 45},
		{CreditUnit: 2, Incourse: 25, Exam: 30},
		{CreditUnit: 4, Incourse: 10, Exam: 32},
	}
	b := []CourseResult{a[2], a[0], a[1]}
	if GPA(a) != GPA(b) {
		t.Errorf("GPA not invariant under reordering: %v vs %v", GPA(a), GPA(b))
	}
}

func TestSingleCourseExamples(t *testing.T) {
	s := Score(30, 45)
	if Grade(s) != "A" || GradePoint(s) != 5 {
		t.Errorf("incourse=30 exam=45: got %q/%d, want A/5", Grade(s), GradePoint(s))
	}
	s = Score(20, 15)
	if Grade(s) != "F" || GradePoint(s) != 0 {
		t.Errorf("incourse=20 exam=15: got %q/%d, want F/0", Grade(s), GradePoint(s))
	}
}
