package grading

import (
	"math"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"gradecalc/internal/shared"
)

func TestCalculateReport(t *testing.T) {
	courses := []shared.Course{
		{Title: "Programming in Java", Credits: 3, Marks: 88},
		{Title: "Data Structures", Credits: 3, Marks: 92},
		{Title: "Database Management", Credits: 3, Marks: 85},
		{Title: "Web Technologies", Credits: 3, Marks: 90},
	}

	t.Run("Full Pipeline", func(t *testing.T) {
		report, err := CalculateReport(ReportRequest{
			Courses:     courses,
			PrevCGPA:    3.45,
			PrevCredits: 36,
		})
		if err != nil {
			t.Fatalf("CalculateReport returned error: %v", err)
		}

		if len(report.Courses) != 4 {
			t.Fatalf("expected 4 course grades, got %d", len(report.Courses))
		}
		if report.Courses[0].Letter != "A" || report.Courses[1].Letter != "A+" {
			t.Errorf("unexpected course grades: %+v", report.Courses)
		}

		if report.Aggregate.TotalCredits != 12 {
			t.Errorf("expected 12 total credits, got %d", report.Aggregate.TotalCredits)
		}
		if math.Abs(report.Aggregate.SemesterGPA-3.875) > epsilon {
			t.Errorf("expected semester GPA 3.875, got %v", report.Aggregate.SemesterGPA)
		}
		// (3.45*36 + 3.875*12) / 48 = 3.55625
		if math.Abs(report.Aggregate.CumulativeCGPA-3.55625) > 1e-6 {
			t.Errorf("expected CGPA 3.55625, got %v", report.Aggregate.CumulativeCGPA)
		}

		if report.Standing != shared.StandingExcellent {
			t.Errorf("expected %q, got %q", shared.StandingExcellent, report.Standing)
		}

		if math.Abs(report.Summary.Mean-88.75) > epsilon {
			t.Errorf("expected marks mean 88.75, got %v", report.Summary.Mean)
		}
	})

	t.Run("No Prior Record", func(t *testing.T) {
		report, err := CalculateReport(ReportRequest{Courses: courses})
		if err != nil {
			t.Fatalf("CalculateReport returned error: %v", err)
		}

		// With no prior credits the CGPA equals the semester GPA
		if math.Abs(report.Aggregate.CumulativeCGPA-report.Aggregate.SemesterGPA) > epsilon {
			t.Errorf("expected CGPA %v to equal semester GPA %v",
				report.Aggregate.CumulativeCGPA, report.Aggregate.SemesterGPA)
		}
		if report.Standing != shared.StandingDeansList {
			t.Errorf("expected %q, got %q", shared.StandingDeansList, report.Standing)
		}
	})

	t.Run("No Courses", func(t *testing.T) {
		_, err := CalculateReport(ReportRequest{})
		if status.Code(err) != codes.InvalidArgument {
			t.Errorf("expected InvalidArgument, got %v", status.Code(err))
		}
	})

	t.Run("Invalid Course", func(t *testing.T) {
		_, err := CalculateReport(ReportRequest{
			Courses: []shared.Course{{Title: "Broken", Credits: 3, Marks: 120}},
		})
		if status.Code(err) != codes.OutOfRange {
			t.Errorf("expected OutOfRange, got %v", status.Code(err))
		}
	})

	t.Run("Invalid Prior CGPA", func(t *testing.T) {
		_, err := CalculateReport(ReportRequest{
			Courses:     courses,
			PrevCGPA:    4.5,
			PrevCredits: 30,
		})
		if status.Code(err) != codes.OutOfRange {
			t.Errorf("expected OutOfRange, got %v", status.Code(err))
		}
	})
}
