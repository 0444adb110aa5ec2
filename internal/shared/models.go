// ============================================================================
// internal/shared/models.go
// Shared value types and validation constants for the grade calculator
// ============================================================================

package shared

// ============================================================================
// Input Models
// ============================================================================

// Course represents a single course entry as typed into the calculator form.
// It lives only for the duration of one calculation and is never stored.
type Course struct {
	Title   string  `json:"title"`
	Credits int32   `json:"credits"` // typically 1-6
	Marks   float64 `json:"marks"`   // 0-100 inclusive
}

// ============================================================================
// Result Models
// ============================================================================

// GradeResult is the outcome of a single grade-scale lookup
type GradeResult struct {
	Letter string  `json:"letter"`
	Point  float64 `json:"point"`
}

// CourseGrade pairs a course entry with its resolved grade
type CourseGrade struct {
	Title   string  `json:"title"`
	Credits int32   `json:"credits"`
	Marks   float64 `json:"marks"`
	Letter  string  `json:"letter"`
	Point   float64 `json:"point"`
}

// AggregateResult holds the GPA figures computed for one invocation.
// Values are unrounded; formatting to 2 decimal places is the caller's job.
type AggregateResult struct {
	SemesterGPA    float64 `json:"semester_gpa"`
	CumulativeCGPA float64 `json:"cumulative_cgpa"`
	TotalCredits   int32   `json:"total_credits"`
}

// MarksSummary holds descriptive statistics over the entered marks
type MarksSummary struct {
	Mean         float64          `json:"mean"`
	Median       float64          `json:"median"`
	StdDev       float64          `json:"std_dev"`
	Min          float64          `json:"min"`
	Max          float64          `json:"max"`
	LetterCounts map[string]int32 `json:"letter_counts,omitempty"`
}

// FinalExamPlan describes the final-exam score needed to reach a target grade
type FinalExamPlan struct {
	TargetLetter  string  `json:"target_letter"`
	TargetPoint   float64 `json:"target_point"`
	RequiredMarks float64 `json:"required_marks"` // percentage needed on the final
	Achievable    bool    `json:"achievable"`
}

// Report is the full calculator output rendered by the form UI
type Report struct {
	Courses   []CourseGrade   `json:"courses"`
	Aggregate AggregateResult `json:"aggregate"`
	Standing  StandingLabel   `json:"standing"`
	Summary   MarksSummary    `json:"summary"`
}

// ============================================================================
// Academic Standing
// ============================================================================

// StandingLabel is a discrete academic-status label derived from a CGPA
type StandingLabel string

const (
	StandingDeansList    StandingLabel = "Dean's List"
	StandingExcellent    StandingLabel = "Excellent Standing"
	StandingGood         StandingLabel = "Good Standing"
	StandingSatisfactory StandingLabel = "Satisfactory"
	StandingWarning      StandingLabel = "Warning"
	StandingProbation    StandingLabel = "Academic Probation"

	// StandingInvalid is returned for a CGPA outside [0,4] instead of an error
	StandingInvalid StandingLabel = "Invalid CGPA"
)

// ============================================================================
// Validation Constants
// ============================================================================

const (
	// Marks bounds
	MinMarks = 0.0
	MaxMarks = 100.0

	// GPA bounds
	MinGPA = 0.0
	MaxGPA = 4.0

	// Letter grades
	GradeAPlus = "A+"
	GradeA     = "A"
	GradeBPlus = "B+"
	GradeB     = "B"
	GradeCPlus = "C+"
	GradeC     = "C"
	GradeDPlus = "D+"
	GradeD     = "D"
	GradeF     = "F"
)

// ============================================================================
// Helper Methods
// ============================================================================

// HasValidMarks checks if the course marks fall within the accepted range
func (c *Course) HasValidMarks() bool {
	return c.Marks >= MinMarks && c.Marks <= MaxMarks
}

// HasValidCredits checks if the course carries a positive credit load
func (c *Course) HasValidCredits() bool {
	return c.Credits > 0
}

// IsPassing checks if a resolved grade is a passing grade
func (g *GradeResult) IsPassing() bool {
	return g.Letter != GradeF
}
