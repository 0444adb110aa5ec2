// ============================================================================
// internal/grading/standing.go
// Academic standing classification
// ============================================================================

package grading

import "gradecalc/internal/shared"

// standingBand is one row of the standing thresholds
type standingBand struct {
	MinCGPA float64
	Label   shared.StandingLabel
}

// standingBands is evaluated high to low, first match wins. Anything below
// the lowest threshold is Academic Probation.
var standingBands = []standingBand{
	{3.75, shared.StandingDeansList},
	{3.50, shared.StandingExcellent},
	{3.00, shared.StandingGood},
	{2.50, shared.StandingSatisfactory},
	{2.00, shared.StandingWarning},
}

// StatusFor maps a cumulative GPA to an academic-standing label. A CGPA
// outside [0,4] maps to the distinguished Invalid label rather than an error.
func StatusFor(cgpa float64) shared.StandingLabel {
	if cgpa < shared.MinGPA || cgpa > shared.MaxGPA {
		return shared.StandingInvalid
	}

	for _, band := range standingBands {
		if cgpa >= band.MinCGPA {
			return band.Label
		}
	}

	return shared.StandingProbation
}
