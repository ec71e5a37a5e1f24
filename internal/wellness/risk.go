// Package wellness holds the pure computations behind the dashboard:
// risk classification from screening scores, cohort filtering and mood aggregation.
// Nothing in this package mutates its inputs or keeps state between calls.
package wellness

import (
	"github.com/yigit/allizzwell/internal/app/models"
	"github.com/yigit/allizzwell/internal/app/models/enums"
)

// Screening thresholds. A score at or above the threshold enters the band.
const (
	PHQCriticalThreshold = 20
	PHQModerateThreshold = 10
	GADCriticalThreshold = 15
	GADModerateThreshold = 8
)

// Classify derives the risk level from a PHQ-9 and a GAD-7 score.
// Either screener alone can raise the level; Critical takes precedence over Moderate.
// Scores outside the documented scales are classified by the same thresholds.
func Classify(phq, gad int) enums.RiskLevel {
	switch {
	case phq >= PHQCriticalThreshold || gad >= GADCriticalThreshold:
		return enums.RiskCritical
	case phq >= PHQModerateThreshold || gad >= GADModerateThreshold:
		return enums.RiskModerate
	default:
		return enums.RiskHealthy
	}
}

// ClassifyStudent classifies a student record by its screening scores
func ClassifyStudent(s models.Student) enums.RiskLevel {
	return Classify(s.PHQ, s.GAD)
}
