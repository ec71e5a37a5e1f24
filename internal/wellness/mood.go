package wellness

import (
	"fmt"
	"math"
	"strings"

	"github.com/yigit/allizzwell/internal/app/models"
	"github.com/yigit/allizzwell/internal/pkg/apperrors"
)

// Window sizes of the mood series
const (
	WeekWindow  = 7
	MonthWindow = 4
)

// Mood bucket bounds
const (
	MinMood = -2
	MaxMood = 2
)

var (
	// WeekdayLabels label the weekly series, Monday first
	WeekdayLabels = [WeekWindow]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	// WeekLabels label the monthly series
	WeekLabels = [MonthWindow]string{"W1", "W2", "W3", "W4"}
	// MoodBuckets lists the distribution buckets in ascending order
	MoodBuckets = []int{-2, -1, 0, 1, 2}
)

// MissingSamplePolicy decides how an absent or non-finite sample enters an average
type MissingSamplePolicy int

const (
	// MissingAsZero counts an absent sample as a neutral 0.
	// Averages drift toward 0 as data thins out.
	MissingAsZero MissingSamplePolicy = iota
	// SkipMissing leaves an absent sample out of both the sum and the denominator
	SkipMissing
)

func (p MissingSamplePolicy) String() string {
	switch p {
	case SkipMissing:
		return "skip"
	default:
		return "zero"
	}
}

// ParseMissingSamplePolicy parses "zero" or "skip"
func ParseMissingSamplePolicy(s string) (MissingSamplePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "zero":
		return MissingAsZero, nil
	case "skip":
		return SkipMissing, nil
	}
	return MissingAsZero, fmt.Errorf("%w: unknown missing sample policy %q", apperrors.ErrValidationFailed, s)
}

// MoodSeriesPoint is one labelled average of a mood series
type MoodSeriesPoint struct {
	Label string  `json:"label"`
	Mood  float64 `json:"mood"`
}

// MoodDistribution maps a mood bucket (-2..2) to the number of students whose latest sample falls in it.
// All five buckets are always present.
type MoodDistribution map[int]int

// Total returns the number of students counted
func (d MoodDistribution) Total() int {
	total := 0
	for _, n := range d {
		total += n
	}
	return total
}

// Aggregator computes mood series under a fixed missing sample policy
type Aggregator struct {
	policy MissingSamplePolicy
}

// NewAggregator creates an aggregator using the given policy
func NewAggregator(policy MissingSamplePolicy) Aggregator {
	return Aggregator{policy: policy}
}

// Policy returns the missing sample policy in use
func (a Aggregator) Policy() MissingSamplePolicy {
	return a.policy
}

// WeeklySeries averages Mood7 per weekday over the cohort, Mon..Sun
func (a Aggregator) WeeklySeries(cohort []models.Student) []MoodSeriesPoint {
	return a.series(cohort, WeekdayLabels[:], func(s models.Student) []float64 { return s.Mood7 })
}

// MonthlySeries averages MoodMonth per week bucket over the cohort, W1..W4
func (a Aggregator) MonthlySeries(cohort []models.Student) []MoodSeriesPoint {
	return a.series(cohort, WeekLabels[:], func(s models.Student) []float64 { return s.MoodMonth })
}

func (a Aggregator) series(cohort []models.Student, labels []string, samples func(models.Student) []float64) []MoodSeriesPoint {
	points := make([]MoodSeriesPoint, len(labels))
	for i, label := range labels {
		var sum float64
		var n int
		for _, s := range cohort {
			v, ok := sampleAt(samples(s), i)
			if !ok {
				if a.policy == SkipMissing {
					continue
				}
				v = 0
			}
			sum += v
			n++
		}

		avg := 0.0
		if n > 0 {
			avg = round2(sum / float64(n))
		}
		points[i] = MoodSeriesPoint{Label: label, Mood: avg}
	}
	return points
}

// WeeklySeries averages the cohort's weekday samples counting missing samples as 0
func WeeklySeries(cohort []models.Student) []MoodSeriesPoint {
	return NewAggregator(MissingAsZero).WeeklySeries(cohort)
}

// MonthlySeries averages the cohort's week buckets counting missing samples as 0
func MonthlySeries(cohort []models.Student) []MoodSeriesPoint {
	return NewAggregator(MissingAsZero).MonthlySeries(cohort)
}

// Distribution counts students by the bucket of their latest weekday sample.
// The sample is rounded half up and clamped to -2..2; students without samples land in bucket 0.
func Distribution(cohort []models.Student) MoodDistribution {
	dist := make(MoodDistribution, len(MoodBuckets))
	for _, b := range MoodBuckets {
		dist[b] = 0
	}

	for _, s := range cohort {
		latest, ok := s.LatestMood()
		if !ok {
			dist[0]++
			continue
		}
		dist[Bucket(latest)]++
	}
	return dist
}

// Bucket maps a mood sample to its distribution bucket.
// Non-finite samples map to 0.
func Bucket(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	b := math.Floor(v + 0.5)
	b = math.Max(float64(MinMood), math.Min(float64(MaxMood), b))
	return int(b)
}

func sampleAt(samples []float64, i int) (float64, bool) {
	if i >= len(samples) {
		return 0, false
	}
	v := samples[i]
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// round2 rounds half away from zero to two decimals and never returns negative zero
func round2(v float64) float64 {
	r := math.Round(v*100) / 100
	if r == 0 {
		return 0
	}
	return r
}
