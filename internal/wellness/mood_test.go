package wellness

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/allizzwell/internal/app/models"
	"github.com/yigit/allizzwell/internal/app/models/enums"
	"github.com/yigit/allizzwell/internal/pkg/apperrors"
)

func TestWeeklySeriesEmptyCohort(t *testing.T) {
	got := WeeklySeries(nil)

	require.Len(t, got, WeekWindow)
	for i, p := range got {
		assert.Equal(t, WeekdayLabels[i], p.Label)
		assert.Equal(t, 0.0, p.Mood)
	}
}

func TestMonthlySeriesAlwaysFourPoints(t *testing.T) {
	cohorts := [][]models.Student{
		nil,
		fixtureStudents()[:1],
		fixtureStudents(),
	}
	for _, cohort := range cohorts {
		got := MonthlySeries(cohort)
		require.Len(t, got, MonthWindow)
		assert.Equal(t, []string{"W1", "W2", "W3", "W4"}, labels(got))
	}
}

func TestMonthlySeriesAverages(t *testing.T) {
	got := MonthlySeries(fixtureStudents()[:3])

	// W1: (-1.4 - 0.8 + 1.0) / 3 = -0.4
	assert.Equal(t, -0.4, got[0].Mood)
	// W4: (-1.7 - 1.0 + 1.3) / 3 = -0.4666.. -> -0.47
	assert.Equal(t, -0.47, got[3].Mood)
}

func TestMissingSamplePolicies(t *testing.T) {
	cohort := []models.Student{
		{ID: "full", Mood7: []float64{2, 2, 2, 2, 2, 2, 2}},
		{ID: "none"},
		{ID: "nan", Mood7: []float64{math.NaN(), 1, 1, 1, 1, 1, 1}},
	}

	zero := NewAggregator(MissingAsZero).WeeklySeries(cohort)
	// Mon: (2 + 0 + 0) / 3
	assert.Equal(t, 0.67, zero[0].Mood)
	// Tue: (2 + 0 + 1) / 3
	assert.Equal(t, 1.0, zero[1].Mood)

	skip := NewAggregator(SkipMissing).WeeklySeries(cohort)
	assert.Equal(t, 2.0, skip[0].Mood)
	assert.Equal(t, 1.5, skip[1].Mood)

	// No contributing samples at all averages to zero under either policy
	empty := NewAggregator(SkipMissing).MonthlySeries(cohort)
	for _, p := range empty {
		assert.Equal(t, 0.0, p.Mood)
	}
}

func TestParseMissingSamplePolicy(t *testing.T) {
	p, err := ParseMissingSamplePolicy("SKIP")
	require.NoError(t, err)
	assert.Equal(t, SkipMissing, p)
	assert.Equal(t, "skip", p.String())

	p, err = ParseMissingSamplePolicy("")
	require.NoError(t, err)
	assert.Equal(t, MissingAsZero, p)

	_, err = ParseMissingSamplePolicy("mean")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestDistribution(t *testing.T) {
	cohort := fixtureStudents()

	got := Distribution(cohort)

	assert.Equal(t, MoodDistribution{-2: 1, -1: 1, 0: 1, 1: 1, 2: 0}, got)
	assert.Equal(t, len(cohort), got.Total())
}

func TestDistributionAlwaysHasFiveBuckets(t *testing.T) {
	got := Distribution(nil)

	require.Len(t, got, 5)
	for _, b := range MoodBuckets {
		n, ok := got[b]
		assert.True(t, ok, "bucket %d", b)
		assert.Zero(t, n)
	}
}

func TestDistributionSumsToCohortSize(t *testing.T) {
	cohort := []models.Student{
		{Mood7: []float64{0, 0, 0, 0, 0, 0, 1.5}},
		{Mood7: []float64{0, 0, 0, 0, 0, 0, -0.5}},
		{Mood7: []float64{0, 0, 0, 0, 0, 0, -7}},
		{Mood7: []float64{0, 0, 0, 0, 0, 0, math.Inf(1)}},
		{Mood7: []float64{3}},
		{},
	}

	got := Distribution(cohort)

	assert.Equal(t, len(cohort), got.Total())
	assert.Equal(t, MoodDistribution{-2: 1, -1: 0, 0: 3, 1: 0, 2: 2}, got)
}

func TestBucket(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{in: -2, want: -2},
		{in: -1.5, want: -1},
		{in: -1.4, want: -1},
		{in: -0.5, want: 0},
		{in: 0.49, want: 0},
		{in: 0.5, want: 1},
		{in: 1.7, want: 2},
		{in: 9, want: 2},
		{in: -9, want: -2},
		{in: math.NaN(), want: 0},
		{in: 1e19, want: 2},
		{in: 1e300, want: 2},
		{in: -1e300, want: -2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Bucket(tt.in), "Bucket(%v)", tt.in)
	}
}

func TestDistributionClampsHugeSamples(t *testing.T) {
	cohort := []models.Student{
		{ID: "H1", Mood7: []float64{0, 0, 0, 0, 0, 0, 1e300}},
		{ID: "H2", Mood7: []float64{0, 0, 0, 0, 0, 0, -1e300}},
	}

	dist := Distribution(cohort)

	assert.Equal(t, MoodDistribution{-2: 1, -1: 0, 0: 0, 1: 0, 2: 1}, dist)
	assert.Equal(t, len(cohort), dist.Total())
}

func TestAggregationIsIdempotent(t *testing.T) {
	cohort := fixtureStudents()
	agg := NewAggregator(MissingAsZero)

	assert.Equal(t, agg.WeeklySeries(cohort), agg.WeeklySeries(cohort))
	assert.Equal(t, agg.MonthlySeries(cohort), agg.MonthlySeries(cohort))
	assert.Equal(t, Distribution(cohort), Distribution(cohort))
	assert.Equal(t, fixtureStudents(), cohort)
}

func TestEndToEndScenario(t *testing.T) {
	cohort := []models.Student{
		{ID: "a", Gender: enums.GenderMale, Mood7: []float64{-2, -1, 0, 1, 0, -1, -2}, PHQ: 21, GAD: 17},
		{ID: "b", Gender: enums.GenderFemale, Mood7: []float64{1, 1, 2, 1, 2, 1, 1}, PHQ: 2, GAD: 1},
	}

	weekly := WeeklySeries(Filter(cohort, FilterSpec{}))
	assert.Equal(t, MoodSeriesPoint{Label: "Mon", Mood: -0.5}, weekly[0])

	dist := Distribution(cohort)
	assert.Equal(t, 1, dist[-2])
	assert.Equal(t, 1, dist[1])
	assert.Equal(t, 0, dist[-1])
	assert.Equal(t, 0, dist[0])
	assert.Equal(t, 0, dist[2])

	assert.Equal(t, enums.RiskCritical, ClassifyStudent(cohort[0]))
	assert.Equal(t, enums.RiskHealthy, ClassifyStudent(cohort[1]))
}

func labels(points []MoodSeriesPoint) []string {
	out := make([]string, len(points))
	for i, p := range points {
		out[i] = p.Label
	}
	return out
}
