package wellness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/allizzwell/internal/app/models"
	"github.com/yigit/allizzwell/internal/app/models/enums"
	"github.com/yigit/allizzwell/internal/pkg/apperrors"
)

func fixtureStudents() []models.Student {
	return []models.Student{
		{ID: "S1", Alias: "ShadowTiger", Gender: enums.GenderMale, Semester: 4, Department: "CSE", PHQ: 21, GAD: 17,
			Mood7: []float64{-2, -1, 0, 1, 0, -1, -2}, MoodMonth: []float64{-1.4, -1.6, -1.2, -1.7}},
		{ID: "S2", Alias: "SilentWolf", Gender: enums.GenderMale, Semester: 6, Department: "ECE", PHQ: 13, GAD: 10,
			Mood7: []float64{-1, -1, 0, 1, 1, 0, -1}, MoodMonth: []float64{-0.8, -0.9, -0.6, -1.0}},
		{ID: "S3", Alias: "CalmSea", Gender: enums.GenderFemale, Semester: 2, Department: "CSE", PHQ: 2, GAD: 1,
			Mood7: []float64{1, 1, 2, 1, 2, 1, 1}, MoodMonth: []float64{1.0, 1.2, 1.1, 1.3}},
		{ID: "S4", Alias: "QuietFox", Gender: enums.GenderOther, Semester: 4, PHQ: 9, GAD: 7},
	}
}

func TestFilterWildcardIsIdentity(t *testing.T) {
	students := fixtureStudents()

	got := Filter(students, FilterSpec{})
	assert.Equal(t, students, got)

	spec, err := ParseFilterSpec("All", "All", "All")
	require.NoError(t, err)
	assert.Equal(t, students, Filter(students, spec))
}

func TestFilterEmptyInput(t *testing.T) {
	specs := []FilterSpec{
		{},
		{Gender: Only(enums.GenderFemale)},
		{Department: Only("CSE"), Semester: Only(4)},
	}
	for _, spec := range specs {
		got := Filter(nil, spec)
		assert.Empty(t, got)
		got = Filter([]models.Student{}, spec)
		assert.Empty(t, got)
	}
}

func TestFilterConstraints(t *testing.T) {
	students := fixtureStudents()

	tests := []struct {
		name string
		spec FilterSpec
		want []string
	}{
		{name: "gender", spec: FilterSpec{Gender: Only(enums.GenderMale)}, want: []string{"S1", "S2"}},
		{name: "department", spec: FilterSpec{Department: Only("CSE")}, want: []string{"S1", "S3"}},
		{name: "semester", spec: FilterSpec{Semester: Only(4)}, want: []string{"S1", "S4"}},
		{name: "combined", spec: FilterSpec{Gender: Only(enums.GenderMale), Semester: Only(4)}, want: []string{"S1"}},
		{name: "no match", spec: FilterSpec{Semester: Only(8)}, want: []string{}},
		{name: "literal All category", spec: FilterSpec{Department: Only("All")}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(students, tt.spec)))
		})
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	students := fixtureStudents()
	before := fixtureStudents()

	got := Filter(students, FilterSpec{Gender: Only(enums.GenderMale)})
	got[0].Alias = "changed"

	assert.Equal(t, before, students)
}

func TestParseFilterSpec(t *testing.T) {
	spec, err := ParseFilterSpec(" Female ", "", "2")
	require.NoError(t, err)

	g, ok := spec.Gender.Value()
	assert.True(t, ok)
	assert.Equal(t, enums.GenderFemale, g)
	assert.True(t, spec.Department.IsAny())
	sem, ok := spec.Semester.Value()
	assert.True(t, ok)
	assert.Equal(t, 2, sem)

	// Semester text is normalized so "4" matches the numeric semester 4
	assert.Equal(t, []string{"S1", "S4"}, ids(Filter(fixtureStudents(), mustParse(t, "all", "ALL", "4"))))

	_, err = ParseFilterSpec("All", "All", "fourth")
	assert.ErrorIs(t, err, apperrors.ErrInvalidFilter)

	_, err = ParseFilterSpec("Unknown", "All", "All")
	assert.ErrorIs(t, err, apperrors.ErrInvalidFilter)
}

func TestConstraintString(t *testing.T) {
	assert.Equal(t, "All", Any[int]().String())
	assert.Equal(t, "4", Only(4).String())
	assert.Equal(t, "Male", Only(enums.GenderMale).String())
}

func mustParse(t *testing.T, gender, department, semester string) FilterSpec {
	t.Helper()
	spec, err := ParseFilterSpec(gender, department, semester)
	require.NoError(t, err)
	return spec
}
