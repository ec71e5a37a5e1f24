package validation

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yigit/allizzwell/internal/app/models"
	"github.com/yigit/allizzwell/internal/app/models/enums"
	"github.com/yigit/allizzwell/internal/pkg/apperrors"
)

func validStudent() models.Student {
	return models.Student{
		ID:        "S1",
		Alias:     "ShadowTiger",
		Gender:    enums.GenderMale,
		Semester:  4,
		Mood7:     []float64{-2, -1, 0, 1, 0, -1, -2},
		MoodMonth: []float64{-1.4, -1.6, -1.2, -1.7},
		PHQ:       21,
		GAD:       17,
	}
}

func TestStudent(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *models.Student)
		wantErr error
	}{
		{name: "valid", mutate: func(s *models.Student) {}},
		{name: "no series", mutate: func(s *models.Student) { s.Mood7, s.MoodMonth = nil, nil }},
		{name: "short week", mutate: func(s *models.Student) { s.Mood7 = []float64{0, 1} }, wantErr: apperrors.ErrInvalidMoodSeries},
		{name: "long month", mutate: func(s *models.Student) { s.MoodMonth = []float64{0, 0, 0, 0, 0} }, wantErr: apperrors.ErrInvalidMoodSeries},
		{name: "sample out of range", mutate: func(s *models.Student) { s.Mood7[3] = 2.5 }, wantErr: apperrors.ErrInvalidMoodSeries},
		{name: "NaN sample", mutate: func(s *models.Student) { s.MoodMonth[0] = math.NaN() }, wantErr: apperrors.ErrInvalidMoodSeries},
		{name: "phq above scale", mutate: func(s *models.Student) { s.PHQ = 28 }, wantErr: apperrors.ErrInvalidScore},
		{name: "negative gad", mutate: func(s *models.Student) { s.GAD = -1 }, wantErr: apperrors.ErrInvalidScore},
		{name: "semester zero", mutate: func(s *models.Student) { s.Semester = 0 }, wantErr: apperrors.ErrValidationFailed},
		{name: "unknown gender", mutate: func(s *models.Student) { s.Gender = "Unknown" }, wantErr: apperrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validStudent()
			tt.mutate(&s)

			err := Student(s)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

			var custom *apperrors.CustomError
			assert.True(t, errors.As(err, &custom))
			assert.Equal(t, "VALIDATION_FAILED", custom.Code)
		})
	}
}

func TestStructReportsFieldName(t *testing.T) {
	s := validStudent()
	s.Mood7 = []float64{1}

	err := Student(s)

	assert.EqualError(t, err, "Student.Mood7: must have exactly 7 entries")
}
