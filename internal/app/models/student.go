package models

import "github.com/yigit/allizzwell/internal/app/models/enums"

// Student is a program participant as seen by the dashboard.
// Mood7 holds one sample per weekday (Mon..Sun) and MoodMonth one average per week bucket (W1..W4);
// either may be empty when no data was collected. Department is an optional code.
// PHQ holds the PHQ-9 score (0-27) and GAD the GAD-7 score (0-21).
type Student struct {
	ID         string       `json:"id" yaml:"id" validate:"required"`
	Alias      string       `json:"alias" yaml:"alias" validate:"required"`
	Gender     enums.Gender `json:"gender" yaml:"gender" validate:"required,oneof=Male Female Other"`
	Semester   int          `json:"semester" yaml:"semester" validate:"gte=1,lte=8"`
	Department string       `json:"department,omitempty" yaml:"department,omitempty"`
	Mood7      []float64    `json:"mood7" yaml:"mood7" validate:"omitempty,len=7,dive,gte=-2,lte=2"`
	MoodMonth  []float64    `json:"moodMonth" yaml:"moodMonth" validate:"omitempty,len=4,dive,gte=-2,lte=2"`
	PHQ        int          `json:"phq" yaml:"phq" validate:"gte=0,lte=27"`
	GAD        int          `json:"gad" yaml:"gad" validate:"gte=0,lte=21"`
}

// HasDepartment reports whether the student record carries a department code
func (s Student) HasDepartment() bool {
	return s.Department != ""
}

// LatestMood returns the most recent weekday sample, or false when there is none
func (s Student) LatestMood() (float64, bool) {
	if len(s.Mood7) == 0 {
		return 0, false
	}
	return s.Mood7[len(s.Mood7)-1], true
}

func (s Student) clone() Student {
	c := s
	c.Mood7 = cloneFloats(s.Mood7)
	c.MoodMonth = cloneFloats(s.MoodMonth)
	return c
}

func cloneFloats(v []float64) []float64 {
	if v == nil {
		return nil
	}
	return append([]float64(nil), v...)
}
