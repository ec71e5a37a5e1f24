package models

import "github.com/yigit/allizzwell/internal/app/models/enums"

// Counsellor is a member of the counselling roster
type Counsellor struct {
	ID           string                 `json:"id" yaml:"id"`
	Name         string                 `json:"name" yaml:"name"`
	Gender       enums.Gender           `json:"gender" yaml:"gender"`
	Status       enums.CounsellorStatus `json:"status" yaml:"status"`
	Appointments int                    `json:"appointments" yaml:"appointments"` // Number of booked sessions
	PasswordHash string                 `json:"-" yaml:"-"`
}

// IsActive reports whether the counsellor currently takes appointments
func (c Counsellor) IsActive() bool {
	return c.Status == enums.CounsellorActive
}

// Appointment is a scheduled session between a counsellor and a student alias
type Appointment struct {
	Counsellor string                `json:"counsellor" yaml:"counsellor"` // Counsellor display name
	Alias      string                `json:"alias" yaml:"alias"`           // Student alias
	Severity   enums.RiskLevel       `json:"severity" yaml:"severity"`
	Date       string                `json:"date" yaml:"date"` // YYYY-MM-DD
	Time       string                `json:"time" yaml:"time"` // HH:MM
	Mode       enums.AppointmentMode `json:"mode" yaml:"mode"`
}
