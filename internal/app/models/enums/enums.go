package enums

// Gender of a student or counsellor as captured by the intake forms
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// IsValid reports whether g is one of the known genders
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// RiskLevel is the wellness status derived from PHQ-9 and GAD-7 scores.
// It is never stored on a student; it is recomputed on every read.
type RiskLevel string

const (
	RiskHealthy  RiskLevel = "Healthy"
	RiskModerate RiskLevel = "Moderate"
	RiskCritical RiskLevel = "Critical"
)

// CounsellorStatus represents whether a counsellor takes appointments
type CounsellorStatus string

const (
	CounsellorActive   CounsellorStatus = "Active"
	CounsellorInactive CounsellorStatus = "Inactive"
)

// NotificationStatus represents the delivery state of a notification
type NotificationStatus string

const (
	NotificationSent NotificationStatus = "Sent"
)

// Audience selects which students a notification targets
type Audience string

const (
	AudienceAll    Audience = "All"
	AudienceMale   Audience = "Male"
	AudienceFemale Audience = "Female"
	AudienceOther  Audience = "Other"
)

// Gender returns the gender targeted by the audience, or false for AudienceAll
func (a Audience) Gender() (Gender, bool) {
	switch a {
	case AudienceMale:
		return GenderMale, true
	case AudienceFemale:
		return GenderFemale, true
	case AudienceOther:
		return GenderOther, true
	}
	return "", false
}

// AppointmentMode is how a counselling session takes place
type AppointmentMode string

const (
	ModeCall     AppointmentMode = "Call"
	ModeVideo    AppointmentMode = "Video"
	ModeInPerson AppointmentMode = "In-Person"
)
