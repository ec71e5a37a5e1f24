package services

import (
	"github.com/yigit/allizzwell/internal/app/models"
	"github.com/yigit/allizzwell/internal/app/models/enums"
	"github.com/yigit/allizzwell/internal/app/repositories"
	"github.com/yigit/allizzwell/internal/wellness"
)

// CareReport lists the students that need immediate attention and their booked sessions
type CareReport struct {
	Critical     []StudentRisk        `json:"critical"`
	Appointments []models.Appointment `json:"appointments"`
}

// CareService defines the interface for the student care page
type CareService interface {
	Report() CareReport
}

type careServiceImpl struct {
	studentRepo    *repositories.StudentRepository
	counsellorRepo *repositories.CounsellorRepository
}

// NewCareService creates a new care service instance
func NewCareService(studentRepo *repositories.StudentRepository, counsellorRepo *repositories.CounsellorRepository) CareService {
	return &careServiceImpl{
		studentRepo:    studentRepo,
		counsellorRepo: counsellorRepo,
	}
}

// Report collects critical students and appointments booked at Critical severity
func (s *careServiceImpl) Report() CareReport {
	appointments := make([]models.Appointment, 0)
	for _, a := range s.counsellorRepo.Appointments() {
		if a.Severity == enums.RiskCritical {
			appointments = append(appointments, a)
		}
	}

	return CareReport{
		Critical:     withRisk(wellness.CriticalStudents(s.studentRepo.List())),
		Appointments: appointments,
	}
}
