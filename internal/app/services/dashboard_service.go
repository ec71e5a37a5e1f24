package services

import (
	"github.com/yigit/allizzwell/internal/app/models"
	"github.com/yigit/allizzwell/internal/app/models/enums"
	"github.com/yigit/allizzwell/internal/app/repositories"
	"github.com/yigit/allizzwell/internal/wellness"
)

// StudentRisk pairs a student with the risk level derived from its scores
type StudentRisk struct {
	models.Student
	Risk enums.RiskLevel `json:"risk"`
}

// Overview is the chart-ready view of one cohort
type Overview struct {
	Filter         string                     `json:"filter"`
	MissingSamples string                     `json:"missingSamples"`
	CohortSize     int                        `json:"cohortSize"`
	Summary        wellness.Summary           `json:"summary"`
	Distribution   wellness.MoodDistribution  `json:"distribution"`
	Weekly         []wellness.MoodSeriesPoint `json:"weekly"`
	Monthly        []wellness.MoodSeriesPoint `json:"monthly"`
}

// DashboardService defines the interface for the analytics dashboard
type DashboardService interface {
	Header() wellness.Summary
	FilterOptions() wellness.Options
	Overview(spec wellness.FilterSpec) Overview
	Roster(spec wellness.FilterSpec) []StudentRisk
	StudentRisk(id string) (StudentRisk, error)
}

// dashboardServiceImpl implements the DashboardService interface
type dashboardServiceImpl struct {
	studentRepo *repositories.StudentRepository
	aggregator  wellness.Aggregator
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(studentRepo *repositories.StudentRepository, aggregator wellness.Aggregator) DashboardService {
	return &dashboardServiceImpl{
		studentRepo: studentRepo,
		aggregator:  aggregator,
	}
}

// Header returns the KPI counts over every student
func (s *dashboardServiceImpl) Header() wellness.Summary {
	return wellness.Summarize(s.studentRepo.List())
}

// FilterOptions returns the values the cohort filters can take
func (s *dashboardServiceImpl) FilterOptions() wellness.Options {
	return wellness.FilterOptions(s.studentRepo.List())
}

// Overview filters the students and aggregates the resulting cohort
func (s *dashboardServiceImpl) Overview(spec wellness.FilterSpec) Overview {
	cohort := wellness.Filter(s.studentRepo.List(), spec)

	return Overview{
		Filter:         describeFilter(spec),
		MissingSamples: s.aggregator.Policy().String(),
		CohortSize:     len(cohort),
		Summary:        wellness.Summarize(cohort),
		Distribution:   wellness.Distribution(cohort),
		Weekly:         s.aggregator.WeeklySeries(cohort),
		Monthly:        s.aggregator.MonthlySeries(cohort),
	}
}

// Roster returns the filtered students with their risk levels
func (s *dashboardServiceImpl) Roster(spec wellness.FilterSpec) []StudentRisk {
	return withRisk(wellness.Filter(s.studentRepo.List(), spec))
}

// StudentRisk classifies a single student
func (s *dashboardServiceImpl) StudentRisk(id string) (StudentRisk, error) {
	st, err := s.studentRepo.GetByID(id)
	if err != nil {
		return StudentRisk{}, err
	}
	return StudentRisk{Student: st, Risk: wellness.ClassifyStudent(st)}, nil
}

func withRisk(students []models.Student) []StudentRisk {
	out := make([]StudentRisk, len(students))
	for i, st := range students {
		out[i] = StudentRisk{Student: st, Risk: wellness.ClassifyStudent(st)}
	}
	return out
}

func describeFilter(spec wellness.FilterSpec) string {
	return "gender=" + spec.Gender.String() +
		" department=" + spec.Department.String() +
		" semester=" + spec.Semester.String()
}
