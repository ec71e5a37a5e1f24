package services

import (
	"github.com/rs/zerolog"
	"github.com/yigit/allizzwell/internal/app/repositories"
	"github.com/yigit/allizzwell/internal/pkg/auth"
	"github.com/yigit/allizzwell/internal/wellness"
)

// Services defined in this package:
// - DashboardService: KPI header, filter options, cohort overview and per-student risk
// - CareService: critical students and their appointments
// - CommunityService: anonymous post moderation and trending tags
// - CounsellorService: counsellor roster management
// - NotificationService: audience-targeted notifications

// Services holds all the service instances
type Services struct {
	Dashboard     DashboardService
	Care          CareService
	Community     CommunityService
	Counsellors   CounsellorService
	Notifications NotificationService
}

// NewServices wires every service over the same repositories
func NewServices(repos *repositories.Repositories, agg wellness.Aggregator, hasher *auth.PasswordHasher, lgr zerolog.Logger) *Services {
	return &Services{
		Dashboard:     NewDashboardService(repos.StudentRepository, agg),
		Care:          NewCareService(repos.StudentRepository, repos.CounsellorRepository),
		Community:     NewCommunityService(repos.PostRepository, lgr),
		Counsellors:   NewCounsellorService(repos.CounsellorRepository, hasher, lgr),
		Notifications: NewNotificationService(repos.NotificationRepository, repos.StudentRepository, lgr),
	}
}
