package services

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/allizzwell/internal/app/models"
	"github.com/yigit/allizzwell/internal/app/models/enums"
	"github.com/yigit/allizzwell/internal/app/repositories"
	"github.com/yigit/allizzwell/internal/pkg/validation"
	"github.com/yigit/allizzwell/internal/wellness"
)

// SendNotificationRequest is the notification form. An empty audience means everyone.
type SendNotificationRequest struct {
	Title       string         `json:"title" validate:"required,max=120"`
	Description string         `json:"desc" validate:"max=1000"`
	Date        string         `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time        string         `json:"time" validate:"omitempty,datetime=15:04"`
	Audience    enums.Audience `json:"audience" validate:"omitempty,oneof=All Male Female Other"`
}

// NotificationService defines the interface for notifications
type NotificationService interface {
	List() []models.Notification
	Send(req SendNotificationRequest) (models.Notification, error)
	Recipients(id string) ([]models.Student, error)
}

type notificationServiceImpl struct {
	notificationRepo *repositories.NotificationRepository
	studentRepo      *repositories.StudentRepository
	logger           zerolog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(notificationRepo *repositories.NotificationRepository, studentRepo *repositories.StudentRepository, logger zerolog.Logger) NotificationService {
	return &notificationServiceImpl{
		notificationRepo: notificationRepo,
		studentRepo:      studentRepo,
		logger:           logger.With().Str("service", "notification").Logger(),
	}
}

func (s *notificationServiceImpl) List() []models.Notification {
	return s.notificationRepo.List()
}

// Send records a notification as sent to its audience
func (s *notificationServiceImpl) Send(req SendNotificationRequest) (models.Notification, error) {
	req.Title = strings.TrimSpace(req.Title)
	if req.Audience == "" {
		req.Audience = enums.AudienceAll
	}
	if err := validation.Struct(req); err != nil {
		return models.Notification{}, err
	}

	sent, err := s.notificationRepo.Create(models.Notification{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Audience:    req.Audience,
		Status:      enums.NotificationSent,
	})
	if err != nil {
		return models.Notification{}, fmt.Errorf("error sending notification: %w", err)
	}

	s.logger.Info().
		Str("notificationId", sent.ID).
		Str("audience", string(sent.Audience)).
		Msg("Notification sent")
	return sent, nil
}

// Recipients resolves a notification's audience to the students it targets
func (s *notificationServiceImpl) Recipients(id string) ([]models.Student, error) {
	n, err := s.notificationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return wellness.Filter(s.studentRepo.List(), AudienceFilter(n.Audience)), nil
}

// AudienceFilter converts a notification audience into a cohort filter
func AudienceFilter(a enums.Audience) wellness.FilterSpec {
	spec := wellness.FilterSpec{}
	if g, ok := a.Gender(); ok {
		spec.Gender = wellness.Only(g)
	}
	return spec
}
