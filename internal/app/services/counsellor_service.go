package services

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/allizzwell/internal/app/models"
	"github.com/yigit/allizzwell/internal/app/models/enums"
	"github.com/yigit/allizzwell/internal/app/repositories"
	"github.com/yigit/allizzwell/internal/pkg/auth"
	"github.com/yigit/allizzwell/internal/pkg/validation"
)

// CreateCounsellorRequest is the counsellor intake form
type CreateCounsellorRequest struct {
	Name     string       `json:"name" validate:"required,min=2,max=100"`
	Gender   enums.Gender `json:"gender" validate:"required,oneof=Male Female Other"`
	Password string       `json:"password" validate:"required"`
	Confirm  string       `json:"confirm" validate:"eqfield=Password"`
}

// CounsellorService defines the interface for counsellor roster operations
type CounsellorService interface {
	List() []models.Counsellor
	Get(id string) (models.Counsellor, error)
	Create(req CreateCounsellorRequest) (models.Counsellor, error)
	Deactivate(id string) (models.Counsellor, error)
}

type counsellorServiceImpl struct {
	counsellorRepo *repositories.CounsellorRepository
	hasher         *auth.PasswordHasher
	logger         zerolog.Logger
}

// NewCounsellorService creates a new counsellor service instance
func NewCounsellorService(counsellorRepo *repositories.CounsellorRepository, hasher *auth.PasswordHasher, logger zerolog.Logger) CounsellorService {
	return &counsellorServiceImpl{
		counsellorRepo: counsellorRepo,
		hasher:         hasher,
		logger:         logger.With().Str("service", "counsellor").Logger(),
	}
}

func (s *counsellorServiceImpl) List() []models.Counsellor {
	return s.counsellorRepo.List()
}

func (s *counsellorServiceImpl) Get(id string) (models.Counsellor, error) {
	return s.counsellorRepo.GetByID(id)
}

// Create validates the intake form and adds an active counsellor at the head of the roster.
// A confirmation that differs from the password fails with ErrPasswordMismatch.
func (s *counsellorServiceImpl) Create(req CreateCounsellorRequest) (models.Counsellor, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validation.Struct(req); err != nil {
		return models.Counsellor{}, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return models.Counsellor{}, fmt.Errorf("error hashing password: %w", err)
	}

	created, err := s.counsellorRepo.Create(models.Counsellor{
		Name:         req.Name,
		Gender:       req.Gender,
		Status:       enums.CounsellorActive,
		PasswordHash: hash,
	})
	if err != nil {
		return models.Counsellor{}, fmt.Errorf("error creating counsellor: %w", err)
	}

	s.logger.Info().Str("counsellorId", created.ID).Str("name", created.Name).Msg("Counsellor created")
	return created, nil
}

// Deactivate marks an active counsellor as inactive
func (s *counsellorServiceImpl) Deactivate(id string) (models.Counsellor, error) {
	updated, err := s.counsellorRepo.Deactivate(id)
	if err != nil {
		return models.Counsellor{}, fmt.Errorf("error deactivating counsellor: %w", err)
	}

	s.logger.Info().Str("counsellorId", id).Msg("Counsellor deactivated")
	return updated, nil
}
