package services

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/allizzwell/internal/app/models"
	"github.com/yigit/allizzwell/internal/app/repositories"
)

// CommunityService defines the interface for community moderation
type CommunityService interface {
	Posts() []models.AnonymousPost
	ReportedPosts() []models.AnonymousPost
	Trends() []models.TrendTag
	RemovePost(id int) error
	ToggleReported(id int) (models.AnonymousPost, error)
}

type communityServiceImpl struct {
	postRepo *repositories.PostRepository
	logger   zerolog.Logger
}

// NewCommunityService creates a new community service instance
func NewCommunityService(postRepo *repositories.PostRepository, logger zerolog.Logger) CommunityService {
	return &communityServiceImpl{
		postRepo: postRepo,
		logger:   logger.With().Str("service", "community").Logger(),
	}
}

func (s *communityServiceImpl) Posts() []models.AnonymousPost {
	return s.postRepo.List()
}

// ReportedPosts returns the posts currently flagged for review
func (s *communityServiceImpl) ReportedPosts() []models.AnonymousPost {
	reported := make([]models.AnonymousPost, 0)
	for _, p := range s.postRepo.List() {
		if p.Reported {
			reported = append(reported, p)
		}
	}
	return reported
}

func (s *communityServiceImpl) Trends() []models.TrendTag {
	return s.postRepo.Trends()
}

// RemovePost deletes a post from the feed
func (s *communityServiceImpl) RemovePost(id int) error {
	if err := s.postRepo.Delete(id); err != nil {
		return fmt.Errorf("error removing post: %w", err)
	}
	s.logger.Info().Int("postId", id).Msg("Post removed")
	return nil
}

// ToggleReported flags or unflags a post
func (s *communityServiceImpl) ToggleReported(id int) (models.AnonymousPost, error) {
	post, err := s.postRepo.ToggleReported(id)
	if err != nil {
		return models.AnonymousPost{}, fmt.Errorf("error toggling report flag: %w", err)
	}
	s.logger.Info().Int("postId", id).Bool("reported", post.Reported).Msg("Post report flag changed")
	return post, nil
}
