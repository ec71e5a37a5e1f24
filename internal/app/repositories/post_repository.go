package repositories

import (
	"strconv"

	"github.com/yigit/allizzwell/internal/app/models"
	"github.com/yigit/allizzwell/internal/pkg/apperrors"
)

// PostRepository handles anonymous community posts and trending tags
type PostRepository struct {
	store *SnapshotStore
}

// NewPostRepository creates a new post repository
func NewPostRepository(store *SnapshotStore) *PostRepository {
	return &PostRepository{store: store}
}

// List returns all posts in feed order
func (r *PostRepository) List() []models.AnonymousPost {
	return models.ClonePosts(r.store.Current().AnonymousPosts)
}

// Trends returns the trending hashtags
func (r *PostRepository) Trends() []models.TrendTag {
	return models.CloneSlice(r.store.Current().Trends)
}

// Delete removes a post
func (r *PostRepository) Delete(id int) error {
	_, err := r.store.Apply(func(next *models.Snapshot) error {
		for i, p := range next.AnonymousPosts {
			if p.ID == id {
				next.AnonymousPosts = append(next.AnonymousPosts[:i], next.AnonymousPosts[i+1:]...)
				return nil
			}
		}
		return postNotFound(id)
	})
	return err
}

// ToggleReported flips the reported flag of a post and returns the updated post
func (r *PostRepository) ToggleReported(id int) (models.AnonymousPost, error) {
	var updated models.AnonymousPost
	_, err := r.store.Apply(func(next *models.Snapshot) error {
		for i := range next.AnonymousPosts {
			if next.AnonymousPosts[i].ID == id {
				next.AnonymousPosts[i].Reported = !next.AnonymousPosts[i].Reported
				updated = next.AnonymousPosts[i]
				return nil
			}
		}
		return postNotFound(id)
	})
	return updated, err
}

func postNotFound(id int) error {
	return apperrors.NewNotFoundError(apperrors.ErrPostNotFound, strconv.Itoa(id))
}
