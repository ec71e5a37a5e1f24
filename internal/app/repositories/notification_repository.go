package repositories

import (
	"github.com/yigit/allizzwell/internal/app/models"
	"github.com/yigit/allizzwell/internal/pkg/apperrors"
)

// NotificationRepository handles issued notifications
type NotificationRepository struct {
	store *SnapshotStore
	ids   IDGenerator
}

// NewNotificationRepository creates a new notification repository.
// A nil generator falls back to RandomID.
func NewNotificationRepository(store *SnapshotStore, ids IDGenerator) *NotificationRepository {
	if ids == nil {
		ids = RandomID
	}
	return &NotificationRepository{store: store, ids: ids}
}

// List returns notifications, newest first
func (r *NotificationRepository) List() []models.Notification {
	return models.CloneSlice(r.store.Current().Notifications)
}

// GetByID retrieves a notification by id
func (r *NotificationRepository) GetByID(id string) (models.Notification, error) {
	for _, n := range r.store.Current().Notifications {
		if n.ID == id {
			return n, nil
		}
	}
	return models.Notification{}, apperrors.NewNotFoundError(apperrors.ErrNotificationNotFound, id)
}

// Create assigns a fresh NTF id to notification and puts it at the head of the list
func (r *NotificationRepository) Create(notification models.Notification) (models.Notification, error) {
	_, err := r.store.Apply(func(next *models.Snapshot) error {
		id, err := uniqueID(r.ids, NotificationIDPrefix, func(id string) bool {
			for _, n := range next.Notifications {
				if n.ID == id {
					return true
				}
			}
			return false
		})
		if err != nil {
			return err
		}
		notification.ID = id
		next.Notifications = append([]models.Notification{notification}, next.Notifications...)
		return nil
	})
	if err != nil {
		return models.Notification{}, err
	}
	return notification, nil
}
