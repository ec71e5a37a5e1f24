package repositories

import (
	"fmt"

	"github.com/yigit/allizzwell/internal/app/models"
	"github.com/yigit/allizzwell/internal/app/models/enums"
	"github.com/yigit/allizzwell/internal/pkg/apperrors"
)

// CounsellorRepository handles roster and appointment records
type CounsellorRepository struct {
	store *SnapshotStore
	ids   IDGenerator
}

// NewCounsellorRepository creates a new counsellor repository.
// A nil generator falls back to RandomID.
func NewCounsellorRepository(store *SnapshotStore, ids IDGenerator) *CounsellorRepository {
	if ids == nil {
		ids = RandomID
	}
	return &CounsellorRepository{store: store, ids: ids}
}

// List returns the roster, newest first
func (r *CounsellorRepository) List() []models.Counsellor {
	return models.CloneSlice(r.store.Current().Counsellors)
}

// GetByID retrieves a counsellor by id
func (r *CounsellorRepository) GetByID(id string) (models.Counsellor, error) {
	c, ok := r.store.Current().FindCounsellor(id)
	if !ok {
		return models.Counsellor{}, apperrors.NewNotFoundError(apperrors.ErrCounsellorNotFound, id)
	}
	return c, nil
}

// Create assigns a fresh CNS id to counsellor and puts it at the head of the roster
func (r *CounsellorRepository) Create(counsellor models.Counsellor) (models.Counsellor, error) {
	_, err := r.store.Apply(func(next *models.Snapshot) error {
		id, err := uniqueID(r.ids, CounsellorIDPrefix, func(id string) bool {
			_, taken := next.FindCounsellor(id)
			return taken
		})
		if err != nil {
			return err
		}
		counsellor.ID = id
		next.Counsellors = append([]models.Counsellor{counsellor}, next.Counsellors...)
		return nil
	})
	if err != nil {
		return models.Counsellor{}, err
	}
	return counsellor, nil
}

// Deactivate marks an active counsellor as inactive.
// The status check runs inside the same commit as the update.
func (r *CounsellorRepository) Deactivate(id string) (models.Counsellor, error) {
	var updated models.Counsellor
	_, err := r.store.Apply(func(next *models.Snapshot) error {
		for i := range next.Counsellors {
			if next.Counsellors[i].ID != id {
				continue
			}
			if !next.Counsellors[i].IsActive() {
				return apperrors.NewCustomError(apperrors.ErrCounsellorInactive, fmt.Sprintf("counsellor %s is already inactive", id)).
					WithCode("CONFLICT")
			}
			next.Counsellors[i].Status = enums.CounsellorInactive
			updated = next.Counsellors[i]
			return nil
		}
		return apperrors.NewNotFoundError(apperrors.ErrCounsellorNotFound, id)
	})
	return updated, err
}

// Appointments returns every scheduled appointment
func (r *CounsellorRepository) Appointments() []models.Appointment {
	return models.CloneSlice(r.store.Current().Appointments)
}
