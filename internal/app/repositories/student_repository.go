package repositories

import (
	"github.com/yigit/allizzwell/internal/app/models"
	"github.com/yigit/allizzwell/internal/pkg/apperrors"
)

// StudentRepository reads student records from the current snapshot
type StudentRepository struct {
	store *SnapshotStore
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(store *SnapshotStore) *StudentRepository {
	return &StudentRepository{store: store}
}

// List returns every student in seed order
func (r *StudentRepository) List() []models.Student {
	return models.CloneStudents(r.store.Current().Students)
}

// GetByID retrieves a student by id
func (r *StudentRepository) GetByID(id string) (models.Student, error) {
	s, ok := r.store.Current().FindStudent(id)
	if !ok {
		return models.Student{}, apperrors.NewNotFoundError(apperrors.ErrStudentNotFound, id)
	}
	return s, nil
}
