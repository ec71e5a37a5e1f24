package repositories

// Repositories holds all the repository instances
type Repositories struct {
	Store                  *SnapshotStore
	StudentRepository      *StudentRepository
	CounsellorRepository   *CounsellorRepository
	PostRepository         *PostRepository
	NotificationRepository *NotificationRepository
}

// NewRepositories initializes all repositories over one snapshot store
func NewRepositories(store *SnapshotStore, ids IDGenerator) *Repositories {
	return &Repositories{
		Store:                  store,
		StudentRepository:      NewStudentRepository(store),
		CounsellorRepository:   NewCounsellorRepository(store, ids),
		PostRepository:         NewPostRepository(store),
		NotificationRepository: NewNotificationRepository(store, ids),
	}
}
