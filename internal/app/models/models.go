package models

import "github.com/google/uuid"

// Snapshot is the complete dashboard state at one version.
// A snapshot handed out by the store must be treated as read-only; writers work on a Clone.
type Snapshot struct {
	Version        uuid.UUID       `json:"version" yaml:"-"`
	Students       []Student       `json:"students" yaml:"students"`
	Counsellors    []Counsellor    `json:"counsellors" yaml:"counsellors"`
	AnonymousPosts []AnonymousPost `json:"anonymousPosts" yaml:"anonymousPosts"`
	Trends         []TrendTag      `json:"trends" yaml:"trends"`
	Appointments   []Appointment   `json:"appointments" yaml:"appointments"`
	Notifications  []Notification  `json:"notifications" yaml:"notifications"`
}

// Clone returns a deep copy of the snapshot that shares no slices with the receiver
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}

	c := &Snapshot{Version: s.Version}

	c.Students = CloneStudents(s.Students)
	c.AnonymousPosts = ClonePosts(s.AnonymousPosts)
	c.Counsellors = CloneSlice(s.Counsellors)
	c.Trends = CloneSlice(s.Trends)
	c.Appointments = CloneSlice(s.Appointments)
	c.Notifications = CloneSlice(s.Notifications)

	return c
}

// FindStudent returns the student with the given id
func (s *Snapshot) FindStudent(id string) (Student, bool) {
	for _, st := range s.Students {
		if st.ID == id {
			return st, true
		}
	}
	return Student{}, false
}

// FindCounsellor returns the counsellor with the given id
func (s *Snapshot) FindCounsellor(id string) (Counsellor, bool) {
	for _, c := range s.Counsellors {
		if c.ID == id {
			return c, true
		}
	}
	return Counsellor{}, false
}

// CloneStudents copies students including their mood series
func CloneStudents(v []Student) []Student {
	if v == nil {
		return nil
	}
	c := make([]Student, len(v))
	for i, st := range v {
		c[i] = st.clone()
	}
	return c
}

// ClonePosts copies posts including their hashtags
func ClonePosts(v []AnonymousPost) []AnonymousPost {
	if v == nil {
		return nil
	}
	c := make([]AnonymousPost, len(v))
	for i, p := range v {
		c[i] = p.clone()
	}
	return c
}

// CloneSlice copies a slice of flat records
func CloneSlice[T any](v []T) []T {
	if v == nil {
		return nil
	}
	return append([]T(nil), v...)
}
