package models

import "github.com/yigit/allizzwell/internal/app/models/enums"

// Notification is an announcement issued to an audience of students
type Notification struct {
	ID          string                   `json:"id" yaml:"id"`
	Title       string                   `json:"title" yaml:"title"`
	Description string                   `json:"desc" yaml:"desc"`
	Date        string                   `json:"date" yaml:"date"`
	Time        string                   `json:"time" yaml:"time"`
	Audience    enums.Audience           `json:"audience" yaml:"audience"`
	Status      enums.NotificationStatus `json:"status" yaml:"status"`
}
