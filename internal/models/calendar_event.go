package models

import "time"

// CalendarEvent is an entry on the shared events calendar.
type CalendarEvent struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title      string    `json:"title" gorm:"type:varchar(200)"`
	DateString string    `json:"dateString" gorm:"type:varchar(50)"`
	Time       string    `json:"time,omitempty" gorm:"type:varchar(5)"`
	Location   string    `json:"location,omitempty" gorm:"type:varchar(500)"`
	CreatedBy  string    `json:"createdBy,omitempty" gorm:"type:varchar(255)"`
	CreatedAt  time.Time `json:"createdAt"`
}
