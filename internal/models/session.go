package models

import "time"

// Session is a server-tracked login. The client only ever holds a signed
// token referencing the row, so deleting the row revokes access immediately.
type Session struct {
	ID        string `gorm:"primaryKey;size:36"` // uuid
	UserID    uint   `gorm:"not null;index"`
	User      *User
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
