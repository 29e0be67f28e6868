package models

import "time"

type Restaurant struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:100;not null"`
	Slug         string `gorm:"size:100;not null;uniqueIndex"` // human-readable lookup key
	Description  string `gorm:"size:500"`
	City         string `gorm:"size:100"`
	State        string `gorm:"size:100"`
	Address      string `gorm:"size:255"`
	Phone        string `gorm:"size:50"`
	ImageURL     string `gorm:"size:500"`
	WebsiteURL   string `gorm:"size:500"`
	InstagramURL string `gorm:"size:500"`
	FacebookURL  string `gorm:"size:500"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Items []Item
	Users []User
}
