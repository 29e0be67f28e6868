package models

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:100;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:255;not null"` // bcrypt, never serialized back to clients
	Email        string `gorm:"size:100"`
	Name         string `gorm:"size:100"`
	Phone        string `gorm:"size:50"`
	Address      string `gorm:"size:255"`
	IsSuperuser  bool   `gorm:"not null;default:false"`
	RestaurantID *uint
	Restaurant   *Restaurant
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
