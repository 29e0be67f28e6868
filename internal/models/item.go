package models

import "time"

type Item struct {
	ID           uint `gorm:"primaryKey"`
	RestaurantID uint `gorm:"not null;index"`
	Restaurant   *Restaurant
	Section      string `gorm:"size:100"`
	Name         string `gorm:"size:100"`
	ShortDesc    string `gorm:"size:500"`
	// Price stays a string on purpose: menus carry values like "10.00" or
	// "a partir de 25", and no arithmetic is ever done on them.
	Price      string   `gorm:"size:50"`
	ImageURL   string   `gorm:"size:500"`
	Categories []string `gorm:"serializer:json"` // tag set, order has no meaning
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
