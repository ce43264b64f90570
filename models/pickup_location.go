package models

import "time"

type PickupLocation struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title        string    `gorm:"size:150;not null" json:"title"`
	Address      string    `gorm:"not null" json:"address"`
	WorkingHours string    `gorm:"size:100;not null" json:"working_hours"`
	Phone        string    `gorm:"size:30" json:"phone"`
	Latitude     float64   `gorm:"not null" json:"latitude"`
	Longitude    float64   `gorm:"not null" json:"longitude"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"` // ties broken by id ascending
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
