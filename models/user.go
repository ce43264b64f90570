package models

import "time"

type UserRole string

const (
	RoleClient UserRole = "client"
	RoleAdmin  UserRole = "admin"
)

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName    string    `gorm:"size:100;not null" json:"first_name"`
	LastName     string    `gorm:"size:100;not null" json:"last_name"`
	PhoneNumber  string    `gorm:"size:20;uniqueIndex;not null" json:"phone_number"` // digits only, KZ country code
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	AvatarURL    string    `json:"avatar_url"`
	Role         UserRole  `gorm:"type:VARCHAR(20);default:'client';not null" json:"role"`
	BonusPoints  int       `gorm:"default:0" json:"bonus_points"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Orders []Order `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"orders,omitempty"`
}
