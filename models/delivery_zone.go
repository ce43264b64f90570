package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Coordinates is a polygon stored as an ordered list of [lat, lng] pairs.
type Coordinates [][]float64

func (c Coordinates) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *Coordinates) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return fmt.Errorf("unsupported coordinates column type %T", value)
	}
}

type DeliveryZone struct {
	ID            uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string      `gorm:"size:100;not null" json:"name"`
	Color         string      `gorm:"size:20;not null" json:"color"` // HEX color code
	Coordinates   Coordinates `gorm:"type:jsonb;not null" json:"coordinates"`
	DeliveryFee   float64     `gorm:"not null" json:"delivery_fee"`
	MinOrder      float64     `gorm:"not null" json:"min_order"`
	EstimatedTime string      `gorm:"size:50;not null" json:"estimated_time"` // e.g. "30-40 мин"
	IsActive      bool        `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
