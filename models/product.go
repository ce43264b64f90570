package models

import "time"

type ProductStatus string

const (
	ProductStatusActive     ProductStatus = "active"
	ProductStatusOutOfStock ProductStatus = "out_of_stock"
	ProductStatusInactive   ProductStatus = "inactive"
)

type Product struct {
	ID             uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID     uint          `gorm:"index" json:"category_id"`
	NameRus        string        `gorm:"size:100;not null" json:"name_rus"`
	NameKaz        string        `gorm:"size:100;not null" json:"name_kaz"`
	DescriptionRus string        `json:"description_rus"`
	DescriptionKaz string        `json:"description_kaz"`
	BasePrice      float64       `gorm:"not null" json:"base_price"` // KZT
	ImageURL       string        `json:"image_url"`
	Status         ProductStatus `gorm:"type:VARCHAR(20);default:'active'" json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`

	OptionGroups []OptionGroup `gorm:"many2many:product_option_groups;constraint:OnDelete:CASCADE" json:"option_groups,omitempty"`
}

// OptionGroup is a named set of product add-ons, e.g. "Milk" or "Syrup".
// is_multiple controls selection cardinality: exactly one vs any subset.
type OptionGroup struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	NameRus    string    `gorm:"size:100;not null" json:"name_rus"`
	NameKaz    string    `gorm:"size:100;not null" json:"name_kaz"`
	IsRequired bool      `gorm:"default:false" json:"is_required"`
	IsMultiple bool      `gorm:"default:false" json:"is_multiple"`
	CreatedAt  time.Time `json:"created_at"`

	Options []Option `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"options,omitempty"`
}

type Option struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	GroupID     uint      `gorm:"index" json:"group_id"`
	NameRus     string    `gorm:"size:100;not null" json:"name_rus"`
	NameKaz     string    `gorm:"size:100;not null" json:"name_kaz"`
	Price       float64   `gorm:"default:0" json:"price"` // delta added to the product base price
	IsAvailable bool      `gorm:"default:true" json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
}
