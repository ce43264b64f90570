package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // created, awaiting payment
	OrderStatusPaid      OrderStatus = "paid"      // payment confirmed
	OrderStatusCompleted OrderStatus = "completed" // handed to the customer
	OrderStatusCancelled OrderStatus = "cancelled"
)

type DeliveryType string

const (
	DeliveryTypeDelivery DeliveryType = "delivery"
	DeliveryTypePickup   DeliveryType = "pickup"
	DeliveryTypeDineIn   DeliveryType = "dine_in"
)

type Order struct {
	ID           uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       *uint       `gorm:"index" json:"user_id"`
	User         *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	TotalAmount  float64     `gorm:"not null" json:"total_amount"`
	BonusEarned  int         `gorm:"default:0" json:"bonus_earned"`
	Status       OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentToken string      `gorm:"size:255" json:"payment_token,omitempty"` // Kaspi QR token
	PaymentURL   string      `gorm:"size:500" json:"payment_url,omitempty"`

	// Fulfillment
	DeliveryType      DeliveryType    `gorm:"type:VARCHAR(20);default:'pickup'" json:"delivery_type"`
	DeliveryAddress   string          `json:"delivery_address"`
	DeliveryApartment string          `gorm:"size:20" json:"delivery_apartment"`
	DeliveryEntrance  string          `gorm:"size:20" json:"delivery_entrance"`
	DeliveryFloor     string          `gorm:"size:20" json:"delivery_floor"`
	DeliveryLatitude  *float64        `json:"delivery_latitude"`
	DeliveryLongitude *float64        `json:"delivery_longitude"`
	PickupLocationID  *uint           `json:"pickup_location_id"`
	PickupLocation    *PickupLocation `gorm:"foreignKey:PickupLocationID" json:"pickup_location,omitempty"`

	// Contact
	ClientName  string `gorm:"size:100" json:"client_name"`
	ClientPhone string `gorm:"size:20" json:"client_phone"` // digits only
	Comment     string `json:"comment"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

// OrderItem stores a by-value snapshot of the product at order time so
// historic orders stay readable after admin edits or deletions.
type OrderItem struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID     uint    `gorm:"index" json:"order_id"`
	ProductID   *uint   `json:"product_id"`
	ProductName string  `gorm:"size:100;not null" json:"product_name"`
	BasePrice   float64 `gorm:"not null" json:"base_price"`
	Quantity    int     `gorm:"default:1" json:"quantity"`
	TotalPrice  float64 `gorm:"not null" json:"total_price"`

	SelectedOptions []OrderItemOption `gorm:"foreignKey:OrderItemID;constraint:OnDelete:CASCADE" json:"selected_options"`
}

type OrderItemOption struct {
	ID              uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderItemID     uint    `gorm:"index" json:"order_item_id"`
	OptionGroupName string  `gorm:"size:100;not null" json:"option_group_name"`
	OptionName      string  `gorm:"size:100;not null" json:"option_name"`
	OptionPrice     float64 `gorm:"default:0" json:"option_price"`
}
