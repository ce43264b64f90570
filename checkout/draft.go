package checkout

import "strings"

// Mode is the fulfillment mode; it determines which draft fields are
// required and how the order summary is formatted.
type Mode string

const (
	ModeDelivery Mode = "delivery"
	ModePickup   Mode = "pickup"
)

// DeliveryAddress is the resolved delivery destination. Coordinates are set
// by geocoding, never hand-entered, and may be absent.
type DeliveryAddress struct {
	Address   string
	Apartment string
	Entrance  string
	Floor     string
	Latitude  *float64
	Longitude *float64
}

type PickupLocation struct {
	ID           uint
	Title        string
	Address      string
	WorkingHours string
	Phone        string
	IsActive     bool
	DisplayOrder int
}

// Draft gathers everything checkout needs for one submission attempt. It is
// ephemeral: a successful submission destroys it along with the cart.
type Draft struct {
	Mode          Mode
	Delivery      *DeliveryAddress
	Pickup        *PickupLocation
	ClientName    string
	ClientPhone   string
	Comment       string
	PaymentMethod string
}

// digitsOnly strips formatting from a phone number, leaving the canonical
// digits-only form sent to the backend and into order summaries.
func digitsOnly(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
