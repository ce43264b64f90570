package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/socialcoffee/ordering-api/cart"
)

// Order creation payload, matching the backend contract.
type orderItemOptionPayload struct {
	OptionGroupName string  `json:"option_group_name"`
	OptionName      string  `json:"option_name"`
	OptionPrice     float64 `json:"option_price"`
}

type orderItemPayload struct {
	ProductID       uint                     `json:"product_id"`
	Quantity        int                      `json:"quantity"`
	SelectedOptions []orderItemOptionPayload `json:"selected_options"`
}

type createOrderPayload struct {
	Items             []orderItemPayload `json:"items"`
	DeliveryType      string             `json:"delivery_type"`
	DeliveryAddress   string             `json:"delivery_address,omitempty"`
	DeliveryApartment string             `json:"delivery_apartment,omitempty"`
	DeliveryEntrance  string             `json:"delivery_entrance,omitempty"`
	DeliveryFloor     string             `json:"delivery_floor,omitempty"`
	DeliveryLatitude  *float64           `json:"delivery_latitude,omitempty"`
	DeliveryLongitude *float64           `json:"delivery_longitude,omitempty"`
	PickupLocationID  uint               `json:"pickup_location_id,omitempty"`
	ClientName        string             `json:"client_name"`
	ClientPhone       string             `json:"client_phone"`
	Comment           string             `json:"comment,omitempty"`
}

type createOrderResponse struct {
	OrderID     uint    `json:"order_id"`
	PaymentURL  string  `json:"payment_url"`
	QRToken     string  `json:"qr_token"`
	TotalAmount float64 `json:"total_amount"`
	Error       string  `json:"error,omitempty"`
}

type orderStatusResponse struct {
	OrderID uint   `json:"order_id"`
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
}

// APISubmitter is the payment-QR checkout strategy: it creates a backend
// order and is later paired with a Poller watching the payment status.
type APISubmitter struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
}

func NewAPISubmitter(baseURL, authToken string) *APISubmitter {
	return &APISubmitter{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		authToken:  authToken,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *APISubmitter) Submit(ctx context.Context, draft Draft, items []cart.LineItem, total float64) (*Result, error) {
	payload := createOrderPayload{
		Items:        make([]orderItemPayload, 0, len(items)),
		DeliveryType: string(draft.Mode),
		ClientName:   draft.ClientName,
		ClientPhone:  draft.ClientPhone,
		Comment:      draft.Comment,
	}

	for _, item := range items {
		options := make([]orderItemOptionPayload, 0, len(item.SelectedOptions))
		for _, opt := range item.SelectedOptions {
			options = append(options, orderItemOptionPayload{
				OptionGroupName: opt.OptionGroupName,
				OptionName:      opt.OptionName,
				OptionPrice:     opt.OptionPrice,
			})
		}
		payload.Items = append(payload.Items, orderItemPayload{
			ProductID:       item.Product.ID,
			Quantity:        item.Quantity,
			SelectedOptions: options,
		})
	}

	switch draft.Mode {
	case ModeDelivery:
		payload.DeliveryAddress = draft.Delivery.Address
		payload.DeliveryApartment = draft.Delivery.Apartment
		payload.DeliveryEntrance = draft.Delivery.Entrance
		payload.DeliveryFloor = draft.Delivery.Floor
		payload.DeliveryLatitude = draft.Delivery.Latitude
		payload.DeliveryLongitude = draft.Delivery.Longitude
	case ModePickup:
		payload.PickupLocationID = draft.Pickup.ID
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.authToken)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("order creation request failed: %w", err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	var created createOrderResponse
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		if json.Unmarshal(data, &created) == nil && created.Error != "" {
			return nil, fmt.Errorf("order creation rejected: %s", created.Error)
		}
		return nil, fmt.Errorf("order creation failed with status %d", resp.StatusCode)
	}
	if err := json.Unmarshal(data, &created); err != nil {
		return nil, fmt.Errorf("failed to parse order response: %w", err)
	}

	return &Result{
		OrderID:     created.OrderID,
		PaymentURL:  created.PaymentURL,
		QRToken:     created.QRToken,
		TotalAmount: created.TotalAmount,
	}, nil
}

// OrderStatus queries the payment status of an order; used by the Poller.
func (s *APISubmitter) OrderStatus(ctx context.Context, orderID uint) (Status, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/api/v1/orders/status/%d", s.baseURL, orderID), nil)
	if err != nil {
		return "", err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status check failed with status %d", resp.StatusCode)
	}

	var status orderStatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return "", err
	}
	return Status(status.Status), nil
}
