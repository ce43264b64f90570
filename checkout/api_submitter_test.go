package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPISubmitterCreatesOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/orders", r.URL.Path)
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))

		var payload createOrderPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Len(t, payload.Items, 2)
		assert.Equal(t, uint(1), payload.Items[0].ProductID)
		assert.Equal(t, 2, payload.Items[0].Quantity)
		assert.Equal(t, "Карамель", payload.Items[0].SelectedOptions[0].OptionName)
		assert.Equal(t, "pickup", payload.DeliveryType)
		assert.Equal(t, uint(3), payload.PickupLocationID)
		assert.Equal(t, "Айгерим", payload.ClientName)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"order_id":42,"payment_url":"https://kaspi.kz/pay/tok","qr_token":"tok","total_amount":4200}`))
	}))
	defer srv.Close()

	sub := NewAPISubmitter(srv.URL, "token-1")
	draft := Draft{
		Mode:        ModePickup,
		Pickup:      &PickupLocation{ID: 3, Title: "Кофейня", Address: "ул. Абая, 10", IsActive: true},
		ClientName:  "Айгерим",
		ClientPhone: "77012345678",
	}

	result, err := sub.Submit(context.Background(), draft, sampleItems(), 4200)
	require.NoError(t, err)
	assert.Equal(t, uint(42), result.OrderID)
	assert.Equal(t, "tok", result.QRToken)
	assert.Equal(t, "https://kaspi.kz/pay/tok", result.PaymentURL)
	assert.Equal(t, 4200.0, result.TotalAmount)
	// The order still awaits payment, so the submission is not terminal.
	assert.False(t, result.Terminal)
}

func TestAPISubmitterSurfacesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"pickup location not found or inactive"}`))
	}))
	defer srv.Close()

	sub := NewAPISubmitter(srv.URL, "")
	draft := Draft{
		Mode:        ModePickup,
		Pickup:      &PickupLocation{ID: 3, Title: "Кофейня", Address: "ул. Абая, 10", IsActive: true},
		ClientName:  "Айгерим",
		ClientPhone: "77012345678",
	}

	_, err := sub.Submit(context.Background(), draft, sampleItems(), 4200)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pickup location not found or inactive")
}

func TestAPISubmitterOrderStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/orders/status/42", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"order_id":42,"status":"paid"}`))
	}))
	defer srv.Close()

	sub := NewAPISubmitter(srv.URL, "")
	status, err := sub.OrderStatus(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, status)
}
