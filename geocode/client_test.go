package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForward(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/items", r.URL.Path)
		assert.Equal(t, "ул. Абая 10", r.URL.Query().Get("q"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "1", r.URL.Query().Get("page_size"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result":{"items":[{"point":{"lat":43.238949,"lon":76.889709},"address_name":"улица Абая, 10"}]}}`))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL)
	point, err := c.Forward(context.Background(), "ул. Абая 10")
	require.NoError(t, err)
	assert.InDelta(t, 43.238949, point.Lat, 1e-9)
	assert.InDelta(t, 76.889709, point.Lon, 1e-9)
}

func TestForwardNoResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result":{"items":[]}}`))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL)
	_, err := c.Forward(context.Background(), "nonexistent place")
	assert.ErrorIs(t, err, ErrNoResult)
}

func TestReversePrefersFullAddress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/items/geocode", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result":{"items":[{"address_name":"улица Абая, 10","full_address_name":"Алматы, улица Абая, 10"}]}}`))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL)
	address, err := c.Reverse(context.Background(), Point{Lat: 43.238949, Lon: 76.889709})
	require.NoError(t, err)
	assert.Equal(t, "Алматы, улица Абая, 10", address)
}

func TestReverseFallsBackToAddressName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result":{"items":[{"address_name":"улица Абая, 10"}]}}`))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL)
	address, err := c.Reverse(context.Background(), Point{Lat: 43.238949, Lon: 76.889709})
	require.NoError(t, err)
	assert.Equal(t, "улица Абая, 10", address)
}

func TestServerErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("bad-key", srv.URL)
	_, err := c.Forward(context.Background(), "ул. Абая 10")
	assert.Error(t, err)
}
