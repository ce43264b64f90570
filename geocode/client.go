package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://catalog.api.2gis.com/3.0"

// ErrNoResult means the provider answered but found nothing for the query.
var ErrNoResult = errors.New("geocode: no result")

type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Client wraps the 2GIS catalog API: forward geocoding (address text to
// coordinate) and reverse geocoding (coordinate to address text).
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithBaseURL points the client at a different endpoint; used by tests.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = strings.TrimSuffix(baseURL, "/")
	return c
}

type itemsResponse struct {
	Result struct {
		Items []struct {
			Point *struct {
				Lat float64 `json:"lat"`
				Lon float64 `json:"lon"`
			} `json:"point"`
			AddressName     string `json:"address_name"`
			FullAddressName string `json:"full_address_name"`
		} `json:"items"`
	} `json:"result"`
}

// Forward resolves free-text address to the best-matching coordinate.
func (c *Client) Forward(ctx context.Context, query string) (Point, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("page_size", "1")
	params.Set("fields", "items.point")
	params.Set("sort", "relevance")
	params.Set("key", c.apiKey)

	var resp itemsResponse
	if err := c.get(ctx, c.baseURL+"/items?"+params.Encode(), &resp); err != nil {
		return Point{}, err
	}

	if len(resp.Result.Items) == 0 || resp.Result.Items[0].Point == nil {
		return Point{}, ErrNoResult
	}
	point := resp.Result.Items[0].Point
	return Point{Lat: point.Lat, Lon: point.Lon}, nil
}

// Reverse resolves a coordinate to a human-readable address, preferring the
// full address form when the provider offers one.
func (c *Client) Reverse(ctx context.Context, p Point) (string, error) {
	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", p.Lat))
	params.Set("lon", fmt.Sprintf("%f", p.Lon))
	params.Set("page_size", "1")
	params.Set("fields", "items.address_name,items.full_address_name")
	params.Set("key", c.apiKey)

	var resp itemsResponse
	if err := c.get(ctx, c.baseURL+"/items/geocode?"+params.Encode(), &resp); err != nil {
		return "", err
	}

	if len(resp.Result.Items) == 0 {
		return "", ErrNoResult
	}
	item := resp.Result.Items[0]
	address := strings.TrimSpace(item.FullAddressName)
	if address == "" {
		address = strings.TrimSpace(item.AddressName)
	}
	if address == "" {
		return "", ErrNoResult
	}
	return address, nil
}

func (c *Client) get(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("geocode: unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
