// Package geocode resolves coordinates into a human readable address.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Fallback is stored instead of an address whenever a lookup cannot produce one
const Fallback = "Dirección no disponible"

// ErrUnavailable marks lookups that reached the service but got no usable address:
// a non-200 status, an undecodable body or a missing display_name.
// Transport failures (DNS, refused connection, timeout) do not wrap it.
var ErrUnavailable = errors.New("geocode: address unavailable")

// Reverser turns a coordinate pair into an address
type Reverser interface {
	Reverse(ctx context.Context, lat, lon float64) (string, error)
}

// Client queries a Nominatim compatible reverse geocoding endpoint
type Client struct {
	BaseURL   string
	UserAgent string
	HTTP      *http.Client
}

// NewClient returns a client whose requests give up after timeout
func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:   baseURL,
		UserAgent: userAgent,
		HTTP:      &http.Client{Timeout: timeout},
	}
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
}

// Reverse looks up the display name for lat/lon
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (string, error) {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
	var body reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: decode: %v", ErrUnavailable, err)
	}
	if body.DisplayName == "" {
		return "", fmt.Errorf("%w: no display_name", ErrUnavailable)
	}
	return body.DisplayName, nil
}
