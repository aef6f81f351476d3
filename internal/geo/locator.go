package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Location is a resolved position. It is stringified directly into the
// delivery-address field; no reverse geocoding happens anywhere.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// AddressString formats the location the way the address field expects.
func (l *Location) AddressString() string {
	return fmt.Sprintf("%v, %v", l.Latitude, l.Longitude)
}

// Locator resolves a caller to a location.
type Locator interface {
	Locate(ctx context.Context, ip string) (*Location, error)
}

// HTTPLocator resolves an IP via an external geolocation API
// (ip-api.com compatible response shape).
type HTTPLocator struct {
	endpoint string
	client   *http.Client
}

func NewHTTPLocator(endpoint string) *HTTPLocator {
	return &HTTPLocator{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (l *HTTPLocator) Locate(ctx context.Context, ip string) (*Location, error) {
	url := fmt.Sprintf("%s/%s?fields=status,lat,lon", l.endpoint, ip)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geolocation api error: %s", string(raw))
	}

	var result struct {
		Status string  `json:"status"`
		Lat    float64 `json:"lat"`
		Lon    float64 `json:"lon"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}

	if result.Status != "success" {
		return nil, errors.New("location could not be resolved")
	}

	return &Location{Latitude: result.Lat, Longitude: result.Lon}, nil
}
