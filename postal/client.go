// Package postal wraps the external pincode lookup service. The service
// maps an Indian 6-digit pincode to its district and state; it is the
// only outbound dependency of the system.
package postal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.postalpincode.in"

// Location is the enrichment result for a pincode.
type Location struct {
	City  string
	State string
}

// Resolver resolves a pincode into a Location. A nil error with an empty
// Location means the service answered but does not know the pincode; a
// non-nil error means the call itself failed (timeout, network, bad
// payload) and the caller may proceed without enrichment.
type Resolver interface {
	Lookup(ctx context.Context, pincode string) (Location, error)
}

// Client talks to the postal pincode HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a Client. An empty baseURL selects the public API;
// a zero timeout defaults to 5 seconds.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// apiResponse mirrors the postalpincode.in payload: a single-element
// array whose Status is "Success" when post offices were found.
type apiResponse []struct {
	Status     string `json:"Status"`
	PostOffice []struct {
		District string `json:"District"`
		State    string `json:"State"`
	} `json:"PostOffice"`
}

// Lookup fetches city/state for a pincode.
func (c *Client) Lookup(ctx context.Context, pincode string) (Location, error) {
	url := fmt.Sprintf("%s/pincode/%s", c.baseURL, pincode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Location{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Location{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Location{}, fmt.Errorf("postal api: unexpected status %d", resp.StatusCode)
	}

	var payload apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Location{}, fmt.Errorf("postal api: decode response: %w", err)
	}

	if len(payload) == 0 || payload[0].Status != "Success" || len(payload[0].PostOffice) == 0 {
		// Known answer: the pincode is not served.
		return Location{}, nil
	}

	po := payload[0].PostOffice[0]
	return Location{City: po.District, State: po.State}, nil
}
