// Package googlereviews syncs the shop's Google reviews into local
// storage. The client talks to the Places details API; the sync service
// deduplicates against already stored rows and keeps an append-only audit
// log of every run.
package googlereviews

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultPlacesAPIBaseURL = "https://maps.googleapis.com/maps/api/place"

// ErrNotConfigured is the fail-fast configuration error for a sync
// attempted without an API key or place ID.
var ErrNotConfigured = errors.New("google reviews sync is not configured (api key and place id required)")

// Review is one review as returned by the external feed
type Review struct {
	AuthorName              string `json:"author_name"`
	ProfilePhotoURL         string `json:"profile_photo_url"`
	Rating                  int    `json:"rating"`
	Text                    string `json:"text"`
	Time                    int64  `json:"time"`
	RelativeTimeDescription string `json:"relative_time_description"`
}

// Client fetches reviews for one configured place
type Client struct {
	APIKey  string
	PlaceID string

	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a Places client for the given credentials
func NewClient(apiKey, placeID string) *Client {
	return &Client{
		APIKey:  strings.TrimSpace(apiKey),
		PlaceID: strings.TrimSpace(placeID),
		BaseURL: defaultPlacesAPIBaseURL,
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type detailsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Result       struct {
		Reviews []Review `json:"reviews"`
	} `json:"result"`
}

// FetchReviews calls the place-details endpoint and returns the bounded
// review list the feed exposes. The response status field is checked
// before the payload is used.
func (c *Client) FetchReviews(ctx context.Context) ([]Review, error) {
	if c.APIKey == "" || c.PlaceID == "" {
		return nil, ErrNotConfigured
	}

	u, err := url.Parse(c.BaseURL + "/details/json")
	if err != nil {
		return nil, fmt.Errorf("invalid places API base URL: %w", err)
	}
	q := u.Query()
	q.Set("place_id", c.PlaceID)
	q.Set("fields", "reviews")
	q.Set("key", c.APIKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read places API response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places API returned HTTP %d", resp.StatusCode)
	}

	var details detailsResponse
	if err := json.Unmarshal(body, &details); err != nil {
		return nil, fmt.Errorf("failed to decode places API response: %w", err)
	}
	if details.Status != "OK" {
		if details.ErrorMessage != "" {
			return nil, fmt.Errorf("places API status %s: %s", details.Status, details.ErrorMessage)
		}
		return nil, fmt.Errorf("places API status %s", details.Status)
	}

	return details.Result.Reviews, nil
}
