package googlereviews

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchReviews(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/details/json", r.URL.Path)
		assert.Equal(t, "place-123", r.URL.Query().Get("place_id"))
		assert.Equal(t, "reviews", r.URL.Query().Get("fields"))
		assert.Equal(t, "secret", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"result": {
				"reviews": [
					{
						"author_name": "Anna",
						"profile_photo_url": "https://example.com/anna.jpg",
						"rating": 5,
						"text": "Great service",
						"time": 1756382400,
						"relative_time_description": "a week ago"
					}
				]
			}
		}`))
	}))
	defer server.Close()

	client := NewClient("secret", "place-123")
	client.BaseURL = server.URL

	reviews, err := client.FetchReviews(context.Background())
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Anna", reviews[0].AuthorName)
	assert.Equal(t, 5, reviews[0].Rating)
	assert.Equal(t, int64(1756382400), reviews[0].Time)
	assert.Equal(t, "a week ago", reviews[0].RelativeTimeDescription)
}

func TestFetchReviewsNotConfigured(t *testing.T) {
	_, err := NewClient("", "").FetchReviews(context.Background())
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewClient("key", "  ").FetchReviews(context.Background())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestFetchReviewsHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient("secret", "place-123")
	client.BaseURL = server.URL

	_, err := client.FetchReviews(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 502")
}

func TestFetchReviewsAPIStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "REQUEST_DENIED", "error_message": "The provided API key is invalid."}`))
	}))
	defer server.Close()

	client := NewClient("secret", "place-123")
	client.BaseURL = server.URL

	_, err := client.FetchReviews(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REQUEST_DENIED")
	assert.Contains(t, err.Error(), "invalid")
}
