package googlereviews

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/smartfixwerk/SmartfixWerk/app/models"
	"github.com/smartfixwerk/SmartfixWerk/app/repository"
)

// Trigger sources for a sync run
const (
	TriggeredManual    = "manual"
	TriggeredScheduled = "scheduled"
)

// Fetcher is the slice of the Places client the sync service needs
type Fetcher interface {
	FetchReviews(ctx context.Context) ([]Review, error)
}

// Result summarizes one sync run
type Result struct {
	TotalFetched        int  `json:"total_fetched"`
	NewCount            int  `json:"new_count"`
	AlreadyPresentCount int  `json:"already_present_count"`
	Skipped             bool `json:"skipped"`
}

// SyncService merges the external reviews feed into local storage without
// creating duplicates
type SyncService struct {
	repo     repository.ReviewRepository
	fetcher  Fetcher
	placeID  string
	autoSync bool
	now      func() time.Time
}

// NewSyncService creates a sync service from an injected repository and
// feed client. placeID and autoSync come from the shop settings.
func NewSyncService(repo repository.ReviewRepository, fetcher Fetcher, placeID string, autoSync bool) *SyncService {
	return &SyncService{
		repo:     repo,
		fetcher:  fetcher,
		placeID:  placeID,
		autoSync: autoSync,
		now:      time.Now,
	}
}

// Sync fetches the current feed and inserts every review not yet present.
// Admin-set visibility and featured flags on existing rows are never
// touched. Every run that actually executes appends one audit log entry;
// a scheduled run with auto-sync disabled is a reported no-op that never
// ran and leaves no log entry.
func (s *SyncService) Sync(ctx context.Context, triggeredBy string) (*Result, error) {
	if triggeredBy == TriggeredScheduled && !s.autoSync {
		return &Result{Skipped: true}, nil
	}

	reviews, err := s.fetcher.FetchReviews(ctx)
	if err != nil {
		s.appendLog(0, 0, "error", err.Error(), triggeredBy)
		return nil, err
	}

	result := &Result{TotalFetched: len(reviews)}
	for _, review := range reviews {
		if review.AuthorName == "" || review.Rating < 1 || review.Rating > 5 {
			// Malformed feed entry; skip it without aborting the run.
			log.Printf("googlereviews: skipping malformed review from feed (author=%q rating=%d)", review.AuthorName, review.Rating)
			continue
		}

		externalID := fmt.Sprintf("%s_%d", s.placeID, review.Time)
		exists, err := s.repo.ExistsByExternalID(externalID)
		if err != nil {
			log.Printf("googlereviews: dedup check failed for %s: %v", externalID, err)
			continue
		}
		if exists {
			result.AlreadyPresentCount++
			continue
		}

		row := &models.GoogleReview{
			ExternalReviewID:        externalID,
			AuthorName:              review.AuthorName,
			AuthorPhotoURL:          review.ProfilePhotoURL,
			Rating:                  review.Rating,
			Text:                    review.Text,
			ReviewTime:              time.Unix(review.Time, 0),
			RelativeTimeDescription: review.RelativeTimeDescription,
			IsVisible:               true,
			// Derived once from the inbound rating, never re-derived.
			IsFeatured: review.Rating == 5,
		}
		if err := s.repo.Create(row); err != nil {
			log.Printf("googlereviews: failed to insert review %s: %v", externalID, err)
			continue
		}
		result.NewCount++
	}

	s.appendLog(result.TotalFetched, result.NewCount, "success", "", triggeredBy)
	return result, nil
}

// AddManual inserts a hand-typed review. It goes through the same dedup
// scheme as synced rows, with a manual-prefixed key so manual and synced
// reviews can never collide.
func (s *SyncService) AddManual(review *models.GoogleReview) error {
	if review.ReviewTime.IsZero() {
		review.ReviewTime = s.now()
	}
	review.ExternalReviewID = fmt.Sprintf("manual_%d_%s", review.ReviewTime.Unix(), normalizeAuthor(review.AuthorName))

	exists, err := s.repo.ExistsByExternalID(review.ExternalReviewID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("review %s already exists", review.ExternalReviewID)
	}

	return s.repo.Create(review)
}

var authorCleanPattern = regexp.MustCompile(`[^a-z0-9]+`)

func normalizeAuthor(name string) string {
	normalized := authorCleanPattern.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(normalized, "-")
}

func (s *SyncService) appendLog(totalFetched, newCount int, status, errorMessage, triggeredBy string) {
	entry := &models.ReviewSyncLog{
		TotalFetched: totalFetched,
		NewCount:     newCount,
		Status:       status,
		ErrorMessage: errorMessage,
		TriggeredBy:  triggeredBy,
	}
	if err := s.repo.AppendSyncLog(entry); err != nil {
		log.Printf("googlereviews: failed to append sync log: %v", err)
	}
}
