// Package search is the free-text shortcut into the repair catalog. The
// primary path is a server-side ranked full-text match; when that fails
// the matcher degrades to a plain case-insensitive substring match, which
// is deliberately not fuzzy.
package search

import (
	"log"
	"strings"
	"unicode/utf8"

	"github.com/smartfixwerk/SmartfixWerk/app/models"
	"github.com/smartfixwerk/SmartfixWerk/app/repository"
)

// DefaultLimit bounds every search result page
const DefaultLimit = 10

// MinQueryLength is the cost-control guard: shorter queries never reach
// the catalog store
const MinQueryLength = 2

// Matcher resolves free text to ranked catalog rows
type Matcher struct {
	repo  repository.RepairPriceRepository
	limit int
}

// NewMatcher creates a matcher over the given catalog repository
func NewMatcher(repo repository.RepairPriceRepository) *Matcher {
	return &Matcher{repo: repo, limit: DefaultLimit}
}

// Search returns up to limit ranked candidate rows for the query. Queries
// below the minimum length return empty immediately without a store call.
func (m *Matcher) Search(query string) ([]models.RepairPrice, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinQueryLength {
		return []models.RepairPrice{}, nil
	}

	rows, err := m.repo.SearchRanked(query, m.limit)
	if err == nil {
		return rows, nil
	}
	log.Printf("search: ranked search failed, falling back to substring match: %v", err)

	rows, err = m.repo.SearchSubstring(query, m.limit)
	if err != nil {
		log.Printf("search: substring fallback failed: %v", err)
		return nil, err
	}
	return rows, nil
}
