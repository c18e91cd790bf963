package search

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartfixwerk/SmartfixWerk/app/models"
)

func newTestLiveMatcher(repo *fakeSearchRepo) *LiveMatcher {
	return NewLiveMatcher(NewMatcher(repo), 40*time.Millisecond)
}

func TestLiveSearchSingleQueryResolves(t *testing.T) {
	repo := &fakeSearchRepo{
		rankedRows: []models.RepairPrice{
			{Manufacturer: "Apple", Model: "iPhone 14", RepairType: "Display exchange"},
		},
	}
	lm := newTestLiveMatcher(repo)

	rows, superseded, err := lm.Search(context.Background(), "visitor-1", "iphone")
	require.NoError(t, err)
	assert.False(t, superseded)
	require.Len(t, rows, 1)
	assert.Equal(t, "iphone", repo.lastQuery)
}

func TestLiveSearchOnlyLastKeystrokeHitsStore(t *testing.T) {
	repo := &fakeSearchRepo{
		rankedRows: []models.RepairPrice{
			{Manufacturer: "Apple", Model: "iPhone 14", RepairType: "Display exchange"},
		},
	}
	lm := newTestLiveMatcher(repo)

	type outcome struct {
		superseded bool
		err        error
	}
	first := make(chan outcome, 1)
	go func() {
		_, superseded, err := lm.Search(context.Background(), "visitor-1", "ip")
		first <- outcome{superseded: superseded, err: err}
	}()

	// Let the first request claim the slot before the next keystroke.
	time.Sleep(10 * time.Millisecond)

	rows, superseded, err := lm.Search(context.Background(), "visitor-1", "iphone")
	require.NoError(t, err)
	assert.False(t, superseded)
	require.Len(t, rows, 1)

	out := <-first
	require.NoError(t, out.err)
	assert.True(t, out.superseded)

	assert.Equal(t, 1, repo.rankedCalls)
	assert.Equal(t, "iphone", repo.lastQuery)
}

func TestLiveSearchForgetCancelsPending(t *testing.T) {
	repo := &fakeSearchRepo{}
	lm := newTestLiveMatcher(repo)

	first := make(chan bool, 1)
	go func() {
		_, superseded, _ := lm.Search(context.Background(), "visitor-1", "iphone")
		first <- superseded
	}()

	time.Sleep(10 * time.Millisecond)
	lm.Forget("visitor-1")

	assert.True(t, <-first)
	assert.Zero(t, repo.rankedCalls)
}

func TestLiveSearchVisitorsDoNotInterfere(t *testing.T) {
	repo := &fakeSearchRepo{
		rankedRows: []models.RepairPrice{
			{Manufacturer: "Samsung", Model: "Galaxy S23", RepairType: "Battery exchange"},
		},
	}
	lm := newTestLiveMatcher(repo)

	_, superseded, err := lm.Search(context.Background(), "visitor-1", "galaxy")
	require.NoError(t, err)
	assert.False(t, superseded)

	_, superseded, err = lm.Search(context.Background(), "visitor-2", "galaxy")
	require.NoError(t, err)
	assert.False(t, superseded)

	assert.Equal(t, 2, repo.rankedCalls)
}

func TestLiveSearchContextCancelled(t *testing.T) {
	repo := &fakeSearchRepo{}
	lm := newTestLiveMatcher(repo)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, superseded, err := lm.Search(ctx, "visitor-1", "iphone")
	assert.True(t, superseded)
	assert.ErrorIs(t, err, context.Canceled)
}
