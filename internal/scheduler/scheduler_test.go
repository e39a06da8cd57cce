package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePromotion is one row of the in-memory store below.
type fakePromotion struct {
	start  time.Time
	end    time.Time
	active bool
}

// fakePromotionStore applies the same transition rules as the SQL updates,
// tracking how many rows each pass actually wrote.
type fakePromotionStore struct {
	promotions []*fakePromotion
	failing    bool
	writes     int64
}

func (s *fakePromotionStore) ActivateDue(_ context.Context, now time.Time) (int64, error) {
	if s.failing {
		return 0, errors.New("store unavailable")
	}
	var n int64
	for _, p := range s.promotions {
		if !p.active && !p.start.After(now) && !p.end.Before(now) {
			p.active = true
			n++
		}
	}
	s.writes += n
	return n, nil
}

func (s *fakePromotionStore) DeactivateExpired(_ context.Context, now time.Time) (int64, error) {
	if s.failing {
		return 0, errors.New("store unavailable")
	}
	var n int64
	for _, p := range s.promotions {
		if p.active && p.end.Before(now) {
			p.active = false
			n++
		}
	}
	s.writes += n
	return n, nil
}

func newTestScheduler(store PromotionStore, now time.Time) *Scheduler {
	s := New(store, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.now = func() time.Time { return now }
	return s
}

func TestScheduler_ActivatesPromotionInWindow(t *testing.T) {
	now := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	store := &fakePromotionStore{promotions: []*fakePromotion{
		{start: now.Add(-24 * time.Hour), end: now.Add(24 * time.Hour), active: false},
	}}

	newTestScheduler(store, now).Reconcile(context.Background())

	assert.True(t, store.promotions[0].active)
	assert.Equal(t, int64(1), store.writes)
}

func TestScheduler_DeactivatesElapsedPromotion(t *testing.T) {
	now := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	store := &fakePromotionStore{promotions: []*fakePromotion{
		{start: now.Add(-48 * time.Hour), end: now.Add(-time.Hour), active: true},
	}}

	newTestScheduler(store, now).Reconcile(context.Background())

	assert.False(t, store.promotions[0].active)
	assert.Equal(t, int64(1), store.writes)
}

func TestScheduler_RepeatedTicksAreIdempotent(t *testing.T) {
	now := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	store := &fakePromotionStore{promotions: []*fakePromotion{
		{start: now.Add(-24 * time.Hour), end: now.Add(24 * time.Hour), active: false},
		{start: now.Add(-72 * time.Hour), end: now.Add(-48 * time.Hour), active: true},
		{start: now.Add(48 * time.Hour), end: now.Add(96 * time.Hour), active: false},
	}}
	s := newTestScheduler(store, now)

	s.Reconcile(context.Background())
	require.Equal(t, int64(2), store.writes)
	assert.True(t, store.promotions[0].active)
	assert.False(t, store.promotions[1].active)
	assert.False(t, store.promotions[2].active)

	// Unchanged data: further ticks write nothing.
	s.Reconcile(context.Background())
	s.Reconcile(context.Background())
	assert.Equal(t, int64(2), store.writes)
}

func TestScheduler_StoreErrorIsSkippedNotFatal(t *testing.T) {
	now := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	store := &fakePromotionStore{
		failing: true,
		promotions: []*fakePromotion{
			{start: now.Add(-24 * time.Hour), end: now.Add(24 * time.Hour), active: false},
		},
	}
	s := newTestScheduler(store, now)

	assert.NotPanics(t, func() { s.Reconcile(context.Background()) })
	assert.False(t, store.promotions[0].active)

	// The next tick retries independently once the store recovers.
	store.failing = false
	s.Reconcile(context.Background())
	assert.True(t, store.promotions[0].active)
}

func TestScheduler_StartStop(t *testing.T) {
	now := time.Now()
	store := &fakePromotionStore{promotions: []*fakePromotion{
		{start: now.Add(-time.Hour), end: now.Add(time.Hour), active: false},
	}}
	s := New(store, time.Hour, slog.New(slog.NewTextHandler(io.Discard, nil)))

	s.Start()
	s.Stop()

	// Start runs one pass immediately, before the first interval elapses.
	assert.True(t, store.promotions[0].active)
}
