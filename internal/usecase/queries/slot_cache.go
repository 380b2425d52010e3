package queries

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strconv"
	"sync"
	"time"

	"slot-booking-web/internal/domain/slot"
	"slot-booking-web/internal/pkg/clock"
	"slot-booking-web/internal/pkg/requestid"

	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=slot_cache.go -destination=../../../tests/mock/queries/slot_cache_mock.go -package=queriesmock

// QueryKey identifies one cached slot collection.
type QueryKey string

const (
	KeyAllSlots       QueryKey = "slots"
	KeyAvailableSlots QueryKey = "slots/available"
)

var ErrUnknownQuery = errors.New("unknown query key")

// dependents lists the identities derived from another identity's collection.
// Invalidating a key also invalidates everything derived from it.
var dependents = map[QueryKey][]QueryKey{
	KeyAllSlots: {KeyAvailableSlots},
}

type SlotFetcher interface {
	ListAllSlots(ctx context.Context) ([]slot.Slot, error)
	ListAvailableSlots(ctx context.Context) ([]slot.Slot, error)
}

type SlotQueries interface {
	Query(ctx context.Context, key QueryKey) QueryState
	InvalidateQueries(ctx context.Context, keys ...QueryKey) error
}

// QueryState is a point-in-time snapshot of one identity.
type QueryState struct {
	Key        QueryKey
	Data       []slot.Slot
	HasData    bool
	Err        error
	IsFetching bool
	IsStale    bool
	UpdatedAt  time.Time
}

func (s QueryState) IsLoading() bool { return !s.HasData && s.IsFetching }
func (s QueryState) IsError() bool   { return s.Err != nil }

type entry struct {
	data       []slot.Slot
	hasData    bool
	err        error
	updatedAt  time.Time
	stale      bool
	observed   bool
	gen        uint64
	appliedGen uint64
	waiters    int
}

func (e *entry) snapshot(key QueryKey) QueryState {
	return QueryState{
		Key:        key,
		Data:       slices.Clone(e.data),
		HasData:    e.hasData,
		Err:        e.err,
		IsFetching: e.waiters > 0,
		IsStale:    e.stale,
		UpdatedAt:  e.updatedAt,
	}
}

// SlotCache keeps the last good result per identity. Fetches are shared per
// identity and generation; invalidation bumps the generation so a refetch that
// started earlier can never overwrite a newer result.
type SlotCache struct {
	fetcher SlotFetcher
	clock   clock.Clock
	logger  *slog.Logger

	group singleflight.Group

	mu      sync.Mutex
	entries map[QueryKey]*entry
	stopped bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSlotCache(fetcher SlotFetcher, clk clock.Clock, logger *slog.Logger) *SlotCache {
	ctx, cancel := context.WithCancel(context.Background())
	return &SlotCache{
		fetcher: fetcher,
		clock:   clk,
		logger:  logger,
		entries: make(map[QueryKey]*entry),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Query returns the cached collection for key. An identity without data is
// fetched before returning; an identity with data is returned as-is, and a
// background refetch is started if it is stale.
func (c *SlotCache) Query(ctx context.Context, key QueryKey) QueryState {
	c.mu.Lock()
	e := c.entryLocked(key)
	e.observed = true
	if e.hasData {
		if e.stale && e.waiters == 0 {
			c.refetchLocked(key, e.gen, requestid.From(ctx))
		}
		defer c.mu.Unlock()
		return e.snapshot(key)
	}
	wait := c.joinLocked(key, e.gen, requestid.From(ctx))
	c.mu.Unlock()

	waitErr := wait(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	state := c.entries[key].snapshot(key)
	if !state.HasData && state.Err == nil && waitErr != nil {
		state.Err = waitErr
	}
	return state
}

// InvalidateQueries marks keys and their dependents stale and refetches every
// identity that has been read before. It returns once those refetches settle
// or ctx is done; the refetches keep running either way.
func (c *SlotCache) InvalidateQueries(ctx context.Context, keys ...QueryKey) error {
	var pending []<-chan struct{}
	reqID := requestid.From(ctx)

	c.mu.Lock()
	for _, key := range expand(keys) {
		e := c.entryLocked(key)
		e.gen++
		e.stale = true
		if e.observed {
			pending = append(pending, c.refetchLocked(key, e.gen, reqID))
		}
	}
	c.mu.Unlock()

	for _, done := range pending {
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// Stop cancels outstanding refetches and waits for them to return.
func (c *SlotCache) Stop() {
	c.mu.Lock()
	c.stopped = true
	c.mu.Unlock()

	c.cancel()
	c.wg.Wait()
}

func (c *SlotCache) entryLocked(key QueryKey) *entry {
	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}
	return e
}

func (c *SlotCache) refetchLocked(key QueryKey, gen uint64, reqID string) <-chan struct{} {
	done := make(chan struct{})
	if c.stopped {
		close(done)
		return done
	}

	wait := c.joinLocked(key, gen, reqID)
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer close(done)
		if err := wait(c.ctx); err != nil {
			c.logger.Warn("Background slot refetch failed", "query", string(key), "error", err)
		}
	}()
	return done
}

// joinLocked registers a waiter on the shared fetch for key at gen. A new
// fetch carries the request id of the caller that started it. The returned
// func must be called without holding c.mu.
func (c *SlotCache) joinLocked(key QueryKey, gen uint64, reqID string) func(context.Context) error {
	c.entryLocked(key).waiters++
	flight := string(key) + "#" + strconv.FormatUint(gen, 10)
	ch := c.group.DoChan(flight, func() (any, error) {
		return nil, c.load(key, gen, reqID)
	})

	return func(ctx context.Context) error {
		defer func() {
			c.mu.Lock()
			c.entries[key].waiters--
			c.mu.Unlock()
		}()
		select {
		case res := <-ch:
			return res.Err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// load runs on the cache's own context so a caller giving up does not abort a
// fetch other callers share.
func (c *SlotCache) load(key QueryKey, gen uint64, reqID string) error {
	startTime := c.clock.Now()
	data, err := c.fetch(requestid.With(c.ctx, reqID), key)

	c.mu.Lock()
	defer c.mu.Unlock()
	e := c.entryLocked(key)

	if gen < e.appliedGen {
		// a newer generation already landed
		return err
	}
	if err != nil {
		e.err = err
		return err
	}

	e.data = data
	e.hasData = true
	e.err = nil
	e.updatedAt = c.clock.Now()
	e.appliedGen = gen
	e.stale = gen < e.gen

	c.logger.Debug("Slot query settled",
		"query", string(key),
		"generation", gen,
		"count", len(data),
		"duration", c.clock.Now().Sub(startTime),
	)
	return nil
}

func (c *SlotCache) fetch(ctx context.Context, key QueryKey) ([]slot.Slot, error) {
	switch key {
	case KeyAllSlots:
		return c.fetcher.ListAllSlots(ctx)
	case KeyAvailableSlots:
		return c.fetcher.ListAvailableSlots(ctx)
	default:
		return nil, ErrUnknownQuery
	}
}

func expand(keys []QueryKey) []QueryKey {
	seen := make(map[QueryKey]bool)
	var out []QueryKey
	var visit func(QueryKey)
	visit = func(k QueryKey) {
		if seen[k] {
			return
		}
		seen[k] = true
		out = append(out, k)
		for _, d := range dependents[k] {
			visit(d)
		}
	}
	for _, k := range keys {
		visit(k)
	}
	return out
}
