package availability_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"pass-finder/core/availability"
	"pass-finder/core/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingProvider struct {
	calls atomic.Int32
	delay time.Duration
	err   error
}

func (p *countingProvider) GetUnifiedAvailability(ctx context.Context) ([]availability.Record, error) {
	n := p.calls.Add(1)
	if p.delay > 0 {
		time.Sleep(p.delay)
	}
	if p.err != nil {
		return nil, p.err
	}
	return []availability.Record{{
		Location: registry.Location{ID: "sjpl-AL", Name: "Almaden", System: "SJPL"},
		Availability: map[availability.PassType]availability.Fact{
			availability.PassCAState: availability.NewFact("Almaden", int(n), int(n)),
		},
	}}, nil
}

func TestCache_ServesWithinTTL(t *testing.T) {
	p := &countingProvider{}
	c := availability.NewCache(p, time.Minute, nil)

	first, err := c.GetUnifiedAvailability(context.Background())
	require.NoError(t, err)
	second, err := c.GetUnifiedAvailability(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(1), p.calls.Load())
	assert.Equal(t, first, second)
	assert.False(t, c.BuiltAt().IsZero())
	assert.Equal(t, time.Minute, c.TTL())
}

func TestCache_ReturnsCopies(t *testing.T) {
	c := availability.NewCache(&countingProvider{}, time.Minute, nil)

	first, err := c.GetUnifiedAvailability(context.Background())
	require.NoError(t, err)
	first[0].Availability[availability.PassCAState] = availability.Unavailable("tampered")

	second, err := c.GetUnifiedAvailability(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Almaden", second[0].Availability[availability.PassCAState].BranchName)
}

func TestCache_Expiry(t *testing.T) {
	p := &countingProvider{}
	c := availability.NewCache(p, 30*time.Millisecond, nil)

	_, err := c.GetUnifiedAvailability(context.Background())
	require.NoError(t, err)
	time.Sleep(60 * time.Millisecond)
	records, err := c.GetUnifiedAvailability(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(2), p.calls.Load())
	assert.Equal(t, 2, records[0].Availability[availability.PassCAState].Available)
}

func TestCache_Invalidate(t *testing.T) {
	p := &countingProvider{}
	c := availability.NewCache(p, time.Hour, nil)

	_, err := c.GetUnifiedAvailability(context.Background())
	require.NoError(t, err)

	records, err := c.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), p.calls.Load())
	assert.Equal(t, 2, records[0].Availability[availability.PassCAState].Available)
}

func TestCache_Disabled(t *testing.T) {
	p := &countingProvider{}
	c := availability.NewCache(p, 0, nil)

	for i := 0; i < 3; i++ {
		_, err := c.GetUnifiedAvailability(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, int32(3), p.calls.Load())
}

func TestCache_CollapsesConcurrentMisses(t *testing.T) {
	p := &countingProvider{delay: 50 * time.Millisecond}
	c := availability.NewCache(p, time.Minute, nil)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.GetUnifiedAvailability(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), p.calls.Load())
}

func TestCache_ErrorNotCached(t *testing.T) {
	p := &countingProvider{err: errors.New("boom")}
	c := availability.NewCache(p, time.Minute, nil)

	_, err := c.GetUnifiedAvailability(context.Background())
	assert.Error(t, err)
	_, err = c.GetUnifiedAvailability(context.Background())
	assert.Error(t, err)
	assert.Equal(t, int32(2), p.calls.Load())
}

// gatedProvider blocks its first cycle until release is closed.
type gatedProvider struct {
	countingProvider
	gated   atomic.Bool
	started chan struct{}
	release chan struct{}
}

func (p *gatedProvider) GetUnifiedAvailability(ctx context.Context) ([]availability.Record, error) {
	if p.gated.CompareAndSwap(false, true) {
		close(p.started)
		<-p.release
	}
	return p.countingProvider.GetUnifiedAvailability(ctx)
}

func TestCache_RefreshNotOverwrittenByOlderCycle(t *testing.T) {
	p := &gatedProvider{started: make(chan struct{}), release: make(chan struct{})}
	c := availability.NewCache(p, time.Minute, nil)
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = c.GetUnifiedAvailability(ctx)
	}()
	<-p.started

	// The refresh overtakes the blocked cycle, so it is counted first.
	refreshed, err := c.Refresh(ctx)
	require.NoError(t, err)
	require.Len(t, refreshed, 1)
	assert.Equal(t, 1, refreshed[0].Availability[availability.PassCAState].Available)

	close(p.release)
	<-done

	next, err := c.GetUnifiedAvailability(ctx)
	require.NoError(t, err)
	assert.Equal(t, refreshed, next)
	assert.Equal(t, int32(2), p.calls.Load())
}
