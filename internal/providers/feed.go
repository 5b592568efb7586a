package providers

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"fleet-dashboard/internal/logger"
	"fleet-dashboard/internal/models"
)

const (
	// DefaultLocationTick is the interval between jitter passes
	DefaultLocationTick = 10 * time.Second

	moveThreshold = 0.7
	jitterSpan    = 0.01
	justNow       = "Just now"
)

// Rand is the randomness source of the feed
type Rand interface {
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// Listener is told about every location a tick changed
type Listener interface {
	LocationUpdated(ctx context.Context, location models.TruckLocation)
}

// ListenerFunc adapts a function to Listener
type ListenerFunc func(ctx context.Context, location models.TruckLocation)

func (f ListenerFunc) LocationUpdated(ctx context.Context, location models.TruckLocation) {
	f(ctx, location)
}

// LocationFeed nudges active trucks on a timer to simulate live GPS
type LocationFeed struct {
	provider *Provider[models.TruckLocation]
	interval time.Duration
	log      *logger.Logger

	tickMu sync.Mutex
	rand   Rand

	listenersMu sync.RWMutex
	listeners   []Listener
}

// NewLocationFeed returns a feed over provider. A nil rnd uses the
// process-wide source.
func NewLocationFeed(provider *Provider[models.TruckLocation], interval time.Duration, rnd Rand, log *logger.Logger) *LocationFeed {
	if rnd == nil {
		rnd = globalRand{}
	}
	if interval <= 0 {
		interval = DefaultLocationTick
	}
	return &LocationFeed{
		provider: provider,
		interval: interval,
		rand:     rnd,
		log:      log,
	}
}

// Subscribe registers l for every subsequent tick
func (f *LocationFeed) Subscribe(l Listener) {
	f.listenersMu.Lock()
	defer f.listenersMu.Unlock()
	f.listeners = append(f.listeners, l)
}

// Tick runs one jitter pass and returns the records it moved. Each active
// truck moves with probability 0.3 by up to half of jitterSpan on each
// axis. Other statuses never move.
func (f *LocationFeed) Tick(ctx context.Context) []models.TruckLocation {
	f.tickMu.Lock()
	var changed []models.TruckLocation
	f.provider.update(func(items []models.TruckLocation) {
		for i := range items {
			if items[i].Status != models.TruckStatusActive || f.rand.Float64() <= moveThreshold {
				continue
			}
			items[i].Coordinates = models.Coordinates{
				items[i].Coordinates.Lon() + (f.rand.Float64()-0.5)*jitterSpan,
				items[i].Coordinates.Lat() + (f.rand.Float64()-0.5)*jitterSpan,
			}
			items[i].LastUpdate = justNow
			changed = append(changed, items[i])
		}
	})
	f.tickMu.Unlock()

	if len(changed) == 0 {
		return nil
	}

	f.listenersMu.RLock()
	listeners := append([]Listener(nil), f.listeners...)
	f.listenersMu.RUnlock()

	for _, location := range changed {
		for _, l := range listeners {
			l.LocationUpdated(ctx, location)
		}
	}
	f.log.WithField("moved", len(changed)).Debug("📍 Location tick")
	return changed
}

// Start ticks on a background goroutine until ctx ends or the returned
// stop is called. stop is idempotent and returns only after the goroutine
// has exited, so no tick runs after it.
func (f *LocationFeed) Start(ctx context.Context) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		ticker := time.NewTicker(f.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if ctx.Err() != nil {
					return
				}
				f.Tick(ctx)
			}
		}
	}()

	f.log.WithField("interval", f.interval.String()).Info("📡 Location feed started")

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			<-done
			f.log.Info("📡 Location feed stopped")
		})
	}
}
