package providers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fleet-dashboard/internal/logger"
)

// DefaultFetchDelay is the simulated network latency of a fetch
const DefaultFetchDelay = 500 * time.Millisecond

// FetchFailedError is recorded in State.Error when a load fails
type FetchFailedError struct {
	Message string
}

func (e *FetchFailedError) Error() string {
	return e.Message
}

// State is a point-in-time copy of a provider's collection
type State[T any] struct {
	Items     []T    `json:"items"`
	IsLoading bool   `json:"isLoading"`
	Error     string `json:"error,omitempty"`
}

// Loader produces a fresh collection. Returning an error keeps the
// previous collection in place.
type Loader[T any] func(ctx context.Context) ([]T, error)

// Seed wraps a seed function as a Loader that never fails
func Seed[T any](seed func() []T) Loader[T] {
	return func(context.Context) ([]T, error) {
		return seed(), nil
	}
}

// Provider owns one entity collection and its loading lifecycle.
// Every Activate bumps a generation counter; a load that settles under an
// older generation, or after Dispose, is dropped.
type Provider[T any] struct {
	name   string
	loader Loader[T]
	delay  time.Duration
	log    *logger.Logger

	mu         sync.RWMutex
	state      State[T]
	generation uint64
	cancel     context.CancelFunc
	done       chan struct{}
	disposed   bool
}

// New returns an idle provider with an empty collection
func New[T any](name string, loader Loader[T], delay time.Duration, log *logger.Logger) *Provider[T] {
	return &Provider[T]{
		name:   name,
		loader: loader,
		delay:  delay,
		log:    log,
		state:  State[T]{Items: []T{}},
	}
}

// NewWithItems returns a provider that already holds items before the
// first activation settles
func NewWithItems[T any](name string, items []T, loader Loader[T], delay time.Duration, log *logger.Logger) *Provider[T] {
	p := New(name, loader, delay, log)
	p.state.Items = items
	return p
}

// Name identifies the provider in logs
func (p *Provider[T]) Name() string {
	return p.name
}

// Snapshot returns a copy of the current state
func (p *Provider[T]) Snapshot() State[T] {
	p.mu.RLock()
	defer p.mu.RUnlock()

	items := make([]T, len(p.state.Items))
	copy(items, p.state.Items)
	return State[T]{Items: items, IsLoading: p.state.IsLoading, Error: p.state.Error}
}

// Activate starts a load. Any load still in flight is cancelled and its
// result discarded.
func (p *Provider[T]) Activate(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.disposed {
		return
	}
	if p.cancel != nil {
		p.cancel()
	}

	p.generation++
	p.state.IsLoading = true
	p.state.Error = ""

	loadCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	p.cancel = cancel
	p.done = done

	go p.load(loadCtx, p.generation, done)
}

func (p *Provider[T]) load(ctx context.Context, generation uint64, done chan struct{}) {
	defer close(done)

	timer := time.NewTimer(p.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		p.settle(generation, nil, ctx.Err())
		return
	case <-timer.C:
	}

	items, err := p.loader(ctx)
	p.settle(generation, items, err)
}

func (p *Provider[T]) settle(generation uint64, items []T, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.disposed || generation != p.generation {
		return
	}

	p.state.IsLoading = false
	if err != nil {
		fetchErr := &FetchFailedError{Message: fmt.Sprintf("Failed to fetch %s", p.name)}
		p.state.Error = fetchErr.Message
		p.log.WithError(err).WithField("provider", p.name).Error("❌ Fetch failed")
		return
	}

	if items == nil {
		items = []T{}
	}
	p.state.Items = items
	p.log.WithFields(map[string]interface{}{
		"provider": p.name,
		"count":    len(items),
	}).Debug("Fetch complete")
}

// Wait blocks until the current activation settles or ctx ends. It
// returns immediately when the provider was never activated.
func (p *Provider[T]) Wait(ctx context.Context) error {
	p.mu.RLock()
	done := p.done
	p.mu.RUnlock()

	if done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Err returns the last fetch failure as a *FetchFailedError, or nil
func (p *Provider[T]) Err() error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.state.Error == "" {
		return nil
	}
	return &FetchFailedError{Message: p.state.Error}
}

// Dispose cancels any load in flight and waits for it to exit. Further
// activations are ignored.
func (p *Provider[T]) Dispose() {
	p.mu.Lock()
	if p.disposed {
		p.mu.Unlock()
		return
	}
	p.disposed = true
	cancel, done := p.cancel, p.done
	p.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

// update applies fn to the live collection under the write lock
func (p *Provider[T]) update(fn func(items []T)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.disposed {
		return
	}
	fn(p.state.Items)
}
