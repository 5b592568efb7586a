// Package detail resolves a single record by id for the detail pages
package detail

import (
	"context"
	"time"

	"fleet-dashboard/internal/models"
	"fleet-dashboard/internal/providers"
)

// Status is the outcome of a detail lookup
type Status string

const (
	Loading  Status = "loading"
	NotFound Status = "not_found"
	Found    Status = "found"
)

// Outcome carries the record and its tab data when Status is Found
type Outcome[T, A any] struct {
	Status Status `json:"status"`
	Record *T     `json:"record,omitempty"`
	Aux    *A     `json:"aux,omitempty"`
}

// Assembler looks records up in the same providers the list pages use
type Assembler struct {
	fleet  *providers.Fleet
	aux    Auxiliary
	settle time.Duration
}

// NewAssembler returns an assembler over fleet. When settle is positive a
// lookup against a loading provider waits up to settle for it to finish
// before reporting Loading.
func NewAssembler(fleet *providers.Fleet, aux Auxiliary, settle time.Duration) *Assembler {
	if aux == nil {
		aux = StaticAuxiliary{}
	}
	return &Assembler{fleet: fleet, aux: aux, settle: settle}
}

func (a *Assembler) Truck(ctx context.Context, id string) (Outcome[models.Truck, TruckAux], error) {
	return lookup(ctx, a.settle, a.fleet.Trucks, id,
		func(t models.Truck) string { return t.ID },
		a.aux.Truck)
}

func (a *Assembler) Driver(ctx context.Context, id string) (Outcome[models.Driver, DriverAux], error) {
	return lookup(ctx, a.settle, a.fleet.Drivers, id,
		func(d models.Driver) string { return d.ID },
		a.aux.Driver)
}

// Delivery resolves a delivery. The current position on the tracking tab
// is the live location of the assigned truck when the map feed knows it.
func (a *Assembler) Delivery(ctx context.Context, id string) (Outcome[models.Delivery, DeliveryAux], error) {
	outcome, err := lookup(ctx, a.settle, a.fleet.Deliveries, id,
		func(d models.Delivery) string { return d.ID },
		a.aux.Delivery)
	if err != nil || outcome.Status != Found {
		return outcome, err
	}

	for _, location := range a.fleet.TruckLocations.Snapshot().Items {
		if location.ID == outcome.Record.Truck {
			outcome.Aux.CurrentLocation = location
			break
		}
	}
	return outcome, nil
}

func lookup[T, A any](ctx context.Context, settle time.Duration, p *providers.Provider[T], id string, key func(T) string, aux func(T) A) (Outcome[T, A], error) {
	state := p.Snapshot()
	if state.IsLoading && settle > 0 {
		waitCtx, cancel := context.WithTimeout(ctx, settle)
		// a timeout just means we report Loading
		_ = p.Wait(waitCtx)
		cancel()
		state = p.Snapshot()
	}

	if state.IsLoading {
		return Outcome[T, A]{Status: Loading}, nil
	}
	if state.Error != "" {
		return Outcome[T, A]{}, &providers.FetchFailedError{Message: state.Error}
	}

	for i := range state.Items {
		if key(state.Items[i]) == id {
			record := state.Items[i]
			extra := aux(record)
			return Outcome[T, A]{Status: Found, Record: &record, Aux: &extra}, nil
		}
	}
	return Outcome[T, A]{Status: NotFound}, nil
}
