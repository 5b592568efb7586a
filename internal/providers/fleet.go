package providers

import (
	"context"
	"time"

	"fleet-dashboard/internal/database"
	"fleet-dashboard/internal/logger"
	"fleet-dashboard/internal/models"
)

// Fleet groups the dashboard's entity providers
type Fleet struct {
	Trucks         *Provider[models.Truck]
	Drivers        *Provider[models.Driver]
	Deliveries     *Provider[models.Delivery]
	TruckLocations *Provider[models.TruckLocation]
}

// NewFleet wires every provider to the seed data. Truck locations start
// populated so the map renders before its first fetch settles.
func NewFleet(delay time.Duration, log *logger.Logger) *Fleet {
	return &Fleet{
		Trucks:     New("trucks", Seed(database.SeedTrucks), delay, log),
		Drivers:    New("drivers", Seed(database.SeedDrivers), delay, log),
		Deliveries: New("deliveries", Seed(database.SeedDeliveries), delay, log),
		TruckLocations: NewWithItems("truck locations", database.SeedTruckLocations(),
			Seed(database.SeedTruckLocations), delay, log),
	}
}

type lifecycle interface {
	Activate(ctx context.Context)
	Wait(ctx context.Context) error
	Dispose()
}

func (f *Fleet) all() []lifecycle {
	return []lifecycle{f.Trucks, f.Drivers, f.Deliveries, f.TruckLocations}
}

// Activate starts a fetch on every provider
func (f *Fleet) Activate(ctx context.Context) {
	for _, p := range f.all() {
		p.Activate(ctx)
	}
}

// Wait blocks until every provider has settled
func (f *Fleet) Wait(ctx context.Context) error {
	for _, p := range f.all() {
		if err := p.Wait(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (f *Fleet) Dispose() {
	for _, p := range f.all() {
		p.Dispose()
	}
}
