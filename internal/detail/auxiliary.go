package detail

import (
	"fleet-dashboard/internal/database"
	"fleet-dashboard/internal/models"
)

// TruckAux is the tab data of the truck detail page
type TruckAux struct {
	Maintenance []models.MaintenanceRecord `json:"maintenance"`
	Fuel        []models.FuelRecord        `json:"fuel"`
	Charts      []models.Chart             `json:"charts"`
}

// DriverAux is the tab data of the driver detail page
type DriverAux struct {
	Profile        models.DriverProfile      `json:"profile"`
	Certifications []models.Certification    `json:"certifications"`
	Deliveries     []models.DriverDelivery   `json:"deliveries"`
	Activity       []models.Activity         `json:"activity"`
	Performance    models.PerformanceMetrics `json:"performance"`
	Charts         []models.Chart            `json:"charts"`
}

// DeliveryAux is the tab data of the delivery detail page
type DeliveryAux struct {
	Waypoints       []models.Waypoint       `json:"waypoints"`
	Documents       []models.Document       `json:"documents"`
	Contacts        models.DeliveryContacts `json:"contacts"`
	CurrentLocation models.TruckLocation    `json:"currentLocation"`
}

// Auxiliary supplies detail tab data for a resolved record
type Auxiliary interface {
	Truck(truck models.Truck) TruckAux
	Driver(driver models.Driver) DriverAux
	Delivery(delivery models.Delivery) DeliveryAux
}

// StaticAuxiliary serves the same seed tab data for every record of a type
type StaticAuxiliary struct{}

func (StaticAuxiliary) Truck(models.Truck) TruckAux {
	fuel := database.SeedFuelHistory()
	return TruckAux{
		Maintenance: database.SeedMaintenanceHistory(),
		Fuel:        fuel,
		Charts:      database.SeedTruckCharts(fuel),
	}
}

func (StaticAuxiliary) Driver(models.Driver) DriverAux {
	return DriverAux{
		Profile:        database.SeedDriverProfile(),
		Certifications: database.SeedCertifications(),
		Deliveries:     database.SeedDriverDeliveries(),
		Activity:       database.SeedDriverActivity(),
		Performance:    database.SeedPerformanceMetrics(),
		Charts:         database.SeedDriverCharts(),
	}
}

func (StaticAuxiliary) Delivery(models.Delivery) DeliveryAux {
	return DeliveryAux{
		Waypoints:       database.SeedWaypoints(),
		Documents:       database.SeedDocuments(),
		Contacts:        database.SeedDeliveryContacts(),
		CurrentLocation: database.SeedDeliveryPosition(),
	}
}
