package models

import (
	"encoding/json"
	"fmt"
)

// TruckStatus is the operational state of a truck
type TruckStatus string

const (
	TruckStatusActive      TruckStatus = "active"
	TruckStatusInactive    TruckStatus = "inactive"
	TruckStatusMaintenance TruckStatus = "maintenance"
	TruckStatusLoading     TruckStatus = "loading"
	TruckStatusUnloading   TruckStatus = "unloading"
)

// Valid reports whether s is one of the known truck statuses
func (s TruckStatus) Valid() bool {
	switch s {
	case TruckStatusActive, TruckStatusInactive, TruckStatusMaintenance, TruckStatusLoading, TruckStatusUnloading:
		return true
	}
	return false
}

// HealthStatus is the mechanical health grade shown on the truck detail page
type HealthStatus string

const (
	HealthExcellent HealthStatus = "Excellent"
	HealthGood      HealthStatus = "Good"
	HealthFair      HealthStatus = "Fair"
	HealthPoor      HealthStatus = "Poor"
)

// Coordinates is a [longitude, latitude] pair in degrees
type Coordinates [2]float64

func (c Coordinates) Lon() float64 { return c[0] }
func (c Coordinates) Lat() float64 { return c[1] }

// CargoItem is one line of a load manifest
type CargoItem struct {
	Description string  `json:"description"`
	Weight      float64 `json:"weight"`             // tons
	Packages    int     `json:"packages,omitempty"` // only known on delivery manifests
}

// TruckLocation is the map projection of a truck
type TruckLocation struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Driver      string      `json:"driver"` // driver name, not id
	Status      TruckStatus `json:"status"`
	Coordinates Coordinates `json:"coordinates"`
	Location    string      `json:"location"`
	Load        float64     `json:"load"`
	Capacity    float64     `json:"capacity"`
	LastUpdate  string      `json:"lastUpdate"`
}

// LoadRatio returns load/capacity, or 0 for a truck with no capacity
func (l TruckLocation) LoadRatio() float64 {
	if l.Capacity <= 0 {
		return 0
	}
	return l.Load / l.Capacity
}

// Truck is the full truck record used by list and detail pages
type Truck struct {
	TruckLocation

	License      string       `json:"license"`
	Make         string       `json:"make"`
	Model        string       `json:"model"`
	Year         int          `json:"year"`
	Engine       string       `json:"engine"`
	Mileage      int          `json:"mileage"`
	FuelLevel    int          `json:"fuelLevel"` // percent
	LastService  string       `json:"lastService"`
	NextService  string       `json:"nextService"`
	HealthStatus HealthStatus `json:"healthStatus"`
	Trip         Trip         `json:"-"`
	Cargo        []CargoItem  `json:"cargo,omitempty"`
}

// ToLocation returns the map projection of the truck
func (t Truck) ToLocation() TruckLocation {
	return t.TruckLocation
}

// MarshalJSON flattens the embedded location and encodes the trip variant
func (t Truck) MarshalJSON() ([]byte, error) {
	type alias Truck
	trip := t.Trip
	if trip == nil {
		trip = Idle{}
	}
	return json.Marshal(struct {
		alias
		Trip tripJSON `json:"trip"`
	}{
		alias: alias(t),
		Trip:  encodeTrip(trip),
	})
}

// UnmarshalJSON is the inverse of MarshalJSON
func (t *Truck) UnmarshalJSON(data []byte) error {
	type alias Truck
	aux := struct {
		*alias
		Trip *tripJSON `json:"trip"`
	}{alias: (*alias)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Trip == nil {
		t.Trip = Idle{}
		return nil
	}
	trip, err := decodeTrip(*aux.Trip)
	if err != nil {
		return err
	}
	t.Trip = trip
	return nil
}

// Trip is the route state of a truck: either InTransit or Idle
type Trip interface {
	Kind() string
	isTrip()
}

// InTransit is a truck running a route
type InTransit struct {
	Origin      string
	Destination string
	ETA         string
	Distance    string
}

// Idle is a truck with no route assigned
type Idle struct{}

func (InTransit) Kind() string { return "in_transit" }
func (Idle) Kind() string      { return "idle" }
func (InTransit) isTrip()      {}
func (Idle) isTrip()           {}

type tripJSON struct {
	Kind        string `json:"kind"`
	Origin      string `json:"origin,omitempty"`
	Destination string `json:"destination,omitempty"`
	ETA         string `json:"eta,omitempty"`
	Distance    string `json:"distance,omitempty"`
}

func encodeTrip(trip Trip) tripJSON {
	switch v := trip.(type) {
	case InTransit:
		return tripJSON{Kind: v.Kind(), Origin: v.Origin, Destination: v.Destination, ETA: v.ETA, Distance: v.Distance}
	case Idle:
		return tripJSON{Kind: v.Kind()}
	default:
		panic(fmt.Sprintf("models: unknown trip variant %T", trip))
	}
}

func decodeTrip(raw tripJSON) (Trip, error) {
	switch raw.Kind {
	case "in_transit":
		return InTransit{Origin: raw.Origin, Destination: raw.Destination, ETA: raw.ETA, Distance: raw.Distance}, nil
	case "idle", "":
		return Idle{}, nil
	default:
		return nil, fmt.Errorf("unknown trip kind %q", raw.Kind)
	}
}

// MaintenanceRecord is one service visit in a truck's history
type MaintenanceRecord struct {
	Date        string  `json:"date"`
	Type        string  `json:"type"` // Routine, Repair or Inspection
	Description string  `json:"description"`
	Mileage     int     `json:"mileage"`
	Cost        float64 `json:"cost"`
}

// FuelRecord is one fuel stop in a truck's history
type FuelRecord struct {
	Date     string  `json:"date"`
	Gallons  float64 `json:"gallons"`
	Cost     float64 `json:"cost"`
	MPG      float64 `json:"mpg"`
	Location string  `json:"location"`
}
