package models

import "time"

// DeliveryStatus is the lifecycle state of a delivery
type DeliveryStatus string

const (
	DeliveryStatusScheduled DeliveryStatus = "scheduled"
	DeliveryStatusInTransit DeliveryStatus = "inTransit"
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	DeliveryStatusDelayed   DeliveryStatus = "delayed"
	DeliveryStatusCancelled DeliveryStatus = "cancelled"
)

// Valid reports whether s is one of the known delivery statuses
func (s DeliveryStatus) Valid() bool {
	switch s {
	case DeliveryStatusScheduled, DeliveryStatusInTransit, DeliveryStatusDelivered, DeliveryStatusDelayed, DeliveryStatusCancelled:
		return true
	}
	return false
}

// Label is the human readable status shown in badges
func (s DeliveryStatus) Label() string {
	switch s {
	case DeliveryStatusScheduled:
		return "Scheduled"
	case DeliveryStatusInTransit:
		return "In Transit"
	case DeliveryStatusDelivered:
		return "Delivered"
	case DeliveryStatusDelayed:
		return "Delayed"
	case DeliveryStatusCancelled:
		return "Cancelled"
	}
	return string(s)
}

// ScheduledDateLayout is the display format of Delivery.ScheduledDate
const ScheduledDateLayout = "Jan 2, 2006"

type Delivery struct {
	ID               string         `json:"id"`
	OrderNumber      string         `json:"orderNumber"`
	Client           string         `json:"client"`
	Origin           string         `json:"origin"`
	Destination      string         `json:"destination"`
	Status           DeliveryStatus `json:"status"`
	ScheduledDate    string         `json:"scheduledDate"`
	EstimatedArrival string         `json:"estimatedArrival"`
	ActualArrival    string         `json:"actualArrival,omitempty"`
	Distance         string         `json:"distance"`
	Truck            string         `json:"truck"`  // truck id
	Driver           string         `json:"driver"` // driver name
	Cargo            []CargoItem    `json:"cargo,omitempty"`
}

// ScheduledAt parses ScheduledDate. Unparseable dates sort as the zero time.
func (d Delivery) ScheduledAt() time.Time {
	t, err := time.Parse(ScheduledDateLayout, d.ScheduledDate)
	if err != nil {
		return time.Time{}
	}
	return t
}

type Waypoint struct {
	Name   string `json:"name"`
	Status string `json:"status"` // completed, inProgress, pending
	Time   string `json:"time"`
	Notes  string `json:"notes"`
}

type Document struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Date string `json:"date"`
}

// DeliveryContacts holds the addresses and phone numbers on the delivery detail page
type DeliveryContacts struct {
	ClientContact      string `json:"clientContact"`
	OriginAddress      string `json:"originAddress"`
	DestinationAddress string `json:"destinationAddress"`
	ScheduledTime      string `json:"scheduledTime"`
	TruckDetails       string `json:"truckDetails"`
	DriverContact      string `json:"driverContact"`
	Notes              string `json:"notes"`
}
