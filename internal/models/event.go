package models

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const EventTypeLocationUpdated EventType = "location.updated"

// Event is the envelope of every published event
type Event struct {
	ID        uuid.UUID   `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

// LocationUpdatedEvent is the payload of a location.updated event
type LocationUpdatedEvent struct {
	TruckID    string      `json:"truck_id"`
	Status     TruckStatus `json:"status"`
	Lon        float64     `json:"lon"`
	Lat        float64     `json:"lat"`
	LastUpdate string      `json:"last_update"`
}
