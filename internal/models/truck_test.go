package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruckTripJSON(t *testing.T) {
	truck := Truck{
		TruckLocation: TruckLocation{ID: "T-101", Name: "Truck 101", Status: TruckStatusActive, Coordinates: Coordinates{-87.6298, 41.8781}},
		Trip:          InTransit{Origin: "Chicago, IL", Destination: "Detroit, MI", ETA: "2:30 PM", Distance: "283 miles"},
	}

	data, err := json.Marshal(truck)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "T-101", raw["id"])
	assert.Equal(t, map[string]any{
		"kind":        "in_transit",
		"origin":      "Chicago, IL",
		"destination": "Detroit, MI",
		"eta":         "2:30 PM",
		"distance":    "283 miles",
	}, raw["trip"])

	var decoded Truck
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, truck.Trip, decoded.Trip)
	assert.Equal(t, truck.Coordinates, decoded.Coordinates)
}

func TestTruckNilTripEncodesIdle(t *testing.T) {
	data, err := json.Marshal(Truck{TruckLocation: TruckLocation{ID: "T-103"}})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"trip":{"kind":"idle"}`)

	var decoded Truck
	require.NoError(t, json.Unmarshal([]byte(`{"id":"T-103"}`), &decoded))
	assert.Equal(t, Idle{}, decoded.Trip)
}

func TestTruckUnknownTripKind(t *testing.T) {
	var decoded Truck
	err := json.Unmarshal([]byte(`{"id":"T-1","trip":{"kind":"teleporting"}}`), &decoded)
	assert.Error(t, err)
}

func TestLoadRatio(t *testing.T) {
	assert.InDelta(t, 0.5, TruckLocation{Load: 10, Capacity: 20}.LoadRatio(), 1e-9)
	assert.Zero(t, TruckLocation{Load: 10}.LoadRatio())
}

func TestStatusValid(t *testing.T) {
	assert.True(t, TruckStatusMaintenance.Valid())
	assert.False(t, TruckStatus("parked").Valid())
	assert.True(t, DriverStatusOnLeave.Valid())
	assert.True(t, DeliveryStatusInTransit.Valid())
	assert.False(t, DeliveryStatus("lost").Valid())
}
