package query

import "fleet-dashboard/internal/models"

// Trucks is the trucks list page
var Trucks = Spec[models.Truck]{
	Noun: "trucks",
	SearchFields: []func(models.Truck) string{
		func(t models.Truck) string { return t.Name },
		func(t models.Truck) string { return t.Driver },
		func(t models.Truck) string { return t.Location },
	},
	Status: func(t models.Truck) string { return string(t.Status) },
	Sorts: map[string]SortField[models.Truck]{
		"name":   {Text: func(t models.Truck) string { return t.Name }, Default: Asc},
		"status": {Text: func(t models.Truck) string { return string(t.Status) }, Default: Asc},
		"load":   {Number: func(t models.Truck) float64 { return t.LoadRatio() }, Default: Asc},
	},
	DefaultSort: SortState{Field: "name", Direction: Asc},
}

// Drivers is the drivers list page
var Drivers = Spec[models.Driver]{
	Noun: "drivers",
	SearchFields: []func(models.Driver) string{
		func(d models.Driver) string { return d.Name },
		func(d models.Driver) string { return d.Location },
		func(d models.Driver) string { return d.Email },
	},
	Status: func(d models.Driver) string { return string(d.Status) },
	Sorts: map[string]SortField[models.Driver]{
		"name":   {Text: func(d models.Driver) string { return d.Name }, Default: Asc},
		"status": {Text: func(d models.Driver) string { return string(d.Status) }, Default: Asc},
		"rating": {Number: func(d models.Driver) float64 { return d.Rating }, Default: Asc},
	},
	DefaultSort: SortState{Field: "name", Direction: Asc},
}

// Deliveries is the deliveries list page. Dates sort chronologically on
// the parsed scheduled date.
var Deliveries = Spec[models.Delivery]{
	Noun: "deliveries",
	SearchFields: []func(models.Delivery) string{
		func(d models.Delivery) string { return d.OrderNumber },
		func(d models.Delivery) string { return d.Client },
		func(d models.Delivery) string { return d.Origin },
		func(d models.Delivery) string { return d.Destination },
		func(d models.Delivery) string { return d.Driver },
	},
	Status: func(d models.Delivery) string { return string(d.Status) },
	Sorts: map[string]SortField[models.Delivery]{
		"date":   {Number: func(d models.Delivery) float64 { return float64(d.ScheduledAt().Unix()) }, Default: Desc},
		"status": {Text: func(d models.Delivery) string { return string(d.Status) }, Default: Desc},
		"client": {Text: func(d models.Delivery) string { return d.Client }, Default: Asc},
	},
	DefaultSort: SortState{Field: "date", Direction: Desc},
}
