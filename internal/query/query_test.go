package query

import (
	"strings"
	"testing"

	"fleet-dashboard/internal/database"
	"fleet-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func truckIDs(items []models.Truck) []string {
	ids := make([]string, len(items))
	for i, t := range items {
		ids[i] = t.ID
	}
	return ids
}

func deliveryIDs(items []models.Delivery) []string {
	ids := make([]string, len(items))
	for i, d := range items {
		ids[i] = d.ID
	}
	return ids
}

func TestStatusFilterIsExact(t *testing.T) {
	result := Apply(Trucks, database.SeedTrucks(), Params{Status: "active"})

	assert.Equal(t, []string{"T-101", "T-102", "T-104", "T-108"}, truckIDs(result.Items))
	assert.NotContains(t, truckIDs(result.Items), "T-103")
	for _, truck := range result.Items {
		assert.Equal(t, models.TruckStatusActive, truck.Status)
	}
	assert.Equal(t, 8, result.Total)
	assert.Equal(t, 4, result.Count)
	assert.Equal(t, NotEmpty, result.Empty)
}

func TestStatusAllAndEmptyMatchEverything(t *testing.T) {
	for _, status := range []string{"", StatusAll} {
		result := Apply(Drivers, database.SeedDrivers(), Params{Status: status})
		assert.Len(t, result.Items, 8)
	}
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	result := Apply(Drivers, database.SeedDrivers(), Params{Search: "chicago"})

	require.Len(t, result.Items, 1)
	assert.Equal(t, "D-101", result.Items[0].ID)

	for _, q := range []string{"CHICAGO", "Chic"} {
		assert.Len(t, Apply(Drivers, database.SeedDrivers(), Params{Search: q}).Items, 1, q)
	}
}

func TestSearchKeepsWhitespace(t *testing.T) {
	drivers := database.SeedDrivers()

	for _, q := range []string{" dallas", "   "} {
		result := Apply(Drivers, drivers, Params{Search: q})
		assert.Empty(t, result.Items, q)
		assert.Equal(t, NoMatches, result.Empty, q)
	}

	// a space inside a field still matches
	result := Apply(Drivers, drivers, Params{Search: " smith"})
	require.Len(t, result.Items, 1)
	assert.Equal(t, "D-101", result.Items[0].ID)
}

func TestSearchCoversEveryField(t *testing.T) {
	deliveries := database.SeedDeliveries()
	needle := "chicago"
	result := Apply(Deliveries, deliveries, Params{Search: needle})

	assert.ElementsMatch(t, []string{"DEL-1092", "DEL-1085"}, deliveryIDs(result.Items))
	for _, d := range result.Items {
		found := false
		for _, field := range Deliveries.SearchFields {
			if strings.Contains(strings.ToLower(field(d)), needle) {
				found = true
			}
		}
		assert.True(t, found, d.ID)
	}

	byDriver := Apply(Deliveries, deliveries, Params{Search: "lisa"})
	assert.Equal(t, []string{"DEL-1085"}, deliveryIDs(byDriver.Items))
}

func TestSearchAndStatusCombine(t *testing.T) {
	result := Apply(Trucks, database.SeedTrucks(), Params{Search: "seattle", Status: "active"})
	assert.Empty(t, result.Items)
	assert.Equal(t, NoMatches, result.Empty)
	assert.Equal(t, `No trucks matching "seattle" with the selected filters.`, result.Message)
}

func TestEmptyReasons(t *testing.T) {
	none := Apply(Trucks, nil, Params{Search: "anything"})
	assert.Equal(t, NoRecords, none.Empty)
	assert.Equal(t, 0, none.Total)
	assert.NotNil(t, none.Items)

	filtered := Apply(Drivers, database.SeedDrivers(), Params{Status: "suspended"})
	assert.Equal(t, NoMatches, filtered.Empty)
	assert.Equal(t, "No drivers match the selected filters.", filtered.Message)
}

func TestDefaultSorts(t *testing.T) {
	trucks := Apply(Trucks, database.SeedTrucks(), Params{})
	assert.Equal(t, SortState{Field: "name", Direction: Asc}, trucks.Sort)
	assert.Equal(t, []string{"T-101", "T-102", "T-103", "T-104", "T-105", "T-106", "T-107", "T-108"}, truckIDs(trucks.Items))

	deliveries := Apply(Deliveries, database.SeedDeliveries(), Params{})
	assert.Equal(t, SortState{Field: "date", Direction: Desc}, deliveries.Sort)
	assert.Equal(t,
		[]string{"DEL-1091", "DEL-1092", "DEL-1089", "DEL-1088", "DEL-1090", "DEL-1087", "DEL-1086", "DEL-1085"},
		deliveryIDs(deliveries.Items))
}

func TestSortByLoadRatio(t *testing.T) {
	asc := Apply(Trucks, database.SeedTrucks(), Params{Sort: "load", Direction: Asc})
	assert.Equal(t, []string{"T-103", "T-107", "T-105", "T-102", "T-108", "T-101", "T-104", "T-106"}, truckIDs(asc.Items))

	desc := Apply(Trucks, database.SeedTrucks(), Params{Sort: "load", Direction: Desc})
	assert.Equal(t, "T-106", desc.Items[0].ID)
	for i := 1; i < len(desc.Items); i++ {
		assert.GreaterOrEqual(t, desc.Items[i-1].LoadRatio(), desc.Items[i].LoadRatio())
	}
}

func TestSortIsStable(t *testing.T) {
	result := Apply(Trucks, database.SeedTrucks(), Params{Sort: "status", Direction: Asc})
	assert.Equal(t, []string{"T-101", "T-102", "T-104", "T-108", "T-107", "T-105", "T-103", "T-106"}, truckIDs(result.Items))
}

func TestSortByRating(t *testing.T) {
	result := Apply(Drivers, database.SeedDrivers(), Params{Sort: "rating", Direction: Desc})
	for i := 1; i < len(result.Items); i++ {
		assert.GreaterOrEqual(t, result.Items[i-1].Rating, result.Items[i].Rating)
	}
}

func TestUnknownSortFallsBack(t *testing.T) {
	result := Apply(Trucks, database.SeedTrucks(), Params{Sort: "color", Direction: Desc})
	assert.Equal(t, Trucks.DefaultSort, result.Sort)

	noDirection := Apply(Deliveries, database.SeedDeliveries(), Params{Sort: "client"})
	assert.Equal(t, SortState{Field: "client", Direction: Asc}, noDirection.Sort)
	assert.Equal(t, "Amazon Fulfillment", noDirection.Items[0].Client)
}

func TestToggle(t *testing.T) {
	start := Trucks.DefaultSort

	flipped := Trucks.Toggle(start, "name")
	assert.Equal(t, SortState{Field: "name", Direction: Desc}, flipped)
	assert.Equal(t, start, Trucks.Toggle(flipped, "name"))

	assert.Equal(t, SortState{Field: "load", Direction: Asc}, Trucks.Toggle(flipped, "load"))
	assert.Equal(t, start, Trucks.Toggle(start, "color"))

	byDate := Deliveries.DefaultSort
	assert.Equal(t, SortState{Field: "status", Direction: Desc}, Deliveries.Toggle(byDate, "status"))
	assert.Equal(t, SortState{Field: "client", Direction: Asc}, Deliveries.Toggle(byDate, "client"))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	trucks := database.SeedTrucks()
	Apply(Trucks, trucks, Params{Sort: "load", Direction: Desc})
	assert.Equal(t, "T-101", trucks[0].ID)
}

func TestPageIsEchoed(t *testing.T) {
	assert.Equal(t, 1, Apply(Trucks, database.SeedTrucks(), Params{}).Page)
	assert.Equal(t, 3, Apply(Trucks, database.SeedTrucks(), Params{Page: 3}).Page)
}
