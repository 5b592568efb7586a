package shell

import (
	"bytes"
	"testing"

	"fleet-dashboard/internal/database"
	"fleet-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseRange(t *testing.T) {
	r, err := ParseRange("")
	require.NoError(t, err)
	assert.Equal(t, RangeWeek, r)

	r, err = ParseRange("Month")
	require.NoError(t, err)
	assert.Equal(t, RangeMonth, r)

	_, err = ParseRange("decade")
	assert.Error(t, err)
}

func TestBuildAnalytics(t *testing.T) {
	a := BuildAnalytics(RangeMonth)
	assert.Equal(t, RangeMonth, a.Range)
	assert.Len(t, a.Cards, 4)
	require.Len(t, a.Charts, 6)

	kinds := map[models.ChartKind]int{}
	for _, c := range a.Charts {
		kinds[c.Kind]++
		for _, ds := range c.Datasets {
			assert.Len(t, ds.Data, len(c.Labels), c.Title)
		}
	}
	assert.Equal(t, map[models.ChartKind]int{models.ChartLine: 3, models.ChartBar: 1, models.ChartDonut: 2}, kinds)
}

func TestBuildOverview(t *testing.T) {
	o := BuildOverview("", database.SeedTruckLocations(), database.SeedDeliveries())

	assert.Equal(t, "Welcome back, Admin", o.Greeting)
	require.Len(t, o.Cards, 4)
	assert.Equal(t, "4/8", o.Cards[0].Value)
	assert.Equal(t, "3", o.Cards[1].Value)
	assert.Equal(t, "75%", o.Cards[2].Value)
	assert.Equal(t, "1,980 mi", o.Cards[3].Value)

	assert.Len(t, o.Trucks, 3)
	assert.Len(t, o.ActiveDeliveries, 3)
	assert.Len(t, o.Map.Markers, 8)
	assert.Len(t, o.Charts, 2)
}

func TestBuildOverviewEmpty(t *testing.T) {
	o := BuildOverview("Dana", nil, nil)
	assert.Equal(t, "Welcome back, Dana", o.Greeting)
	assert.Equal(t, "0/0", o.Cards[0].Value)
	assert.Equal(t, "0%", o.Cards[2].Value)
	assert.Equal(t, "0 mi", o.Cards[3].Value)
	assert.Empty(t, o.Trucks)
}

func TestParseMiles(t *testing.T) {
	assert.Equal(t, 280, parseMiles("280 miles"))
	assert.Equal(t, 1200, parseMiles("1,200 miles"))
	assert.Equal(t, 0, parseMiles("unknown"))
}

func TestExportAnalytics(t *testing.T) {
	data, err := ExportAnalytics(BuildAnalytics(RangeWeek))
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer file.Close()

	sheets := file.GetSheetList()
	require.Len(t, sheets, 7)
	assert.Equal(t, "Summary", sheets[0])
	assert.Contains(t, sheets, "Route Optimization Analysis")

	value, err := file.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	assert.Equal(t, "week", value)

	title, err := file.GetCellValue("Summary", "A4")
	require.NoError(t, err)
	assert.Equal(t, "Delivery Efficiency", title)

	header, err := file.GetCellValue("Delivery Trends", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Completed Deliveries", header)

	first, err := file.GetCellValue("Delivery Trends", "B2")
	require.NoError(t, err)
	assert.Equal(t, "420", first)
}

func TestSheetNameUnique(t *testing.T) {
	used := map[string]struct{}{"Fuel": {}}
	assert.Equal(t, "Fuel-2", sheetName("Fuel", used))
	assert.Equal(t, "a-b", sheetName("a/b", map[string]struct{}{}))
	assert.Len(t, sheetName("This title is far too long for a worksheet tab", map[string]struct{}{}), 31)
}
