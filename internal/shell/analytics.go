package shell

import (
	"fmt"
	"strconv"
	"strings"

	"fleet-dashboard/internal/database"
	"fleet-dashboard/internal/models"
)

// Range is the analytics time window
type Range string

const (
	RangeWeek    Range = "week"
	RangeMonth   Range = "month"
	RangeQuarter Range = "quarter"
	RangeYear    Range = "year"
)

// ParseRange accepts an empty value as the default week
func ParseRange(s string) (Range, error) {
	switch r := Range(strings.ToLower(strings.TrimSpace(s))); r {
	case "":
		return RangeWeek, nil
	case RangeWeek, RangeMonth, RangeQuarter, RangeYear:
		return r, nil
	}
	return "", fmt.Errorf("unknown range %q", s)
}

// Analytics is the analytics page
type Analytics struct {
	Range  Range             `json:"range"`
	Cards  []models.StatCard `json:"cards"`
	Charts []models.Chart    `json:"charts"`
}

// BuildAnalytics returns the analytics series. The series are the same for
// every range; the range is echoed for the page controls.
func BuildAnalytics(r Range) Analytics {
	return Analytics{
		Range:  r,
		Cards:  database.SeedAnalyticsCards(),
		Charts: database.SeedAnalyticsCharts(),
	}
}

// Overview is the dashboard landing page
type Overview struct {
	Greeting         string                 `json:"greeting"`
	Cards            []models.StatCard      `json:"cards"`
	Charts           []models.Chart         `json:"charts"`
	Map              MapView                `json:"map"`
	Trucks           []models.TruckLocation `json:"trucks"`
	ActiveDeliveries []models.Delivery      `json:"activeDeliveries"`
}

const overviewTrucks = 3

// BuildOverview derives the landing page from the live collections. An
// empty name greets the default admin.
func BuildOverview(name string, locations []models.TruckLocation, deliveries []models.Delivery) Overview {
	if name == "" {
		name = "Admin"
	}

	active := 0
	for _, l := range locations {
		if l.Status == models.TruckStatusActive {
			active++
		}
	}

	var open []models.Delivery
	finished, late := 0, 0
	miles := 0
	for _, d := range deliveries {
		switch d.Status {
		case models.DeliveryStatusInTransit, models.DeliveryStatusScheduled:
			open = append(open, d)
		case models.DeliveryStatusDelivered:
			finished++
		case models.DeliveryStatusDelayed:
			finished++
			late++
		}
		miles += parseMiles(d.Distance)
	}

	onTime := 0
	if finished > 0 {
		onTime = (finished - late) * 100 / finished
	}

	return Overview{
		Greeting: "Welcome back, " + name,
		Cards: []models.StatCard{
			{Title: "Active Trucks", Value: fmt.Sprintf("%d/%d", active, len(locations)), Change: 8},
			{Title: "Active Deliveries", Value: strconv.Itoa(len(open)), Change: 12},
			{Title: "On-Time Deliveries", Value: fmt.Sprintf("%d%%", onTime), Change: -3},
			{Title: "Total Distance", Value: formatMiles(miles), Change: 6},
		},
		Charts:           database.SeedDashboardCharts(),
		Map:              NewMapView(locations),
		Trucks:           locations[:min(overviewTrucks, len(locations))],
		ActiveDeliveries: open,
	}
}

// parseMiles reads the leading integer of a distance like "280 miles"
func parseMiles(distance string) int {
	field, _, _ := strings.Cut(strings.TrimSpace(distance), " ")
	n, err := strconv.Atoi(strings.ReplaceAll(field, ",", ""))
	if err != nil {
		return 0
	}
	return n
}

func formatMiles(n int) string {
	digits := strconv.Itoa(n)
	var b strings.Builder
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String() + " mi"
}
