package database

import "fleet-dashboard/internal/models"

// Detail tab data. It is the same for every record of a type; only the
// base record varies with the id.

func SeedMaintenanceHistory() []models.MaintenanceRecord {
	return []models.MaintenanceRecord{
		{Date: "Sep 15, 2025", Type: "Routine", Description: "Oil change and filter replacement", Mileage: 45200, Cost: 350},
		{Date: "Aug 10, 2025", Type: "Inspection", Description: "DOT inspection and certification", Mileage: 42800, Cost: 200},
		{Date: "Jul 25, 2025", Type: "Repair", Description: "Replace worn brake pads", Mileage: 41500, Cost: 800},
		{Date: "Jun 18, 2025", Type: "Routine", Description: "Air filter replacement", Mileage: 39200, Cost: 120},
		{Date: "May 30, 2025", Type: "Repair", Description: "Fix electrical system issue", Mileage: 38100, Cost: 450},
		{Date: "Apr 22, 2025", Type: "Routine", Description: "Full service maintenance", Mileage: 36000, Cost: 1200},
	}
}

func SeedFuelHistory() []models.FuelRecord {
	return []models.FuelRecord{
		{Date: "Sep 28", Gallons: 150, Cost: 600, MPG: 7.5, Location: "Flying J - Chicago, IL"},
		{Date: "Sep 20", Gallons: 140, Cost: 560, MPG: 7.3, Location: "TA Travel Center - Cleveland, OH"},
		{Date: "Sep 12", Gallons: 155, Cost: 620, MPG: 7.2, Location: "Pilot - Indianapolis, IN"},
		{Date: "Sep 04", Gallons: 145, Cost: 580, MPG: 7.0, Location: "Love's - Columbus, OH"},
		{Date: "Aug 27", Gallons: 160, Cost: 640, MPG: 6.9, Location: "Flying J - Detroit, MI"},
		{Date: "Aug 19", Gallons: 150, Cost: 600, MPG: 7.1, Location: "Pilot - Toledo, OH"},
		{Date: "Aug 11", Gallons: 145, Cost: 580, MPG: 6.8, Location: "TA Travel Center - Chicago, IL"},
	}
}

func SeedDriverProfile() models.DriverProfile {
	return models.DriverProfile{
		Address:           "123 Fleet Street, Chicago, IL 60601",
		LicenseExpiration: "Jul 15, 2026",
		JoinDate:          "Mar 10, 2020",
		BirthDate:         "May 22, 1988",
		EmergencyContact:  "Sarah Smith - (312) 555-1234",
		About:             "Experienced truck driver with over 5 years of experience in long-haul logistics. Specializes in cross-country deliveries and has an excellent safety record.",
	}
}

func SeedCertifications() []models.Certification {
	return []models.Certification{
		{Name: "Hazardous Materials", Date: "Oct 2023", Expires: "Oct 2025"},
		{Name: "Tanker Endorsement", Date: "Nov 2022", Expires: "Nov 2027"},
		{Name: "Doubles/Triples", Date: "Feb 2021", Expires: "Feb 2026"},
	}
}

func SeedDriverDeliveries() []models.DriverDelivery {
	return []models.DriverDelivery{
		{ID: "DEL-1092", Date: "Oct 8, 2025", Origin: "Chicago, IL", Destination: "Detroit, MI", Status: models.DeliveryStatusDelivered, OnTime: true},
		{ID: "DEL-1087", Date: "Oct 5, 2025", Origin: "Detroit, MI", Destination: "Indianapolis, IN", Status: models.DeliveryStatusDelivered, OnTime: true},
		{ID: "DEL-1078", Date: "Oct 1, 2025", Origin: "Columbus, OH", Destination: "Chicago, IL", Status: models.DeliveryStatusDelivered, OnTime: false},
		{ID: "DEL-1065", Date: "Sep 28, 2025", Origin: "Chicago, IL", Destination: "Columbus, OH", Status: models.DeliveryStatusDelivered, OnTime: true},
	}
}

func SeedDriverActivity() []models.Activity {
	return []models.Activity{
		{Type: "delivery_start", Description: "Started delivery to Detroit", Time: "Oct 10, 2025 - 8:30 AM"},
		{Type: "fuel_stop", Description: "Fuel stop at Flying J (Toledo)", Time: "Oct 10, 2025 - 1:15 PM"},
		{Type: "check_in", Description: "Checkpoint reached in Toledo", Time: "Oct 10, 2025 - 1:30 PM"},
		{Type: "delay", Description: "Traffic delay on I-75", Time: "Oct 10, 2025 - 3:45 PM"},
	}
}

func SeedPerformanceMetrics() models.PerformanceMetrics {
	return models.PerformanceMetrics{
		OnTimeDelivery:       94,
		FuelEfficiency:       7.2,
		SafetyScore:          98,
		CustomerSatisfaction: 4.7,
		HoursUtilization:     92,
	}
}

func SeedWaypoints() []models.Waypoint {
	return []models.Waypoint{
		{Name: "Chicago Distribution Center", Status: "completed", Time: "8:30 AM", Notes: "Departed on time"},
		{Name: "Gary Weigh Station", Status: "completed", Time: "9:45 AM", Notes: "All compliant"},
		{Name: "Michigan City Rest Stop", Status: "completed", Time: "11:15 AM", Notes: "Driver break - 30 min"},
		{Name: "Kalamazoo Checkpoint", Status: "completed", Time: "1:30 PM", Notes: "Refueling stop"},
		{Name: "Ann Arbor", Status: "inProgress", Time: "4:15 PM", Notes: "Traffic delay reported"},
		{Name: "Detroit Warehouse", Status: "pending", Time: "6:30 PM", Notes: ""},
	}
}

func SeedDocuments() []models.Document {
	return []models.Document{
		{Name: "Bill of Lading", Type: "PDF", Date: "Oct 10, 2025"},
		{Name: "Shipping Manifest", Type: "PDF", Date: "Oct 10, 2025"},
		{Name: "Inspection Report", Type: "PDF", Date: "Oct 10, 2025"},
	}
}

func SeedDeliveryContacts() models.DeliveryContacts {
	return models.DeliveryContacts{
		ClientContact:      "James Wilson - (313) 555-7890",
		OriginAddress:      "123 Logistics Way, Chicago, IL 60290",
		DestinationAddress: "456 Industrial Pkwy, Detroit, MI 48127",
		ScheduledTime:      "8:30 AM",
		TruckDetails:       "Peterbilt 579 - IL-78542",
		DriverContact:      "(312) 555-7890",
		Notes:              "Customer requires delivery confirmation photo. Call ahead 30 minutes before arrival.",
	}
}

func SeedDeliveryPosition() models.TruckLocation {
	return models.TruckLocation{
		ID: "T-101", Name: "Truck T-101", Driver: "John Smith", Status: models.TruckStatusActive,
		Coordinates: models.Coordinates{-83.7483, 42.2814}, Location: "I-94, near Ann Arbor, MI",
		Load: 18, Capacity: 22, LastUpdate: "5 min ago",
	}
}

var (
	monthsAprOct = []string{"Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct"}
	monthsJanSep = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep"}
	weekdays     = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	loadBuckets  = []string{"0-25%", "26-50%", "51-75%", "76-90%", "91-100%"}
)

const (
	colorGreen = "rgb(16, 185, 129)"
	colorBlue  = "rgb(59, 130, 246)"
	colorAmber = "rgb(245, 158, 11)"
	colorRed   = "rgb(239, 68, 68)"
	colorGray  = "rgb(209, 213, 219)"
)

var bucketColors = []string{colorGray, colorBlue, colorGreen, colorAmber, colorRed}

// SeedTruckCharts builds the truck detail charts. Fuel efficiency follows
// the fuel history passed in.
func SeedTruckCharts(fuel []models.FuelRecord) []models.Chart {
	labels := make([]string, len(fuel))
	mpg := make([]float64, len(fuel))
	for i, f := range fuel {
		labels[i] = f.Date
		mpg[i] = f.MPG
	}
	return []models.Chart{
		{Title: "Fuel Efficiency", Kind: models.ChartLine, Labels: labels,
			Datasets: []models.Dataset{{Label: "MPG", Data: mpg, Colors: []string{colorGreen}, Fill: true}}},
		{Title: "Monthly Mileage", Kind: models.ChartBar, Labels: monthsJanSep,
			Datasets: []models.Dataset{{Label: "Miles", Data: []float64{2300, 2450, 2700, 2200, 2600, 2800, 2750, 2900, 2500}, Colors: []string{colorBlue}}}},
		{Title: "Load Utilization", Kind: models.ChartDonut, Labels: loadBuckets,
			Datasets: []models.Dataset{{Data: []float64{5, 15, 35, 30, 15}, Colors: bucketColors}}},
	}
}

func SeedDriverCharts() []models.Chart {
	return []models.Chart{
		{Title: "Delivery Performance", Kind: models.ChartLine, Labels: monthsAprOct,
			Datasets: []models.Dataset{{Label: "On-Time Deliveries (%)", Data: []float64{90, 88, 92, 95, 93, 90, 94}, Colors: []string{colorGreen}, Fill: true}}},
		{Title: "Fuel Efficiency", Kind: models.ChartLine, Labels: monthsAprOct,
			Datasets: []models.Dataset{{Label: "MPG", Data: []float64{7.0, 6.9, 7.1, 7.2, 7.0, 7.3, 7.2}, Colors: []string{colorBlue}, Fill: true}}},
		{Title: "Hours Logged", Kind: models.ChartBar, Labels: weekdays,
			Datasets: []models.Dataset{
				{Label: "Drive Hours", Data: []float64{8, 9, 8.5, 9, 7, 0, 0}, Colors: []string{colorBlue}},
				{Label: "Rest Hours", Data: []float64{10, 9, 9.5, 9, 11, 24, 24}, Colors: []string{colorGreen}},
			}},
	}
}

// SeedDashboardCharts are the overview page's weekly charts
func SeedDashboardCharts() []models.Chart {
	return []models.Chart{
		{Title: "Delivery Performance (%)", Kind: models.ChartLine, Labels: weekdays,
			Datasets: []models.Dataset{
				{Label: "On-Time", Data: []float64{92, 89, 94, 87, 91, 95, 93}, Colors: []string{colorGreen}},
				{Label: "Delayed", Data: []float64{8, 11, 6, 13, 9, 5, 7}, Colors: []string{colorRed}},
			}},
		{Title: "Fuel Consumption", Kind: models.ChartBar, Labels: weekdays,
			Datasets: []models.Dataset{{Label: "Gallons", Data: []float64{350, 410, 380, 420, 390, 300, 320}, Colors: []string{colorBlue}}}},
	}
}

// SeedAnalyticsCards are the analytics page's headline metrics
func SeedAnalyticsCards() []models.StatCard {
	return []models.StatCard{
		{Title: "Delivery Efficiency", Value: "92.4%", Change: 3.8},
		{Title: "Fuel Economy", Value: "7.5 mpg", Change: 2.1},
		{Title: "Maintenance Cost", Value: "$17,500", Change: -5.2},
		{Title: "Avg. Delivery Time", Value: "2.4 days", Change: -8.3},
	}
}

func SeedAnalyticsCharts() []models.Chart {
	return []models.Chart{
		{Title: "Delivery Trends", Kind: models.ChartLine, Labels: monthsJanSep,
			Datasets: []models.Dataset{{Label: "Completed Deliveries", Data: []float64{420, 390, 450, 480, 460, 520, 500, 480, 510}, Colors: []string{colorBlue}, Fill: true}}},
		{Title: "Fuel Efficiency (MPG)", Kind: models.ChartLine, Labels: monthsJanSep,
			Datasets: []models.Dataset{{Label: "MPG Average", Data: []float64{6.8, 6.7, 6.9, 7.1, 7.2, 7.3, 7.4, 7.3, 7.5}, Colors: []string{colorGreen}, Fill: true}}},
		{Title: "Maintenance Costs", Kind: models.ChartBar, Labels: monthsJanSep,
			Datasets: []models.Dataset{{Label: "Maintenance Costs", Data: []float64{18500, 12300, 21000, 14500, 16000, 19200, 15000, 13800, 17500}, Colors: []string{colorAmber}}}},
		{Title: "Delivery Status", Kind: models.ChartDonut, Labels: []string{"On Time", "Delayed", "Cancelled"},
			Datasets: []models.Dataset{{Data: []float64{82, 15, 3}, Colors: []string{colorGreen, colorAmber, colorRed}}}},
		{Title: "Load Distribution", Kind: models.ChartDonut, Labels: loadBuckets,
			Datasets: []models.Dataset{{Data: []float64{5, 15, 35, 30, 15}, Colors: bucketColors}}},
		{Title: "Route Optimization Analysis", Kind: models.ChartLine, Labels: monthsJanSep,
			Datasets: []models.Dataset{
				{Label: "Planned Distance", Data: []float64{12500, 12700, 12600, 12200, 11900, 11700, 11500, 11300, 11100}, Colors: []string{colorBlue}},
				{Label: "Actual Distance", Data: []float64{13200, 13100, 12900, 12500, 12100, 11800, 11600, 11400, 11200}, Colors: []string{colorAmber}},
			}},
	}
}
