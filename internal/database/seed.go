package database

import "fleet-dashboard/internal/models"

// SeedTrucks returns the fleet's truck records. Each call returns a fresh
// copy so callers may mutate it freely.
func SeedTrucks() []models.Truck {
	return []models.Truck{
		{
			TruckLocation: models.TruckLocation{
				ID: "T-101", Name: "Truck T-101", Driver: "John Smith", Status: models.TruckStatusActive,
				Coordinates: models.Coordinates{-87.6298, 41.8781}, Location: "I-94, near Chicago, IL",
				Load: 18, Capacity: 22, LastUpdate: "5 min ago",
			},
			License: "IL-78542", Make: "Peterbilt", Model: "579", Year: 2023, Engine: "Cummins X15",
			Mileage: 45628, FuelLevel: 72, LastService: "Sep 15, 2025", NextService: "Oct 15, 2025",
			HealthStatus: models.HealthGood,
			Trip:         models.InTransit{Origin: "Chicago, IL", Destination: "Detroit, MI", ETA: "6:30 PM"},
			Cargo: []models.CargoItem{
				{Description: "Electronics", Weight: 8},
				{Description: "Furniture", Weight: 10},
			},
		},
		{
			TruckLocation: models.TruckLocation{
				ID: "T-102", Name: "Truck T-102", Driver: "Maria Rodriguez", Status: models.TruckStatusActive,
				Coordinates: models.Coordinates{-96.7970, 32.7767}, Location: "I-45, south of Dallas, TX",
				Load: 15, Capacity: 22, LastUpdate: "2 min ago",
			},
			License: "TX-45321", Make: "Kenworth", Model: "T680", Year: 2022, Engine: "PACCAR MX-13",
			Mileage: 62145, FuelLevel: 45, LastService: "Aug 22, 2025", NextService: "Oct 22, 2025",
			HealthStatus: models.HealthGood,
			Trip:         models.InTransit{Origin: "Dallas, TX", Destination: "Houston, TX", ETA: "2:15 PM"},
			Cargo:        []models.CargoItem{{Description: "Auto Parts", Weight: 15}},
		},
		{
			TruckLocation: models.TruckLocation{
				ID: "T-103", Name: "Truck T-103", Driver: "Robert Johnson", Status: models.TruckStatusMaintenance,
				Coordinates: models.Coordinates{-122.3321, 47.6062}, Location: "Service Center, Seattle, WA",
				Load: 0, Capacity: 22, LastUpdate: "1 hour ago",
			},
			License: "WA-12843", Make: "Freightliner", Model: "Cascadia", Year: 2021, Engine: "Detroit DD15",
			Mileage: 78234, FuelLevel: 25, LastService: "Jul 10, 2025", NextService: "Oct 12, 2025",
			HealthStatus: models.HealthPoor,
			Trip:         models.Idle{},
		},
		{
			TruckLocation: models.TruckLocation{
				ID: "T-104", Name: "Truck T-104", Driver: "Sarah Wilson", Status: models.TruckStatusActive,
				Coordinates: models.Coordinates{-74.0060, 40.7128}, Location: "I-95, near Newark, NJ",
				Load: 20, Capacity: 22, LastUpdate: "8 min ago",
			},
			License: "NY-98765", Make: "Volvo", Model: "VNL 860", Year: 2023, Engine: "Volvo D13",
			Mileage: 31587, FuelLevel: 80, LastService: "Sep 28, 2025", NextService: "Oct 28, 2025",
			HealthStatus: models.HealthExcellent,
			Trip:         models.InTransit{Origin: "New York, NY", Destination: "Boston, MA", ETA: "5:45 PM"},
			Cargo: []models.CargoItem{
				{Description: "Packaged Food", Weight: 12},
				{Description: "Beverages", Weight: 8},
			},
		},
		{
			TruckLocation: models.TruckLocation{
				ID: "T-105", Name: "Truck T-105", Driver: "Michael Brown", Status: models.TruckStatusLoading,
				Coordinates: models.Coordinates{-84.3880, 33.7490}, Location: "Distribution Center, Atlanta, GA",
				Load: 10, Capacity: 22, LastUpdate: "15 min ago",
			},
			License: "GA-34521", Make: "Mack", Model: "Anthem", Year: 2022, Engine: "Mack MP8",
			Mileage: 52478, FuelLevel: 65, LastService: "Aug 15, 2025", NextService: "Oct 15, 2025",
			HealthStatus: models.HealthGood,
			Trip:         models.Idle{},
		},
		{
			TruckLocation: models.TruckLocation{
				ID: "T-106", Name: "Truck T-106", Driver: "Emily Davis", Status: models.TruckStatusUnloading,
				Coordinates: models.Coordinates{-118.2437, 34.0522}, Location: "Customer Site, Los Angeles, CA",
				Load: 22, Capacity: 22, LastUpdate: "10 min ago",
			},
			License: "CA-87654", Make: "International", Model: "LT Series", Year: 2021, Engine: "Cummins X15",
			Mileage: 67821, FuelLevel: 30, LastService: "Sep 10, 2025", NextService: "Oct 10, 2025",
			HealthStatus: models.HealthFair,
			Trip:         models.Idle{},
			Cargo:        []models.CargoItem{{Description: "Building Materials", Weight: 22}},
		},
		{
			TruckLocation: models.TruckLocation{
				ID: "T-107", Name: "Truck T-107", Driver: "David Garcia", Status: models.TruckStatusInactive,
				Coordinates: models.Coordinates{-104.9903, 39.7392}, Location: "Depot, Denver, CO",
				Load: 0, Capacity: 22, LastUpdate: "3 hours ago",
			},
			License: "CO-23456", Make: "Western Star", Model: "5700XE", Year: 2020, Engine: "Detroit DD15",
			Mileage: 89456, FuelLevel: 15, LastService: "Jul 05, 2025", NextService: "Oct 05, 2025",
			HealthStatus: models.HealthFair,
			Trip:         models.Idle{},
		},
		{
			TruckLocation: models.TruckLocation{
				ID: "T-108", Name: "Truck T-108", Driver: "Lisa Martinez", Status: models.TruckStatusActive,
				Coordinates: models.Coordinates{-90.1994, 38.6270}, Location: "I-70, west of St. Louis, MO",
				Load: 16, Capacity: 22, LastUpdate: "7 min ago",
			},
			License: "MO-65432", Make: "Peterbilt", Model: "389", Year: 2023, Engine: "PACCAR MX-13",
			Mileage: 28745, FuelLevel: 85, LastService: "Sep 25, 2025", NextService: "Oct 25, 2025",
			HealthStatus: models.HealthExcellent,
			Trip:         models.InTransit{Origin: "Chicago, IL", Destination: "Kansas City, MO", ETA: "8:15 PM"},
			Cargo:        []models.CargoItem{{Description: "Machinery Parts", Weight: 16}},
		},
	}
}

// SeedTruckLocations returns the map projection of SeedTrucks
func SeedTruckLocations() []models.TruckLocation {
	trucks := SeedTrucks()
	locations := make([]models.TruckLocation, 0, len(trucks))
	for _, truck := range trucks {
		locations = append(locations, truck.ToLocation())
	}
	return locations
}

// SeedDrivers returns the driver roster
func SeedDrivers() []models.Driver {
	return []models.Driver{
		{ID: "D-101", Name: "John Smith", Email: "john.smith@RoadRunner.com", Phone: "(312) 555-7890", Location: "Chicago, IL", Status: models.DriverStatusActive, AssignedTruck: "T-101", Experience: "5 years", LicenseCDL: "Class A - IL", Rating: 4.8, LastActive: "5 min ago"},
		{ID: "D-102", Name: "Maria Rodriguez", Email: "maria.rodriguez@RoadRunner.com", Phone: "(214) 555-1234", Location: "Dallas, TX", Status: models.DriverStatusActive, AssignedTruck: "T-102", Experience: "7 years", LicenseCDL: "Class A - TX", Rating: 4.9, LastActive: "2 min ago"},
		{ID: "D-103", Name: "Robert Johnson", Email: "robert.johnson@RoadRunner.com", Phone: "(206) 555-9876", Location: "Seattle, WA", Status: models.DriverStatusInactive, AssignedTruck: "T-103", Experience: "3 years", LicenseCDL: "Class A - WA", Rating: 4.5, LastActive: "1 hour ago"},
		{ID: "D-104", Name: "Sarah Wilson", Email: "sarah.wilson@RoadRunner.com", Phone: "(917) 555-4321", Location: "New York, NY", Status: models.DriverStatusActive, AssignedTruck: "T-104", Experience: "6 years", LicenseCDL: "Class A - NY", Rating: 4.7, LastActive: "8 min ago"},
		{ID: "D-105", Name: "Michael Brown", Email: "michael.brown@RoadRunner.com", Phone: "(404) 555-5678", Location: "Atlanta, GA", Status: models.DriverStatusActive, AssignedTruck: "T-105", Experience: "4 years", LicenseCDL: "Class A - GA", Rating: 4.6, LastActive: "15 min ago"},
		{ID: "D-106", Name: "Emily Davis", Email: "emily.davis@RoadRunner.com", Phone: "(323) 555-8765", Location: "Los Angeles, CA", Status: models.DriverStatusActive, AssignedTruck: "T-106", Experience: "8 years", LicenseCDL: "Class A - CA", Rating: 4.9, LastActive: "10 min ago"},
		{ID: "D-107", Name: "David Garcia", Email: "david.garcia@RoadRunner.com", Phone: "(720) 555-2345", Location: "Denver, CO", Status: models.DriverStatusOnLeave, AssignedTruck: "T-107", Experience: "5 years", LicenseCDL: "Class A - CO", Rating: 4.4, LastActive: "3 hours ago"},
		{ID: "D-108", Name: "Lisa Martinez", Email: "lisa.martinez@RoadRunner.com", Phone: "(314) 555-6543", Location: "St. Louis, MO", Status: models.DriverStatusActive, AssignedTruck: "T-108", Experience: "4 years", LicenseCDL: "Class A - MO", Rating: 4.7, LastActive: "7 min ago"},
	}
}

// SeedDeliveries returns the delivery board
func SeedDeliveries() []models.Delivery {
	return []models.Delivery{
		{ID: "DEL-1092", OrderNumber: "1092", Client: "Amazon Fulfillment", Origin: "Chicago, IL", Destination: "Detroit, MI", Status: models.DeliveryStatusInTransit, ScheduledDate: "Oct 10, 2025", EstimatedArrival: "6:30 PM", Distance: "280 miles", Truck: "T-101", Driver: "John Smith",
			Cargo: []models.CargoItem{{Description: "Electronics", Weight: 8, Packages: 32}, {Description: "Furniture", Weight: 10, Packages: 15}}},
		{ID: "DEL-1091", OrderNumber: "1091", Client: "Walmart Distribution", Origin: "Dallas, TX", Destination: "Houston, TX", Status: models.DeliveryStatusScheduled, ScheduledDate: "Oct 11, 2025", EstimatedArrival: "2:15 PM", Distance: "240 miles", Truck: "T-102", Driver: "Maria Rodriguez",
			Cargo: []models.CargoItem{{Description: "Auto Parts", Weight: 15, Packages: 40}}},
		{ID: "DEL-1090", OrderNumber: "1090", Client: "Home Depot Supply", Origin: "Seattle, WA", Destination: "Portland, OR", Status: models.DeliveryStatusDelivered, ScheduledDate: "Oct 9, 2025", EstimatedArrival: "11:45 AM", ActualArrival: "11:30 AM", Distance: "175 miles", Truck: "T-103", Driver: "Robert Johnson"},
		{ID: "DEL-1089", OrderNumber: "1089", Client: "Target Stores", Origin: "New York, NY", Destination: "Boston, MA", Status: models.DeliveryStatusInTransit, ScheduledDate: "Oct 10, 2025", EstimatedArrival: "4:30 PM", Distance: "215 miles", Truck: "T-104", Driver: "Sarah Wilson",
			Cargo: []models.CargoItem{{Description: "Packaged Food", Weight: 12, Packages: 60}, {Description: "Beverages", Weight: 8, Packages: 80}}},
		{ID: "DEL-1088", OrderNumber: "1088", Client: "Costco Wholesale", Origin: "Atlanta, GA", Destination: "Nashville, TN", Status: models.DeliveryStatusDelayed, ScheduledDate: "Oct 10, 2025", EstimatedArrival: "8:45 PM", Distance: "250 miles", Truck: "T-105", Driver: "Michael Brown"},
		{ID: "DEL-1087", OrderNumber: "1087", Client: "Lowe's Home Improvement", Origin: "Los Angeles, CA", Destination: "San Diego, CA", Status: models.DeliveryStatusDelivered, ScheduledDate: "Oct 9, 2025", EstimatedArrival: "1:30 PM", ActualArrival: "1:20 PM", Distance: "120 miles", Truck: "T-106", Driver: "Emily Davis"},
		{ID: "DEL-1086", OrderNumber: "1086", Client: "Best Buy Electronics", Origin: "Denver, CO", Destination: "Salt Lake City, UT", Status: models.DeliveryStatusCancelled, ScheduledDate: "Oct 8, 2025", EstimatedArrival: "5:15 PM", Distance: "520 miles", Truck: "T-107", Driver: "David Garcia"},
		{ID: "DEL-1085", OrderNumber: "1085", Client: "FedEx Distribution", Origin: "Chicago, IL", Destination: "Indianapolis, IN", Status: models.DeliveryStatusDelivered, ScheduledDate: "Oct 8, 2025", EstimatedArrival: "3:30 PM", ActualArrival: "3:10 PM", Distance: "180 miles", Truck: "T-108", Driver: "Lisa Martinez"},
	}
}
