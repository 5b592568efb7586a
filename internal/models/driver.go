package models

// DriverStatus is the employment state of a driver
type DriverStatus string

const (
	DriverStatusActive   DriverStatus = "active"
	DriverStatusInactive DriverStatus = "inactive"
	DriverStatusOnLeave  DriverStatus = "on_leave"
)

// Valid reports whether s is one of the known driver statuses
func (s DriverStatus) Valid() bool {
	switch s {
	case DriverStatusActive, DriverStatusInactive, DriverStatusOnLeave:
		return true
	}
	return false
}

type Driver struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Email         string       `json:"email"`
	Phone         string       `json:"phone"`
	Location      string       `json:"location"`
	Status        DriverStatus `json:"status"`
	AssignedTruck string       `json:"assignedTruck"` // truck id
	Experience    string       `json:"experience"`
	LicenseCDL    string       `json:"licenseCDL"`
	Rating        float64      `json:"rating"`
	LastActive    string       `json:"lastActive"`
}

// DriverProfile holds the personal fields only shown on the driver detail page
type DriverProfile struct {
	Address           string `json:"address"`
	LicenseExpiration string `json:"licenseExpiration"`
	JoinDate          string `json:"joinDate"`
	BirthDate         string `json:"birthDate"`
	EmergencyContact  string `json:"emergencyContact"`
	About             string `json:"about"`
}

type Certification struct {
	Name    string `json:"name"`
	Date    string `json:"date"`
	Expires string `json:"expires"`
}

// DriverDelivery is a row of the driver's delivery history tab
type DriverDelivery struct {
	ID          string         `json:"id"`
	Date        string         `json:"date"`
	Origin      string         `json:"origin"`
	Destination string         `json:"destination"`
	Status      DeliveryStatus `json:"status"`
	OnTime      bool           `json:"onTime"`
}

type Activity struct {
	Type        string `json:"type"` // delivery_start, fuel_stop, check_in, delay
	Description string `json:"description"`
	Time        string `json:"time"`
}

type PerformanceMetrics struct {
	OnTimeDelivery       float64 `json:"onTimeDelivery"` // percent
	FuelEfficiency       float64 `json:"fuelEfficiency"` // mpg
	SafetyScore          float64 `json:"safetyScore"`
	CustomerSatisfaction float64 `json:"customerSatisfaction"`
	HoursUtilization     float64 `json:"hoursUtilization"` // percent
}
