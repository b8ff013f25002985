package models

// RouteSalary is the expected cost profile of a route for one vehicle type.
type RouteSalary struct {
	VehicleType string  `json:"vehicleType"`
	FixedSalary float64 `json:"fixedSalary"`
	Diesel      float64 `json:"diesel"` // litres
	AdBlue      float64 `json:"adBlue"` // litres
	AdvanceAmt  float64 `json:"advanceAmt"`
}

// Route describes an expected lane between two points.
type Route struct {
	ID        int64         `json:"id"`
	RouteCode string        `json:"routeCode"`
	FromPlace string        `json:"fromPlace,omitempty"`
	ToPlace   string        `json:"toPlace,omitempty"`
	Distance  float64       `json:"distance"` // km
	TollAmt   float64       `json:"tollAmt"`
	Salary    []RouteSalary `json:"salary,omitempty"`
}
