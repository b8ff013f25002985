package models

import "fleetops/internal/domain"

// Expense type enumeration. Amounts are plain rupee floats; DieselLtr is only
// meaningful for ExpenseDiesel rows.
const (
	ExpenseDiesel           = "diesel"
	ExpenseAdblue           = "adblue"
	ExpenseDriverSalary     = "driver-salary"
	ExpenseTripAdvance      = "trip-advance"
	ExpenseTripExtraAdvance = "trip-extra-advance"
	ExpenseToll             = "toll"
	ExpensePuncture         = "puncture"
	ExpensePoliceFine       = "police-fine"
	ExpenseOther            = "other"
)

// Advance provenance: whether a trip advance was handed out at the pump or by
// the office. Aggregation does not branch on this; downstream ledgers do.
const (
	PaidByPump = "pump"
	PaidBySelf = "self"
)

type Expense struct {
	ID          int64   `json:"id"`
	SubtripID   int64   `json:"subtripId"`
	ExpenseType string  `json:"expenseType"`
	Amount      float64 `json:"amount"`
	DieselLtr   float64 `json:"dieselLtr,omitempty"`
	PaidBy      string  `json:"paidBy,omitempty"`
	Date        string  `json:"date,omitempty"`
	Remarks     string  `json:"remarks,omitempty"`
}

// Trip is a vehicle's journey; a trip may contain several subtrips.
type Trip struct {
	ID       int64    `json:"id"`
	DriverID int64    `json:"driverId"`
	Vehicle  *Vehicle `json:"vehicle,omitempty"`
	FromDate string   `json:"fromDate,omitempty"`
	ToDate   string   `json:"toDate,omitempty"`
}

// Subtrip is one delivery leg, the unit against which expenses and income are
// recorded. Weights are metric tonnes, distances km, money rupees.
type Subtrip struct {
	ID         int64         `json:"id"`
	TripID     int64         `json:"tripId"`
	RouteCode  string        `json:"routeCode,omitempty"`
	CustomerID int64         `json:"customerId,omitempty"`
	Status     domain.Status `json:"status,omitempty"`

	LoadingPoint   string `json:"loadingPoint,omitempty"`
	UnloadingPoint string `json:"unloadingPoint,omitempty"`
	Material       string `json:"material,omitempty"`
	EwayBill       string `json:"ewayBill,omitempty"`

	LoadingWeight   float64 `json:"loadingWeight"`
	UnloadingWeight float64 `json:"unloadingWeight"`
	Rate            float64 `json:"rate"`
	StartKm         float64 `json:"startKm"`
	EndKm           float64 `json:"endKm"`
	ShortageWeight  float64 `json:"shortageWeight,omitempty"`
	ShortageAmount  float64 `json:"shortageAmount,omitempty"`

	// CommissionRate overrides the tenant commission when non-zero.
	CommissionRate float64 `json:"commissionRate,omitempty"`

	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`

	Expenses []Expense `json:"expenses,omitempty"`

	// Populated when the caller asked for the expanded document.
	Trip  *Trip  `json:"trip,omitempty"`
	Route *Route `json:"route,omitempty"`
}
