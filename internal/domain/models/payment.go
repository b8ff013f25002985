package models

import "fleetops/internal/domain"

// Adjustment is an ad-hoc labelled amount entered by a back-office user
// against a payroll or payment draft.
type Adjustment struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// Repayment records an advance already paid out to a transporter, netted
// against the period's gross income.
type Repayment struct {
	Label  string  `json:"label,omitempty"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date,omitempty"`
}

// TransporterPayment settles one transporter for a billing period.
type TransporterPayment struct {
	ID            int64         `json:"id"`
	PaymentNo     string        `json:"paymentNo"`
	TransporterID int64         `json:"transporterId"`
	Transporter   *Transporter  `json:"transporter,omitempty"`
	Status        domain.Status `json:"status,omitempty"`
	PeriodStart   string        `json:"periodStart,omitempty"`
	PeriodEnd     string        `json:"periodEnd,omitempty"`

	AssociatedSubtrips []Subtrip   `json:"associatedSubtrips,omitempty"`
	Repayments         []Repayment `json:"repayments,omitempty"`
}

// DriverPayroll is a payroll submission for one driver over a period.
type DriverPayroll struct {
	ID          int64         `json:"id"`
	PayrollNo   string        `json:"payrollNo"`
	DriverID    int64         `json:"driverId"`
	Driver      *Driver       `json:"driver,omitempty"`
	Status      domain.Status `json:"status,omitempty"`
	PeriodStart string        `json:"periodStart,omitempty"`
	PeriodEnd   string        `json:"periodEnd,omitempty"`

	Subtrips             []Subtrip    `json:"subtrips,omitempty"`
	AdditionalPayments   []Adjustment `json:"additionalPayments,omitempty"`
	AdditionalDeductions []Adjustment `json:"additionalDeductions,omitempty"`
}
