package services

import (
	"fmt"

	"fleetops/internal/domain"
	"fleetops/internal/domain/models"
	"fleetops/internal/finance"
	"fleetops/internal/repositories"
	"fleetops/internal/utils"
)

// PayrollService assembles driver payroll drafts and submissions. All money
// math is delegated to the finance package; this service only fetches inputs
// and persists the submission.
type PayrollService struct {
	PayrollRepo repositories.PayrollRepository
	SubtripRepo repositories.SubtripRepository
	RequestID   string
}

// PayrollView is a payroll document plus its computed summary.
type PayrollView struct {
	Payroll models.DriverPayroll  `json:"payroll"`
	Summary finance.SalarySummary `json:"summary"`
}

// Draft computes a payroll preview for a driver and period without
// persisting anything.
func (s PayrollService) Draft(driverID int64, periodStart, periodEnd string, payments, deductions []models.Adjustment) (PayrollView, error) {
	if driverID <= 0 {
		return PayrollView{}, domain.ValidationError{Field: "driverId", Msg: "required"}
	}

	subtrips, err := s.SubtripRepo.List(repositories.SubtripFilter{
		DriverID:  driverID,
		StartDate: periodStart,
		EndDate:   periodEnd,
	})
	if err != nil {
		return PayrollView{}, err
	}

	payroll := models.DriverPayroll{
		DriverID:             driverID,
		PeriodStart:          periodStart,
		PeriodEnd:            periodEnd,
		Subtrips:             subtrips,
		AdditionalPayments:   payments,
		AdditionalDeductions: deductions,
	}
	return PayrollView{
		Payroll: payroll,
		Summary: finance.SummarizeDriverSalary(subtrips, payments, deductions),
	}, nil
}

// Submit persists a payroll built from the same inputs as Draft.
func (s PayrollService) Submit(driverID int64, periodStart, periodEnd string, payments, deductions []models.Adjustment) (PayrollView, error) {
	view, err := s.Draft(driverID, periodStart, periodEnd, payments, deductions)
	if err != nil {
		return view, err
	}

	view.Payroll.Status = domain.StatusClosed
	id, err := s.PayrollRepo.Create(view.Payroll)
	if err != nil {
		return view, err
	}
	view.Payroll.ID = id
	view.Payroll.PayrollNo = fmt.Sprintf("PAY-%d", id)

	utils.LogEvent(s.RequestID, "payroll", "submit",
		fmt.Sprintf("driver_id=%d subtrips=%d net=%s", driverID, len(view.Payroll.Subtrips), utils.FormatMoney(view.Summary.NetIncome)))
	return view, nil
}

// Get loads a stored payroll and recomputes its summary.
func (s PayrollService) Get(id int64) (PayrollView, error) {
	payroll, err := s.PayrollRepo.GetByID(id)
	if err != nil {
		return PayrollView{}, err
	}
	return PayrollView{
		Payroll: payroll,
		Summary: finance.SummarizeDriverSalary(payroll.Subtrips, payroll.AdditionalPayments, payroll.AdditionalDeductions),
	}, nil
}
