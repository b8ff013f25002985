package services

import (
	"fmt"

	"fleetops/internal/domain"
	"fleetops/internal/domain/models"
	"fleetops/internal/finance"
	"fleetops/internal/repositories"
	"fleetops/internal/utils"
)

// TransporterService builds transporter payment periods and their summaries.
type TransporterService struct {
	PaymentRepo repositories.PaymentRepository
	SubtripRepo repositories.SubtripRepository
	RequestID   string
}

// PaymentView carries the payment document, its per-subtrip settlement lines
// and the period summary. NetAfterTDS is the only field where TDS has been
// applied; everything else stays gross.
type PaymentView struct {
	Payment     models.TransporterPayment `json:"payment"`
	Lines       []finance.TransporterLine `json:"lines"`
	Summary     finance.PaymentSummary    `json:"summary"`
	TDSPercent  float64                   `json:"tdsPercent"`
	NetAfterTDS float64                   `json:"netAfterTds"`
}

func (s TransporterService) view(p models.TransporterPayment, rates finance.Rates) PaymentView {
	lines := make([]finance.TransporterLine, 0, len(p.AssociatedSubtrips))
	for _, st := range p.AssociatedSubtrips {
		lines = append(lines, finance.ComputeTransporterLine(st, rates))
	}
	summary := finance.SummarizeTransporterPayment(p, rates)

	tds := rates.DefaultTDSPercent
	if p.Transporter != nil && p.Transporter.TDSPercentage != 0 {
		tds = p.Transporter.TDSPercentage
	}
	return PaymentView{
		Payment:     p,
		Lines:       lines,
		Summary:     summary,
		TDSPercent:  tds,
		NetAfterTDS: finance.NetAfterTDS(summary.NetIncome, tds),
	}
}

// Draft assembles a payment period for a transporter from its received
// subtrips without persisting.
func (s TransporterService) Draft(transporterID int64, periodStart, periodEnd string, repayments []models.Repayment, rates finance.Rates) (PaymentView, error) {
	if transporterID <= 0 {
		return PaymentView{}, domain.ValidationError{Field: "transporterId", Msg: "required"}
	}

	subtrips, err := s.SubtripRepo.List(repositories.SubtripFilter{
		TransporterID: transporterID,
		StartDate:     periodStart,
		EndDate:       periodEnd,
	})
	if err != nil {
		return PaymentView{}, err
	}

	p := models.TransporterPayment{
		TransporterID:      transporterID,
		PeriodStart:        periodStart,
		PeriodEnd:          periodEnd,
		AssociatedSubtrips: subtrips,
		Repayments:         repayments,
	}
	return s.view(p, rates), nil
}

// Submit persists a drafted payment period.
func (s TransporterService) Submit(transporterID int64, periodStart, periodEnd string, repayments []models.Repayment, rates finance.Rates) (PaymentView, error) {
	view, err := s.Draft(transporterID, periodStart, periodEnd, repayments, rates)
	if err != nil {
		return view, err
	}

	view.Payment.Status = domain.StatusClosed
	id, err := s.PaymentRepo.Create(view.Payment)
	if err != nil {
		return view, err
	}
	view.Payment.ID = id
	view.Payment.PaymentNo = fmt.Sprintf("TP-%d", id)

	utils.LogEvent(s.RequestID, "transporter_payment", "submit",
		fmt.Sprintf("transporter_id=%d subtrips=%d net=%s", transporterID, len(view.Payment.AssociatedSubtrips), utils.FormatMoney(view.Summary.NetIncome)))
	return view, nil
}

// Get loads a stored payment and recomputes lines and summary.
func (s TransporterService) Get(id int64, rates finance.Rates) (PaymentView, error) {
	p, err := s.PaymentRepo.GetByID(id)
	if err != nil {
		return PaymentView{}, err
	}
	return s.view(p, rates), nil
}
