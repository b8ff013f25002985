package finance

import "fleetops/internal/domain/models"

// Normalization happens once at the boundary of each aggregator: raw
// documents coming off the wire may carry nil slices or missing nested
// references, and the arithmetic below assumes fully-defaulted records.
// Aggregation must never halt a render because one record in a large
// collection is incomplete.

func normalizeSubtrip(s models.Subtrip) models.Subtrip {
	if s.Expenses == nil {
		s.Expenses = []models.Expense{}
	}
	return s
}

func normalizeSubtrips(subtrips []models.Subtrip) []models.Subtrip {
	if subtrips == nil {
		return []models.Subtrip{}
	}
	out := make([]models.Subtrip, len(subtrips))
	for i, s := range subtrips {
		out[i] = normalizeSubtrip(s)
	}
	return out
}

func normalizeAdjustments(adj []models.Adjustment) []models.Adjustment {
	if adj == nil {
		return []models.Adjustment{}
	}
	return adj
}

func normalizeRepayments(rep []models.Repayment) []models.Repayment {
	if rep == nil {
		return []models.Repayment{}
	}
	return rep
}
