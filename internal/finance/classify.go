package finance

import (
	"strings"

	"fleetops/internal/domain/models"
)

// Category names a class of expense types the aggregators care about.
type Category string

const (
	CategoryDriverSalary     Category = "driver-salary"
	CategoryDiesel           Category = "diesel"
	CategoryToll             Category = "toll"
	CategoryTripAdvance      Category = "trip-advance"
	CategoryTripExtraAdvance Category = "trip-extra-advance"
	// CategoryAdvance matches both plain and extra trip advances.
	CategoryAdvance Category = "advance"
)

var categoryTypes = map[Category][]string{
	CategoryDriverSalary:     {models.ExpenseDriverSalary},
	CategoryDiesel:           {models.ExpenseDiesel},
	CategoryToll:             {models.ExpenseToll},
	CategoryTripAdvance:      {models.ExpenseTripAdvance},
	CategoryTripExtraAdvance: {models.ExpenseTripExtraAdvance},
	CategoryAdvance:          {models.ExpenseTripAdvance, models.ExpenseTripExtraAdvance},
}

// Classify reports whether an expense counts toward a category. An empty,
// unknown or malformed expense type never matches.
func Classify(e models.Expense, c Category) bool {
	t := strings.TrimSpace(strings.ToLower(e.ExpenseType))
	if t == "" {
		return false
	}
	for _, want := range categoryTypes[c] {
		if t == want {
			return true
		}
	}
	return false
}

// sumCategory totals expense amounts matching a category.
func sumCategory(expenses []models.Expense, c Category) float64 {
	var total float64
	for _, e := range expenses {
		if Classify(e, c) {
			total += e.Amount
		}
	}
	return total
}
