package finance

import (
	"testing"

	"fleetops/internal/domain/models"
)

func TestClassifyMatchesKnownTypes(t *testing.T) {
	cases := []struct {
		expType string
		cat     Category
		want    bool
	}{
		{"driver-salary", CategoryDriverSalary, true},
		{"diesel", CategoryDiesel, true},
		{"toll", CategoryToll, true},
		{"trip-advance", CategoryTripAdvance, true},
		{"trip-extra-advance", CategoryTripExtraAdvance, true},
		{"trip-advance", CategoryAdvance, true},
		{"trip-extra-advance", CategoryAdvance, true},
		{"diesel", CategoryDriverSalary, false},
		{"adblue", CategoryDiesel, false},
	}
	for _, c := range cases {
		got := Classify(models.Expense{ExpenseType: c.expType}, c.cat)
		if got != c.want {
			t.Fatalf("Classify(%q, %q) = %v, want %v", c.expType, c.cat, got, c.want)
		}
	}
}

func TestClassifyToleratesMalformedType(t *testing.T) {
	if Classify(models.Expense{}, CategoryDriverSalary) {
		t.Fatalf("empty expense type should not match")
	}
	if Classify(models.Expense{ExpenseType: "   "}, CategoryDiesel) {
		t.Fatalf("blank expense type should not match")
	}
	if Classify(models.Expense{ExpenseType: "no-such-type"}, CategoryToll) {
		t.Fatalf("unknown expense type should not match")
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	if !Classify(models.Expense{ExpenseType: "Driver-Salary"}, CategoryDriverSalary) {
		t.Fatalf("mixed-case expense type should match")
	}
	if !Classify(models.Expense{ExpenseType: " DIESEL "}, CategoryDiesel) {
		t.Fatalf("padded upper-case expense type should match")
	}
}
