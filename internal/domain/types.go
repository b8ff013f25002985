package domain

// ID is used across domain entities.
type ID int64

// Status represents a lightweight state value (subtrip/invoice/payment status).
type Status string

// Subtrip status progression. Transitions are driven by the back-office UI;
// the backend only records the current value.
const (
	StatusInQueue    Status = "in-queue"
	StatusLoaded     Status = "loaded"
	StatusReceived   Status = "received"
	StatusError      Status = "error"
	StatusClosed     Status = "closed"
	StatusBilled     Status = "billed"
	StatusBilledPaid Status = "billed-paid"
)

// Pagination carries paging params and totals.
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total,omitempty"`
}

// Sort defines sorting preference.
type Sort struct {
	Field     string `json:"field"`
	Direction string `json:"direction"` // asc / desc
}

// Filter expresses a simple filter clause.
type Filter struct {
	Field string `json:"field"`
	Op    string `json:"op"` // eq, like, gt, lt, etc.
	Value any    `json:"value"`
}

// RequestContext carries authenticated user info when available.
type RequestContext struct {
	UserID ID     `json:"userId"`
	Role   string `json:"role"`
}
