package models

import "time"

// Order modes. Anything other than dine-in is counted as takeaway by the
// analytics aggregation.
const (
	ModeDineIn   = "dine-in"
	ModeTakeaway = "takeaway"
	ModeDelivery = "delivery"
)

// StatusSteps is the order progression, indexed by step.
var StatusSteps = []string{"Received", "In Kitchen", "Ready", "Served"}

// AutoStepInterval is how long an order stays on each step when no manual
// override has been applied.
const AutoStepInterval = 4 * time.Second

// OrderItem is a denormalized copy of a menu item taken at order time, plus
// a quantity. Later catalog price changes do not affect existing orders.
type OrderItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"qty"`
}

type Order struct {
	ID              string      `json:"id"`
	OrderNumber     string      `json:"orderNumber"`
	BranchID        string      `json:"branchId"`
	Mode            string      `json:"mode"`
	TableCode       string      `json:"tableCode,omitempty"`
	Items           []OrderItem `json:"items"`
	Total           float64     `json:"total"`
	TotalFormatted  string      `json:"totalFormatted"`
	CustomerName    string      `json:"customerName"`
	CustomerID      string      `json:"customerId"`
	PaymentStatus   string      `json:"paymentStatus"`
	CreatedAt       time.Time   `json:"createdAt"`
	ManualStepIndex *int        `json:"manualStepIndex,omitempty"`

	// Derived on every read, never stored.
	StepIndex int    `json:"stepIndex"`
	Status    string `json:"status"`
}

// StatusIndex maps a status label to its step index.
func StatusIndex(status string) (int, bool) {
	for i, s := range StatusSteps {
		if s == status {
			return i, true
		}
	}
	return 0, false
}

func clampStepIndex(index int) int {
	if index < 0 {
		return 0
	}
	if index > len(StatusSteps)-1 {
		return len(StatusSteps) - 1
	}
	return index
}

// StepIndexAt computes the order's step at the given time. A manual override
// is authoritative when present; otherwise the step is derived from elapsed
// time since creation, one step per AutoStepInterval, clamped to the last
// step.
func (o *Order) StepIndexAt(now time.Time) int {
	if o.ManualStepIndex != nil {
		return clampStepIndex(*o.ManualStepIndex)
	}
	elapsed := now.Sub(o.CreatedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	return clampStepIndex(int(elapsed / AutoStepInterval))
}

// Hydrated returns a copy of the order with StepIndex and Status filled in
// for the given time.
func (o Order) Hydrated(now time.Time) Order {
	o.StepIndex = o.StepIndexAt(now)
	o.Status = StatusSteps[o.StepIndex]
	return o
}
