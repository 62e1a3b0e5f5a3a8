package entities

// RiskSeverity grades an advisory flag attached to a bid.

type RiskSeverity string

const (
	RiskSeverityWarning RiskSeverity = "warning"
	RiskSeverityError   RiskSeverity = "error"
)

// RiskFlag is an advisory warning attached to a bid. Flags never alter or
// block total computation.
type RiskFlag struct {
	Severity RiskSeverity `json:"severity"`
	Message  string       `json:"message"`
}

// QuoteLine is one priced line of a bid. Derived, never hand-edited;
// regenerated whenever geometries or configuration change.
type QuoteLine struct {
	ID          string  `json:"id"`
	ServiceName string  `json:"service_name"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	Subtotal    float64 `json:"subtotal"`
}

// Bid is the priced quote assembled from the current geometry set and the
// active pricing configuration. Bids are transient derived artifacts:
// recomputed from scratch on every relevant input change, never patched.
//
//   Total = Subtotal + MarginAmount
//   MarginAmount = Subtotal * Margin
type Bid struct {
	LineItems    []QuoteLine `json:"line_items"`
	Subtotal     float64     `json:"subtotal"`
	Margin       float64     `json:"margin"`
	MarginAmount float64     `json:"margin_amount"`
	Total        float64     `json:"total"`
	RiskFlags    []RiskFlag  `json:"risk_flags"`
}

// EmptyBid is the zero-line bid shown when nothing has been drawn. Both
// reconciliation channels reset to it on clear.
func EmptyBid(margin float64) Bid {
	return Bid{LineItems: []QuoteLine{}, Margin: margin, RiskFlags: []RiskFlag{}}
}
