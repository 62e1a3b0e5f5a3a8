package response

import "geoquote/internal/domain/entities"

type QuoteLineResponse struct {
	ID          string  `json:"id"`
	ServiceName string  `json:"service_name"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	Subtotal    float64 `json:"subtotal"`
}

type RiskFlagResponse struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// BidResponse mirrors the assembled bid. Quantities are already in each
// line's billing unit, so no display conversion happens here.
type BidResponse struct {
	LineItems    []QuoteLineResponse `json:"line_items"`
	Subtotal     float64             `json:"subtotal"`
	Margin       float64             `json:"margin"`
	MarginAmount float64             `json:"margin_amount"`
	Total        float64             `json:"total"`
	RiskFlags    []RiskFlagResponse  `json:"risk_flags"`
}

func FromBid(b entities.Bid) BidResponse {
	lines := make([]QuoteLineResponse, 0, len(b.LineItems))
	for _, l := range b.LineItems {
		lines = append(lines, QuoteLineResponse{
			ID:          l.ID,
			ServiceName: l.ServiceName,
			Quantity:    l.Quantity,
			Unit:        l.Unit,
			Subtotal:    l.Subtotal,
		})
	}
	flags := make([]RiskFlagResponse, 0, len(b.RiskFlags))
	for _, f := range b.RiskFlags {
		flags = append(flags, RiskFlagResponse{Severity: string(f.Severity), Message: f.Message})
	}
	return BidResponse{
		LineItems:    lines,
		Subtotal:     b.Subtotal,
		Margin:       b.Margin,
		MarginAmount: b.MarginAmount,
		Total:        b.Total,
		RiskFlags:    flags,
	}
}
