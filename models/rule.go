package models

// FeeType selects how a rule's BaseAmount is applied.
type FeeType string

const (
	FeeFlat       FeeType = "flat"
	FeePerPerson  FeeType = "per_person"
	FeePercentage FeeType = "percentage"
)

// Rule is a club fee policy. Fees are computed by the server; the client
// only displays rules and precomputed fees.
type Rule struct {
	ID          int64   `json:"id"`
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	FeeType     FeeType `json:"fee_type"`
	BaseAmount  float64 `json:"base_amount"`
	Threshold   *int    `json:"threshold"`
	Enabled     bool    `json:"enabled"`
}

// RuleUpdate is the partial body of PATCH /admin/rules/{id}/.
type RuleUpdate struct {
	BaseAmount *float64 `json:"base_amount,omitempty"`
	Threshold  *int     `json:"threshold,omitempty"`
	Enabled    *bool    `json:"enabled,omitempty"`
}

// Fee is a surcharge applied to a reservation by a rule.
type Fee struct {
	ID               int64   `json:"id"`
	ReservationID    int64   `json:"reservation_id"`
	Rule             Rule    `json:"rule"`
	CalculatedAmount float64 `json:"calculated_amount"`
	Paid             bool    `json:"paid"`
}

// TotalFees sums the calculated amounts of fees.
func TotalFees(fees []Fee) float64 {
	var total float64
	for _, f := range fees {
		total += f.CalculatedAmount
	}
	return total
}
