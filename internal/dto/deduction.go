package dto

// DeductionLine records how much a single display gave up for a sale.
type DeductionLine struct {
	DisplayID int `json:"displayId"`
	CounterID int `json:"counterId"`
	Deducted  int `json:"deducted"`
	Remaining int `json:"remaining"`
}

// DeductionResult reports how a sold quantity was spread across displays.
// Shortfall is the portion that could not be mirrored because recorded
// counter stock was lower than the quantity sold; it is informational,
// never an error.
type DeductionResult struct {
	ProductID int             `json:"productId"`
	Requested int             `json:"requested"`
	Deducted  int             `json:"deducted"`
	Shortfall int             `json:"shortfall"`
	Lines     []DeductionLine `json:"lines"`
}
