package dto

type CheckoutItem struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

type CheckoutRequest struct {
	CustomerID    *int           `json:"customerId,omitempty"`
	EmployeeID    *int           `json:"employeeId,omitempty"`
	PaymentMethod string         `json:"paymentMethod"`
	Items         []CheckoutItem `json:"items"`
}

// CheckoutLineResult carries the per-line outcome of mirroring the sale
// onto counter displays. Mirrored is false when no display held the
// product; the sale line still stands.
type CheckoutLineResult struct {
	ProductID int    `json:"productId"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	Mirrored  bool   `json:"mirrored"`
	Deducted  int    `json:"deducted"`
	Shortfall int    `json:"shortfall"`
}

type CheckoutResult struct {
	InvoiceID   int                  `json:"invoiceId"`
	TotalAmount string               `json:"totalAmount"`
	Lines       []CheckoutLineResult `json:"lines"`
}
