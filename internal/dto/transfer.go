package dto

type TransferRequest struct {
	LotID     int    `json:"lotId"`
	CounterID int    `json:"counterId"`
	Quantity  int    `json:"quantity"`
	Position  string `json:"position"`
}

type TransferResult struct {
	LotID           int    `json:"lotId"`
	DisplayID       int    `json:"displayId"`
	DisplayCreated  bool   `json:"displayCreated"`
	Position        string `json:"position"`
	LotRemaining    int    `json:"lotRemaining"`
	DisplayQuantity int    `json:"displayQuantity"`
}
