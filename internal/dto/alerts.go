package dto

// LowStockRow flags a display running out while still holding something.
type LowStockRow struct {
	DisplayID   int    `json:"displayId"`
	CounterID   int    `json:"counterId"`
	CounterName string `json:"counterName"`
	ProductID   int    `json:"productId"`
	ProductName string `json:"productName"`
	Position    string `json:"position"`
	Quantity    int    `json:"quantity"`
}

// RefillRow flags a product whose counter total is low while warehouse
// stock is still available to transfer.
type RefillRow struct {
	ProductID   int    `json:"productId"`
	ProductName string `json:"productName"`
	OnCounter   int    `json:"onCounter"`
	InWarehouse int    `json:"inWarehouse"`
}

// ExhaustedRow flags a product sold from counters while the warehouse is
// empty: an urgent reorder signal.
type ExhaustedRow struct {
	ProductID   int    `json:"productId"`
	ProductName string `json:"productName"`
	OnCounter   int    `json:"onCounter"`
}
