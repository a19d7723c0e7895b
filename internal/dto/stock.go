package dto

import "time"

// LotStockRow is a warehouse lot joined with its product, for the
// stock-room listing (oldest imports first).
type LotStockRow struct {
	LotID       int       `json:"lotId"`
	ProductID   int       `json:"productId"`
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
	ImportDate  time.Time `json:"importDate"`
}

// StockOverviewRow sums a product's stock across both tiers. Ordered by
// total ascending so the thinnest products surface first.
type StockOverviewRow struct {
	ProductID    int    `json:"productId"`
	ProductName  string `json:"productName"`
	Category     string `json:"category"`
	WarehouseQty int    `json:"warehouseQty"`
	CounterQty   int    `json:"counterQty"`
	TotalQty     int    `json:"totalQty"`
}

type ProductStockTotals struct {
	ProductID    int `json:"productId"`
	WarehouseQty int `json:"warehouseQty"`
	CounterQty   int `json:"counterQty"`
}

type ReceiveLotRequest struct {
	ProductID  int    `json:"productId"`
	Quantity   int    `json:"quantity"`
	ImportDate string `json:"importDate,omitempty"`
}

type ReceiveLotResult struct {
	LotID      int       `json:"lotId"`
	ProductID  int       `json:"productId"`
	Quantity   int       `json:"quantity"`
	ImportDate time.Time `json:"importDate"`
}
