package product

import (
	"github.com/shopspring/decimal"

	"github.com/vinhnt21/smartmart/internal/domain"
)

type CreateProductRequest struct {
	Name            string          `json:"name"`
	Unit            string          `json:"unit"`
	ImportPrice     decimal.Decimal `json:"importPrice"`
	SellingPrice    decimal.Decimal `json:"sellingPrice"`
	CategoryID      int             `json:"categoryId"`
	ExpiryDays      *int            `json:"expiryDays,omitempty"`
	SafetyThreshold *int            `json:"safetyThreshold,omitempty"`
}

type UpdateProductRequest struct {
	Name            string          `json:"name"`
	Unit            string          `json:"unit"`
	ImportPrice     decimal.Decimal `json:"importPrice"`
	SellingPrice    decimal.Decimal `json:"sellingPrice"`
	CategoryID      int             `json:"categoryId"`
	ExpiryDays      *int            `json:"expiryDays,omitempty"`
	SafetyThreshold *int            `json:"safetyThreshold,omitempty"`
}

type ProductDTO struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Unit            string `json:"unit"`
	ImportPrice     string `json:"importPrice"`
	SellingPrice    string `json:"sellingPrice"`
	CategoryID      int    `json:"categoryId"`
	Category        string `json:"category"`
	Perishable      bool   `json:"perishable"`
	ExpiryDays      *int   `json:"expiryDays,omitempty"`
	SafetyThreshold *int   `json:"safetyThreshold,omitempty"`
}

func toProductDTO(p domain.Product) ProductDTO {
	return ProductDTO{
		ID:              p.ID,
		Name:            p.Name,
		Unit:            p.Unit,
		ImportPrice:     p.ImportPrice.String(),
		SellingPrice:    p.SellingPrice.String(),
		CategoryID:      p.CategoryID,
		Category:        p.Category,
		Perishable:      p.Perishable(),
		ExpiryDays:      p.ExpiryDays,
		SafetyThreshold: p.SafetyThreshold,
	}
}
