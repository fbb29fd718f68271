package domain

import (
	"github.com/shopspring/decimal"

	catalog "github.com/ridloal/agri-storefront/internal/catalog/domain"
)

// CartItem is a product plus the quantity selected by the shopper.
type CartItem struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

func (i CartItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Snapshot is an immutable view of a cart at one version.
type Snapshot struct {
	Items       []CartItem      `json:"items"`
	Total       string          `json:"total"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Currency    string          `json:"currency"`
	Count       int             `json:"count"` // distinct lines
	Units       int             `json:"units"` // sum of quantities
	Version     uint64          `json:"version"`
}

func (s Snapshot) IsEmpty() bool {
	return len(s.Items) == 0
}
