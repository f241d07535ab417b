package dto

import "github.com/shopspring/decimal"

// ProductDTO producto del catálogo para listados.
type ProductDTO struct {
	ID             string          `json:"id"`
	SKU            string          `json:"sku"`
	Name           string          `json:"name"`
	StockQuantity  decimal.Decimal `json:"stock_quantity"`
	CostForeign    decimal.Decimal `json:"cost_foreign"`
	DefaultFxRate  decimal.Decimal `json:"default_fx_rate"`
	ListPriceLocal decimal.Decimal `json:"list_price_local"`
	CreatedAt      string          `json:"created_at"` // 2006-01-02
}
