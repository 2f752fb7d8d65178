package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um produto do catálogo.
// Cost é custo médio ponderado recalculado em cada entrada de estoque;
// StockQuantity é mantida pelo backend via movimentos/RPCs, nunca em handlers.
type Product struct {
	ID            string
	StoreID       string
	SKU           string // código único por loja
	Barcode       string
	Name          string
	Description   string
	Price         decimal.Decimal // preço de venda
	Cost          decimal.Decimal // custo médio ponderado (inicia em 0)
	StockQuantity decimal.Decimal
	Category      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
