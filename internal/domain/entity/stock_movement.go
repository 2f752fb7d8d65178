package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimento de estoque.
const (
	StockEntrada = "entrada"
	StockSaida   = "saida"
)

// StockMovement representa um movimento de estoque (entrada ou saída).
// O saldo do produto é atualizado pelo backend (trigger/RPC), não aqui.
type StockMovement struct {
	ID            string
	StoreID       string
	ProductID     string
	Type          string // entrada | saida
	Quantity      decimal.Decimal
	UnitCost      *decimal.Decimal // obrigatório em entradas
	ReferenceType string           // venda, nfe, manual
	ReferenceID   string
	CreatedAt     time.Time
	CreatedBy     string
}
