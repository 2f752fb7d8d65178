package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/lojafacil/pdv-api/internal/domain/entity"
)

// StockMovementRepository define o porto de persistência dos movimentos de estoque (DIP).
type StockMovementRepository interface {
	Create(ctx context.Context, m *entity.StockMovement) error
	ListByProduct(ctx context.Context, productID string, limit, offset int) ([]entity.StockMovement, error)
}

// StockRepository acesso ao saldo de estoque de um produto.
// GetForUpdate bloqueia a linha (SELECT FOR UPDATE); usar só dentro de transação.
type StockRepository interface {
	GetForUpdate(ctx context.Context, productID string) (decimal.Decimal, error)
	SetQuantity(ctx context.Context, productID string, quantity decimal.Decimal) error
}
