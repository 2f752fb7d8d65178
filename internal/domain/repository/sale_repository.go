package repository

import (
	"context"
	"time"

	"github.com/lojafacil/pdv-api/internal/domain/entity"
)

// SaleRepository define o porto de persistência de vendas e orçamentos (DIP).
type SaleRepository interface {
	// Create persiste a venda com seus itens e parcelas de pagamento.
	Create(ctx context.Context, s *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	UpdateStatus(ctx context.Context, id, status string) error

	// ListByPeriod devolve as vendas (com itens) do período, mais recentes primeiro.
	// quoteType filtra por orcamento|venda; vazio devolve ambos.
	ListByPeriod(ctx context.Context, storeID, quoteType string, start, end time.Time) ([]*entity.Sale, error)
}
