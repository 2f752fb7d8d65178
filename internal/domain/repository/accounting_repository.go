package repository

import (
	"context"
	"time"

	"github.com/lojafacil/pdv-api/internal/domain/entity"
)

// AccountRepository define o porto de persistência do plano de contas (DIP).
type AccountRepository interface {
	Create(ctx context.Context, a *entity.Account) error
	GetByID(ctx context.Context, id string) (*entity.Account, error)
	ListByStore(ctx context.Context, storeID string) ([]entity.Account, error)

	// GetBalances devolve o saldo apurado por conta no período. A agregação
	// numérica acontece no backend; o chamador só agrupa e soma buckets.
	GetBalances(ctx context.Context, storeID string, start, end time.Time) ([]entity.AccountBalance, error)
}

// AccountingEntryRepository define o porto de persistência dos lançamentos contábeis (DIP).
type AccountingEntryRepository interface {
	// Create persiste o lançamento com seus itens na mesma transação.
	Create(ctx context.Context, e *entity.AccountingEntry) error
	GetByID(ctx context.Context, id string) (*entity.AccountingEntry, error)
	ListByPeriod(ctx context.Context, storeID string, start, end time.Time) ([]*entity.AccountingEntry, error)

	// NextEntryNumber devolve o próximo número sequencial de lançamento da loja.
	NextEntryNumber(ctx context.Context, storeID string) (string, error)
}
