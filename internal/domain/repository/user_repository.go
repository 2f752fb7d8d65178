package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/lojafacil/pdv-api/internal/domain/entity"
)

// UserRepository define o porto de persistência para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByEmailAndStore(ctx context.Context, email, storeID string) (*entity.User, error)

	// CommissionRates devolve a taxa de comissão (%) por vendedor da loja.
	CommissionRates(ctx context.Context, storeID string) (map[string]decimal.Decimal, error)
}
