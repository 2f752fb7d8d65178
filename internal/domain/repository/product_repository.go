package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/lojafacil/pdv-api/internal/domain/entity"
)

// ProductRepository define o porto de persistência para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByStoreAndSKU(ctx context.Context, storeID, sku string) (*entity.Product, error)
	GetByBarcode(ctx context.Context, storeID, barcode string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	UpdateCost(ctx context.Context, productID string, cost decimal.Decimal) error
	ListByStore(ctx context.Context, storeID string, limit, offset int) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) error

	// CostMap devolve o custo atual por produto da loja, para a apuração de lucro.
	CostMap(ctx context.Context, storeID string) (map[string]decimal.Decimal, error)
}
