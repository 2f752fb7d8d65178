package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/lojafacil/pdv-api/internal/domain"
	"github.com/lojafacil/pdv-api/internal/domain/entity"
	"github.com/lojafacil/pdv-api/internal/domain/repository"
)

var (
	_ repository.StockMovementRepository = (*StockMovementRepo)(nil)
	_ repository.StockRepository         = (*StockRepo)(nil)
)

// StockMovementRepo persistência dos movimentos de estoque.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository constrói o adaptador.
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste um movimento de estoque.
func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, store_id, product_id, type, quantity, unit_cost,
			reference_type, reference_id, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.StoreID, m.ProductID, m.Type, m.Quantity, m.UnitCost,
		m.ReferenceType, m.ReferenceID, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByProduct lista os movimentos de um produto, mais recentes primeiro.
func (r *StockMovementRepo) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]entity.StockMovement, error) {
	query := `
		SELECT id, store_id, product_id, type, quantity, unit_cost,
			reference_type, reference_id, created_at, created_by
		FROM stock_movements
		WHERE product_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.StoreID, &m.ProductID, &m.Type, &m.Quantity, &m.UnitCost,
			&m.ReferenceType, &m.ReferenceID, &m.CreatedAt, &m.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// StockRepo acesso ao saldo de estoque com bloqueio de linha.
type StockRepo struct {
	q Querier
}

// NewStockRepository constrói o adaptador. Usar dentro de transação.
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// GetForUpdate lê o saldo do produto bloqueando a linha até o fim da transação.
func (r *StockRepo) GetForUpdate(ctx context.Context, productID string) (decimal.Decimal, error) {
	var qty decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT stock_quantity FROM products WHERE id = $1 FOR UPDATE`, productID).Scan(&qty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrNotFound
		}
		return decimal.Zero, fmt.Errorf("lock stock: %w", err)
	}
	return qty, nil
}

// SetQuantity grava o novo saldo de estoque do produto.
func (r *StockRepo) SetQuantity(ctx context.Context, productID string, quantity decimal.Decimal) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET stock_quantity = $2, updated_at = now() WHERE id = $1`, productID, quantity)
	if err != nil {
		return fmt.Errorf("set stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
