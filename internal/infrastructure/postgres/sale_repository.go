package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/lojafacil/pdv-api/internal/domain"
	"github.com/lojafacil/pdv-api/internal/domain/entity"
	"github.com/lojafacil/pdv-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementação do porto SaleRepository sobre PostgreSQL (pool ou tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste a venda, seus itens e as parcelas de pagamento.
// Chamar dentro de transação (TxRunner) para atomicidade com caixa e estoque.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	query := `
		INSERT INTO sales (id, store_id, quote_type, status, subtotal, discount_amount, shipping_cost,
			total_amount, payment_method, has_partial_payment, seller_id, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.StoreID, s.QuoteType, s.Status, s.Subtotal, s.DiscountAmount, s.ShippingCost,
		s.TotalAmount, s.PaymentMethod, s.HasPartialPayment, s.SellerID, s.Date, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}

	for _, it := range s.Items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO sale_items (id, sale_id, product_id, name, price, quantity, cost_price, total)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			it.ID, s.ID, it.ProductID, it.Name, it.Price, it.Quantity, it.CostPrice, it.Total,
		)
		if err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}

	for _, sp := range s.PaymentSplits {
		_, err := r.q.Exec(ctx, `
			INSERT INTO sale_payment_splits (sale_id, method, amount)
			VALUES ($1, $2, $3)`,
			s.ID, sp.Method, sp.Amount,
		)
		if err != nil {
			return fmt.Errorf("insert payment split: %w", err)
		}
	}
	return nil
}

// GetByID obtém uma venda com itens e parcelas.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	query := `
		SELECT id, store_id, quote_type, status, subtotal, discount_amount, shipping_cost,
			total_amount, payment_method, has_partial_payment, seller_id, date, created_at, updated_at
		FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.StoreID, &s.QuoteType, &s.Status, &s.Subtotal, &s.DiscountAmount, &s.ShippingCost,
		&s.TotalAmount, &s.PaymentMethod, &s.HasPartialPayment, &s.SellerID, &s.Date, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	if err := r.loadItems(ctx, &s); err != nil {
		return nil, err
	}
	if err := r.loadSplits(ctx, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateStatus muda o status da venda (ex.: cancelada).
func (r *SaleRepo) UpdateStatus(ctx context.Context, id, status string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE sales SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update sale status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByPeriod lista vendas do período com itens. quoteType vazio devolve ambos.
func (r *SaleRepo) ListByPeriod(ctx context.Context, storeID, quoteType string, start, end time.Time) ([]*entity.Sale, error) {
	query := `
		SELECT id, store_id, quote_type, status, subtotal, discount_amount, shipping_cost,
			total_amount, payment_method, has_partial_payment, seller_id, date, created_at, updated_at
		FROM sales
		WHERE store_id = $1 AND date >= $2 AND date <= $3
		  AND ($4 = '' OR quote_type = $4)
		ORDER BY date DESC, created_at DESC`
	rows, err := r.q.Query(ctx, query, storeID, start, end, quoteType)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(
			&s.ID, &s.StoreID, &s.QuoteType, &s.Status, &s.Subtotal, &s.DiscountAmount, &s.ShippingCost,
			&s.TotalAmount, &s.PaymentMethod, &s.HasPartialPayment, &s.SellerID, &s.Date, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, s := range list {
		if err := r.loadItems(ctx, s); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (r *SaleRepo) loadItems(ctx context.Context, s *entity.Sale) error {
	rows, err := r.q.Query(ctx, `
		SELECT id, sale_id, product_id, name, price, quantity, cost_price, total
		FROM sale_items WHERE sale_id = $1`, s.ID)
	if err != nil {
		return fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.Name, &it.Price, &it.Quantity, &it.CostPrice, &it.Total); err != nil {
			return fmt.Errorf("scan sale item: %w", err)
		}
		s.Items = append(s.Items, it)
	}
	return rows.Err()
}

func (r *SaleRepo) loadSplits(ctx context.Context, s *entity.Sale) error {
	rows, err := r.q.Query(ctx, `
		SELECT method, amount FROM sale_payment_splits WHERE sale_id = $1`, s.ID)
	if err != nil {
		return fmt.Errorf("list payment splits: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var sp entity.PaymentSplit
		if err := rows.Scan(&sp.Method, &sp.Amount); err != nil {
			return fmt.Errorf("scan payment split: %w", err)
		}
		s.PaymentSplits = append(s.PaymentSplits, sp)
	}
	return rows.Err()
}
