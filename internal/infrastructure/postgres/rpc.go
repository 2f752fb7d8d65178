package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/lojafacil/pdv-api/internal/domain/repository"
)

var _ repository.CashRPC = (*CashRPCClient)(nil)

// CashRPCClient chama as functions do banco que concentram as regras de
// concorrência (saldo de caixa, baixa de estoque, cancelamento de venda).
type CashRPCClient struct {
	q Querier
}

// NewCashRPCClient constrói o cliente de RPCs.
func NewCashRPCClient(q Querier) *CashRPCClient {
	return &CashRPCClient{q: q}
}

// GetCashSummaryForDate chama get_cash_summary_for_date. Sem linha para a data,
// devolve um resumo zerado (dia sem abertura de caixa).
func (c *CashRPCClient) GetCashSummaryForDate(ctx context.Context, storeID string, date time.Time) (*repository.CashSummary, error) {
	var s repository.CashSummary
	err := c.q.QueryRow(ctx,
		`SELECT opening_balance, current_balance, sales_cash, sales_pix,
			total_entries, total_exits, expenses, bank_balance
		FROM get_cash_summary_for_date($1, $2)`,
		storeID, date,
	).Scan(&s.OpeningBalance, &s.CurrentBalance, &s.SalesCash, &s.SalesPix,
		&s.TotalEntries, &s.TotalExits, &s.Expenses, &s.BankBalance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &repository.CashSummary{}, nil
		}
		return nil, fmt.Errorf("get_cash_summary_for_date: %w", err)
	}
	return &s, nil
}

// CheckAvailableStock chama check_available_stock. True quando há saldo
// suficiente para a quantidade pedida.
func (c *CashRPCClient) CheckAvailableStock(ctx context.Context, productID string, quantity decimal.Decimal) (bool, error) {
	var ok bool
	err := c.q.QueryRow(ctx,
		`SELECT check_available_stock($1, $2)`, productID, quantity).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("check_available_stock: %w", err)
	}
	return ok, nil
}

// CancelSaleAndReturnStock chama cancel_sale_and_return_stock: marca a venda
// como cancelada e devolve o estoque dos itens atomicamente no banco.
func (c *CashRPCClient) CancelSaleAndReturnStock(ctx context.Context, saleID string) (bool, error) {
	var ok bool
	err := c.q.QueryRow(ctx,
		`SELECT cancel_sale_and_return_stock($1)`, saleID).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("cancel_sale_and_return_stock: %w", err)
	}
	return ok, nil
}

// AdjustCashBalance chama adjust_cash_balance gravando movimentos de ajuste
// para caixa e banco na data informada.
func (c *CashRPCClient) AdjustCashBalance(ctx context.Context, storeID string, date time.Time, cashAmount, bankAmount decimal.Decimal) error {
	_, err := c.q.Exec(ctx,
		`SELECT adjust_cash_balance($1, $2, $3, $4)`,
		storeID, date, cashAmount, bankAmount)
	if err != nil {
		return fmt.Errorf("adjust_cash_balance: %w", err)
	}
	return nil
}
