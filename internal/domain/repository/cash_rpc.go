package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CashSummary resultado da function get_cash_summary_for_date.
// Autoritativo apenas para OpeningBalance; os demais campos são recalculados
// de forma independente pelo agregador a partir dos movimentos crus
// (redundância preservada do sistema de origem).
type CashSummary struct {
	OpeningBalance decimal.Decimal
	CurrentBalance decimal.Decimal
	SalesCash      decimal.Decimal
	SalesPix       decimal.Decimal
	TotalEntries   decimal.Decimal
	TotalExits     decimal.Decimal
	Expenses       decimal.Decimal
	BankBalance    decimal.Decimal
}

// CashRPC porto para as stored procedures do backend. A exclusão mútua real
// (duas vendas concorrentes baixando o mesmo estoque) é responsabilidade
// delas, não da aplicação.
type CashRPC interface {
	GetCashSummaryForDate(ctx context.Context, storeID string, date time.Time) (*CashSummary, error)
	CheckAvailableStock(ctx context.Context, productID string, quantity decimal.Decimal) (bool, error)
	CancelSaleAndReturnStock(ctx context.Context, saleID string) (bool, error)
	AdjustCashBalance(ctx context.Context, storeID string, date time.Time, cashAmount, bankAmount decimal.Decimal) error
}
