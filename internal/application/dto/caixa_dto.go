package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMovementRequest entrada para um movimento manual de caixa.
type CreateMovementRequest struct {
	Type        string          `json:"type" validate:"required,oneof=entrada saida ajuste"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category" validate:"required"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
}

// UpdateMovementRequest entrada para editar um movimento manual.
type UpdateMovementRequest struct {
	Type        *string          `json:"type" validate:"omitempty,oneof=entrada saida ajuste"`
	Amount      *decimal.Decimal `json:"amount"`
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
	Date        *time.Time       `json:"date"`
}

// MovementResponse saída de um movimento de caixa.
type MovementResponse struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"`
	ReferenceType string          `json:"reference_type"`
	ReferenceID   string          `json:"reference_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// CashPositionResponse posição de caixa e banco de um dia ou período.
// OpeningBalance vem do backend e é informativo; os saldos calculados somam
// apenas os movimentos do recorte, sem incorporar a abertura.
type CashPositionResponse struct {
	Date           string          `json:"date,omitempty"`
	StartDate      string          `json:"start_date,omitempty"`
	EndDate        string          `json:"end_date,omitempty"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	CashEntries    decimal.Decimal `json:"cash_entries"`
	CashExits      decimal.Decimal `json:"cash_exits"`
	CashAdjust     decimal.Decimal `json:"cash_adjust"`
	CashBalance    decimal.Decimal `json:"cash_balance"`
	BankEntries    decimal.Decimal `json:"bank_entries"`
	BankExits      decimal.Decimal `json:"bank_exits"`
	BankAdjust     decimal.Decimal `json:"bank_adjust"`
	BankBalance    decimal.Decimal `json:"bank_balance"`
	TotalEntries   decimal.Decimal `json:"total_entries"`
	TotalExits     decimal.Decimal `json:"total_exits"`

	Movements []MovementResponse `json:"movements,omitempty"`
}

// AdjustBalanceRequest ajuste de saldo de caixa/banco em uma data.
type AdjustBalanceRequest struct {
	Date       time.Time       `json:"date"`
	CashAmount decimal.Decimal `json:"cash_amount"`
	BankAmount decimal.Decimal `json:"bank_amount"`
}
