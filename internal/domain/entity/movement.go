package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType tipo de um movimento de caixa. Enumeração fechada: o sinal do
// valor é dado pelo tipo, nunca pelo Amount (que é sempre >= 0).
type MovementType string

const (
	MovementEntrada MovementType = "entrada"
	MovementSaida   MovementType = "saida"
	MovementAjuste  MovementType = "ajuste"
)

// Valid informa se o tipo pertence à enumeração.
func (t MovementType) Valid() bool {
	switch t {
	case MovementEntrada, MovementSaida, MovementAjuste:
		return true
	}
	return false
}

// Origens de um movimento (ReferenceType).
const (
	MovementRefVenda       = "venda"
	MovementRefManual      = "manual"
	MovementRefAjusteSaldo = "ajuste_saldo"
)

// Movement representa um movimento de caixa ou banco (lançamento do livro-caixa).
// Imutável depois de criado, exceto movimentos manuais (edição/exclusão explícita).
type Movement struct {
	ID            string
	StoreID       string
	Type          MovementType
	Amount        decimal.Decimal // sempre >= 0
	Category      string          // dinheiro, pix, cartao_credito, despesa, ...
	Description   string
	Date          time.Time // dia contábil do movimento
	ReferenceType string    // venda, manual, ajuste_saldo
	ReferenceID   string
	CreatedAt     time.Time
	CreatedBy     string
}

// IsManual informa se o movimento foi criado manualmente (único caso editável).
func (m *Movement) IsManual() bool {
	return m.ReferenceType == MovementRefManual
}
