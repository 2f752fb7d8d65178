package caixa

import (
	"github.com/shopspring/decimal"

	"github.com/lojafacil/pdv-api/internal/domain/entity"
)

// Totals seis acumuladores da posição de caixa, por (tipo, compartimento).
type Totals struct {
	CashEntries decimal.Decimal
	CashExits   decimal.Decimal
	CashAdjust  decimal.Decimal
	BankEntries decimal.Decimal
	BankExits   decimal.Decimal
	BankAdjust  decimal.Decimal
}

// CashBalance saldo do caixa físico: entradas − saídas + ajustes.
func (t Totals) CashBalance() decimal.Decimal {
	return t.CashEntries.Sub(t.CashExits).Add(t.CashAdjust)
}

// BankBalance saldo bancário: entradas − saídas + ajustes.
func (t Totals) BankBalance() decimal.Decimal {
	return t.BankEntries.Sub(t.BankExits).Add(t.BankAdjust)
}

// TotalEntries total de entradas nos dois compartimentos.
func (t Totals) TotalEntries() decimal.Decimal {
	return t.CashEntries.Add(t.BankEntries)
}

// TotalExits total de saídas nos dois compartimentos.
func (t Totals) TotalExits() decimal.Decimal {
	return t.CashExits.Add(t.BankExits)
}

// Aggregate dobra a lista de movimentos nos seis totais.
// Soma pura e comutativa: o resultado independe da ordem dos movimentos.
// Amount é sempre >= 0; o sinal vem do tipo do movimento.
func Aggregate(movements []entity.Movement) Totals {
	var t Totals
	for _, m := range movements {
		bucket := Classify(m.Category)
		switch m.Type {
		case entity.MovementEntrada:
			if bucket == BucketCash {
				t.CashEntries = t.CashEntries.Add(m.Amount)
			} else {
				t.BankEntries = t.BankEntries.Add(m.Amount)
			}
		case entity.MovementSaida:
			if bucket == BucketCash {
				t.CashExits = t.CashExits.Add(m.Amount)
			} else {
				t.BankExits = t.BankExits.Add(m.Amount)
			}
		case entity.MovementAjuste:
			if bucket == BucketCash {
				t.CashAdjust = t.CashAdjust.Add(m.Amount)
			} else {
				t.BankAdjust = t.BankAdjust.Add(m.Amount)
			}
		}
	}
	return t
}

// Dedupe une várias listas de movimentos descartando IDs repetidos.
// Necessário quando o mesmo escopo é buscado por dois critérios sobrepostos
// (ex.: por data da venda OU por created_at >= início); sem a união por ID os
// valores seriam contados em dobro. Preserva a primeira ocorrência de cada ID.
func Dedupe(lists ...[]entity.Movement) []entity.Movement {
	seen := make(map[string]struct{})
	var out []entity.Movement
	for _, list := range lists {
		for _, m := range list {
			if _, ok := seen[m.ID]; ok {
				continue
			}
			seen[m.ID] = struct{}{}
			out = append(out, m)
		}
	}
	return out
}
