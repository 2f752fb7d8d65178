// Package contabil contém os serviços de domínio contábeis: validação de
// lançamentos por partidas dobradas, montagem de demonstrativos e índices.
package contabil

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lojafacil/pdv-api/internal/domain"
	"github.com/lojafacil/pdv-api/internal/domain/entity"
)

// balanceTolerance tolerância de centavos entre débitos e créditos.
var balanceTolerance = decimal.NewFromFloat(0.01)

// SumDebitsCredits soma os débitos e créditos das linhas do lançamento.
func SumDebitsCredits(items []entity.AccountingEntryItem) (debits, credits decimal.Decimal) {
	for _, it := range items {
		debits = debits.Add(it.DebitAmount)
		credits = credits.Add(it.CreditAmount)
	}
	return debits, credits
}

// IsBalanced informa se |Σdébitos − Σcréditos| < 0.01.
func IsBalanced(items []entity.AccountingEntryItem) bool {
	debits, credits := SumDebitsCredits(items)
	return debits.Sub(credits).Abs().LessThan(balanceTolerance)
}

// ValidateEntry valida um lançamento antes da submissão: rejeita lista vazia,
// valores negativos e lançamentos desbalanceados. A validação no cliente é
// apenas UX; esta, no servidor, é a autoritativa.
func ValidateEntry(items []entity.AccountingEntryItem) error {
	if len(items) == 0 {
		return domain.ErrEmptyEntry
	}
	for i, it := range items {
		if it.DebitAmount.IsNegative() || it.CreditAmount.IsNegative() {
			return fmt.Errorf("%w: item %d com valor negativo", domain.ErrInvalidInput, i)
		}
	}
	if !IsBalanced(items) {
		debits, credits := SumDebitsCredits(items)
		return fmt.Errorf("%w: débitos somam %s, créditos somam %s",
			domain.ErrUnbalancedEntry, debits.String(), credits.String())
	}
	return nil
}
