package contabil_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lojafacil/pdv-api/internal/domain"
	"github.com/lojafacil/pdv-api/internal/domain/contabil"
	"github.com/lojafacil/pdv-api/internal/domain/entity"
)

func entryItem(debit, credit float64) entity.AccountingEntryItem {
	return entity.AccountingEntryItem{
		DebitAmount:  decimal.NewFromFloat(debit),
		CreditAmount: decimal.NewFromFloat(credit),
	}
}

// Vetores do contrato: 100/100 balanceia, 100/99 não.
func TestIsBalanced_Vetores(t *testing.T) {
	assert.True(t, contabil.IsBalanced([]entity.AccountingEntryItem{
		entryItem(100, 0),
		entryItem(0, 100),
	}))

	assert.False(t, contabil.IsBalanced([]entity.AccountingEntryItem{
		entryItem(100, 0),
		entryItem(0, 99),
	}))
}

// |Σd − Σc| < 0.01: meio centavo passa, um centavo inteiro não.
func TestIsBalanced_Tolerancia(t *testing.T) {
	assert.True(t, contabil.IsBalanced([]entity.AccountingEntryItem{
		entryItem(100.005, 0),
		entryItem(0, 100),
	}))
	assert.False(t, contabil.IsBalanced([]entity.AccountingEntryItem{
		entryItem(100.01, 0),
		entryItem(0, 100),
	}))
}

func TestValidateEntry_ListaVaziaRejeitada(t *testing.T) {
	err := contabil.ValidateEntry(nil)
	assert.ErrorIs(t, err, domain.ErrEmptyEntry)
}

func TestValidateEntry_DesbalanceadoRejeitado(t *testing.T) {
	err := contabil.ValidateEntry([]entity.AccountingEntryItem{
		entryItem(100, 0),
		entryItem(0, 99),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnbalancedEntry)
	assert.Contains(t, err.Error(), "100", "a mensagem deve trazer as somas para diagnóstico")
}

func TestValidateEntry_ValorNegativoRejeitado(t *testing.T) {
	err := contabil.ValidateEntry([]entity.AccountingEntryItem{
		entryItem(-10, 0),
		entryItem(0, -10),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestValidateEntry_MultiplasLinhas(t *testing.T) {
	// lançamento composto: um débito contra dois créditos
	err := contabil.ValidateEntry([]entity.AccountingEntryItem{
		entryItem(150, 0),
		entryItem(0, 100),
		entryItem(0, 50),
	})
	assert.NoError(t, err)
}
