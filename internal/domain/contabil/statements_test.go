package contabil_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/lojafacil/pdv-api/internal/domain/contabil"
	"github.com/lojafacil/pdv-api/internal/domain/entity"
)

func balance(accType, subtype string, v float64) entity.AccountBalance {
	return entity.AccountBalance{
		Account: entity.Account{AccountType: accType, AccountSubtype: subtype},
		Balance: decimal.NewFromFloat(v),
	}
}

func TestBuildBalanceSheet_Buckets(t *testing.T) {
	b := contabil.BuildBalanceSheet([]entity.AccountBalance{
		balance(entity.AccountAtivo, entity.SubtypeCirculante, 500),
		balance(entity.AccountAtivo, entity.SubtypeCirculante, 100),
		balance(entity.AccountAtivo, entity.SubtypeNaoCirculante, 1000),
		balance(entity.AccountPassivo, entity.SubtypeCirculante, 300),
		balance(entity.AccountPassivo, entity.SubtypeNaoCirculante, 700),
		balance(entity.AccountPatrimonioLiquido, "", 600),
	})

	assert.True(t, b.AtivoCirculante.Equal(decimal.NewFromInt(600)))
	assert.True(t, b.AtivoNaoCirculante.Equal(decimal.NewFromInt(1000)))
	assert.True(t, b.TotalAtivo.Equal(decimal.NewFromInt(1600)))
	assert.True(t, b.PassivoCirculante.Equal(decimal.NewFromInt(300)))
	assert.True(t, b.PassivoNaoCirculante.Equal(decimal.NewFromInt(700)))
	assert.True(t, b.TotalPassivo.Equal(decimal.NewFromInt(1000)))
	assert.True(t, b.PatrimonioLiquido.Equal(decimal.NewFromInt(600)))
}

func TestBuildIncomeStatement_ResultadoBrutoELiquido(t *testing.T) {
	d := contabil.BuildIncomeStatement([]entity.AccountBalance{
		balance(entity.AccountReceita, entity.SubtypeOperacional, 1000),
		balance(entity.AccountReceita, entity.SubtypeNaoOperacional, 200),
		balance(entity.AccountCusto, "", 400),
		balance(entity.AccountDespesa, entity.SubtypeOperacional, 250),
		balance(entity.AccountDespesa, entity.SubtypeNaoOperacional, 50),
	})

	assert.True(t, d.TotalReceitas.Equal(decimal.NewFromInt(1200)))
	assert.True(t, d.ResultadoBruto.Equal(decimal.NewFromInt(800)), "receitas − custos")
	assert.True(t, d.TotalDespesas.Equal(decimal.NewFromInt(300)))
	assert.True(t, d.ResultadoLiquido.Equal(decimal.NewFromInt(500)), "bruto − despesas")
}

// Contas de ativo/passivo não contaminam a DRE e vice-versa.
func TestBuilders_IgnoramTiposForaDoEscopo(t *testing.T) {
	d := contabil.BuildIncomeStatement([]entity.AccountBalance{
		balance(entity.AccountAtivo, entity.SubtypeCirculante, 9999),
	})
	assert.True(t, d.TotalReceitas.IsZero())

	b := contabil.BuildBalanceSheet([]entity.AccountBalance{
		balance(entity.AccountReceita, entity.SubtypeOperacional, 9999),
	})
	assert.True(t, b.TotalAtivo.IsZero())
}

func TestBuilders_EntradaVazia(t *testing.T) {
	b := contabil.BuildBalanceSheet(nil)
	assert.True(t, b.TotalAtivo.IsZero())

	d := contabil.BuildIncomeStatement(nil)
	assert.True(t, d.ResultadoLiquido.IsZero())
}
