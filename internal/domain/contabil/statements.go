package contabil

import (
	"github.com/shopspring/decimal"

	"github.com/lojafacil/pdv-api/internal/domain/entity"
)

// BalanceSheet balanço patrimonial agregado a partir dos saldos do plano de contas.
type BalanceSheet struct {
	AtivoCirculante      decimal.Decimal
	AtivoNaoCirculante   decimal.Decimal
	TotalAtivo           decimal.Decimal
	PassivoCirculante    decimal.Decimal
	PassivoNaoCirculante decimal.Decimal
	TotalPassivo         decimal.Decimal
	PatrimonioLiquido    decimal.Decimal
}

// IncomeStatement demonstração de resultado (DRE).
// ResultadoBruto = receitas − custos; ResultadoLiquido = bruto − despesas.
type IncomeStatement struct {
	ReceitasOperacionais    decimal.Decimal
	ReceitasNaoOperacionais decimal.Decimal
	TotalReceitas           decimal.Decimal
	TotalCustos             decimal.Decimal
	ResultadoBruto          decimal.Decimal
	DespesasOperacionais    decimal.Decimal
	DespesasNaoOperacionais decimal.Decimal
	TotalDespesas           decimal.Decimal
	ResultadoLiquido        decimal.Decimal
}

// BuildBalanceSheet agrega os saldos já classificados em ativo circulante/não
// circulante, passivo circulante/não circulante e patrimônio líquido.
// Soma pura: a origem dos saldos por conta é delegada ao repositório.
func BuildBalanceSheet(balances []entity.AccountBalance) BalanceSheet {
	var b BalanceSheet
	for _, ab := range balances {
		switch ab.Account.AccountType {
		case entity.AccountAtivo:
			if ab.Account.AccountSubtype == entity.SubtypeNaoCirculante {
				b.AtivoNaoCirculante = b.AtivoNaoCirculante.Add(ab.Balance)
			} else {
				b.AtivoCirculante = b.AtivoCirculante.Add(ab.Balance)
			}
		case entity.AccountPassivo:
			if ab.Account.AccountSubtype == entity.SubtypeNaoCirculante {
				b.PassivoNaoCirculante = b.PassivoNaoCirculante.Add(ab.Balance)
			} else {
				b.PassivoCirculante = b.PassivoCirculante.Add(ab.Balance)
			}
		case entity.AccountPatrimonioLiquido:
			b.PatrimonioLiquido = b.PatrimonioLiquido.Add(ab.Balance)
		}
	}
	b.TotalAtivo = b.AtivoCirculante.Add(b.AtivoNaoCirculante)
	b.TotalPassivo = b.PassivoCirculante.Add(b.PassivoNaoCirculante)
	return b
}

// BuildIncomeStatement agrega receitas, custos e despesas nos buckets
// operacional/não operacional e deriva os resultados bruto e líquido.
func BuildIncomeStatement(balances []entity.AccountBalance) IncomeStatement {
	var d IncomeStatement
	for _, ab := range balances {
		switch ab.Account.AccountType {
		case entity.AccountReceita:
			if ab.Account.AccountSubtype == entity.SubtypeNaoOperacional {
				d.ReceitasNaoOperacionais = d.ReceitasNaoOperacionais.Add(ab.Balance)
			} else {
				d.ReceitasOperacionais = d.ReceitasOperacionais.Add(ab.Balance)
			}
		case entity.AccountCusto:
			d.TotalCustos = d.TotalCustos.Add(ab.Balance)
		case entity.AccountDespesa:
			if ab.Account.AccountSubtype == entity.SubtypeNaoOperacional {
				d.DespesasNaoOperacionais = d.DespesasNaoOperacionais.Add(ab.Balance)
			} else {
				d.DespesasOperacionais = d.DespesasOperacionais.Add(ab.Balance)
			}
		}
	}
	d.TotalReceitas = d.ReceitasOperacionais.Add(d.ReceitasNaoOperacionais)
	d.TotalDespesas = d.DespesasOperacionais.Add(d.DespesasNaoOperacionais)
	d.ResultadoBruto = d.TotalReceitas.Sub(d.TotalCustos)
	d.ResultadoLiquido = d.ResultadoBruto.Sub(d.TotalDespesas)
	return d
}
