// Package estoque contém os serviços de domínio de estoque.
package estoque

import "github.com/shopspring/decimal"

// CustoMedio implementa a lógica de custo médio ponderado (serviço de domínio).
// NovoCusto = ((EstoqueAtual * CustoAtual) + (QtdEntrada * CustoEntrada)) / (EstoqueAtual + QtdEntrada)
func CustoMedio(estoqueAtual, custoAtual, qtdEntrada, custoEntrada decimal.Decimal) decimal.Decimal {
	sum := estoqueAtual.Add(qtdEntrada)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := estoqueAtual.Mul(custoAtual).Add(qtdEntrada.Mul(custoEntrada))
	return num.Div(sum)
}
