package vendas

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/lojafacil/pdv-api/internal/domain/entity"
)

// ProfitSummary apuração de vendas, custo e lucro de um período.
type ProfitSummary struct {
	TotalSales  decimal.Decimal
	TotalCost   decimal.Decimal
	TotalProfit decimal.Decimal
	Margin      decimal.Decimal // lucro / vendas; 0 quando não há vendas
}

// Profit apura vendas, custo e lucro sobre vendas não canceladas.
// Custo da linha: quantidade × (custo snapshot da linha, senão custo atual do
// produto no mapa, senão 0). Margem protegida contra divisão por zero.
func Profit(sales []*entity.Sale, currentCost map[string]decimal.Decimal) ProfitSummary {
	var s ProfitSummary
	for _, sale := range sales {
		if sale.IsCanceled() {
			continue
		}
		s.TotalSales = s.TotalSales.Add(sale.TotalAmount)
		for _, it := range sale.Items {
			cost := decimal.Zero
			switch {
			case it.CostPrice != nil:
				cost = *it.CostPrice
			default:
				if c, ok := currentCost[it.ProductID]; ok {
					cost = c
				}
			}
			s.TotalCost = s.TotalCost.Add(it.Quantity.Mul(cost))
		}
	}
	s.TotalProfit = s.TotalSales.Sub(s.TotalCost)
	if s.TotalSales.IsZero() {
		s.Margin = decimal.Zero
	} else {
		s.Margin = s.TotalProfit.Div(s.TotalSales)
	}
	return s
}

// CommissionLine comissão apurada de um vendedor no período.
type CommissionLine struct {
	SellerID   string
	SalesTotal decimal.Decimal
	Commission decimal.Decimal
}

// Commissions apura a comissão por vendedor: taxa% × total de vendas não
// canceladas. Vendedores sem taxa cadastrada ficam com comissão zero.
// Saída ordenada por SellerID para resultado determinístico.
func Commissions(sales []*entity.Sale, rates map[string]decimal.Decimal) []CommissionLine {
	bySeller := make(map[string]decimal.Decimal)
	for _, sale := range sales {
		if sale.IsCanceled() || sale.SellerID == "" {
			continue
		}
		bySeller[sale.SellerID] = bySeller[sale.SellerID].Add(sale.TotalAmount)
	}

	hundred := decimal.NewFromInt(100)
	lines := make([]CommissionLine, 0, len(bySeller))
	for sellerID, total := range bySeller {
		rate := rates[sellerID] // zero se não cadastrada
		lines = append(lines, CommissionLine{
			SellerID:   sellerID,
			SalesTotal: total,
			Commission: total.Mul(rate).Div(hundred),
		})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].SellerID < lines[j].SellerID })
	return lines
}
