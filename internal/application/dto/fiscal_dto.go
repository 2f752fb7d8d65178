package dto

import "github.com/shopspring/decimal"

// ImportedItemResponse resultado da importação de um item da NFe.
type ImportedItemResponse struct {
	ProductID string          `json:"product_id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	NewCost   decimal.Decimal `json:"new_cost"` // custo médio após a entrada
	Created   bool            `json:"created"`  // true quando o produto foi criado na importação
}

// ImportNFeResponse resumo da importação de uma NFe.
type ImportNFeResponse struct {
	ChaveAcesso string                 `json:"chave_acesso"`
	EmitterCNPJ string                 `json:"emitter_cnpj"`
	EmitterName string                 `json:"emitter_name"`
	Total       decimal.Decimal        `json:"total"`
	Items       []ImportedItemResponse `json:"items"`
}
