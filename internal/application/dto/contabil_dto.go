package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAccountRequest entrada para criar uma conta do plano de contas.
type CreateAccountRequest struct {
	Code           string `json:"code" validate:"required"`
	Name           string `json:"name" validate:"required"`
	AccountType    string `json:"account_type" validate:"required,oneof=ativo passivo patrimonio_liquido receita despesa custo"`
	AccountSubtype string `json:"account_subtype" validate:"omitempty,oneof=circulante nao_circulante operacional nao_operacional"`
	ParentID       string `json:"parent_id"`
}

// AccountResponse saída de uma conta.
type AccountResponse struct {
	ID             string `json:"id"`
	Code           string `json:"code"`
	Name           string `json:"name"`
	AccountType    string `json:"account_type"`
	AccountSubtype string `json:"account_subtype"`
	ParentID       string `json:"parent_id,omitempty"`
}

// EntryItemRequest linha de débito/crédito de um lançamento.
type EntryItemRequest struct {
	AccountID    string          `json:"account_id" validate:"required"`
	DebitAmount  decimal.Decimal `json:"debit_amount"`
	CreditAmount decimal.Decimal `json:"credit_amount"`
}

// CreateEntryRequest lançamento contábil por partidas dobradas.
type CreateEntryRequest struct {
	EntryDate   time.Time          `json:"entry_date"`
	Description string             `json:"description" validate:"required"`
	Items       []EntryItemRequest `json:"items" validate:"required,min=2"`
}

// EntryItemResponse linha de um lançamento persistido.
type EntryItemResponse struct {
	AccountID    string          `json:"account_id"`
	DebitAmount  decimal.Decimal `json:"debit_amount"`
	CreditAmount decimal.Decimal `json:"credit_amount"`
}

// EntryResponse lançamento contábil persistido.
type EntryResponse struct {
	ID          string              `json:"id"`
	EntryNumber string              `json:"entry_number"`
	EntryDate   time.Time           `json:"entry_date"`
	Description string              `json:"description"`
	Items       []EntryItemResponse `json:"items"`
}

// BalanceSheetResponse balanço patrimonial do período.
type BalanceSheetResponse struct {
	AtivoCirculante      decimal.Decimal `json:"ativo_circulante"`
	AtivoNaoCirculante   decimal.Decimal `json:"ativo_nao_circulante"`
	TotalAtivo           decimal.Decimal `json:"total_ativo"`
	PassivoCirculante    decimal.Decimal `json:"passivo_circulante"`
	PassivoNaoCirculante decimal.Decimal `json:"passivo_nao_circulante"`
	TotalPassivo         decimal.Decimal `json:"total_passivo"`
	PatrimonioLiquido    decimal.Decimal `json:"patrimonio_liquido"`
}

// IncomeStatementResponse DRE do período.
type IncomeStatementResponse struct {
	ReceitasOperacionais    decimal.Decimal `json:"receitas_operacionais"`
	ReceitasNaoOperacionais decimal.Decimal `json:"receitas_nao_operacionais"`
	Custos                  decimal.Decimal `json:"custos"`
	DespesasOperacionais    decimal.Decimal `json:"despesas_operacionais"`
	DespesasNaoOperacionais decimal.Decimal `json:"despesas_nao_operacionais"`
	ResultadoBruto          decimal.Decimal `json:"resultado_bruto"`
	ResultadoLiquido        decimal.Decimal `json:"resultado_liquido"`
}

// RatioResponse índice financeiro com banda qualitativa.
// Defined=false sinaliza denominador zero (valor indefinido, sem divisão).
type RatioResponse struct {
	Value   decimal.Decimal `json:"value"`
	Defined bool            `json:"defined"`
	Band    string          `json:"band"`
}

// RatiosResponse índices financeiros do período.
type RatiosResponse struct {
	LiquidezCorrente RatioResponse `json:"liquidez_corrente"`
	MargemLiquida    RatioResponse `json:"margem_liquida"`
	RentabilidadePL  RatioResponse `json:"rentabilidade_pl"`
}
