package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest item do carrinho no checkout.
type SaleItemRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// PaymentSplitRequest parcela de pagamento combinado.
type PaymentSplitRequest struct {
	Method string          `json:"method" validate:"required"`
	Amount decimal.Decimal `json:"amount"`
}

// CheckoutRequest finalização de venda ou orçamento.
type CheckoutRequest struct {
	QuoteType      string                `json:"quote_type" validate:"required,oneof=orcamento venda"`
	Items          []SaleItemRequest     `json:"items" validate:"required,min=1"`
	DiscountAmount decimal.Decimal       `json:"discount_amount"`
	ShippingCost   decimal.Decimal       `json:"shipping_cost"`
	PaymentMethod  string                `json:"payment_method"`
	PaymentSplits  []PaymentSplitRequest `json:"payment_splits"`
	Date           time.Time             `json:"date"`
}

// SaleItemResponse item de uma venda.
type SaleItemResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  decimal.Decimal `json:"quantity"`
	Total     decimal.Decimal `json:"total"`
}

// SaleResponse saída de venda/orçamento.
type SaleResponse struct {
	ID             string                `json:"id"`
	QuoteType      string                `json:"quote_type"`
	Status         string                `json:"status"`
	Subtotal       decimal.Decimal       `json:"subtotal"`
	DiscountAmount decimal.Decimal       `json:"discount_amount"`
	ShippingCost   decimal.Decimal       `json:"shipping_cost"`
	TotalAmount    decimal.Decimal       `json:"total_amount"`
	PaymentMethod  string                `json:"payment_method"`
	PaymentSplits  []PaymentSplitRequest `json:"payment_splits,omitempty"`
	SellerID       string                `json:"seller_id"`
	Date           time.Time             `json:"date"`
	Items          []SaleItemResponse    `json:"items"`
}

// ProfitReportResponse apuração de vendas, custo e lucro do período.
type ProfitReportResponse struct {
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	TotalSales  decimal.Decimal `json:"total_sales"`
	TotalCost   decimal.Decimal `json:"total_cost"`
	TotalProfit decimal.Decimal `json:"total_profit"`
	Margin      decimal.Decimal `json:"margin"`
}

// CommissionLineResponse comissão apurada de um vendedor.
type CommissionLineResponse struct {
	SellerID   string          `json:"seller_id"`
	SellerName string          `json:"seller_name,omitempty"`
	TotalSales decimal.Decimal `json:"total_sales"`
	Rate       decimal.Decimal `json:"rate"`
	Commission decimal.Decimal `json:"commission"`
}

// CommissionReportResponse relatório de comissões do período.
type CommissionReportResponse struct {
	StartDate string                   `json:"start_date"`
	EndDate   string                   `json:"end_date"`
	Lines     []CommissionLineResponse `json:"lines"`
}

// DashboardResponse resumo do dia e do mês para a tela inicial.
type DashboardResponse struct {
	TodaySales  decimal.Decimal `json:"today_sales"`
	TodayProfit decimal.Decimal `json:"today_profit"`
	MonthSales  decimal.Decimal `json:"month_sales"`
	MonthProfit decimal.Decimal `json:"month_profit"`
	TodayCount  int             `json:"today_count"`
	MonthCount  int             `json:"month_count"`
}
