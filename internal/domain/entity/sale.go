package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de documento de venda.
const (
	QuoteTypeOrcamento = "orcamento" // cotação, não baixa estoque nem gera caixa
	QuoteTypeVenda     = "venda"
)

// Status de um documento de venda.
const (
	SaleStatusAberta    = "aberta"
	SaleStatusConcluida = "concluida"
	SaleStatusCancelada = "cancelada"
)

// SaleItem linha de produto de uma venda ou orçamento.
// Total é sempre Price × Quantity (invariante verificada no domínio).
type SaleItem struct {
	ID        string
	SaleID    string
	ProductID string
	Name      string // snapshot do nome no momento da venda
	Price     decimal.Decimal
	Quantity  decimal.Decimal
	CostPrice *decimal.Decimal // snapshot do custo; nil = usar custo atual do produto
	Total     decimal.Decimal
}

// PaymentSplit parcela de pagamento quando a venda é paga em mais de uma forma.
type PaymentSplit struct {
	Method string // dinheiro, pix, cartao_debito, cartao_credito, transferencia
	Amount decimal.Decimal
}

// Sale representa um orçamento ou venda com seus itens.
// Invariante: TotalAmount = max(0, Subtotal − DiscountAmount + ShippingCost).
// Com pagamento parcial, a soma dos splits deve bater com TotalAmount (tolerância 0.01).
type Sale struct {
	ID                string
	StoreID           string
	QuoteType         string // orcamento | venda
	Status            string
	Items             []SaleItem
	Subtotal          decimal.Decimal
	DiscountAmount    decimal.Decimal
	ShippingCost      decimal.Decimal
	TotalAmount       decimal.Decimal
	PaymentMethod     string
	HasPartialPayment bool
	PaymentSplits     []PaymentSplit
	SellerID          string
	Date              time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsCanceled informa se a venda está cancelada (excluída de relatórios).
func (s *Sale) IsCanceled() bool {
	return s.Status == SaleStatusCancelada
}
