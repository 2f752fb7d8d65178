// Package vendas contém os serviços de domínio de vendas e orçamentos:
// totais de documento, conferência de pagamento parcial e apuração de lucro.
package vendas

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lojafacil/pdv-api/internal/domain"
	"github.com/lojafacil/pdv-api/internal/domain/entity"
)

// centTolerance tolerância de centavos para comparações monetárias.
var centTolerance = decimal.NewFromFloat(0.01)

// LineTotal total de uma linha: preço × quantidade.
func LineTotal(price, quantity decimal.Decimal) decimal.Decimal {
	return price.Mul(quantity)
}

// Subtotal soma dos totais de linha, antes de desconto e frete.
func Subtotal(items []entity.SaleItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(LineTotal(it.Price, it.Quantity))
	}
	return sum
}

// TotalAmount total do documento: subtotal − desconto + frete, nunca negativo.
// Ex.: subtotal=100, desconto=150, frete=0 ⇒ total=0.
func TotalAmount(subtotal, discount, shipping decimal.Decimal) decimal.Decimal {
	total := subtotal.Sub(discount).Add(shipping)
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

// ValidateItems verifica os invariantes das linhas: quantidade > 0, preço >= 0
// e Total == Price × Quantity em cada linha.
func ValidateItems(items []entity.SaleItem) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: venda sem itens", domain.ErrInvalidInput)
	}
	for i, it := range items {
		if !it.Quantity.IsPositive() {
			return fmt.Errorf("%w: quantidade do item %d deve ser positiva", domain.ErrInvalidInput, i)
		}
		if it.Price.IsNegative() {
			return fmt.Errorf("%w: preço do item %d não pode ser negativo", domain.ErrInvalidInput, i)
		}
		if !it.Total.Equal(LineTotal(it.Price, it.Quantity)) {
			return fmt.Errorf("%w: total do item %d difere de preço × quantidade", domain.ErrInvalidInput, i)
		}
	}
	return nil
}

// ValidateSplits confere o pagamento parcial: a soma das parcelas deve bater
// com o total da venda dentro da tolerância de 0.01.
func ValidateSplits(splits []entity.PaymentSplit, total decimal.Decimal) error {
	sum := decimal.Zero
	for _, s := range splits {
		if s.Amount.IsNegative() {
			return fmt.Errorf("%w: parcela negativa", domain.ErrInvalidInput)
		}
		sum = sum.Add(s.Amount)
	}
	if sum.Sub(total).Abs().GreaterThanOrEqual(centTolerance) {
		return fmt.Errorf("%w: parcelas somam %s, total é %s",
			domain.ErrPaymentSplitMismatch, sum.String(), total.String())
	}
	return nil
}
