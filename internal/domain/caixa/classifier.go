// Package caixa contém os serviços de domínio da posição de caixa:
// classificação de categorias em compartimentos e agregação de movimentos.
package caixa

// Bucket compartimento de um movimento: caixa físico ou banco.
type Bucket string

const (
	BucketCash Bucket = "cash"
	BucketBank Bucket = "bank"
)

// categoryBuckets tabela estática categoria → compartimento.
// Cada categoria mapeia para exatamente um compartimento.
var categoryBuckets = map[string]Bucket{
	// caixa físico
	"dinheiro":    BucketCash,
	"venda":       BucketCash,
	"troco":       BucketCash,
	"sangria":     BucketCash,
	"saldo_caixa": BucketCash,
	// banco
	"pix":            BucketBank,
	"cartao_debito":  BucketBank,
	"cartao_credito": BucketBank,
	"transferencia":  BucketBank,
	"despesa":        BucketBank,
	"saldo_banco":    BucketBank,
}

// Classify mapeia a categoria de um movimento para seu compartimento.
// Função total: categorias desconhecidas caem em banco (fallback documentado).
func Classify(category string) Bucket {
	if b, ok := categoryBuckets[category]; ok {
		return b
	}
	return BucketBank
}

// CashCategories devolve as categorias do compartimento caixa (para validação de entrada manual).
func CashCategories() []string {
	return bucketCategories(BucketCash)
}

// BankCategories devolve as categorias do compartimento banco.
func BankCategories() []string {
	return bucketCategories(BucketBank)
}

func bucketCategories(b Bucket) []string {
	var out []string
	for cat, bucket := range categoryBuckets {
		if bucket == b {
			out = append(out, cat)
		}
	}
	return out
}
