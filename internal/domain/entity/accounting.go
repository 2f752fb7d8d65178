package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de conta do plano de contas.
const (
	AccountAtivo             = "ativo"
	AccountPassivo           = "passivo"
	AccountPatrimonioLiquido = "patrimonio_liquido"
	AccountReceita           = "receita"
	AccountDespesa           = "despesa"
	AccountCusto             = "custo"
)

// Subtipos de conta (classificação dentro do tipo).
const (
	SubtypeCirculante     = "circulante"
	SubtypeNaoCirculante  = "nao_circulante"
	SubtypeOperacional    = "operacional"
	SubtypeNaoOperacional = "nao_operacional"
)

// Account é uma conta do plano de contas. Hierárquica via ParentID (árvore, sem ciclos).
type Account struct {
	ID             string
	StoreID        string
	Code           string // ex.: 1.1.01
	Name           string
	AccountType    string // ativo | passivo | patrimonio_liquido | receita | despesa | custo
	AccountSubtype string // circulante | nao_circulante | operacional | nao_operacional
	ParentID       string // vazio = conta raiz
	CreatedAt      time.Time
}

// AccountingEntryItem linha de um lançamento contábil: débito ou crédito em uma conta.
type AccountingEntryItem struct {
	ID           string
	EntryID      string
	AccountID    string
	DebitAmount  decimal.Decimal
	CreditAmount decimal.Decimal
}

// AccountingEntry lançamento contábil por partidas dobradas.
// Invariante: soma de débitos == soma de créditos (tolerância 0.01), verificada
// antes de persistir; lançamentos desbalanceados são rejeitados.
type AccountingEntry struct {
	ID          string
	StoreID     string
	EntryNumber string
	EntryDate   time.Time
	Description string
	Items       []AccountingEntryItem
	CreatedAt   time.Time
	CreatedBy   string
}

// AccountBalance saldo apurado de uma conta (resultado de consulta no backend).
type AccountBalance struct {
	Account Account
	Balance decimal.Decimal
}
