package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound             = errors.New("recurso não encontrado")
	ErrUserNotFound         = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists   = errors.New("o email já está cadastrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrUnauthorized         = errors.New("não autorizado")
	ErrForbidden            = errors.New("acesso negado")
	ErrConflict             = errors.New("conflito com o estado atual")
	ErrInsufficientStock    = errors.New("estoque insuficiente")
	ErrUnbalancedEntry      = errors.New("lançamento não balanceado: débitos e créditos diferem")
	ErrEmptyEntry           = errors.New("lançamento sem itens")
	ErrPaymentSplitMismatch = errors.New("a soma das formas de pagamento difere do total da venda")
	ErrImmutableMovement    = errors.New("apenas movimentos manuais podem ser alterados ou excluídos")
	ErrSaleAlreadyCanceled  = errors.New("a venda já está cancelada")
)
