package usecase

import (
	"context"

	"github.com/lojafacil/pdv-api/internal/domain/repository"
)

// TxRepos repositórios ligados à mesma transação de banco. Tudo que o callback
// fizer com eles confirma ou desfaz junto.
type TxRepos struct {
	Movements  repository.MovementRepository
	Sales      repository.SaleRepository
	Products   repository.ProductRepository
	Stock      repository.StockRepository
	StockMoves repository.StockMovementRepository
	Entries    repository.AccountingEntryRepository
	Accounts   repository.AccountRepository
}

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa transação. Garante atomicidade do checkout,
// da importação de NFe e dos lançamentos contábeis.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}
