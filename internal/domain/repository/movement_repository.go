package repository

import (
	"context"
	"time"

	"github.com/lojafacil/pdv-api/internal/domain/entity"
)

// MovementRepository define o porto de persistência dos movimentos de caixa (DIP).
// Movimentos de origem venda/ajuste são imutáveis; Update/Delete valem só para manuais.
type MovementRepository interface {
	Create(ctx context.Context, m *entity.Movement) error
	GetByID(ctx context.Context, id string) (*entity.Movement, error)
	Update(ctx context.Context, m *entity.Movement) error
	Delete(ctx context.Context, id string) error

	// ListByDate devolve os movimentos cujo dia contábil (Date) cai no intervalo,
	// ordenados por data de criação.
	ListByDate(ctx context.Context, storeID string, start, end time.Time) ([]entity.Movement, error)

	// ListByCreatedAt devolve os movimentos com created_at dentro do intervalo.
	// Sobrepõe parcialmente ListByDate; o agregador une os dois resultados por ID.
	ListByCreatedAt(ctx context.Context, storeID string, start, end time.Time) ([]entity.Movement, error)
}
