package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/lojafacil/pdv-api/internal/domain"
	"github.com/lojafacil/pdv-api/internal/domain/entity"
	"github.com/lojafacil/pdv-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementação do porto MovementRepository sobre PostgreSQL (pool ou tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, store_id, type, amount, category, description, date, reference_type, reference_id, created_at, created_by`

// Create persiste um movimento de caixa.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	query := `
		INSERT INTO cash_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.StoreID, string(m.Type), m.Amount, m.Category, m.Description,
		m.Date, m.ReferenceType, m.ReferenceID, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtém um movimento por ID.
func (r *MovementRepo) GetByID(ctx context.Context, id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM cash_movements WHERE id = $1`
	m, err := scanMovement(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// Update atualiza descrição, valor, categoria e tipo de um movimento manual.
// A regra "apenas manuais" é verificada no caso de uso; aqui só persiste.
func (r *MovementRepo) Update(ctx context.Context, m *entity.Movement) error {
	query := `
		UPDATE cash_movements
		SET type = $2, amount = $3, category = $4, description = $5, date = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, m.ID, string(m.Type), m.Amount, m.Category, m.Description, m.Date)
	if err != nil {
		return fmt.Errorf("update movement: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove um movimento por ID.
func (r *MovementRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM cash_movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByDate lista movimentos pelo dia contábil, ordenados por created_at.
func (r *MovementRepo) ListByDate(ctx context.Context, storeID string, start, end time.Time) ([]entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM cash_movements
		WHERE store_id = $1 AND date >= $2 AND date <= $3
		ORDER BY created_at`
	return r.list(ctx, query, storeID, start, end)
}

// ListByCreatedAt lista movimentos por created_at (busca sobreposta à ListByDate).
func (r *MovementRepo) ListByCreatedAt(ctx context.Context, storeID string, start, end time.Time) ([]entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM cash_movements
		WHERE store_id = $1 AND created_at >= $2 AND created_at <= $3
		ORDER BY created_at`
	return r.list(ctx, query, storeID, start, end)
}

func (r *MovementRepo) list(ctx context.Context, query string, args ...any) ([]entity.Movement, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, *m)
	}
	return list, rows.Err()
}

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	var typ string
	err := row.Scan(&m.ID, &m.StoreID, &typ, &m.Amount, &m.Category, &m.Description,
		&m.Date, &m.ReferenceType, &m.ReferenceID, &m.CreatedAt, &m.CreatedBy)
	if err != nil {
		return nil, err
	}
	m.Type = entity.MovementType(typ)
	return &m, nil
}
