package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/lojafacil/pdv-api/internal/domain"
	"github.com/lojafacil/pdv-api/internal/domain/entity"
	"github.com/lojafacil/pdv-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementação do porto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository constrói o adaptador.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, store_id, email, password_hash, name, role, commission_rate, status, created_at, updated_at`

// Create persiste um usuário. E-mail duplicado devolve ErrEmailAlreadyExists.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		u.ID, u.StoreID, u.Email, u.PasswordHash, u.Name, u.Role,
		u.CommissionRate, u.Status, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtém um usuário por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// FindByEmail obtém um usuário pelo e-mail, em qualquer loja.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.getOne(ctx, query, email)
}

// GetByEmailAndStore obtém um usuário pelo e-mail dentro da loja.
func (r *UserRepo) GetByEmailAndStore(ctx context.Context, email, storeID string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND store_id = $2`
	return r.getOne(ctx, query, email, storeID)
}

// CommissionRates devolve a taxa de comissão por vendedor ativo da loja.
func (r *UserRepo) CommissionRates(ctx context.Context, storeID string) (map[string]decimal.Decimal, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, commission_rate FROM users
		WHERE store_id = $1 AND status = 'active'`, storeID)
	if err != nil {
		return nil, fmt.Errorf("commission rates: %w", err)
	}
	defer rows.Close()
	rates := make(map[string]decimal.Decimal)
	for rows.Next() {
		var id string
		var rate decimal.Decimal
		if err := rows.Scan(&id, &rate); err != nil {
			return nil, fmt.Errorf("scan rate: %w", err)
		}
		rates[id] = rate
	}
	return rates, rows.Err()
}

func (r *UserRepo) getOne(ctx context.Context, query string, args ...any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&u.ID, &u.StoreID, &u.Email, &u.PasswordHash, &u.Name, &u.Role,
		&u.CommissionRate, &u.Status, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
