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

var (
	_ repository.AccountRepository         = (*AccountRepo)(nil)
	_ repository.AccountingEntryRepository = (*AccountingEntryRepo)(nil)
)

// AccountRepo persistência do plano de contas.
type AccountRepo struct {
	q Querier
}

// NewAccountRepository constrói o adaptador.
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

// Create persiste uma conta do plano de contas.
func (r *AccountRepo) Create(ctx context.Context, a *entity.Account) error {
	query := `
		INSERT INTO accounts (id, store_id, code, name, account_type, account_subtype, parent_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.StoreID, a.Code, a.Name, a.AccountType, a.AccountSubtype, a.ParentID, a.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID obtém uma conta por ID.
func (r *AccountRepo) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	query := `
		SELECT id, store_id, code, name, account_type, account_subtype, COALESCE(parent_id, ''), created_at
		FROM accounts WHERE id = $1`
	var a entity.Account
	err := r.q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.StoreID, &a.Code, &a.Name, &a.AccountType, &a.AccountSubtype, &a.ParentID, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return &a, nil
}

// ListByStore lista o plano de contas da loja ordenado pelo código.
func (r *AccountRepo) ListByStore(ctx context.Context, storeID string) ([]entity.Account, error) {
	query := `
		SELECT id, store_id, code, name, account_type, account_subtype, COALESCE(parent_id, ''), created_at
		FROM accounts WHERE store_id = $1 ORDER BY code`
	rows, err := r.q.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()
	var list []entity.Account
	for rows.Next() {
		var a entity.Account
		if err := rows.Scan(&a.ID, &a.StoreID, &a.Code, &a.Name, &a.AccountType, &a.AccountSubtype, &a.ParentID, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// GetBalances apura o saldo por conta no período, já na natureza da conta:
// débitos − créditos para ativo/despesa/custo, créditos − débitos para
// passivo/PL/receita. Contas sem movimento entram com saldo zero.
func (r *AccountRepo) GetBalances(ctx context.Context, storeID string, start, end time.Time) ([]entity.AccountBalance, error) {
	query := `
		SELECT a.id, a.store_id, a.code, a.name, a.account_type, a.account_subtype,
			COALESCE(a.parent_id, ''), a.created_at,
			COALESCE(SUM(CASE
				WHEN a.account_type IN ('passivo', 'patrimonio_liquido', 'receita')
					THEN i.credit_amount - i.debit_amount
				ELSE i.debit_amount - i.credit_amount
			END), 0) AS balance
		FROM accounts a
		LEFT JOIN accounting_entry_items i ON i.account_id = a.id
		LEFT JOIN accounting_entries e ON e.id = i.entry_id
			AND e.entry_date >= $2 AND e.entry_date <= $3
		WHERE a.store_id = $1
		GROUP BY a.id
		ORDER BY a.code`
	rows, err := r.q.Query(ctx, query, storeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("account balances: %w", err)
	}
	defer rows.Close()
	var list []entity.AccountBalance
	for rows.Next() {
		var b entity.AccountBalance
		if err := rows.Scan(&b.Account.ID, &b.Account.StoreID, &b.Account.Code, &b.Account.Name,
			&b.Account.AccountType, &b.Account.AccountSubtype, &b.Account.ParentID,
			&b.Account.CreatedAt, &b.Balance); err != nil {
			return nil, fmt.Errorf("scan balance: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// AccountingEntryRepo persistência dos lançamentos contábeis.
type AccountingEntryRepo struct {
	q Querier
}

// NewAccountingEntryRepository constrói o adaptador.
func NewAccountingEntryRepository(q Querier) *AccountingEntryRepo {
	return &AccountingEntryRepo{q: q}
}

// Create persiste o lançamento e seus itens. O chamador valida o balanceamento
// antes; aqui o lançamento já chega íntegro.
func (r *AccountingEntryRepo) Create(ctx context.Context, e *entity.AccountingEntry) error {
	query := `
		INSERT INTO accounting_entries (id, store_id, entry_number, entry_date, description, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.StoreID, e.EntryNumber, e.EntryDate, e.Description, e.CreatedAt, e.CreatedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert entry: %w", err)
	}
	for _, it := range e.Items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO accounting_entry_items (id, entry_id, account_id, debit_amount, credit_amount)
			VALUES ($1, $2, $3, $4, $5)`,
			it.ID, e.ID, it.AccountID, it.DebitAmount, it.CreditAmount)
		if err != nil {
			return fmt.Errorf("insert entry item: %w", err)
		}
	}
	return nil
}

// GetByID obtém um lançamento com seus itens.
func (r *AccountingEntryRepo) GetByID(ctx context.Context, id string) (*entity.AccountingEntry, error) {
	query := `
		SELECT id, store_id, entry_number, entry_date, description, created_at, created_by
		FROM accounting_entries WHERE id = $1`
	var e entity.AccountingEntry
	err := r.q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.StoreID, &e.EntryNumber, &e.EntryDate, &e.Description, &e.CreatedAt, &e.CreatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get entry: %w", err)
	}
	if err := r.loadItems(ctx, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// ListByPeriod lista lançamentos do período com itens, por data e número.
func (r *AccountingEntryRepo) ListByPeriod(ctx context.Context, storeID string, start, end time.Time) ([]*entity.AccountingEntry, error) {
	query := `
		SELECT id, store_id, entry_number, entry_date, description, created_at, created_by
		FROM accounting_entries
		WHERE store_id = $1 AND entry_date >= $2 AND entry_date <= $3
		ORDER BY entry_date, entry_number`
	rows, err := r.q.Query(ctx, query, storeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.AccountingEntry
	for rows.Next() {
		var e entity.AccountingEntry
		if err := rows.Scan(&e.ID, &e.StoreID, &e.EntryNumber, &e.EntryDate, &e.Description, &e.CreatedAt, &e.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		list = append(list, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, e := range list {
		if err := r.loadItems(ctx, e); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// NextEntryNumber devolve o próximo número sequencial de lançamento da loja,
// no formato LANC-000001.
func (r *AccountingEntryRepo) NextEntryNumber(ctx context.Context, storeID string) (string, error) {
	var count int64
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM accounting_entries WHERE store_id = $1`, storeID).Scan(&count)
	if err != nil {
		return "", fmt.Errorf("next entry number: %w", err)
	}
	return fmt.Sprintf("LANC-%06d", count+1), nil
}

func (r *AccountingEntryRepo) loadItems(ctx context.Context, e *entity.AccountingEntry) error {
	rows, err := r.q.Query(ctx, `
		SELECT id, entry_id, account_id, debit_amount, credit_amount
		FROM accounting_entry_items WHERE entry_id = $1`, e.ID)
	if err != nil {
		return fmt.Errorf("list entry items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.AccountingEntryItem
		if err := rows.Scan(&it.ID, &it.EntryID, &it.AccountID, &it.DebitAmount, &it.CreditAmount); err != nil {
			return fmt.Errorf("scan entry item: %w", err)
		}
		e.Items = append(e.Items, it)
	}
	return rows.Err()
}
