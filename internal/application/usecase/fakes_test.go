package usecase_test

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lojafacil/pdv-api/internal/application/usecase"
	"github.com/lojafacil/pdv-api/internal/domain/entity"
	"github.com/lojafacil/pdv-api/internal/domain/repository"
)

// Fakes em memória para os casos de uso. Cada fake registra as escritas que
// recebeu para os testes conferirem efeitos colaterais.

type fakeMovementRepo struct {
	byDate    []entity.Movement
	byCreated []entity.Movement
	stored    map[string]*entity.Movement
	created   []*entity.Movement
	deleted   []string
}

func newFakeMovementRepo() *fakeMovementRepo {
	return &fakeMovementRepo{stored: make(map[string]*entity.Movement)}
}

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.Movement) error {
	cp := *m
	r.stored[m.ID] = &cp
	r.created = append(r.created, &cp)
	return nil
}

func (r *fakeMovementRepo) GetByID(_ context.Context, id string) (*entity.Movement, error) {
	m, ok := r.stored[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMovementRepo) Update(_ context.Context, m *entity.Movement) error {
	cp := *m
	r.stored[m.ID] = &cp
	return nil
}

func (r *fakeMovementRepo) Delete(_ context.Context, id string) error {
	delete(r.stored, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeMovementRepo) ListByDate(_ context.Context, _ string, _, _ time.Time) ([]entity.Movement, error) {
	return r.byDate, nil
}

func (r *fakeMovementRepo) ListByCreatedAt(_ context.Context, _ string, _, _ time.Time) ([]entity.Movement, error) {
	return r.byCreated, nil
}

type fakeSaleRepo struct {
	stored     map[string]*entity.Sale
	created    []*entity.Sale
	listResult []*entity.Sale
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{stored: make(map[string]*entity.Sale)}
}

func (r *fakeSaleRepo) Create(_ context.Context, s *entity.Sale) error {
	r.stored[s.ID] = s
	r.created = append(r.created, s)
	return nil
}

func (r *fakeSaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	s, ok := r.stored[id]
	if !ok {
		return nil, nil
	}
	return s, nil
}

func (r *fakeSaleRepo) UpdateStatus(_ context.Context, id, status string) error {
	if s, ok := r.stored[id]; ok {
		s.Status = status
	}
	return nil
}

func (r *fakeSaleRepo) ListByPeriod(_ context.Context, _, _ string, _, _ time.Time) ([]*entity.Sale, error) {
	return r.listResult, nil
}

type fakeProductRepo struct {
	stored  map[string]*entity.Product
	created []*entity.Product
	costs   map[string]decimal.Decimal
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{
		stored: make(map[string]*entity.Product),
		costs:  make(map[string]decimal.Decimal),
	}
	for _, p := range products {
		r.stored[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.stored[p.ID] = p
	r.created = append(r.created, p)
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.stored[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (r *fakeProductRepo) GetByStoreAndSKU(_ context.Context, storeID, sku string) (*entity.Product, error) {
	for _, p := range r.stored {
		if p.StoreID == storeID && p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetByBarcode(_ context.Context, storeID, barcode string) (*entity.Product, error) {
	for _, p := range r.stored {
		if p.StoreID == storeID && p.Barcode == barcode {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.stored[p.ID] = p
	return nil
}

func (r *fakeProductRepo) UpdateCost(_ context.Context, productID string, cost decimal.Decimal) error {
	if p, ok := r.stored[productID]; ok {
		p.Cost = cost
	}
	return nil
}

func (r *fakeProductRepo) ListByStore(_ context.Context, storeID string, _, _ int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.stored {
		if p.StoreID == storeID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	delete(r.stored, id)
	return nil
}

func (r *fakeProductRepo) CostMap(_ context.Context, _ string) (map[string]decimal.Decimal, error) {
	return r.costs, nil
}

type fakeStockRepo struct {
	quantities map[string]decimal.Decimal
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{quantities: make(map[string]decimal.Decimal)}
}

func (r *fakeStockRepo) GetForUpdate(_ context.Context, productID string) (decimal.Decimal, error) {
	return r.quantities[productID], nil
}

func (r *fakeStockRepo) SetQuantity(_ context.Context, productID string, quantity decimal.Decimal) error {
	r.quantities[productID] = quantity
	return nil
}

type fakeStockMoveRepo struct {
	created []*entity.StockMovement
}

func (r *fakeStockMoveRepo) Create(_ context.Context, m *entity.StockMovement) error {
	r.created = append(r.created, m)
	return nil
}

func (r *fakeStockMoveRepo) ListByProduct(_ context.Context, productID string, _, _ int) ([]entity.StockMovement, error) {
	var out []entity.StockMovement
	for _, m := range r.created {
		if m.ProductID == productID {
			out = append(out, *m)
		}
	}
	return out, nil
}

type fakeAccountRepo struct {
	stored   map[string]*entity.Account
	balances []entity.AccountBalance
}

func newFakeAccountRepo(accounts ...*entity.Account) *fakeAccountRepo {
	r := &fakeAccountRepo{stored: make(map[string]*entity.Account)}
	for _, a := range accounts {
		r.stored[a.ID] = a
	}
	return r
}

func (r *fakeAccountRepo) Create(_ context.Context, a *entity.Account) error {
	r.stored[a.ID] = a
	return nil
}

func (r *fakeAccountRepo) GetByID(_ context.Context, id string) (*entity.Account, error) {
	a, ok := r.stored[id]
	if !ok {
		return nil, nil
	}
	return a, nil
}

func (r *fakeAccountRepo) ListByStore(_ context.Context, storeID string) ([]entity.Account, error) {
	var out []entity.Account
	for _, a := range r.stored {
		if a.StoreID == storeID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAccountRepo) GetBalances(_ context.Context, _ string, _, _ time.Time) ([]entity.AccountBalance, error) {
	return r.balances, nil
}

type fakeEntryRepo struct {
	created []*entity.AccountingEntry
}

func (r *fakeEntryRepo) Create(_ context.Context, e *entity.AccountingEntry) error {
	r.created = append(r.created, e)
	return nil
}

func (r *fakeEntryRepo) GetByID(_ context.Context, id string) (*entity.AccountingEntry, error) {
	for _, e := range r.created {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeEntryRepo) ListByPeriod(_ context.Context, _ string, _, _ time.Time) ([]*entity.AccountingEntry, error) {
	return r.created, nil
}

func (r *fakeEntryRepo) NextEntryNumber(_ context.Context, _ string) (string, error) {
	return fmt.Sprintf("LANC-%06d", len(r.created)+1), nil
}

type fakeUserRepo struct {
	stored map[string]*entity.User
	rates  map[string]decimal.Decimal
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		stored: make(map[string]*entity.User),
		rates:  make(map[string]decimal.Decimal),
	}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.stored[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.stored[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.stored {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmailAndStore(_ context.Context, email, storeID string) (*entity.User, error) {
	for _, u := range r.stored {
		if u.Email == email && u.StoreID == storeID {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) CommissionRates(_ context.Context, _ string) (map[string]decimal.Decimal, error) {
	return r.rates, nil
}

// fakeCashRPC substitui as stored procedures do backend.
type fakeCashRPC struct {
	summary      *repository.CashSummary
	deniedStock  map[string]bool
	stockChecks  []string
	cancelResult bool
	canceled     []string
	adjustCalls  int
}

func newFakeCashRPC() *fakeCashRPC {
	return &fakeCashRPC{
		summary:      &repository.CashSummary{},
		deniedStock:  make(map[string]bool),
		cancelResult: true,
	}
}

func (r *fakeCashRPC) GetCashSummaryForDate(_ context.Context, _ string, _ time.Time) (*repository.CashSummary, error) {
	return r.summary, nil
}

func (r *fakeCashRPC) CheckAvailableStock(_ context.Context, productID string, _ decimal.Decimal) (bool, error) {
	r.stockChecks = append(r.stockChecks, productID)
	return !r.deniedStock[productID], nil
}

func (r *fakeCashRPC) CancelSaleAndReturnStock(_ context.Context, saleID string) (bool, error) {
	r.canceled = append(r.canceled, saleID)
	return r.cancelResult, nil
}

func (r *fakeCashRPC) AdjustCashBalance(_ context.Context, _ string, _ time.Time, _, _ decimal.Decimal) error {
	r.adjustCalls++
	return nil
}

// fakeTxRunner executa o callback direto sobre os fakes, sem transação real.
type fakeTxRunner struct {
	repos usecase.TxRepos
	runs  int
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(repos usecase.TxRepos) error) error {
	t.runs++
	return fn(t.repos)
}

var (
	_ repository.MovementRepository        = (*fakeMovementRepo)(nil)
	_ repository.SaleRepository            = (*fakeSaleRepo)(nil)
	_ repository.ProductRepository         = (*fakeProductRepo)(nil)
	_ repository.StockRepository           = (*fakeStockRepo)(nil)
	_ repository.StockMovementRepository   = (*fakeStockMoveRepo)(nil)
	_ repository.AccountRepository         = (*fakeAccountRepo)(nil)
	_ repository.AccountingEntryRepository = (*fakeEntryRepo)(nil)
	_ repository.UserRepository            = (*fakeUserRepo)(nil)
	_ repository.CashRPC                   = (*fakeCashRPC)(nil)
	_ usecase.TxRunner                     = (*fakeTxRunner)(nil)
)
