package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lojafacil/pdv-api/internal/application/dto"
	"github.com/lojafacil/pdv-api/internal/domain"
	"github.com/lojafacil/pdv-api/internal/domain/contabil"
	"github.com/lojafacil/pdv-api/internal/domain/entity"
	"github.com/lojafacil/pdv-api/internal/domain/repository"
)

// ContabilUseCase plano de contas, lançamentos e demonstrativos.
type ContabilUseCase struct {
	accounts repository.AccountRepository
	entries  repository.AccountingEntryRepository
	txRunner TxRunner
}

// NewContabilUseCase constrói o caso de uso.
func NewContabilUseCase(
	accounts repository.AccountRepository,
	entries repository.AccountingEntryRepository,
	txRunner TxRunner,
) *ContabilUseCase {
	return &ContabilUseCase{accounts: accounts, entries: entries, txRunner: txRunner}
}

// CreateAccount cria uma conta do plano de contas.
func (uc *ContabilUseCase) CreateAccount(ctx context.Context, storeID string, in dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	if !validAccountType(in.AccountType) {
		return nil, fmt.Errorf("%w: tipo de conta %q", domain.ErrInvalidInput, in.AccountType)
	}
	if in.ParentID != "" {
		parent, err := uc.accounts.GetByID(ctx, in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil || parent.StoreID != storeID {
			return nil, fmt.Errorf("%w: conta pai %s", domain.ErrNotFound, in.ParentID)
		}
	}
	a := &entity.Account{
		ID:             uuid.New().String(),
		StoreID:        storeID,
		Code:           in.Code,
		Name:           in.Name,
		AccountType:    in.AccountType,
		AccountSubtype: in.AccountSubtype,
		ParentID:       in.ParentID,
		CreatedAt:      time.Now(),
	}
	if err := uc.accounts.Create(ctx, a); err != nil {
		return nil, err
	}
	return toAccountResponse(a), nil
}

// ListAccounts lista o plano de contas da loja.
func (uc *ContabilUseCase) ListAccounts(ctx context.Context, storeID string) ([]dto.AccountResponse, error) {
	accounts, err := uc.accounts.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AccountResponse, 0, len(accounts))
	for i := range accounts {
		out = append(out, *toAccountResponse(&accounts[i]))
	}
	return out, nil
}

// CreateEntry valida e persiste um lançamento por partidas dobradas.
// Lançamento desbalanceado é rejeitado antes de qualquer escrita; a numeração
// e a gravação dos itens acontecem na mesma transação.
func (uc *ContabilUseCase) CreateEntry(ctx context.Context, storeID, userID string, in dto.CreateEntryRequest) (*dto.EntryResponse, error) {
	entryID := uuid.New().String()
	items := make([]entity.AccountingEntryItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, entity.AccountingEntryItem{
			ID:           uuid.New().String(),
			EntryID:      entryID,
			AccountID:    it.AccountID,
			DebitAmount:  it.DebitAmount,
			CreditAmount: it.CreditAmount,
		})
	}
	if err := contabil.ValidateEntry(items); err != nil {
		return nil, err
	}
	for _, it := range items {
		account, err := uc.accounts.GetByID(ctx, it.AccountID)
		if err != nil {
			return nil, err
		}
		if account == nil || account.StoreID != storeID {
			return nil, fmt.Errorf("%w: conta %s", domain.ErrNotFound, it.AccountID)
		}
	}

	entryDate := in.EntryDate
	if entryDate.IsZero() {
		entryDate = time.Now()
	}
	entry := &entity.AccountingEntry{
		ID:          entryID,
		StoreID:     storeID,
		EntryDate:   entryDate,
		Description: in.Description,
		Items:       items,
		CreatedAt:   time.Now(),
		CreatedBy:   userID,
	}
	err := uc.txRunner.Run(ctx, func(repos TxRepos) error {
		number, err := repos.Entries.NextEntryNumber(ctx, storeID)
		if err != nil {
			return err
		}
		entry.EntryNumber = number
		return repos.Entries.Create(ctx, entry)
	})
	if err != nil {
		return nil, err
	}
	return toEntryResponse(entry), nil
}

// GetEntry obtém um lançamento da loja.
func (uc *ContabilUseCase) GetEntry(ctx context.Context, storeID, id string) (*dto.EntryResponse, error) {
	entry, err := uc.entries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil || entry.StoreID != storeID {
		return nil, nil
	}
	return toEntryResponse(entry), nil
}

// ListEntries lista os lançamentos do período.
func (uc *ContabilUseCase) ListEntries(ctx context.Context, storeID string, start, end time.Time) ([]dto.EntryResponse, error) {
	entries, err := uc.entries.ListByPeriod(ctx, storeID, start, end)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, *toEntryResponse(e))
	}
	return out, nil
}

// BalanceSheet monta o balanço patrimonial do período a partir dos saldos
// apurados por conta.
func (uc *ContabilUseCase) BalanceSheet(ctx context.Context, storeID string, start, end time.Time) (*dto.BalanceSheetResponse, error) {
	balances, err := uc.accounts.GetBalances(ctx, storeID, start, end)
	if err != nil {
		return nil, err
	}
	b := contabil.BuildBalanceSheet(balances)
	return &dto.BalanceSheetResponse{
		AtivoCirculante:      b.AtivoCirculante,
		AtivoNaoCirculante:   b.AtivoNaoCirculante,
		TotalAtivo:           b.TotalAtivo,
		PassivoCirculante:    b.PassivoCirculante,
		PassivoNaoCirculante: b.PassivoNaoCirculante,
		TotalPassivo:         b.TotalPassivo,
		PatrimonioLiquido:    b.PatrimonioLiquido,
	}, nil
}

// IncomeStatement monta a DRE do período.
func (uc *ContabilUseCase) IncomeStatement(ctx context.Context, storeID string, start, end time.Time) (*dto.IncomeStatementResponse, error) {
	balances, err := uc.accounts.GetBalances(ctx, storeID, start, end)
	if err != nil {
		return nil, err
	}
	d := contabil.BuildIncomeStatement(balances)
	return &dto.IncomeStatementResponse{
		ReceitasOperacionais:    d.ReceitasOperacionais,
		ReceitasNaoOperacionais: d.ReceitasNaoOperacionais,
		Custos:                  d.TotalCustos,
		DespesasOperacionais:    d.DespesasOperacionais,
		DespesasNaoOperacionais: d.DespesasNaoOperacionais,
		ResultadoBruto:          d.ResultadoBruto,
		ResultadoLiquido:        d.ResultadoLiquido,
	}, nil
}

// Ratios calcula os índices financeiros do período sobre balanço e DRE.
func (uc *ContabilUseCase) Ratios(ctx context.Context, storeID string, start, end time.Time) (*dto.RatiosResponse, error) {
	balances, err := uc.accounts.GetBalances(ctx, storeID, start, end)
	if err != nil {
		return nil, err
	}
	b := contabil.BuildBalanceSheet(balances)
	d := contabil.BuildIncomeStatement(balances)
	return &dto.RatiosResponse{
		LiquidezCorrente: toRatioResponse(contabil.LiquidezCorrente(b.AtivoCirculante, b.PassivoCirculante)),
		MargemLiquida:    toRatioResponse(contabil.MargemLiquida(d.ResultadoLiquido, d.TotalReceitas)),
		RentabilidadePL:  toRatioResponse(contabil.RentabilidadePL(d.ResultadoLiquido, b.PatrimonioLiquido)),
	}, nil
}

func validAccountType(t string) bool {
	switch t {
	case entity.AccountAtivo, entity.AccountPassivo, entity.AccountPatrimonioLiquido,
		entity.AccountReceita, entity.AccountDespesa, entity.AccountCusto:
		return true
	}
	return false
}

func toAccountResponse(a *entity.Account) *dto.AccountResponse {
	return &dto.AccountResponse{
		ID:             a.ID,
		Code:           a.Code,
		Name:           a.Name,
		AccountType:    a.AccountType,
		AccountSubtype: a.AccountSubtype,
		ParentID:       a.ParentID,
	}
}

func toEntryResponse(e *entity.AccountingEntry) *dto.EntryResponse {
	resp := &dto.EntryResponse{
		ID:          e.ID,
		EntryNumber: e.EntryNumber,
		EntryDate:   e.EntryDate,
		Description: e.Description,
	}
	for _, it := range e.Items {
		resp.Items = append(resp.Items, dto.EntryItemResponse{
			AccountID:    it.AccountID,
			DebitAmount:  it.DebitAmount,
			CreditAmount: it.CreditAmount,
		})
	}
	return resp
}

func toRatioResponse(r contabil.Ratio) dto.RatioResponse {
	return dto.RatioResponse{Value: r.Value, Defined: r.Defined, Band: string(r.Band)}
}
