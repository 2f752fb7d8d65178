package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lojafacil/pdv-api/internal/application/dto"
	"github.com/lojafacil/pdv-api/internal/application/usecase"
	"github.com/lojafacil/pdv-api/internal/domain"
	"github.com/lojafacil/pdv-api/internal/domain/entity"
)

func periodoInicio() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) }
func periodoFim() time.Time    { return time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC) }

type contabilFixture struct {
	uc       *usecase.ContabilUseCase
	accounts *fakeAccountRepo
	entries  *fakeEntryRepo
	txRunner *fakeTxRunner
}

// newContabilFixture monta o caso de uso com duas contas da loja: caixa
// (ativo circulante) e receita de vendas.
func newContabilFixture() *contabilFixture {
	caixa := &entity.Account{
		ID:             "acc-caixa",
		StoreID:        lojaID,
		Code:           "1.1.01",
		Name:           "Caixa",
		AccountType:    entity.AccountAtivo,
		AccountSubtype: entity.SubtypeCirculante,
	}
	receita := &entity.Account{
		ID:             "acc-receita",
		StoreID:        lojaID,
		Code:           "3.1.01",
		Name:           "Receita de Vendas",
		AccountType:    entity.AccountReceita,
		AccountSubtype: entity.SubtypeOperacional,
	}

	f := &contabilFixture{
		accounts: newFakeAccountRepo(caixa, receita),
		entries:  &fakeEntryRepo{},
	}
	f.txRunner = &fakeTxRunner{repos: usecase.TxRepos{
		Accounts: f.accounts,
		Entries:  f.entries,
	}}
	f.uc = usecase.NewContabilUseCase(f.accounts, f.entries, f.txRunner)
	return f
}

// Lançamento desbalanceado é rejeitado antes de qualquer escrita: a
// transação nem chega a abrir.
func TestCreateEntry_DesbalanceadoRejeitadoAntesDePersistir(t *testing.T) {
	f := newContabilFixture()

	_, err := f.uc.CreateEntry(context.Background(), lojaID, usuarioID, dto.CreateEntryRequest{
		Description: "Venda do dia",
		Items: []dto.EntryItemRequest{
			{AccountID: "acc-caixa", DebitAmount: dec("100")},
			{AccountID: "acc-receita", CreditAmount: dec("50")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrUnbalancedEntry)
	assert.Empty(t, f.entries.created)
	assert.Equal(t, 0, f.txRunner.runs, "transação não deve abrir para lançamento inválido")
}

func TestCreateEntry_SemItens(t *testing.T) {
	f := newContabilFixture()

	_, err := f.uc.CreateEntry(context.Background(), lojaID, usuarioID, dto.CreateEntryRequest{
		Description: "Vazio",
	})
	assert.ErrorIs(t, err, domain.ErrEmptyEntry)
}

func TestCreateEntry_ValorNegativo(t *testing.T) {
	f := newContabilFixture()

	_, err := f.uc.CreateEntry(context.Background(), lojaID, usuarioID, dto.CreateEntryRequest{
		Description: "Estorno errado",
		Items: []dto.EntryItemRequest{
			{AccountID: "acc-caixa", DebitAmount: dec("-100")},
			{AccountID: "acc-receita", CreditAmount: dec("-100")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Diferença de meio centavo fica dentro da tolerância.
func TestCreateEntry_DiferencaDentroDaTolerancia(t *testing.T) {
	f := newContabilFixture()

	resp, err := f.uc.CreateEntry(context.Background(), lojaID, usuarioID, dto.CreateEntryRequest{
		Description: "Arredondamento",
		Items: []dto.EntryItemRequest{
			{AccountID: "acc-caixa", DebitAmount: dec("100.005")},
			{AccountID: "acc-receita", CreditAmount: dec("100")},
		},
	})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 2)
}

func TestCreateEntry_ContaDeOutraLoja(t *testing.T) {
	f := newContabilFixture()
	f.accounts.stored["acc-alheia"] = &entity.Account{
		ID:          "acc-alheia",
		StoreID:     "outra-loja",
		AccountType: entity.AccountAtivo,
	}

	_, err := f.uc.CreateEntry(context.Background(), lojaID, usuarioID, dto.CreateEntryRequest{
		Description: "Lançamento cruzado",
		Items: []dto.EntryItemRequest{
			{AccountID: "acc-alheia", DebitAmount: dec("100")},
			{AccountID: "acc-receita", CreditAmount: dec("100")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.entries.created)
}

// A numeração é sequencial por loja e atribuída dentro da transação.
func TestCreateEntry_NumeracaoSequencial(t *testing.T) {
	f := newContabilFixture()

	lancamento := dto.CreateEntryRequest{
		Description: "Venda do dia",
		Items: []dto.EntryItemRequest{
			{AccountID: "acc-caixa", DebitAmount: dec("100")},
			{AccountID: "acc-receita", CreditAmount: dec("100")},
		},
	}

	primeiro, err := f.uc.CreateEntry(context.Background(), lojaID, usuarioID, lancamento)
	require.NoError(t, err)
	segundo, err := f.uc.CreateEntry(context.Background(), lojaID, usuarioID, lancamento)
	require.NoError(t, err)

	assert.Equal(t, "LANC-000001", primeiro.EntryNumber)
	assert.Equal(t, "LANC-000002", segundo.EntryNumber)
}

func TestCreateAccount_TipoInvalido(t *testing.T) {
	f := newContabilFixture()

	_, err := f.uc.CreateAccount(context.Background(), lojaID, dto.CreateAccountRequest{
		Code:        "9.9.99",
		Name:        "Conta estranha",
		AccountType: "intangivel",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateAccount_PaiInexistente(t *testing.T) {
	f := newContabilFixture()

	_, err := f.uc.CreateAccount(context.Background(), lojaID, dto.CreateAccountRequest{
		Code:        "1.1.02",
		Name:        "Bancos",
		AccountType: entity.AccountAtivo,
		ParentID:    "nao-existe",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateAccount_ComPai(t *testing.T) {
	f := newContabilFixture()

	resp, err := f.uc.CreateAccount(context.Background(), lojaID, dto.CreateAccountRequest{
		Code:           "1.1.02",
		Name:           "Bancos",
		AccountType:    entity.AccountAtivo,
		AccountSubtype: entity.SubtypeCirculante,
		ParentID:       "acc-caixa",
	})
	require.NoError(t, err)
	assert.Equal(t, "acc-caixa", resp.ParentID)
	assert.Equal(t, entity.AccountAtivo, resp.AccountType)
}

// Balanço e DRE agrupam os saldos apurados por tipo e subtipo de conta.
func TestBalanceSheetEIncomeStatement(t *testing.T) {
	f := newContabilFixture()
	f.accounts.balances = []entity.AccountBalance{
		{Account: entity.Account{AccountType: entity.AccountAtivo, AccountSubtype: entity.SubtypeCirculante}, Balance: dec("1000")},
		{Account: entity.Account{AccountType: entity.AccountPassivo, AccountSubtype: entity.SubtypeCirculante}, Balance: dec("400")},
		{Account: entity.Account{AccountType: entity.AccountReceita, AccountSubtype: entity.SubtypeOperacional}, Balance: dec("900")},
		{Account: entity.Account{AccountType: entity.AccountCusto}, Balance: dec("300")},
	}

	bal, err := f.uc.BalanceSheet(context.Background(), lojaID, periodoInicio(), periodoFim())
	require.NoError(t, err)
	assert.True(t, bal.AtivoCirculante.Equal(dec("1000")))
	assert.True(t, bal.PassivoCirculante.Equal(dec("400")))

	dre, err := f.uc.IncomeStatement(context.Background(), lojaID, periodoInicio(), periodoFim())
	require.NoError(t, err)
	assert.True(t, dre.ReceitasOperacionais.Equal(dec("900")))
	assert.True(t, dre.Custos.Equal(dec("300")))
	assert.True(t, dre.ResultadoLiquido.Equal(dec("600")))
}

func TestRatios_DenominadorZeroIndefinido(t *testing.T) {
	f := newContabilFixture()
	f.accounts.balances = []entity.AccountBalance{
		{Account: entity.Account{AccountType: entity.AccountAtivo, AccountSubtype: entity.SubtypeCirculante}, Balance: dec("500")},
	}

	ratios, err := f.uc.Ratios(context.Background(), lojaID, periodoInicio(), periodoFim())
	require.NoError(t, err)
	assert.False(t, ratios.LiquidezCorrente.Defined, "passivo circulante zero torna o índice indefinido")
	assert.False(t, ratios.MargemLiquida.Defined)
}
