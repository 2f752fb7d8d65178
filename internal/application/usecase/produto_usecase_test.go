package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lojafacil/pdv-api/internal/application/dto"
	"github.com/lojafacil/pdv-api/internal/application/usecase"
	"github.com/lojafacil/pdv-api/internal/domain"
	"github.com/lojafacil/pdv-api/internal/domain/entity"
)

type produtoFixture struct {
	uc         *usecase.ProdutoUseCase
	products   *fakeProductRepo
	stock      *fakeStockRepo
	stockMoves *fakeStockMoveRepo
}

func newProdutoFixture(products ...*entity.Product) *produtoFixture {
	f := &produtoFixture{
		products:   newFakeProductRepo(products...),
		stock:      newFakeStockRepo(),
		stockMoves: &fakeStockMoveRepo{},
	}
	txRunner := &fakeTxRunner{repos: usecase.TxRepos{
		Products:   f.products,
		Stock:      f.stock,
		StockMoves: f.stockMoves,
	}}
	f.uc = usecase.NewProdutoUseCase(f.products, f.stockMoves, txRunner)
	return f
}

func TestCreateProduct_CustoEEstoqueIniciamZerados(t *testing.T) {
	f := newProdutoFixture()

	resp, err := f.uc.Create(context.Background(), lojaID, dto.CreateProductRequest{
		SKU:   "CAM-001",
		Name:  "Camiseta",
		Price: dec("49.90"),
	})
	require.NoError(t, err)
	assert.True(t, resp.Cost.IsZero())
	assert.True(t, resp.StockQuantity.IsZero())
	assert.Equal(t, lojaID, resp.StoreID)
}

func TestCreateProduct_SKUDuplicadoNaLoja(t *testing.T) {
	f := newProdutoFixture(&entity.Product{ID: "p1", StoreID: lojaID, SKU: "CAM-001", Name: "Camiseta"})

	_, err := f.uc.Create(context.Background(), lojaID, dto.CreateProductRequest{
		SKU:  "CAM-001",
		Name: "Outra camiseta",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreateProduct_SemSKU(t *testing.T) {
	f := newProdutoFixture()

	_, err := f.uc.Create(context.Background(), lojaID, dto.CreateProductRequest{Name: "Sem código"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Entrada de estoque recalcula o custo médio ponderado:
// (10 un × R$ 20 + 10 un × R$ 30) / 20 un = R$ 25.
func TestStockEntry_EntradaRecalculaCustoMedio(t *testing.T) {
	f := newProdutoFixture(&entity.Product{
		ID: "p1", StoreID: lojaID, SKU: "CAM-001", Name: "Camiseta", Cost: dec("20"),
	})
	f.stock.quantities["p1"] = dec("10")

	resp, err := f.uc.StockEntry(context.Background(), lojaID, usuarioID, "p1", dto.StockEntryRequest{
		Type:     entity.StockEntrada,
		Quantity: dec("10"),
		UnitCost: dec("30"),
	})
	require.NoError(t, err)

	assert.True(t, resp.Cost.Equal(dec("25")), "custo médio ponderado, obtido %s", resp.Cost)
	assert.True(t, resp.StockQuantity.Equal(dec("20")))
	assert.True(t, f.stock.quantities["p1"].Equal(dec("20")))

	require.Len(t, f.stockMoves.created, 1)
	m := f.stockMoves.created[0]
	assert.Equal(t, entity.StockEntrada, m.Type)
	assert.Equal(t, "manual", m.ReferenceType)
	require.NotNil(t, m.UnitCost)
	assert.True(t, m.UnitCost.Equal(dec("30")))
}

// Primeira entrada em produto zerado assume o custo da entrada.
func TestStockEntry_PrimeiraEntradaDefineCusto(t *testing.T) {
	f := newProdutoFixture(&entity.Product{ID: "p1", StoreID: lojaID, SKU: "CAM-001", Name: "Camiseta"})

	resp, err := f.uc.StockEntry(context.Background(), lojaID, usuarioID, "p1", dto.StockEntryRequest{
		Type:     entity.StockEntrada,
		Quantity: dec("5"),
		UnitCost: dec("12.50"),
	})
	require.NoError(t, err)
	assert.True(t, resp.Cost.Equal(dec("12.50")))
}

// Saída não recalcula custo e não pode deixar o saldo negativo.
func TestStockEntry_SaidaNaoPodeNegativar(t *testing.T) {
	f := newProdutoFixture(&entity.Product{
		ID: "p1", StoreID: lojaID, SKU: "CAM-001", Name: "Camiseta", Cost: dec("20"),
	})
	f.stock.quantities["p1"] = dec("3")

	_, err := f.uc.StockEntry(context.Background(), lojaID, usuarioID, "p1", dto.StockEntryRequest{
		Type:     entity.StockSaida,
		Quantity: dec("5"),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, f.stock.quantities["p1"].Equal(dec("3")), "saldo permanece")
	assert.Empty(t, f.stockMoves.created)
}

func TestStockEntry_SaidaMantemCusto(t *testing.T) {
	f := newProdutoFixture(&entity.Product{
		ID: "p1", StoreID: lojaID, SKU: "CAM-001", Name: "Camiseta", Cost: dec("20"),
	})
	f.stock.quantities["p1"] = dec("10")

	resp, err := f.uc.StockEntry(context.Background(), lojaID, usuarioID, "p1", dto.StockEntryRequest{
		Type:     entity.StockSaida,
		Quantity: dec("4"),
	})
	require.NoError(t, err)
	assert.True(t, resp.Cost.Equal(dec("20")), "saída não altera o custo médio")
	assert.True(t, resp.StockQuantity.Equal(dec("6")))
}

func TestStockEntry_QuantidadeNaoPositiva(t *testing.T) {
	f := newProdutoFixture(&entity.Product{ID: "p1", StoreID: lojaID, SKU: "CAM-001", Name: "Camiseta"})

	_, err := f.uc.StockEntry(context.Background(), lojaID, usuarioID, "p1", dto.StockEntryRequest{
		Type:     entity.StockEntrada,
		Quantity: dec("0"),
		UnitCost: dec("10"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateProduct_NaoAlteraCustoNemEstoque(t *testing.T) {
	f := newProdutoFixture(&entity.Product{
		ID: "p1", StoreID: lojaID, SKU: "CAM-001", Name: "Camiseta",
		Cost: dec("20"), StockQuantity: dec("10"),
	})

	novoNome := "Camiseta básica"
	novoPreco := dec("59.90")
	resp, err := f.uc.Update(context.Background(), lojaID, "p1", dto.UpdateProductRequest{
		Name:  &novoNome,
		Price: &novoPreco,
	})
	require.NoError(t, err)
	assert.Equal(t, "Camiseta básica", resp.Name)
	assert.True(t, resp.Price.Equal(dec("59.90")))
	assert.True(t, resp.Cost.Equal(dec("20")), "custo não muda por edição cadastral")
	assert.True(t, resp.StockQuantity.Equal(dec("10")))
}

func TestGetByID_OutraLojaNaoVaza(t *testing.T) {
	f := newProdutoFixture(&entity.Product{ID: "p1", StoreID: "outra-loja", SKU: "X", Name: "Alheio"})

	resp, err := f.uc.GetByID(context.Background(), lojaID, "p1")
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestDeleteProduct_NaoEncontrado(t *testing.T) {
	f := newProdutoFixture()

	err := f.uc.Delete(context.Background(), lojaID, "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
