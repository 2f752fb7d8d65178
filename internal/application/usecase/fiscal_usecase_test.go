package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lojafacil/pdv-api/internal/application/usecase"
	"github.com/lojafacil/pdv-api/internal/domain"
	"github.com/lojafacil/pdv-api/internal/domain/entity"
)

// Nota com dois itens: CAM-001 já existe no catálogo, MOL-77 é novo.
const notaImportacao = `<?xml version="1.0" encoding="UTF-8"?>
<nfeProc versao="4.00">
  <NFe>
    <infNFe Id="NFe35240511222333000181550010000123451123456786" versao="4.00">
      <ide>
        <nNF>12345</nNF>
        <serie>1</serie>
        <dhEmi>2024-05-10T09:30:00-03:00</dhEmi>
      </ide>
      <emit>
        <CNPJ>11222333000181</CNPJ>
        <xNome>Distribuidora Tecidos Ltda</xNome>
      </emit>
      <dest>
        <CNPJ>99888777000166</CNPJ>
        <xNome>Loja Facil ME</xNome>
      </dest>
      <det nItem="1">
        <prod>
          <cProd>CAM-001</cProd>
          <xProd>Camiseta Algodao</xProd>
          <cEAN>7891234567895</cEAN>
          <NCM>61091000</NCM>
          <qCom>10.0000</qCom>
          <vUnCom>30.00</vUnCom>
          <vProd>300.00</vProd>
        </prod>
      </det>
      <det nItem="2">
        <prod>
          <cProd>MOL-77</cProd>
          <xProd>Moletom Infantil</xProd>
          <cEAN>SEM GTIN</cEAN>
          <NCM>61103000</NCM>
          <qCom>4.0000</qCom>
          <vUnCom>55.00</vUnCom>
          <vProd>220.00</vProd>
        </prod>
      </det>
      <total>
        <ICMSTot>
          <vNF>520.00</vNF>
        </ICMSTot>
      </total>
    </infNFe>
  </NFe>
</nfeProc>`

type fiscalFixture struct {
	uc         *usecase.FiscalUseCase
	products   *fakeProductRepo
	stock      *fakeStockRepo
	stockMoves *fakeStockMoveRepo
	txRunner   *fakeTxRunner
}

func newFiscalFixture(products ...*entity.Product) *fiscalFixture {
	f := &fiscalFixture{
		products:   newFakeProductRepo(products...),
		stock:      newFakeStockRepo(),
		stockMoves: &fakeStockMoveRepo{},
	}
	f.txRunner = &fakeTxRunner{repos: usecase.TxRepos{
		Products:   f.products,
		Stock:      f.stock,
		StockMoves: f.stockMoves,
	}}
	f.uc = usecase.NewFiscalUseCase(f.txRunner, "", false)
	return f
}

// Item com SKU conhecido vira entrada de estoque no produto existente, com
// custo médio recalculado; item desconhecido é criado no catálogo.
func TestImportNFe_EntradaEUpsertDeProdutos(t *testing.T) {
	f := newFiscalFixture(&entity.Product{
		ID: "p1", StoreID: lojaID, SKU: "CAM-001", Name: "Camiseta", Cost: dec("20"),
	})
	f.stock.quantities["p1"] = dec("10")

	resp, err := f.uc.ImportNFe(context.Background(), lojaID, usuarioID, []byte(notaImportacao))
	require.NoError(t, err)

	assert.Equal(t, "35240511222333000181550010000123451123456786", resp.ChaveAcesso)
	assert.Equal(t, "11222333000181", resp.EmitterCNPJ)
	assert.True(t, resp.Total.Equal(dec("520")))
	require.Len(t, resp.Items, 2)

	// CAM-001: 10 un a R$ 20 + 10 un a R$ 30 -> custo médio R$ 25
	existente := resp.Items[0]
	assert.Equal(t, "p1", existente.ProductID)
	assert.False(t, existente.Created)
	assert.True(t, existente.NewCost.Equal(dec("25")), "custo médio, obtido %s", existente.NewCost)
	assert.True(t, f.stock.quantities["p1"].Equal(dec("20")))

	// MOL-77: criado com preço de venda zerado, estoque 4 ao custo da nota
	novo := resp.Items[1]
	assert.True(t, novo.Created)
	assert.Equal(t, "MOL-77", novo.SKU)
	assert.True(t, novo.NewCost.Equal(dec("55")))
	require.Len(t, f.products.created, 1)
	criado := f.products.created[0]
	assert.Equal(t, "Moletom Infantil", criado.Name)
	assert.True(t, criado.Price.IsZero(), "preço de venda fica para o cadastro")
	assert.Empty(t, criado.Barcode, "SEM GTIN não vira código de barras")
	assert.True(t, f.stock.quantities[criado.ID].Equal(dec("4")))
}

func TestImportNFe_GeraMovimentosComReferenciaDaNota(t *testing.T) {
	f := newFiscalFixture()

	resp, err := f.uc.ImportNFe(context.Background(), lojaID, usuarioID, []byte(notaImportacao))
	require.NoError(t, err)

	require.Len(t, f.stockMoves.created, 2)
	for _, m := range f.stockMoves.created {
		assert.Equal(t, entity.StockEntrada, m.Type)
		assert.Equal(t, "nfe", m.ReferenceType)
		assert.Equal(t, resp.ChaveAcesso, m.ReferenceID)
		assert.Equal(t, usuarioID, m.CreatedBy)
		require.NotNil(t, m.UnitCost)
	}
}

// Com CNPJ configurado, nota destinada a outra empresa é rejeitada.
func TestImportNFe_DestinatarioDeOutraEmpresa(t *testing.T) {
	f := newFiscalFixture()
	f.uc = usecase.NewFiscalUseCase(f.txRunner, "00111222000133", false)

	_, err := f.uc.ImportNFe(context.Background(), lojaID, usuarioID, []byte(notaImportacao))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, f.txRunner.runs)
}

// Com o CNPJ da própria loja configurado, a nota passa.
func TestImportNFe_DestinatarioConfere(t *testing.T) {
	f := newFiscalFixture()
	f.uc = usecase.NewFiscalUseCase(f.txRunner, "99888777000166", false)

	_, err := f.uc.ImportNFe(context.Background(), lojaID, usuarioID, []byte(notaImportacao))
	assert.NoError(t, err)
}

func TestImportNFe_XMLInvalido(t *testing.T) {
	f := newFiscalFixture()

	_, err := f.uc.ImportNFe(context.Background(), lojaID, usuarioID, []byte("<nota>quebrada"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, f.txRunner.runs, "nota inválida não abre transação")
}
