package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lojafacil/pdv-api/internal/application/dto"
	"github.com/lojafacil/pdv-api/internal/domain"
	"github.com/lojafacil/pdv-api/internal/domain/entity"
	"github.com/lojafacil/pdv-api/internal/domain/estoque"
	"github.com/lojafacil/pdv-api/internal/infrastructure/nfe"
)

// FiscalUseCase importação de NFe: cada item da nota vira uma entrada de
// estoque ao custo da nota; produtos desconhecidos são criados no catálogo.
type FiscalUseCase struct {
	txRunner    TxRunner
	cnpj        string
	strictChave bool
}

// NewFiscalUseCase constrói o caso de uso. cnpj, quando preenchido, exige que
// o destinatário da nota seja a própria empresa; strictChave liga a conferência
// do dígito verificador da chave de acesso.
func NewFiscalUseCase(txRunner TxRunner, cnpj string, strictChave bool) *FiscalUseCase {
	return &FiscalUseCase{txRunner: txRunner, cnpj: cnpj, strictChave: strictChave}
}

// ImportNFe interpreta o XML e aplica a nota inteira em uma transação:
// upsert de produto por SKU (cProd), entrada de estoque e custo médio
// recalculado por item. Nota com item inválido não escreve nada.
func (uc *FiscalUseCase) ImportNFe(ctx context.Context, storeID, userID string, xmlData []byte) (*dto.ImportNFeResponse, error) {
	inv, err := nfe.Parse(xmlData, uc.strictChave)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}
	if uc.cnpj != "" && inv.DestCNPJ != "" && inv.DestCNPJ != uc.cnpj {
		return nil, fmt.Errorf("%w: nota destinada ao CNPJ %s", domain.ErrInvalidInput, inv.DestCNPJ)
	}

	resp := &dto.ImportNFeResponse{
		ChaveAcesso: inv.ChaveAcesso,
		EmitterCNPJ: inv.EmitterCNPJ,
		EmitterName: inv.EmitterName,
		Total:       inv.Total,
	}

	err = uc.txRunner.Run(ctx, func(repos TxRepos) error {
		for _, item := range inv.Items {
			p, err := repos.Products.GetByStoreAndSKU(ctx, storeID, item.Code)
			if err != nil {
				return err
			}
			created := false
			if p == nil {
				now := time.Now()
				p = &entity.Product{
					ID:            uuid.New().String(),
					StoreID:       storeID,
					SKU:           item.Code,
					Barcode:       item.Barcode,
					Name:          item.Name,
					Price:         decimal.Zero, // preço de venda definido depois, no cadastro
					Cost:          decimal.Zero,
					StockQuantity: decimal.Zero,
					CreatedAt:     now,
					UpdatedAt:     now,
				}
				if err := repos.Products.Create(ctx, p); err != nil {
					return err
				}
				created = true
			}

			current, err := repos.Stock.GetForUpdate(ctx, p.ID)
			if err != nil {
				return err
			}
			newCost := estoque.CustoMedio(current, p.Cost, item.Quantity, item.UnitCost)
			if err := repos.Products.UpdateCost(ctx, p.ID, newCost); err != nil {
				return err
			}
			if err := repos.Stock.SetQuantity(ctx, p.ID, current.Add(item.Quantity)); err != nil {
				return err
			}
			unitCost := item.UnitCost
			if err := repos.StockMoves.Create(ctx, &entity.StockMovement{
				ID:            uuid.New().String(),
				StoreID:       storeID,
				ProductID:     p.ID,
				Type:          entity.StockEntrada,
				Quantity:      item.Quantity,
				UnitCost:      &unitCost,
				ReferenceType: "nfe",
				ReferenceID:   inv.ChaveAcesso,
				CreatedAt:     time.Now(),
				CreatedBy:     userID,
			}); err != nil {
				return err
			}

			resp.Items = append(resp.Items, dto.ImportedItemResponse{
				ProductID: p.ID,
				SKU:       p.SKU,
				Name:      p.Name,
				Quantity:  item.Quantity,
				UnitCost:  item.UnitCost,
				NewCost:   newCost,
				Created:   created,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
