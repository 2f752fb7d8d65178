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
	"github.com/lojafacil/pdv-api/internal/domain/repository"
)

// ProdutoUseCase CRUD de produtos e movimentos manuais de estoque.
// Custo e estoque nunca são editados diretamente; mudam via movimentos.
type ProdutoUseCase struct {
	products   repository.ProductRepository
	stockMoves repository.StockMovementRepository
	txRunner   TxRunner
}

// NewProdutoUseCase constrói o caso de uso.
func NewProdutoUseCase(
	products repository.ProductRepository,
	stockMoves repository.StockMovementRepository,
	txRunner TxRunner,
) *ProdutoUseCase {
	return &ProdutoUseCase{products: products, stockMoves: stockMoves, txRunner: txRunner}
}

// Create cria um produto. Custo e estoque iniciam em 0.
func (uc *ProdutoUseCase) Create(ctx context.Context, storeID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" {
		return nil, fmt.Errorf("%w: sku e nome são obrigatórios", domain.ErrInvalidInput)
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: preço não pode ser negativo", domain.ErrInvalidInput)
	}
	existing, err := uc.products.GetByStoreAndSKU(ctx, storeID, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	p := &entity.Product{
		ID:            uuid.New().String(),
		StoreID:       storeID,
		SKU:           in.SKU,
		Barcode:       in.Barcode,
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		Cost:          decimal.Zero,
		StockQuantity: decimal.Zero,
		Category:      in.Category,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.products.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// GetByID obtém um produto da loja.
func (uc *ProdutoUseCase) GetByID(ctx context.Context, storeID, id string) (*dto.ProductResponse, error) {
	p, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil || p.StoreID != storeID {
		return nil, nil
	}
	return toProductResponse(p), nil
}

// GetByBarcode obtém um produto pelo código de barras (leitura no PDV).
func (uc *ProdutoUseCase) GetByBarcode(ctx context.Context, storeID, barcode string) (*dto.ProductResponse, error) {
	p, err := uc.products.GetByBarcode(ctx, storeID, barcode)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toProductResponse(p), nil
}

// Update atualiza dados cadastrais. Não permite alterar custo nem estoque.
func (uc *ProdutoUseCase) Update(ctx context.Context, storeID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil || p.StoreID != storeID {
		return nil, nil
	}
	if in.SKU != nil {
		p.SKU = *in.SKU
	}
	if in.Barcode != nil {
		p.Barcode = *in.Barcode
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, fmt.Errorf("%w: preço não pode ser negativo", domain.ErrInvalidInput)
		}
		p.Price = *in.Price
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if err := uc.products.Update(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// List lista os produtos da loja paginados.
func (uc *ProdutoUseCase) List(ctx context.Context, storeID string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	products, err := uc.products.ListByStore(ctx, storeID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	resp := &dto.ProductListResponse{
		Items: make([]dto.ProductResponse, 0, len(products)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, p := range products {
		resp.Items = append(resp.Items, *toProductResponse(p))
	}
	return resp, nil
}

// Delete remove um produto da loja.
func (uc *ProdutoUseCase) Delete(ctx context.Context, storeID, id string) error {
	p, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil || p.StoreID != storeID {
		return domain.ErrNotFound
	}
	return uc.products.Delete(ctx, id)
}

// StockEntry registra um movimento manual de estoque. Entradas recalculam o
// custo médio ponderado; saídas não podem deixar o saldo negativo.
func (uc *ProdutoUseCase) StockEntry(ctx context.Context, storeID, userID, productID string, in dto.StockEntryRequest) (*dto.ProductResponse, error) {
	if in.Type != entity.StockEntrada && in.Type != entity.StockSaida {
		return nil, fmt.Errorf("%w: tipo de movimento %q", domain.ErrInvalidInput, in.Type)
	}
	if !in.Quantity.IsPositive() {
		return nil, fmt.Errorf("%w: quantidade deve ser positiva", domain.ErrInvalidInput)
	}
	if in.Type == entity.StockEntrada && in.UnitCost.IsNegative() {
		return nil, fmt.Errorf("%w: custo unitário não pode ser negativo", domain.ErrInvalidInput)
	}

	var updated *entity.Product
	err := uc.txRunner.Run(ctx, func(repos TxRepos) error {
		p, err := repos.Products.GetByID(ctx, productID)
		if err != nil {
			return err
		}
		if p == nil || p.StoreID != storeID {
			return domain.ErrNotFound
		}
		current, err := repos.Stock.GetForUpdate(ctx, productID)
		if err != nil {
			return err
		}

		var newQty decimal.Decimal
		var unitCost *decimal.Decimal
		if in.Type == entity.StockEntrada {
			newQty = current.Add(in.Quantity)
			cost := in.UnitCost
			unitCost = &cost
			newCost := estoque.CustoMedio(current, p.Cost, in.Quantity, in.UnitCost)
			if err := repos.Products.UpdateCost(ctx, productID, newCost); err != nil {
				return err
			}
			p.Cost = newCost
		} else {
			newQty = current.Sub(in.Quantity)
			if newQty.IsNegative() {
				return fmt.Errorf("%w: produto %s", domain.ErrInsufficientStock, productID)
			}
		}
		if err := repos.Stock.SetQuantity(ctx, productID, newQty); err != nil {
			return err
		}
		if err := repos.StockMoves.Create(ctx, &entity.StockMovement{
			ID:            uuid.New().String(),
			StoreID:       storeID,
			ProductID:     productID,
			Type:          in.Type,
			Quantity:      in.Quantity,
			UnitCost:      unitCost,
			ReferenceType: "manual",
			CreatedAt:     time.Now(),
			CreatedBy:     userID,
		}); err != nil {
			return err
		}
		p.StockQuantity = newQty
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(updated), nil
}

// StockHistory lista os movimentos de estoque de um produto.
func (uc *ProdutoUseCase) StockHistory(ctx context.Context, storeID, productID string, page dto.PageRequest) ([]dto.StockMovementResponse, error) {
	p, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil || p.StoreID != storeID {
		return nil, domain.ErrNotFound
	}
	page.DefaultPage()
	moves, err := uc.stockMoves.ListByProduct(ctx, productID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockMovementResponse, 0, len(moves))
	for _, m := range moves {
		out = append(out, dto.StockMovementResponse{
			ID:            m.ID,
			ProductID:     m.ProductID,
			Type:          m.Type,
			Quantity:      m.Quantity,
			UnitCost:      m.UnitCost,
			ReferenceType: m.ReferenceType,
			ReferenceID:   m.ReferenceID,
			CreatedAt:     m.CreatedAt,
		})
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID,
		StoreID:       p.StoreID,
		SKU:           p.SKU,
		Barcode:       p.Barcode,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		Cost:          p.Cost,
		StockQuantity: p.StockQuantity,
		Category:      p.Category,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
