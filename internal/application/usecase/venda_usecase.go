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
	"github.com/lojafacil/pdv-api/internal/domain/repository"
	"github.com/lojafacil/pdv-api/internal/domain/vendas"
)

// VendaUseCase checkout de vendas e orçamentos, cancelamento e relatórios.
type VendaUseCase struct {
	sales    repository.SaleRepository
	products repository.ProductRepository
	users    repository.UserRepository
	rpc      repository.CashRPC
	txRunner TxRunner
}

// NewVendaUseCase constrói o caso de uso.
func NewVendaUseCase(
	sales repository.SaleRepository,
	products repository.ProductRepository,
	users repository.UserRepository,
	rpc repository.CashRPC,
	txRunner TxRunner,
) *VendaUseCase {
	return &VendaUseCase{sales: sales, products: products, users: users, rpc: rpc, txRunner: txRunner}
}

// Checkout fecha um orçamento ou venda. Vendas verificam estoque no backend,
// baixam estoque e geram os movimentos de caixa na mesma transação; orçamentos
// só persistem o documento.
func (uc *VendaUseCase) Checkout(ctx context.Context, storeID, sellerID string, in dto.CheckoutRequest) (*dto.SaleResponse, error) {
	if in.QuoteType != entity.QuoteTypeOrcamento && in.QuoteType != entity.QuoteTypeVenda {
		return nil, fmt.Errorf("%w: tipo de documento %q", domain.ErrInvalidInput, in.QuoteType)
	}

	sale, err := uc.buildSale(ctx, storeID, sellerID, in)
	if err != nil {
		return nil, err
	}

	if sale.QuoteType == entity.QuoteTypeOrcamento {
		if err := uc.sales.Create(ctx, sale); err != nil {
			return nil, err
		}
		return toSaleResponse(sale), nil
	}

	// Conferência prévia de estoque no backend; a exclusão mútua real é do
	// banco (lock de linha dentro da transação).
	for _, it := range sale.Items {
		ok, err := uc.rpc.CheckAvailableStock(ctx, it.ProductID, it.Quantity)
		if err != nil {
			return nil, fmt.Errorf("verificar estoque: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("%w: produto %s", domain.ErrInsufficientStock, it.ProductID)
		}
	}

	err = uc.txRunner.Run(ctx, func(repos TxRepos) error {
		if err := repos.Sales.Create(ctx, sale); err != nil {
			return err
		}
		for _, it := range sale.Items {
			current, err := repos.Stock.GetForUpdate(ctx, it.ProductID)
			if err != nil {
				return err
			}
			remaining := current.Sub(it.Quantity)
			if remaining.IsNegative() {
				return fmt.Errorf("%w: produto %s", domain.ErrInsufficientStock, it.ProductID)
			}
			if err := repos.Stock.SetQuantity(ctx, it.ProductID, remaining); err != nil {
				return err
			}
			if err := repos.StockMoves.Create(ctx, &entity.StockMovement{
				ID:            uuid.New().String(),
				StoreID:       storeID,
				ProductID:     it.ProductID,
				Type:          entity.StockSaida,
				Quantity:      it.Quantity,
				ReferenceType: "venda",
				ReferenceID:   sale.ID,
				CreatedAt:     time.Now(),
				CreatedBy:     sellerID,
			}); err != nil {
				return err
			}
		}
		return uc.createCashMovements(ctx, repos, sale, sellerID)
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// buildSale monta a entidade a partir do carrinho, com snapshots de nome,
// preço e custo por linha, e valida totais e parcelas.
func (uc *VendaUseCase) buildSale(ctx context.Context, storeID, sellerID string, in dto.CheckoutRequest) (*entity.Sale, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: venda sem itens", domain.ErrInvalidInput)
	}
	saleID := uuid.New().String()
	items := make([]entity.SaleItem, 0, len(in.Items))
	for _, req := range in.Items {
		p, err := uc.products.GetByID(ctx, req.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil || p.StoreID != storeID {
			return nil, fmt.Errorf("%w: produto %s", domain.ErrNotFound, req.ProductID)
		}
		cost := p.Cost
		items = append(items, entity.SaleItem{
			ID:        uuid.New().String(),
			SaleID:    saleID,
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  req.Quantity,
			CostPrice: &cost,
			Total:     vendas.LineTotal(p.Price, req.Quantity),
		})
	}
	if err := vendas.ValidateItems(items); err != nil {
		return nil, err
	}

	subtotal := vendas.Subtotal(items)
	total := vendas.TotalAmount(subtotal, in.DiscountAmount, in.ShippingCost)

	var splits []entity.PaymentSplit
	for _, s := range in.PaymentSplits {
		splits = append(splits, entity.PaymentSplit{Method: s.Method, Amount: s.Amount})
	}
	if len(splits) > 0 {
		if err := vendas.ValidateSplits(splits, total); err != nil {
			return nil, err
		}
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}
	now := time.Now()
	return &entity.Sale{
		ID:                saleID,
		StoreID:           storeID,
		QuoteType:         in.QuoteType,
		Status:            initialStatus(in.QuoteType),
		Items:             items,
		Subtotal:          subtotal,
		DiscountAmount:    in.DiscountAmount,
		ShippingCost:      in.ShippingCost,
		TotalAmount:       total,
		PaymentMethod:     in.PaymentMethod,
		HasPartialPayment: len(splits) > 0,
		PaymentSplits:     splits,
		SellerID:          sellerID,
		Date:              date,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

func initialStatus(quoteType string) string {
	if quoteType == entity.QuoteTypeOrcamento {
		return entity.SaleStatusAberta
	}
	return entity.SaleStatusConcluida
}

// createCashMovements grava um movimento de entrada por forma de pagamento.
// Pagamento combinado gera um movimento por parcela; simples gera um só.
func (uc *VendaUseCase) createCashMovements(ctx context.Context, repos TxRepos, sale *entity.Sale, sellerID string) error {
	type pagamento struct {
		method string
		amount decimal.Decimal
	}
	var pagamentos []pagamento
	if sale.HasPartialPayment {
		for _, s := range sale.PaymentSplits {
			pagamentos = append(pagamentos, pagamento{method: s.Method, amount: s.Amount})
		}
	} else {
		pagamentos = append(pagamentos, pagamento{method: sale.PaymentMethod, amount: sale.TotalAmount})
	}
	for _, p := range pagamentos {
		if p.amount.IsZero() {
			continue
		}
		category := p.method
		if category == "" {
			category = "venda"
		}
		if err := repos.Movements.Create(ctx, &entity.Movement{
			ID:            uuid.New().String(),
			StoreID:       sale.StoreID,
			Type:          entity.MovementEntrada,
			Amount:        p.amount,
			Category:      category,
			Description:   fmt.Sprintf("Venda %s", sale.ID),
			Date:          sale.Date,
			ReferenceType: entity.MovementRefVenda,
			ReferenceID:   sale.ID,
			CreatedAt:     time.Now(),
			CreatedBy:     sellerID,
		}); err != nil {
			return err
		}
	}
	return nil
}

// GetByID obtém uma venda da loja.
func (uc *VendaUseCase) GetByID(ctx context.Context, storeID, id string) (*dto.SaleResponse, error) {
	sale, err := uc.sales.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil || sale.StoreID != storeID {
		return nil, nil
	}
	return toSaleResponse(sale), nil
}

// ListByPeriod lista vendas ou orçamentos do período.
func (uc *VendaUseCase) ListByPeriod(ctx context.Context, storeID, quoteType string, start, end time.Time) ([]dto.SaleResponse, error) {
	sales, err := uc.sales.ListByPeriod(ctx, storeID, quoteType, start, end)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, *toSaleResponse(s))
	}
	return out, nil
}

// Cancel cancela uma venda e devolve o estoque via backend
// (cancel_sale_and_return_stock faz os dois passos atomicamente).
func (uc *VendaUseCase) Cancel(ctx context.Context, storeID, id string) error {
	sale, err := uc.sales.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sale == nil || sale.StoreID != storeID {
		return domain.ErrNotFound
	}
	if sale.IsCanceled() {
		return domain.ErrSaleAlreadyCanceled
	}
	ok, err := uc.rpc.CancelSaleAndReturnStock(ctx, id)
	if err != nil {
		return fmt.Errorf("cancelar venda: %w", err)
	}
	if !ok {
		return domain.ErrConflict
	}
	return nil
}

// ProfitReport apura vendas, custo e lucro do período. Linhas sem snapshot de
// custo usam o custo atual do produto.
func (uc *VendaUseCase) ProfitReport(ctx context.Context, storeID string, start, end time.Time) (*dto.ProfitReportResponse, error) {
	sales, err := uc.sales.ListByPeriod(ctx, storeID, entity.QuoteTypeVenda, start, end)
	if err != nil {
		return nil, err
	}
	costs, err := uc.products.CostMap(ctx, storeID)
	if err != nil {
		return nil, err
	}
	summary := vendas.Profit(sales, costs)
	return &dto.ProfitReportResponse{
		StartDate:   start.Format("2006-01-02"),
		EndDate:     end.Format("2006-01-02"),
		TotalSales:  summary.TotalSales,
		TotalCost:   summary.TotalCost,
		TotalProfit: summary.TotalProfit,
		Margin:      summary.Margin,
	}, nil
}

// CommissionReport apura a comissão por vendedor no período.
func (uc *VendaUseCase) CommissionReport(ctx context.Context, storeID string, start, end time.Time) (*dto.CommissionReportResponse, error) {
	sales, err := uc.sales.ListByPeriod(ctx, storeID, entity.QuoteTypeVenda, start, end)
	if err != nil {
		return nil, err
	}
	rates, err := uc.users.CommissionRates(ctx, storeID)
	if err != nil {
		return nil, err
	}
	lines := vendas.Commissions(sales, rates)
	resp := &dto.CommissionReportResponse{
		StartDate: start.Format("2006-01-02"),
		EndDate:   end.Format("2006-01-02"),
	}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, dto.CommissionLineResponse{
			SellerID:   l.SellerID,
			TotalSales: l.SalesTotal,
			Rate:       rates[l.SellerID],
			Commission: l.Commission,
		})
	}
	return resp, nil
}

// Dashboard resumo de vendas e lucro do dia e do mês, em consultas paralelas.
func (uc *VendaUseCase) Dashboard(ctx context.Context, storeID string, now time.Time) (*dto.DashboardResponse, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type periodResult struct {
		sales []*entity.Sale
		err   error
	}
	todayCh := make(chan periodResult, 1)
	monthCh := make(chan periodResult, 1)

	go func() {
		s, err := uc.sales.ListByPeriod(ctx, storeID, entity.QuoteTypeVenda, dayStart, now)
		todayCh <- periodResult{sales: s, err: err}
	}()
	go func() {
		s, err := uc.sales.ListByPeriod(ctx, storeID, entity.QuoteTypeVenda, monthStart, now)
		monthCh <- periodResult{sales: s, err: err}
	}()

	today := <-todayCh
	month := <-monthCh
	if today.err != nil {
		return nil, today.err
	}
	if month.err != nil {
		return nil, month.err
	}

	costs, err := uc.products.CostMap(ctx, storeID)
	if err != nil {
		return nil, err
	}
	todaySummary := vendas.Profit(today.sales, costs)
	monthSummary := vendas.Profit(month.sales, costs)

	return &dto.DashboardResponse{
		TodaySales:  todaySummary.TotalSales,
		TodayProfit: todaySummary.TotalProfit,
		MonthSales:  monthSummary.TotalSales,
		MonthProfit: monthSummary.TotalProfit,
		TodayCount:  countActive(today.sales),
		MonthCount:  countActive(month.sales),
	}, nil
}

func countActive(sales []*entity.Sale) int {
	n := 0
	for _, s := range sales {
		if !s.IsCanceled() {
			n++
		}
	}
	return n
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:             s.ID,
		QuoteType:      s.QuoteType,
		Status:         s.Status,
		Subtotal:       s.Subtotal,
		DiscountAmount: s.DiscountAmount,
		ShippingCost:   s.ShippingCost,
		TotalAmount:    s.TotalAmount,
		PaymentMethod:  s.PaymentMethod,
		SellerID:       s.SellerID,
		Date:           s.Date,
	}
	for _, sp := range s.PaymentSplits {
		resp.PaymentSplits = append(resp.PaymentSplits, dto.PaymentSplitRequest{Method: sp.Method, Amount: sp.Amount})
	}
	for _, it := range s.Items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Total:     it.Total,
		})
	}
	return resp
}
