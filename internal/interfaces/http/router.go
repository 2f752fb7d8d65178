package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lojafacil/pdv-api/internal/application/usecase"
	"github.com/lojafacil/pdv-api/internal/domain/entity"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	AuthUC     *usecase.UserUseCase
	ProdutoUC  *usecase.ProdutoUseCase
	CaixaUC    *usecase.CaixaUseCase
	VendaUC    *usecase.VendaUseCase
	ContabilUC *usecase.ContabilUseCase
	FiscalUC   *usecase.FiscalUseCase
	JWTSecret  string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/me", authHandler.Me)

	// Produtos e estoque
	produtos := protected.Group("/produtos")
	produtoHandler := NewProdutoHandler(deps.ProdutoUC)
	produtos.Post("/", produtoHandler.Create)
	produtos.Get("/", produtoHandler.List)
	produtos.Get("/barcode/:code", produtoHandler.GetByBarcode)
	produtos.Get("/:id", produtoHandler.GetByID)
	produtos.Put("/:id", produtoHandler.Update)
	produtos.Delete("/:id", RequireRole(entity.RoleAdmin), produtoHandler.Delete)
	produtos.Post("/:id/estoque", RequireRole(entity.RoleAdmin, entity.RoleCaixa), produtoHandler.StockEntry)
	produtos.Get("/:id/estoque", produtoHandler.StockHistory)

	// Caixa
	caixa := protected.Group("/caixa")
	caixaHandler := NewCaixaHandler(deps.CaixaUC)
	caixa.Get("/daily", caixaHandler.DailyPosition)
	caixa.Get("/period", caixaHandler.PeriodPosition)
	caixa.Get("/export", caixaHandler.ExportCSV)
	caixa.Post("/movements", RequireRole(entity.RoleAdmin, entity.RoleCaixa), caixaHandler.CreateMovement)
	caixa.Put("/movements/:id", RequireRole(entity.RoleAdmin, entity.RoleCaixa), caixaHandler.UpdateMovement)
	caixa.Delete("/movements/:id", RequireRole(entity.RoleAdmin, entity.RoleCaixa), caixaHandler.DeleteMovement)
	caixa.Post("/adjust", RequireRole(entity.RoleAdmin), caixaHandler.AdjustBalance)

	// Vendas e relatórios
	vendaHandler := NewVendaHandler(deps.VendaUC)
	vendasGroup := protected.Group("/vendas")
	vendasGroup.Post("/", vendaHandler.Checkout)
	vendasGroup.Get("/", vendaHandler.List)
	vendasGroup.Get("/:id", vendaHandler.GetByID)
	vendasGroup.Post("/:id/cancel", RequireRole(entity.RoleAdmin, entity.RoleCaixa), vendaHandler.Cancel)

	relatorios := protected.Group("/relatorios", RequireRole(entity.RoleAdmin))
	relatorios.Get("/lucro", vendaHandler.ProfitReport)
	relatorios.Get("/comissoes", vendaHandler.CommissionReport)
	protected.Get("/dashboard", vendaHandler.Dashboard)

	// Contábil (admin)
	contabil := protected.Group("/contabil", RequireRole(entity.RoleAdmin))
	contabilHandler := NewContabilHandler(deps.ContabilUC)
	contabil.Post("/contas", contabilHandler.CreateAccount)
	contabil.Get("/contas", contabilHandler.ListAccounts)
	contabil.Post("/lancamentos", contabilHandler.CreateEntry)
	contabil.Get("/lancamentos", contabilHandler.ListEntries)
	contabil.Get("/lancamentos/:id", contabilHandler.GetEntry)
	contabil.Get("/balanco", contabilHandler.BalanceSheet)
	contabil.Get("/dre", contabilHandler.IncomeStatement)
	contabil.Get("/indices", contabilHandler.Ratios)

	// Fiscal (admin)
	fiscal := protected.Group("/fiscal", RequireRole(entity.RoleAdmin))
	fiscalHandler := NewFiscalHandler(deps.FiscalUC)
	fiscal.Post("/nfe/import", fiscalHandler.ImportNFe)
}
