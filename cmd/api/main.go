package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/lojafacil/pdv-api/docs"
	"github.com/lojafacil/pdv-api/internal/application/usecase"
	"github.com/lojafacil/pdv-api/internal/infrastructure/postgres"
	httpRouter "github.com/lojafacil/pdv-api/internal/interfaces/http"
	"github.com/lojafacil/pdv-api/pkg/config"
	"github.com/lojafacil/pdv-api/pkg/logger"
)

// @title        PDV API
// @version      1.0
// @description  API de PDV e retaguarda: produtos, vendas, caixa, contábil e importação de NFe.
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	movementRepo := postgres.NewMovementRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	stockMoveRepo := postgres.NewStockMovementRepository(pool)
	accountRepo := postgres.NewAccountRepository(pool)
	entryRepo := postgres.NewAccountingEntryRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	cashRPC := postgres.NewCashRPCClient(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := usecase.NewUserUseCase(userRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)
	produtoUC := usecase.NewProdutoUseCase(productRepo, stockMoveRepo, txRunner)
	caixaUC := usecase.NewCaixaUseCase(movementRepo, cashRPC)
	vendaUC := usecase.NewVendaUseCase(saleRepo, productRepo, userRepo, cashRPC, txRunner)
	contabilUC := usecase.NewContabilUseCase(accountRepo, entryRepo, txRunner)
	fiscalUC := usecase.NewFiscalUseCase(txRunner, cfg.Fiscal.CNPJ, cfg.Fiscal.StrictChave)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "PDV API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		ProdutoUC:  produtoUC,
		CaixaUC:    caixaUC,
		VendaUC:    vendaUC,
		ContabilUC: contabilUC,
		FiscalUC:   fiscalUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
