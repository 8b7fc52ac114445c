// @title        BizTime API
// @version      1.0
// @description  CRUD de empresas, facturas e industrias.
// @BasePath     /
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/biztime-api/internal/application/billing"
	"github.com/jhoicas/biztime-api/internal/application/usecase"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
	"github.com/jhoicas/biztime-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/biztime-api/internal/infrastructure/pdf"
	"github.com/jhoicas/biztime-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/biztime-api/internal/interfaces/http"
	"github.com/jhoicas/biztime-api/pkg/config"
	"github.com/jhoicas/biztime-api/pkg/logger"
	"github.com/jhoicas/biztime-api/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		repos    repository.Repositories
		txRunner repository.TxRunner
	)
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		store := memory.NewStore()
		repos, txRunner = store.Repositories(), store
		log.Warn().Msg("almacén en memoria: los datos se pierden al reiniciar")
	default:
		if cfg.DB.AutoMigrate {
			if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
				log.Fatal().Err(err).Msg("migraciones")
			}
			log.Info().Msg("migraciones aplicadas")
		}
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		repos, txRunner = postgres.NewRepositories(pool), postgres.NewTxRunner(pool)
	}

	companyUC := usecase.NewCompanyUseCase(repos.Companies, repos.Invoices)
	invoiceUC := usecase.NewInvoiceUseCase(repos.Invoices, txRunner)
	industryUC := usecase.NewIndustryUseCase(repos.Industries, txRunner)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	invoicePDFUC := billing.NewPDFUseCase(repos.Invoices, repos.Companies, pdfGenerator)

	m := metrics.New("biztime")
	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:         cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}, log.Named("http"), m)

	httpRouter.Router(app, httpRouter.RouterDeps{
		ServiceName: cfg.App.Name,
		CompanyUC:   companyUC,
		InvoiceUC:   invoiceUC,
		IndustryUC:  industryUC,
		InvoicePDF:  invoicePDFUC,
		Metrics:     m,
		SwaggerFile: cfg.Docs.SwaggerFile,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
