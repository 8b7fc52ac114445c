// seed carga datos de ejemplo en PostgreSQL: dos empresas, cuatro facturas y dos industrias.
//
// Uso: go run ./cmd/seed [-reset] [-migrate]
// Usa la misma configuración que la API (DATABASE_URL o DB_*).
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
	"github.com/jhoicas/biztime-api/internal/infrastructure/postgres"
	"github.com/jhoicas/biztime-api/pkg/config"
	"github.com/jhoicas/biztime-api/pkg/logger"
	"github.com/shopspring/decimal"
)

type seedInvoice struct {
	compCode string
	amt      string
	paid     bool
}

var (
	companies = []entity.Company{
		{Code: "apple", Name: "Apple Computer", Description: "Maker of OSX."},
		{Code: "ibm", Name: "IBM", Description: "Big blue."},
	}
	invoices = []seedInvoice{
		{"apple", "100", false},
		{"apple", "200", false},
		{"apple", "300", true},
		{"ibm", "400", false},
	}
	industries = []entity.Industry{
		{Code: "acct", Industry: "Accounting"},
		{Code: "tech", Industry: "Technology"},
	}
	links = []entity.CompanyIndustry{
		{CompanyCode: "apple", IndustryCode: "tech"},
		{CompanyCode: "ibm", IndustryCode: "tech"},
		{CompanyCode: "ibm", IndustryCode: "acct"},
	}
)

func main() {
	reset := flag.Bool("reset", false, "vaciar las tablas antes de sembrar")
	migrate := flag.Bool("migrate", false, "aplicar migraciones antes de sembrar")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Named("seed")

	if *migrate {
		if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if *reset {
		if _, err := pool.Exec(ctx, `TRUNCATE company_industries, invoices, industries, companies RESTART IDENTITY`); err != nil {
			log.Fatal().Err(err).Msg("vaciar tablas")
		}
	}

	now := time.Now()
	err = postgres.NewTxRunner(pool).Run(ctx, func(repos repository.Repositories) error {
		return seed(ctx, repos, now)
	})
	if err != nil {
		log.Fatal().Err(err).Msg("sembrar datos")
	}
	log.Info().
		Int("companies", len(companies)).
		Int("invoices", len(invoices)).
		Int("industries", len(industries)).
		Msg("datos de ejemplo cargados")
}

func seed(ctx context.Context, repos repository.Repositories, now time.Time) error {
	for i := range companies {
		if _, err := repos.Companies.Create(ctx, &companies[i]); err != nil {
			return err
		}
	}
	for _, s := range invoices {
		inv, err := repos.Invoices.Create(ctx, s.compCode, decimal.RequireFromString(s.amt))
		if err != nil {
			return err
		}
		if s.paid {
			inv.SetPaid(true, now)
			if _, err := repos.Invoices.Update(ctx, inv); err != nil {
				return fmt.Errorf("marcar factura %d pagada: %w", inv.ID, err)
			}
		}
	}
	for i := range industries {
		if _, err := repos.Industries.Create(ctx, &industries[i]); err != nil {
			return err
		}
	}
	for _, link := range links {
		if err := repos.Industries.Associate(ctx, link); err != nil {
			return fmt.Errorf("asociar %s-%s: %w", link.CompanyCode, link.IndustryCode, err)
		}
	}
	return nil
}
