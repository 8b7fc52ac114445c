package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/jhoicas/biztime-api/pkg/logger"
	"github.com/jhoicas/biztime-api/pkg/metrics"
)

// AppConfig parámetros del servidor fiber.
type AppConfig struct {
	Name         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// NewApp construye la aplicación fiber con el manejador de errores centralizado y los
// middlewares comunes: request id, log + métricas por petición y recover.
// El orden importa: recover va dentro del logger para que un panic se registre como 500.
func NewApp(cfg AppConfig, log *logger.Logger, m *metrics.Metrics) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		// Params y Body se copian: el almacén en memoria guarda los strings recibidos.
		Immutable:    true,
		ErrorHandler: ErrorHandler(log),
	})

	app.Use(requestid.New(requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: uuid.NewString,
	}))
	app.Use(RequestLogger(log, m))
	app.Use(recover.New())

	return app
}
