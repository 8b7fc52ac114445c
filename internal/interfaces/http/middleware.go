package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/biztime-api/pkg/logger"
	"github.com/jhoicas/biztime-api/pkg/metrics"
)

// requestIDKey clave por defecto de requestid en c.Locals.
const requestIDKey = "requestid"

// RequestLogger registra una línea por petición y alimenta las métricas HTTP.
// Si la cadena devuelve error lo resuelve aquí con el ErrorHandler de la app, de modo
// que el status registrado es el que recibe el cliente.
func RequestLogger(log *logger.Logger, m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		m.IncInFlight()
		defer m.DecInFlight()

		if err := c.Next(); err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		elapsed := time.Since(start)
		status := c.Response().StatusCode()
		route := c.Route().Path
		m.ObserveHTTP(c.Method(), route, status, elapsed)

		evt := log.Info()
		if status >= fiber.StatusInternalServerError {
			evt = log.Warn()
		}
		evt.
			Str("request_id", requestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("route", route).
			Int("status", status).
			Dur("latency", elapsed).
			Msg("petición HTTP")
		return nil
	}
}
