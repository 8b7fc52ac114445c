package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/pkg/logger"
)

const internalErrorMessage = "internal server error"

// ErrorHandler es el único punto donde un error se convierte en respuesta HTTP.
// Los handlers nunca escriben respuestas de error por su cuenta.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		resp := errorResponse(err)
		if resp.Status >= fiber.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("request_id", requestID(c)).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Msg("error inesperado")
		}
		return c.Status(resp.Status).JSON(resp)
	}
}

// errorResponse clasifica el error: *domain.Error por tipo, *fiber.Error por su código,
// cualquier otro es 500 sin exponer el detalle.
func errorResponse(err error) dto.ErrorResponse {
	var derr *domain.Error
	if errors.As(err, &derr) {
		switch {
		case errors.Is(derr.Kind, domain.ErrNotFound):
			return dto.ErrorResponse{Status: fiber.StatusNotFound, Code: "NOT_FOUND", Message: derr.Message}
		case errors.Is(derr.Kind, domain.ErrBadRequest):
			return dto.ErrorResponse{Status: fiber.StatusBadRequest, Code: "BAD_REQUEST", Message: derr.Message}
		}
	}

	var ferr *fiber.Error
	if errors.As(err, &ferr) {
		return dto.ErrorResponse{Status: ferr.Code, Code: statusCode(ferr.Code), Message: ferr.Message}
	}

	return dto.ErrorResponse{
		Status:  fiber.StatusInternalServerError,
		Code:    "INTERNAL",
		Message: internalErrorMessage,
	}
}

// statusCode "Method Not Allowed" → "METHOD_NOT_ALLOWED".
func statusCode(status int) string {
	if status >= fiber.StatusInternalServerError {
		return "INTERNAL"
	}
	msg := utils.StatusMessage(status)
	if msg == "" {
		return "ERROR"
	}
	return strings.ToUpper(strings.ReplaceAll(msg, " ", "_"))
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestIDKey).(string); ok {
		return id
	}
	return c.GetRespHeader(fiber.HeaderXRequestID)
}
