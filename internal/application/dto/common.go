package dto

import "github.com/shopspring/decimal"

func init() {
	// Los importes salen como número JSON (150.5), no como string ("150.5").
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Status  int    `json:"status" example:"404"`
	Code    string `json:"code" example:"NOT_FOUND"`
	Message string `json:"message" example:"No such company: acme"`
}

// StatusResponse acuse de borrado ({"status": "deleted"}).
type StatusResponse struct {
	Status string `json:"status" example:"deleted"`
}

// Deleted construye el acuse estándar de DELETE.
func Deleted() StatusResponse {
	return StatusResponse{Status: "deleted"}
}

// MessageResponse respuesta con solo un mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse salida de GET /health.
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Service string `json:"service" example:"biztime-api"`
}
