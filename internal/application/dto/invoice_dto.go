package dto

import (
	"time"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest body de POST /invoices. Ambos campos son obligatorios.
type CreateInvoiceRequest struct {
	CompCode string           `json:"comp_code" example:"company-abc"`
	Amt      *decimal.Decimal `json:"amt" swaggertype:"number" example:"100"`
}

// UpdateInvoiceRequest body de PUT /invoices/:id. paid_date nunca lo envía el cliente.
type UpdateInvoiceRequest struct {
	Amt  *decimal.Decimal `json:"amt" swaggertype:"number" example:"150"`
	Paid *bool            `json:"paid" example:"true"`
}

// InvoiceResponse factura en respuestas.
type InvoiceResponse struct {
	ID       int64           `json:"id" example:"1"`
	CompCode string          `json:"comp_code" example:"company-abc"`
	Amt      decimal.Decimal `json:"amt" swaggertype:"number" example:"150"`
	Paid     bool            `json:"paid" example:"true"`
	PaidDate *time.Time      `json:"paid_date"`
}

// InvoiceEnvelope {"invoice": {...}}.
type InvoiceEnvelope struct {
	Invoice InvoiceResponse `json:"invoice"`
}

// InvoiceListEnvelope {"invoices": [...]}.
type InvoiceListEnvelope struct {
	Invoices []InvoiceResponse `json:"invoices"`
}

// NewInvoiceResponse mapea la entidad a su representación JSON.
func NewInvoiceResponse(inv *entity.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		PaidDate: inv.PaidDate,
	}
}

// NewInvoiceList mapea una lista de entidades; nunca devuelve nil.
func NewInvoiceList(list []*entity.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, NewInvoiceResponse(inv))
	}
	return out
}
