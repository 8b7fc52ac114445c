package billing

import (
	"context"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// InvoicePDFGenerator puerto de salida: genera la representación gráfica de una factura.
// La implementación vive en infrastructure/pdf.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, company *entity.Company) ([]byte, error)
}
