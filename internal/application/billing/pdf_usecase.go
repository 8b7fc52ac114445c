package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

// PDFUseCase genera el PDF de una factura con los datos de su empresa.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	companyRepo repository.CompanyRepository
	generator   InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	companyRepo repository.CompanyRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo: invoiceRepo,
		companyRepo: companyRepo,
		generator:   generator,
	}
}

// DownloadInvoicePDF carga la factura y su empresa y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - *domain.Error NotFound     si la factura no existe.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID int64) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", domain.NotFound("No such invoice: %d", invoiceID)
	}

	// La FK garantiza la empresa; si no aparece es un fallo inesperado.
	company, err := uc.companyRepo.GetByCode(ctx, inv.CompCode)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener empresa: %w", err)
	}
	if company == nil {
		return nil, "", fmt.Errorf("pdf: empresa %q de la factura %d no existe", inv.CompCode, inv.ID)
	}

	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, inv, company)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("invoice_%d.pdf", inv.ID)
	return pdfBytes, filename, nil
}
