package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/biztime-api/internal/application/billing"
	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/application/usecase"
)

// InvoiceHandler maneja las peticiones HTTP para el recurso Invoice.
type InvoiceHandler struct {
	uc    *usecase.InvoiceUseCase
	pdfUC *billing.PDFUseCase
}

// NewInvoiceHandler construye el handler inyectando los casos de uso.
func NewInvoiceHandler(uc *usecase.InvoiceUseCase, pdfUC *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdfUC: pdfUC}
}

// List godoc
// @Summary      Listar facturas
// @Tags         invoices
// @Produce      json
// @Success      200  {object}  dto.InvoiceListEnvelope
// @Router       /invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.InvoiceListEnvelope{Invoices: list})
}

// Get godoc
// @Summary      Obtener factura por ID
// @Tags         invoices
// @Produce      json
// @Param        id   path      int  true  "ID de la factura"
// @Success      200  {object}  dto.InvoiceEnvelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /invoices/{id} [get]
func (h *InvoiceHandler) Get(c *fiber.Ctx) error {
	id, err := invoiceID(c)
	if err != nil {
		return err
	}
	out, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.InvoiceEnvelope{Invoice: *out})
}

// Create godoc
// @Summary      Crear factura
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateInvoiceRequest  true  "Empresa e importe"
// @Success      201   {object}  dto.InvoiceEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.InvoiceEnvelope{Invoice: *out})
}

// Update godoc
// @Summary      Actualizar importe y estado de pago
// @Description  paid_date se deriva: se fija al pasar a pagada, se limpia con paid=false y se conserva si ya estaba pagada.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id    path      int                       true  "ID de la factura"
// @Param        body  body      dto.UpdateInvoiceRequest  true  "Importe y estado"
// @Success      200   {object}  dto.InvoiceEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /invoices/{id} [put]
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	id, err := invoiceID(c)
	if err != nil {
		return err
	}
	var in dto.UpdateInvoiceRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(dto.InvoiceEnvelope{Invoice: *out})
}

// Delete godoc
// @Summary      Eliminar factura
// @Tags         invoices
// @Produce      json
// @Param        id   path      int  true  "ID de la factura"
// @Success      200  {object}  dto.StatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	id, err := invoiceID(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.Deleted())
}

// DownloadPDF godoc
// @Summary      Descargar la factura en PDF
// @Tags         invoices
// @Produce      application/pdf
// @Param        id   path      int  true  "ID de la factura"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /invoices/{id}/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	id, err := invoiceID(c)
	if err != nil {
		return err
	}
	pdfBytes, filename, err := h.pdfUC.DownloadInvoicePDF(c.Context(), id)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}

// invoiceID lee :id; un valor no numérico no puede existir y se informa como no encontrado.
func invoiceID(c *fiber.Ctx) (int64, error) {
	raw := c.Params("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, usecase.NoSuchInvoice(raw)
	}
	return id, nil
}
