package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

// InvoiceUseCase casos de uso de facturas, incluida la regla de pago (paid_date).
type InvoiceUseCase struct {
	invoices repository.InvoiceRepository
	tx       repository.TxRunner
	now      func() time.Time
}

// NewInvoiceUseCase construye el caso de uso. tx se usa para la actualización (lectura + escritura).
func NewInvoiceUseCase(invoices repository.InvoiceRepository, tx repository.TxRunner) *InvoiceUseCase {
	return &InvoiceUseCase{invoices: invoices, tx: tx, now: time.Now}
}

// WithClock reemplaza el reloj usado para paid_date.
func (uc *InvoiceUseCase) WithClock(now func() time.Time) *InvoiceUseCase {
	uc.now = now
	return uc
}

// List lista todas las facturas ordenadas por ID.
func (uc *InvoiceUseCase) List(ctx context.Context) ([]dto.InvoiceResponse, error) {
	list, err := uc.invoices.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewInvoiceList(list), nil
}

// Get obtiene una factura por ID.
func (uc *InvoiceUseCase) Get(ctx context.Context, id int64) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, NoSuchInvoice(id)
	}
	out := dto.NewInvoiceResponse(inv)
	return &out, nil
}

// Create crea una factura no pagada. La existencia de la empresa la garantiza la FK del almacén.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if strings.TrimSpace(in.CompCode) == "" {
		return nil, domain.BadRequest("comp_code is required")
	}
	if in.Amt == nil {
		return nil, domain.BadRequest("amt is required")
	}
	inv, err := uc.invoices.Create(ctx, in.CompCode, *in.Amt)
	if err != nil {
		return nil, err
	}
	out := dto.NewInvoiceResponse(inv)
	return &out, nil
}

// Update escribe amt y paid y deriva paid_date:
//   - sin paid_date y paid=true → ahora
//   - paid=false → null
//   - ya pagada y sigue pagada → se conserva
//
// Lectura y escritura ocurren en la misma transacción con la fila bloqueada.
func (uc *InvoiceUseCase) Update(ctx context.Context, id int64, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.Amt == nil {
		return nil, domain.BadRequest("amt is required")
	}
	if in.Paid == nil {
		return nil, domain.BadRequest("paid is required")
	}

	var out dto.InvoiceResponse
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		current, err := repos.Invoices.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return NoSuchInvoice(id)
		}

		current.Amt = *in.Amt
		current.SetPaid(*in.Paid, uc.now())

		updated, err := repos.Invoices.Update(ctx, current)
		if err != nil {
			return err
		}
		if updated == nil {
			return NoSuchInvoice(id)
		}
		out = dto.NewInvoiceResponse(updated)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina una factura por ID.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id int64) error {
	deleted, err := uc.invoices.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return NoSuchInvoice(id)
	}
	return nil
}

// NoSuchInvoice error 404 de factura. id puede ser el valor crudo de la ruta.
func NoSuchInvoice(id any) error {
	return domain.NotFound("No such invoice: %v", id)
}
