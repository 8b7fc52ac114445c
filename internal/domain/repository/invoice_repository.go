package repository

import (
	"context"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	List(ctx context.Context) ([]*entity.Invoice, error)
	GetByID(ctx context.Context, id int64) (*entity.Invoice, error)
	// GetByIDForUpdate igual que GetByID pero bloquea la fila hasta el fin de la transacción.
	GetByIDForUpdate(ctx context.Context, id int64) (*entity.Invoice, error)
	// ListIDsByCompany devuelve los IDs de las facturas de la empresa (nunca nil).
	ListIDsByCompany(ctx context.Context, compCode string) ([]int64, error)
	// Create inserta con paid=false y paid_date=NULL.
	Create(ctx context.Context, compCode string, amt decimal.Decimal) (*entity.Invoice, error)
	// Update escribe amt, paid y paid_date; devuelve nil si ninguna fila coincide.
	Update(ctx context.Context, invoice *entity.Invoice) (*entity.Invoice, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
