package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

const invoiceColumns = `id, comp_code, amt, paid, paid_date`

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// List devuelve todas las facturas ordenadas por ID.
func (r *InvoiceRepo) List(ctx context.Context) ([]*entity.Invoice, error) {
	rows, err := r.q.Query(ctx, `SELECT `+invoiceColumns+` FROM invoices ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	list, err := pgx.CollectRows(rows, scanInvoice)
	if err != nil {
		return nil, fmt.Errorf("scan invoice: %w", err)
	}
	return list, nil
}

// GetByID obtiene una factura por ID.
func (r *InvoiceRepo) GetByID(ctx context.Context, id int64) (*entity.Invoice, error) {
	return r.getOne(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)
}

// GetByIDForUpdate bloquea la fila (SELECT ... FOR UPDATE); solo tiene efecto dentro de una tx.
func (r *InvoiceRepo) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Invoice, error) {
	return r.getOne(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1 FOR UPDATE`, id)
}

func (r *InvoiceRepo) getOne(ctx context.Context, query string, id int64) (*entity.Invoice, error) {
	rows, err := r.q.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	inv, err := pgx.CollectExactlyOneRow(rows, scanInvoice)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// ListIDsByCompany devuelve los IDs de las facturas de una empresa.
func (r *InvoiceRepo) ListIDsByCompany(ctx context.Context, compCode string) ([]int64, error) {
	rows, err := r.q.Query(ctx, `SELECT id FROM invoices WHERE comp_code = $1 ORDER BY id`, compCode)
	if err != nil {
		return nil, fmt.Errorf("list invoice ids: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("scan invoice id: %w", err)
	}
	if ids == nil {
		ids = []int64{}
	}
	return ids, nil
}

// Create persiste la factura; paid y paid_date toman los valores por defecto de la tabla.
func (r *InvoiceRepo) Create(ctx context.Context, compCode string, amt decimal.Decimal) (*entity.Invoice, error) {
	query := `INSERT INTO invoices (comp_code, amt) VALUES ($1, $2) RETURNING ` + invoiceColumns
	rows, err := r.q.Query(ctx, query, compCode, amt)
	if err != nil {
		return nil, fmt.Errorf("insert invoice: %w", err)
	}
	inv, err := pgx.CollectExactlyOneRow(rows, scanInvoice)
	if err != nil {
		return nil, fmt.Errorf("insert invoice: %w", err)
	}
	return inv, nil
}

// Update escribe amt, paid y paid_date.
func (r *InvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) (*entity.Invoice, error) {
	query := `
		UPDATE invoices SET amt = $2, paid = $3, paid_date = $4
		WHERE id = $1
		RETURNING ` + invoiceColumns
	rows, err := r.q.Query(ctx, query, invoice.ID, invoice.Amt, invoice.Paid, invoice.PaidDate)
	if err != nil {
		return nil, fmt.Errorf("update invoice: %w", err)
	}
	inv, err := pgx.CollectExactlyOneRow(rows, scanInvoice)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update invoice: %w", err)
	}
	return inv, nil
}

// Delete elimina una factura por ID.
func (r *InvoiceRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete invoice: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanInvoice(row pgx.CollectableRow) (*entity.Invoice, error) {
	var inv entity.Invoice
	if err := row.Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.PaidDate); err != nil {
		return nil, err
	}
	return &inv, nil
}
