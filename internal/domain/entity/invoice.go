package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa una factura emitida a una empresa.
// PaidDate es derivado: nunca lo asigna el cliente.
type Invoice struct {
	ID       int64
	CompCode string
	Amt      decimal.Decimal
	Paid     bool
	PaidDate *time.Time // nil mientras la factura no esté pagada
}

// SetPaid aplica la transición de pago:
//   - no pagada → pagada: PaidDate = now
//   - cualquier estado → no pagada: PaidDate = nil
//   - pagada → pagada: PaidDate se conserva
func (i *Invoice) SetPaid(paid bool, now time.Time) {
	switch {
	case paid && i.PaidDate == nil:
		t := now
		i.PaidDate = &t
	case !paid:
		i.PaidDate = nil
	}
	i.Paid = paid
}
