package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateInvoicePDF(t *testing.T) {
	paidAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	company := &entity.Company{Code: "company-abc", Name: "Company ABC", Description: "Maker of widgets."}

	tests := []struct {
		name    string
		invoice *entity.Invoice
	}{
		{"no pagada", &entity.Invoice{ID: 1, CompCode: "company-abc", Amt: decimal.NewFromInt(100)}},
		{"pagada", &entity.Invoice{ID: 2, CompCode: "company-abc", Amt: decimal.RequireFromString("1500.25"), Paid: true, PaidDate: &paidAt}},
	}

	g := NewMarotoPDFGenerator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := g.GenerateInvoicePDF(context.Background(), tt.invoice, company)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "el documento debe empezar con la firma PDF")
		})
	}
}

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":       "0.00",
		"100":     "100.00",
		"1500.25": "1,500.25",
		"25000":   "25,000.00",
		"1000000": "1,000,000.00",
		"-1234.5": "-1,234.50",
		"999.999": "1,000.00",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(decimal.RequireFromString(in)), in)
	}
}

func TestQRReference(t *testing.T) {
	inv := &entity.Invoice{ID: 7, CompCode: "apple", Amt: decimal.NewFromInt(42), Paid: true}
	assert.Equal(t, "7|apple|42.00|true", qrReference(inv))
}
