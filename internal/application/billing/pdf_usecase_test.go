package billing

import (
	"context"
	"errors"
	"testing"

	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/infrastructure/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	gotInvoice *entity.Invoice
	gotCompany *entity.Company
	err        error
}

func (g *stubGenerator) GenerateInvoicePDF(_ context.Context, inv *entity.Invoice, c *entity.Company) ([]byte, error) {
	g.gotInvoice, g.gotCompany = inv, c
	if g.err != nil {
		return nil, g.err
	}
	return []byte("%PDF-1.3 stub"), nil
}

func seed(t *testing.T) (*memory.Store, int64) {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	repos := store.Repositories()
	_, err := repos.Companies.Create(ctx, &entity.Company{Code: "apple", Name: "Apple"})
	require.NoError(t, err)
	inv, err := repos.Invoices.Create(ctx, "apple", decimal.NewFromInt(300))
	require.NoError(t, err)
	return store, inv.ID
}

func TestDownloadInvoicePDF(t *testing.T) {
	store, id := seed(t)
	repos := store.Repositories()
	gen := &stubGenerator{}
	uc := NewPDFUseCase(repos.Invoices, repos.Companies, gen)

	out, filename, err := uc.DownloadInvoicePDF(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.3 stub"), out)
	assert.Equal(t, "invoice_1.pdf", filename)
	assert.Equal(t, "Apple", gen.gotCompany.Name)
	assert.Equal(t, id, gen.gotInvoice.ID)
}

func TestDownloadInvoicePDF_NotFound(t *testing.T) {
	store, _ := seed(t)
	repos := store.Repositories()
	uc := NewPDFUseCase(repos.Invoices, repos.Companies, &stubGenerator{})

	_, _, err := uc.DownloadInvoicePDF(context.Background(), 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "No such invoice: 42", err.Error())
}

func TestDownloadInvoicePDF_GeneratorFailure(t *testing.T) {
	store, id := seed(t)
	repos := store.Repositories()
	boom := errors.New("boom")
	uc := NewPDFUseCase(repos.Invoices, repos.Companies, &stubGenerator{err: boom})

	_, _, err := uc.DownloadInvoicePDF(context.Background(), id)
	assert.ErrorIs(t, err, boom)
}
