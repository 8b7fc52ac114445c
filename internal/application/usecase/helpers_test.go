package usecase

import (
	"errors"
	"testing"

	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store      *memory.Store
	companies  *CompanyUseCase
	invoices   *InvoiceUseCase
	industries *IndustryUseCase
}

func newFixture() *fixture {
	store := memory.NewStore()
	repos := store.Repositories()
	return &fixture{
		store:      store,
		companies:  NewCompanyUseCase(repos.Companies, repos.Invoices),
		invoices:   NewInvoiceUseCase(repos.Invoices, store),
		industries: NewIndustryUseCase(repos.Industries, store),
	}
}

// assertDomainError verifica tipo y mensaje de un *domain.Error.
func assertDomainError(t *testing.T, err error, kind error, message string) {
	t.Helper()
	require.Error(t, err)
	var derr *domain.Error
	require.True(t, errors.As(err, &derr), "se esperaba *domain.Error, se obtuvo %T: %v", err, err)
	assert.ErrorIs(t, err, kind)
	assert.Equal(t, message, derr.Message)
}
