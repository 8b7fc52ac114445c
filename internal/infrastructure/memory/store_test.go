package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
	"github.com/jhoicas/biztime-api/internal/infrastructure/memory"
)

func seed(t *testing.T) (*memory.Store, repository.Repositories) {
	t.Helper()
	store := memory.NewStore()
	repos := store.Repositories()
	ctx := context.Background()

	_, err := repos.Companies.Create(ctx, &entity.Company{Code: "apple", Name: "Apple", Description: "Maker of OSX."})
	require.NoError(t, err)
	_, err = repos.Industries.Create(ctx, &entity.Industry{Code: "tech", Industry: "Technology"})
	require.NoError(t, err)
	return store, repos
}

func TestCompanyRepo_CodigoYNombreUnicos(t *testing.T) {
	_, repos := seed(t)
	ctx := context.Background()

	_, err := repos.Companies.Create(ctx, &entity.Company{Code: "apple", Name: "Otra"})
	assert.Error(t, err, "code duplicado")

	_, err = repos.Companies.Create(ctx, &entity.Company{Code: "apple-2", Name: "Apple"})
	assert.Error(t, err, "name duplicado")
}

func TestCompanyRepo_UpdateSinFila(t *testing.T) {
	_, repos := seed(t)

	got, err := repos.Companies.Update(context.Background(), &entity.Company{Code: "nope", Name: "X"})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCompanyRepo_DeleteEnCascada(t *testing.T) {
	_, repos := seed(t)
	ctx := context.Background()

	inv, err := repos.Invoices.Create(ctx, "apple", decimal.NewFromInt(100))
	require.NoError(t, err)
	link := entity.CompanyIndustry{CompanyCode: "apple", IndustryCode: "tech"}
	require.NoError(t, repos.Industries.Associate(ctx, link))

	deleted, err := repos.Companies.Delete(ctx, "apple")
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err := repos.Invoices.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "las facturas se borran con la empresa")

	exists, err := repos.Industries.AssociationExists(ctx, link)
	require.NoError(t, err)
	assert.False(t, exists)

	deleted, err = repos.Companies.Delete(ctx, "apple")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestInvoiceRepo_CreateRequiereEmpresa(t *testing.T) {
	_, repos := seed(t)

	_, err := repos.Invoices.Create(context.Background(), "ghost", decimal.NewFromInt(10))
	assert.Error(t, err)
}

func TestInvoiceRepo_IDsSecuencialesYPorEmpresa(t *testing.T) {
	_, repos := seed(t)
	ctx := context.Background()
	_, err := repos.Companies.Create(ctx, &entity.Company{Code: "ibm", Name: "IBM"})
	require.NoError(t, err)

	a, _ := repos.Invoices.Create(ctx, "apple", decimal.NewFromInt(100))
	b, _ := repos.Invoices.Create(ctx, "ibm", decimal.NewFromInt(200))
	c, _ := repos.Invoices.Create(ctx, "apple", decimal.NewFromInt(300))
	assert.Equal(t, []int64{1, 2, 3}, []int64{a.ID, b.ID, c.ID})
	assert.False(t, a.Paid)
	assert.Nil(t, a.PaidDate)

	ids, err := repos.Invoices.ListIDsByCompany(ctx, "apple")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, ids)

	ids, err = repos.Invoices.ListIDsByCompany(ctx, "nadie")
	require.NoError(t, err)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}

func TestInvoiceRepo_UpdateNoCompartePunteros(t *testing.T) {
	_, repos := seed(t)
	ctx := context.Background()
	inv, _ := repos.Invoices.Create(ctx, "apple", decimal.NewFromInt(100))

	paid := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	inv.Paid = true
	inv.PaidDate = &paid
	_, err := repos.Invoices.Update(ctx, inv)
	require.NoError(t, err)

	want := paid
	*inv.PaidDate = paid.Add(time.Hour)

	got, err := repos.Invoices.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, want, *got.PaidDate)
}

func TestIndustryRepo_AsociacionDuplicada(t *testing.T) {
	_, repos := seed(t)
	ctx := context.Background()
	link := entity.CompanyIndustry{CompanyCode: "apple", IndustryCode: "tech"}

	require.NoError(t, repos.Industries.Associate(ctx, link))
	err := repos.Industries.Associate(ctx, link)
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
}

func TestStore_RunPropagaError(t *testing.T) {
	store, _ := seed(t)
	boom := errors.New("boom")

	err := store.Run(context.Background(), func(repository.Repositories) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestStore_RunContextoCancelado(t *testing.T) {
	store, _ := seed(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := store.Run(ctx, func(repository.Repositories) error { called = true; return nil })
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
