package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	companies repository.CompanyRepository
	invoices  repository.InvoiceRepository
}

// NewCompanyUseCase construye el caso de uso con los puertos de persistencia.
func NewCompanyUseCase(companies repository.CompanyRepository, invoices repository.InvoiceRepository) *CompanyUseCase {
	return &CompanyUseCase{companies: companies, invoices: invoices}
}

// List lista todas las empresas (sin facturas).
func (uc *CompanyUseCase) List(ctx context.Context) ([]dto.CompanyResponse, error) {
	list, err := uc.companies.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewCompanyList(list), nil
}

// Get obtiene una empresa con los IDs de sus facturas.
func (uc *CompanyUseCase) Get(ctx context.Context, code string) (*dto.CompanyDetail, error) {
	company, err := uc.companies.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, noSuchCompany(code)
	}
	ids, err := uc.invoices.ListIDsByCompany(ctx, code)
	if err != nil {
		return nil, err
	}
	return &dto.CompanyDetail{
		CompanyResponse: dto.NewCompanyResponse(company),
		Invoices:        ids,
	}, nil
}

// Create crea una empresa; el código se deriva del nombre. Un código repetido no se
// comprueba aquí: lo rechaza la restricción única del almacén.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CompanyRequest) (*dto.CompanyResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.BadRequest("name is required")
	}
	code := entity.NewCompanyCode(in.Name)
	if code == "" {
		return nil, domain.BadRequest("name must contain at least one letter or digit")
	}
	created, err := uc.companies.Create(ctx, &entity.Company{
		Code:        code,
		Name:        in.Name,
		Description: in.Description,
	})
	if err != nil {
		return nil, err
	}
	out := dto.NewCompanyResponse(created)
	return &out, nil
}

// Update cambia name y description; el código no se modifica.
func (uc *CompanyUseCase) Update(ctx context.Context, code string, in dto.CompanyRequest) (*dto.CompanyResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.BadRequest("name is required")
	}
	updated, err := uc.companies.Update(ctx, &entity.Company{
		Code:        code,
		Name:        in.Name,
		Description: in.Description,
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, noSuchCompany(code)
	}
	out := dto.NewCompanyResponse(updated)
	return &out, nil
}

// Delete elimina la empresa (y en cascada sus facturas y asociaciones).
func (uc *CompanyUseCase) Delete(ctx context.Context, code string) error {
	deleted, err := uc.companies.Delete(ctx, code)
	if err != nil {
		return err
	}
	if !deleted {
		return noSuchCompany(code)
	}
	return nil
}

func noSuchCompany(code string) error {
	return domain.NotFound("No such company: %s", code)
}
