package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

// IndustryUseCase casos de uso de industrias y su asociación con empresas.
type IndustryUseCase struct {
	industries repository.IndustryRepository
	tx         repository.TxRunner
}

// NewIndustryUseCase construye el caso de uso.
func NewIndustryUseCase(industries repository.IndustryRepository, tx repository.TxRunner) *IndustryUseCase {
	return &IndustryUseCase{industries: industries, tx: tx}
}

// List devuelve todas las industrias ordenadas por código.
func (uc *IndustryUseCase) List(ctx context.Context) ([]dto.IndustryResponse, error) {
	list, err := uc.industries.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewIndustryList(list), nil
}

// Get busca una industria por código; NotFound si no existe.
func (uc *IndustryUseCase) Get(ctx context.Context, code string) (*dto.IndustryResponse, error) {
	ind, err := uc.industries.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if ind == nil {
		return nil, domain.NotFound("No such industry: %s", code)
	}
	out := dto.NewIndustryResponse(ind)
	return &out, nil
}

// Create registra una industria con el código que envía el cliente.
func (uc *IndustryUseCase) Create(ctx context.Context, in dto.CreateIndustryRequest) (*dto.IndustryResponse, error) {
	if strings.TrimSpace(in.Code) == "" {
		return nil, domain.BadRequest("code is required")
	}
	if strings.TrimSpace(in.Industry) == "" {
		return nil, domain.BadRequest("industry is required")
	}
	created, err := uc.industries.Create(ctx, &entity.Industry{Code: in.Code, Industry: in.Industry})
	if err != nil {
		return nil, err
	}
	out := dto.NewIndustryResponse(created)
	return &out, nil
}

// Associate vincula una empresa con una industria. Orden de comprobación:
// industria, empresa, par existente. Todo dentro de una transacción.
// Un código vacío no tiene fila y se informa como no encontrado.
func (uc *IndustryUseCase) Associate(ctx context.Context, in dto.AssociateIndustryRequest) (*dto.MessageResponse, error) {
	link := entity.CompanyIndustry{CompanyCode: in.CompanyCode, IndustryCode: in.IndustryCode}

	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		industry, err := repos.Industries.GetByCode(ctx, link.IndustryCode)
		if err != nil {
			return err
		}
		if industry == nil {
			return domain.NotFound("Industry not found: %s", link.IndustryCode)
		}

		company, err := repos.Companies.GetByCode(ctx, link.CompanyCode)
		if err != nil {
			return err
		}
		if company == nil {
			return domain.NotFound("Company not found: %s", link.CompanyCode)
		}

		exists, err := repos.Industries.AssociationExists(ctx, link)
		if err != nil {
			return err
		}
		if exists {
			return alreadyAssociated(link)
		}

		if err := repos.Industries.Associate(ctx, link); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				return alreadyAssociated(link)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.MessageResponse{
		Message: fmt.Sprintf("Industry %s associated with company %s successfully", link.IndustryCode, link.CompanyCode),
	}, nil
}

func alreadyAssociated(link entity.CompanyIndustry) error {
	return domain.BadRequest("Industry %s is already associated with company %s", link.IndustryCode, link.CompanyCode)
}
