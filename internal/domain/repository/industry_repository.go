package repository

import (
	"context"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// IndustryRepository define el puerto de persistencia para Industry y su asociación con Company.
type IndustryRepository interface {
	List(ctx context.Context) ([]*entity.Industry, error)
	GetByCode(ctx context.Context, code string) (*entity.Industry, error)
	Create(ctx context.Context, industry *entity.Industry) (*entity.Industry, error)
	AssociationExists(ctx context.Context, link entity.CompanyIndustry) (bool, error)
	// Associate inserta el par; devuelve domain.ErrDuplicate si ya existe.
	Associate(ctx context.Context, link entity.CompanyIndustry) error
}
