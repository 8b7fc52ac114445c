package repository

import (
	"context"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure. Las búsquedas devuelven (nil, nil)
// cuando la fila no existe.
type CompanyRepository interface {
	List(ctx context.Context) ([]*entity.Company, error)
	GetByCode(ctx context.Context, code string) (*entity.Company, error)
	Create(ctx context.Context, company *entity.Company) (*entity.Company, error)
	// Update modifica name y description; devuelve nil si ninguna fila coincide.
	Update(ctx context.Context, company *entity.Company) (*entity.Company, error)
	// Delete informa si se eliminó alguna fila.
	Delete(ctx context.Context, code string) (bool, error)
}
