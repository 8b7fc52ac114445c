package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

var _ repository.IndustryRepository = (*IndustryRepo)(nil)

// IndustryRepo implementación de IndustryRepository (usable con pool o tx).
type IndustryRepo struct {
	q Querier
}

// NewIndustryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIndustryRepository(q Querier) *IndustryRepo {
	return &IndustryRepo{q: q}
}

// List devuelve todas las industrias ordenadas por código.
func (r *IndustryRepo) List(ctx context.Context) ([]*entity.Industry, error) {
	rows, err := r.q.Query(ctx, `SELECT code, industry FROM industries ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("list industries: %w", err)
	}
	list, err := pgx.CollectRows(rows, scanIndustry)
	if err != nil {
		return nil, fmt.Errorf("scan industry: %w", err)
	}
	return list, nil
}

// GetByCode obtiene una industria por código.
func (r *IndustryRepo) GetByCode(ctx context.Context, code string) (*entity.Industry, error) {
	var ind entity.Industry
	err := r.q.QueryRow(ctx, `SELECT code, industry FROM industries WHERE code = $1`, code).
		Scan(&ind.Code, &ind.Industry)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get industry: %w", err)
	}
	return &ind, nil
}

// Create persiste una nueva industria.
func (r *IndustryRepo) Create(ctx context.Context, industry *entity.Industry) (*entity.Industry, error) {
	var ind entity.Industry
	err := r.q.QueryRow(ctx,
		`INSERT INTO industries (code, industry) VALUES ($1, $2) RETURNING code, industry`,
		industry.Code, industry.Industry,
	).Scan(&ind.Code, &ind.Industry)
	if err != nil {
		return nil, fmt.Errorf("insert industry: %w", err)
	}
	return &ind, nil
}

// AssociationExists informa si el par empresa-industria ya está registrado.
func (r *IndustryRepo) AssociationExists(ctx context.Context, link entity.CompanyIndustry) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM company_industries
			 WHERE company_code  = $1
			   AND industry_code = $2
		)`
	var exists bool
	if err := r.q.QueryRow(ctx, query, link.CompanyCode, link.IndustryCode).Scan(&exists); err != nil {
		return false, fmt.Errorf("check company_industry: %w", err)
	}
	return exists, nil
}

// Associate inserta el par. La PK compuesta de company_industries rechaza duplicados
// que se cuelen entre la comprobación y el INSERT; se traducen a domain.ErrDuplicate.
func (r *IndustryRepo) Associate(ctx context.Context, link entity.CompanyIndustry) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO company_industries (company_code, industry_code) VALUES ($1, $2)`,
		link.CompanyCode, link.IndustryCode,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company_industry: %w", err)
	}
	return nil
}

func scanIndustry(row pgx.CollectableRow) (*entity.Industry, error) {
	var ind entity.Industry
	if err := row.Scan(&ind.Code, &ind.Industry); err != nil {
		return nil, err
	}
	return &ind, nil
}
