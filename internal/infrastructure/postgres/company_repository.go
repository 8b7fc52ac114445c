package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL (usable con pool o tx).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// List devuelve todas las empresas ordenadas por código.
func (r *CompanyRepo) List(ctx context.Context) ([]*entity.Company, error) {
	rows, err := r.q.Query(ctx, `SELECT code, name, COALESCE(description, '') FROM companies ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	list, err := pgx.CollectRows(rows, scanCompany)
	if err != nil {
		return nil, fmt.Errorf("scan company: %w", err)
	}
	return list, nil
}

// GetByCode obtiene una empresa por código.
func (r *CompanyRepo) GetByCode(ctx context.Context, code string) (*entity.Company, error) {
	rows, err := r.q.Query(ctx, `SELECT code, name, COALESCE(description, '') FROM companies WHERE code = $1`, code)
	if err != nil {
		return nil, fmt.Errorf("get company: %w", err)
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCompany)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// Create persiste una nueva empresa y devuelve la fila insertada.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) (*entity.Company, error) {
	const query = `
		INSERT INTO companies (code, name, description)
		VALUES ($1, $2, $3)
		RETURNING code, name, COALESCE(description, '')`
	var c entity.Company
	err := r.q.QueryRow(ctx, query, company.Code, company.Name, company.Description).
		Scan(&c.Code, &c.Name, &c.Description)
	if err != nil {
		return nil, fmt.Errorf("insert company: %w", err)
	}
	return &c, nil
}

// Update actualiza name y description. El código nunca cambia.
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) (*entity.Company, error) {
	const query = `
		UPDATE companies SET name = $2, description = $3
		WHERE code = $1
		RETURNING code, name, COALESCE(description, '')`
	var c entity.Company
	err := r.q.QueryRow(ctx, query, company.Code, company.Name, company.Description).
		Scan(&c.Code, &c.Name, &c.Description)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update company: %w", err)
	}
	return &c, nil
}

// Delete elimina una empresa por código (las facturas y asociaciones caen en cascada).
func (r *CompanyRepo) Delete(ctx context.Context, code string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM companies WHERE code = $1`, code)
	if err != nil {
		return false, fmt.Errorf("delete company: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanCompany(row pgx.CollectableRow) (*entity.Company, error) {
	var c entity.Company
	if err := row.Scan(&c.Code, &c.Name, &c.Description); err != nil {
		return nil, err
	}
	return &c, nil
}
