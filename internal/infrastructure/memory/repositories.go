package memory

import (
	"context"
	"fmt"

	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var (
	_ repository.CompanyRepository  = (*CompanyRepo)(nil)
	_ repository.InvoiceRepository  = (*InvoiceRepo)(nil)
	_ repository.IndustryRepository = (*IndustryRepo)(nil)
)

// CompanyRepo implementación en memoria de CompanyRepository.
type CompanyRepo struct{ s *Store }

func (r *CompanyRepo) List(_ context.Context) ([]*entity.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Company, 0, len(r.s.companies))
	for _, code := range sortedKeys(r.s.companies) {
		c := r.s.companies[code]
		list = append(list, &c)
	}
	return list, nil
}

func (r *CompanyRepo) GetByCode(_ context.Context, code string) (*entity.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.companies[code]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CompanyRepo) Create(_ context.Context, company *entity.Company) (*entity.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.companies[company.Code]; ok {
		return nil, fmt.Errorf("insert company: %w", errUnique("companies", company.Code))
	}
	for _, c := range r.s.companies {
		if c.Name == company.Name {
			return nil, fmt.Errorf("insert company: %w", errUnique("companies.name", company.Name))
		}
	}
	c := *company
	r.s.companies[c.Code] = c
	return &c, nil
}

func (r *CompanyRepo) Update(_ context.Context, company *entity.Company) (*entity.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.companies[company.Code]; !ok {
		return nil, nil
	}
	for code, c := range r.s.companies {
		if code != company.Code && c.Name == company.Name {
			return nil, fmt.Errorf("update company: %w", errUnique("companies.name", company.Name))
		}
	}
	c := *company
	r.s.companies[c.Code] = c
	return &c, nil
}

// Delete elimina la empresa y, en cascada, sus facturas y asociaciones.
func (r *CompanyRepo) Delete(_ context.Context, code string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.companies[code]; !ok {
		return false, nil
	}
	delete(r.s.companies, code)
	for id, inv := range r.s.invoices {
		if inv.CompCode == code {
			delete(r.s.invoices, id)
		}
	}
	for link := range r.s.links {
		if link.CompanyCode == code {
			delete(r.s.links, link)
		}
	}
	return true, nil
}

// InvoiceRepo implementación en memoria de InvoiceRepository.
type InvoiceRepo struct{ s *Store }

func (r *InvoiceRepo) List(_ context.Context) ([]*entity.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Invoice, 0, len(r.s.invoices))
	for _, id := range sortedKeys(r.s.invoices) {
		inv := copyInvoice(r.s.invoices[id])
		list = append(list, &inv)
	}
	return list, nil
}

func (r *InvoiceRepo) GetByID(_ context.Context, id int64) (*entity.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	inv, ok := r.s.invoices[id]
	if !ok {
		return nil, nil
	}
	out := copyInvoice(inv)
	return &out, nil
}

// GetByIDForUpdate no necesita bloqueo de fila: Store.Run ya serializa.
func (r *InvoiceRepo) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Invoice, error) {
	return r.GetByID(ctx, id)
}

func (r *InvoiceRepo) ListIDsByCompany(_ context.Context, compCode string) ([]int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ids := make([]int64, 0)
	for _, id := range sortedKeys(r.s.invoices) {
		if r.s.invoices[id].CompCode == compCode {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *InvoiceRepo) Create(_ context.Context, compCode string, amt decimal.Decimal) (*entity.Invoice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.companies[compCode]; !ok {
		return nil, fmt.Errorf("insert invoice: memory: comp_code %q no existe en companies", compCode)
	}
	if !amt.IsPositive() {
		return nil, fmt.Errorf("insert invoice: memory: amt debe ser mayor que cero")
	}
	r.s.nextID++
	inv := entity.Invoice{ID: r.s.nextID, CompCode: compCode, Amt: amt}
	r.s.invoices[inv.ID] = inv
	out := copyInvoice(inv)
	return &out, nil
}

func (r *InvoiceRepo) Update(_ context.Context, invoice *entity.Invoice) (*entity.Invoice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.invoices[invoice.ID]
	if !ok {
		return nil, nil
	}
	if !invoice.Amt.IsPositive() {
		return nil, fmt.Errorf("update invoice: memory: amt debe ser mayor que cero")
	}
	current.Amt = invoice.Amt
	current.Paid = invoice.Paid
	current.PaidDate = invoice.PaidDate
	current = copyInvoice(current)
	r.s.invoices[current.ID] = current
	out := copyInvoice(current)
	return &out, nil
}

func (r *InvoiceRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.invoices[id]; !ok {
		return false, nil
	}
	delete(r.s.invoices, id)
	return true, nil
}

// copyInvoice evita que el llamador modifique PaidDate del almacén a través del puntero.
func copyInvoice(inv entity.Invoice) entity.Invoice {
	if inv.PaidDate != nil {
		t := *inv.PaidDate
		inv.PaidDate = &t
	}
	return inv
}

// IndustryRepo implementación en memoria de IndustryRepository.
type IndustryRepo struct{ s *Store }

func (r *IndustryRepo) List(_ context.Context) ([]*entity.Industry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Industry, 0, len(r.s.industries))
	for _, code := range sortedKeys(r.s.industries) {
		ind := r.s.industries[code]
		list = append(list, &ind)
	}
	return list, nil
}

func (r *IndustryRepo) GetByCode(_ context.Context, code string) (*entity.Industry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ind, ok := r.s.industries[code]
	if !ok {
		return nil, nil
	}
	return &ind, nil
}

func (r *IndustryRepo) Create(_ context.Context, industry *entity.Industry) (*entity.Industry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.industries[industry.Code]; ok {
		return nil, fmt.Errorf("insert industry: %w", errUnique("industries", industry.Code))
	}
	ind := *industry
	r.s.industries[ind.Code] = ind
	return &ind, nil
}

func (r *IndustryRepo) AssociationExists(_ context.Context, link entity.CompanyIndustry) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.links[link]
	return ok, nil
}

func (r *IndustryRepo) Associate(_ context.Context, link entity.CompanyIndustry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.companies[link.CompanyCode]; !ok {
		return fmt.Errorf("insert company_industry: memory: company_code %q no existe", link.CompanyCode)
	}
	if _, ok := r.s.industries[link.IndustryCode]; !ok {
		return fmt.Errorf("insert company_industry: memory: industry_code %q no existe", link.IndustryCode)
	}
	if _, ok := r.s.links[link]; ok {
		return domain.ErrDuplicate
	}
	r.s.links[link] = struct{}{}
	return nil
}
