package dto

import "github.com/jhoicas/biztime-api/internal/domain/entity"

// CompanyRequest body de POST /companies y PUT /companies/:code.
type CompanyRequest struct {
	Name        string `json:"name" example:"Company ABC"`
	Description string `json:"description" example:"Maker of widgets."`
}

// CompanyResponse empresa sin relaciones.
type CompanyResponse struct {
	Code        string `json:"code" example:"company-abc"`
	Name        string `json:"name" example:"Company ABC"`
	Description string `json:"description" example:"Maker of widgets."`
}

// CompanyDetail empresa con los IDs de sus facturas (GET /companies/:code).
type CompanyDetail struct {
	CompanyResponse
	Invoices []int64 `json:"invoices"`
}

// CompanyEnvelope {"company": {...}}.
type CompanyEnvelope struct {
	Company CompanyResponse `json:"company"`
}

// CompanyDetailEnvelope {"company": {..., "invoices": [...]}}.
type CompanyDetailEnvelope struct {
	Company CompanyDetail `json:"company"`
}

// CompanyListEnvelope {"companies": [...]}.
type CompanyListEnvelope struct {
	Companies []CompanyResponse `json:"companies"`
}

// NewCompanyResponse mapea la entidad a su representación JSON.
func NewCompanyResponse(c *entity.Company) CompanyResponse {
	return CompanyResponse{Code: c.Code, Name: c.Name, Description: c.Description}
}

// NewCompanyList mapea una lista de entidades; nunca devuelve nil.
func NewCompanyList(list []*entity.Company) []CompanyResponse {
	out := make([]CompanyResponse, 0, len(list))
	for _, c := range list {
		out = append(out, NewCompanyResponse(c))
	}
	return out
}
