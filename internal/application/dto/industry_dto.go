package dto

import "github.com/jhoicas/biztime-api/internal/domain/entity"

// CreateIndustryRequest body de POST /industries.
type CreateIndustryRequest struct {
	Code     string `json:"code" example:"tech"`
	Industry string `json:"industry" example:"Technology"`
}

// AssociateIndustryRequest body de POST /industries/associate.
type AssociateIndustryRequest struct {
	CompanyCode  string `json:"companyCode" example:"company-abc"`
	IndustryCode string `json:"industryCode" example:"tech"`
}

// IndustryResponse industria en respuestas.
type IndustryResponse struct {
	Code     string `json:"code" example:"tech"`
	Industry string `json:"industry" example:"Technology"`
}

// IndustryEnvelope {"industry": {...}}.
type IndustryEnvelope struct {
	Industry IndustryResponse `json:"industry"`
}

// IndustryListEnvelope {"industries": [...]}.
type IndustryListEnvelope struct {
	Industries []IndustryResponse `json:"industries"`
}

// NewIndustryResponse mapea la entidad a su respuesta.
func NewIndustryResponse(ind *entity.Industry) IndustryResponse {
	return IndustryResponse{Code: ind.Code, Industry: ind.Industry}
}

// NewIndustryList mapea una lista; nunca devuelve nil.
func NewIndustryList(list []*entity.Industry) []IndustryResponse {
	out := make([]IndustryResponse, 0, len(list))
	for _, ind := range list {
		out = append(out, NewIndustryResponse(ind))
	}
	return out
}
