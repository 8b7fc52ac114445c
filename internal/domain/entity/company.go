package entity

import "github.com/gosimple/slug"

// Company representa una empresa. Code es la clave pública y no cambia después de crearla.
type Company struct {
	Code        string
	Name        string
	Description string
}

// NewCompanyCode deriva el código de una empresa a partir de su nombre:
// minúsculas, separadores normalizados a "-" ("Company ABC" → "company-abc").
// Es determinista; dos nombres iguales producen el mismo código.
func NewCompanyCode(name string) string {
	return slug.MakeLang(name, "en")
}
