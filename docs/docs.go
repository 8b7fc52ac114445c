// Package docs contiene el documento OpenAPI 2.0 de la API y lo registra en swag.
// swagger.json se mantiene a partir de las anotaciones godoc de internal/interfaces/http.
package docs

import (
	_ "embed"

	"github.com/swaggo/swag"
)

//go:embed swagger.json
var swaggerJSON string

type document struct{}

func (document) ReadDoc() string { return swaggerJSON }

func init() {
	swag.Register(swag.Name, document{})
}
