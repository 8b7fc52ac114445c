package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/jhoicas/biztime-api/internal/application/billing"
	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/application/usecase"
	"github.com/jhoicas/biztime-api/pkg/metrics"
	"github.com/swaggo/swag"

	_ "github.com/jhoicas/biztime-api/docs" // registra el documento OpenAPI en swag
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ServiceName string
	CompanyUC   *usecase.CompanyUseCase
	InvoiceUC   *usecase.InvoiceUseCase
	IndustryUC  *usecase.IndustryUseCase
	InvoicePDF  *billing.PDFUseCase
	Metrics     *metrics.Metrics
	// SwaggerFile habilita la UI en /docs si el archivo existe.
	SwaggerFile string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: deps.ServiceName})
	})
	app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	app.Get("/openapi.json", openAPIDocument)

	// Swagger UI en local: http://localhost:<port>/docs
	if deps.SwaggerFile != "" {
		if _, err := os.Stat(deps.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: deps.SwaggerFile,
				Path:     "docs",
				Title:    "BizTime API",
			}))
		}
	}

	companies := app.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:code", companyHandler.Get)
	companies.Put("/:code", companyHandler.Update)
	companies.Delete("/:code", companyHandler.Delete)

	invoices := app.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.InvoicePDF)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id", invoiceHandler.Get)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)

	industries := app.Group("/industries")
	industryHandler := NewIndustryHandler(deps.IndustryUC)
	industries.Get("/", industryHandler.List)
	industries.Post("/", industryHandler.Create)
	industries.Post("/associate", industryHandler.Associate)
	industries.Get("/:code", industryHandler.Get)
}

// openAPIDocument sirve el documento registrado en swag.
func openAPIDocument(c *fiber.Ctx) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.SendString(doc)
}
