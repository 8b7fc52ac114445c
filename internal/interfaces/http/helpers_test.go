package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/biztime-api/internal/application/billing"
	"github.com/jhoicas/biztime-api/internal/application/usecase"
	"github.com/jhoicas/biztime-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/biztime-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/biztime-api/internal/interfaces/http"
	"github.com/jhoicas/biztime-api/pkg/logger"
	"github.com/jhoicas/biztime-api/pkg/metrics"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp construye la aplicación completa sobre el almacén en memoria.
func buildTestApp(t *testing.T) (*fiber.App, *metrics.Metrics) {
	t.Helper()
	store := memory.NewStore()
	repos := store.Repositories()
	m := metrics.New("biztime_test")

	app := apphttp.NewApp(apphttp.AppConfig{Name: "biztime-test"}, logger.Nop(), m)
	apphttp.Router(app, apphttp.RouterDeps{
		ServiceName: "biztime-test",
		CompanyUC:   usecase.NewCompanyUseCase(repos.Companies, repos.Invoices),
		InvoiceUC:   usecase.NewInvoiceUseCase(repos.Invoices, store),
		IndustryUC:  usecase.NewIndustryUseCase(repos.Industries, store),
		InvoicePDF:  billing.NewPDFUseCase(repos.Invoices, repos.Companies, infrapdf.NewMarotoPDFGenerator()),
		Metrics:     m,
	})
	return app, m
}

// doRequest lanza la petición y devuelve la respuesta; body se serializa como JSON si no es nil.
func doRequest(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decode lee el cuerpo JSON como mapa genérico.
func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// call = doRequest + decode, verificando el status.
func call(t *testing.T, app *fiber.App, method, path string, body any, wantStatus int) map[string]any {
	t.Helper()
	resp := doRequest(t, app, method, path, body)
	require.Equal(t, wantStatus, resp.StatusCode, "%s %s", method, path)
	return decode(t, resp)
}

func object(t *testing.T, m map[string]any, key string) map[string]any {
	t.Helper()
	v, ok := m[key].(map[string]any)
	require.True(t, ok, "se esperaba objeto en %q: %v", key, m)
	return v
}
