package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanies_CreateThenGet(t *testing.T) {
	app, _ := buildTestApp(t)

	created := call(t, app, http.MethodPost, "/companies",
		map[string]any{"name": "Company ABC", "description": "Widgets"}, http.StatusCreated)
	company := object(t, created, "company")
	assert.Equal(t, "company-abc", company["code"])
	assert.Equal(t, "Company ABC", company["name"])
	assert.Equal(t, "Widgets", company["description"])

	got := call(t, app, http.MethodGet, "/companies/company-abc", nil, http.StatusOK)
	detail := object(t, got, "company")
	assert.Equal(t, "company-abc", detail["code"])
	assert.Equal(t, []any{}, detail["invoices"])
}

func TestCompanies_MissingDescriptionIsEmptyString(t *testing.T) {
	app, _ := buildTestApp(t)

	company := object(t, call(t, app, http.MethodPost, "/companies",
		map[string]any{"name": "IBM"}, http.StatusCreated), "company")
	assert.Equal(t, "", company["description"])

	company = object(t, call(t, app, http.MethodGet, "/companies/ibm", nil, http.StatusOK), "company")
	assert.Equal(t, "", company["description"])
}

func TestCompanies_List(t *testing.T) {
	app, _ := buildTestApp(t)

	empty := call(t, app, http.MethodGet, "/companies", nil, http.StatusOK)
	assert.Equal(t, []any{}, empty["companies"])

	call(t, app, http.MethodPost, "/companies", map[string]any{"name": "Apple"}, http.StatusCreated)
	call(t, app, http.MethodPost, "/companies", map[string]any{"name": "IBM"}, http.StatusCreated)

	out := call(t, app, http.MethodGet, "/companies", nil, http.StatusOK)
	list, ok := out["companies"].([]any)
	require.True(t, ok)
	require.Len(t, list, 2)
	first := list[0].(map[string]any)
	assert.Equal(t, "apple", first["code"])
	_, hasInvoices := first["invoices"]
	assert.False(t, hasInvoices, "el listado no incluye facturas")
}

func TestCompanies_GetIncludesInvoiceIDs(t *testing.T) {
	app, _ := buildTestApp(t)
	call(t, app, http.MethodPost, "/companies", map[string]any{"name": "Apple"}, http.StatusCreated)
	inv := object(t, call(t, app, http.MethodPost, "/invoices",
		map[string]any{"comp_code": "apple", "amt": 100}, http.StatusCreated), "invoice")

	detail := object(t, call(t, app, http.MethodGet, "/companies/apple", nil, http.StatusOK), "company")
	assert.Equal(t, []any{inv["id"]}, detail["invoices"])
}

func TestCompanies_Update(t *testing.T) {
	app, _ := buildTestApp(t)
	call(t, app, http.MethodPost, "/companies", map[string]any{"name": "Apple"}, http.StatusCreated)

	out := call(t, app, http.MethodPut, "/companies/apple",
		map[string]any{"name": "Apple Computer", "description": "Phones"}, http.StatusOK)
	company := object(t, out, "company")
	assert.Equal(t, "apple", company["code"])
	assert.Equal(t, "Apple Computer", company["name"])
	assert.Equal(t, "Phones", company["description"])
}

func TestCompanies_Delete(t *testing.T) {
	app, _ := buildTestApp(t)
	call(t, app, http.MethodPost, "/companies", map[string]any{"name": "Apple"}, http.StatusCreated)

	out := call(t, app, http.MethodDelete, "/companies/apple", nil, http.StatusOK)
	assert.Equal(t, map[string]any{"status": "deleted"}, out)

	call(t, app, http.MethodGet, "/companies/apple", nil, http.StatusNotFound)
}

func TestCompanies_NotFound(t *testing.T) {
	app, _ := buildTestApp(t)

	for _, tc := range []struct {
		method string
		body   any
	}{
		{http.MethodGet, nil},
		{http.MethodPut, map[string]any{"name": "Nope"}},
		{http.MethodDelete, nil},
	} {
		out := call(t, app, tc.method, "/companies/nope", tc.body, http.StatusNotFound)
		assert.Equal(t, "No such company: nope", out["message"], tc.method)
		assert.Equal(t, float64(http.StatusNotFound), out["status"], tc.method)
		assert.Equal(t, "NOT_FOUND", out["code"], tc.method)
	}
}

func TestCompanies_BadRequest(t *testing.T) {
	app, _ := buildTestApp(t)

	out := call(t, app, http.MethodPost, "/companies", map[string]any{"description": "no name"}, http.StatusBadRequest)
	assert.Equal(t, "name is required", out["message"])
	assert.Equal(t, "BAD_REQUEST", out["code"])
}

func TestCompanies_DuplicateIsInternalError(t *testing.T) {
	app, _ := buildTestApp(t)
	call(t, app, http.MethodPost, "/companies", map[string]any{"name": "Apple"}, http.StatusCreated)

	out := call(t, app, http.MethodPost, "/companies", map[string]any{"name": "Apple"}, http.StatusInternalServerError)
	assert.Equal(t, "internal server error", out["message"])
	assert.Equal(t, float64(http.StatusInternalServerError), out["status"])
}
