package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndustries_CreateGetList(t *testing.T) {
	app, _ := buildTestApp(t)

	created := object(t, call(t, app, http.MethodPost, "/industries",
		map[string]any{"code": "tech", "industry": "Technology"}, http.StatusCreated), "industry")
	assert.Equal(t, map[string]any{"code": "tech", "industry": "Technology"}, created)

	got := object(t, call(t, app, http.MethodGet, "/industries/tech", nil, http.StatusOK), "industry")
	assert.Equal(t, "Technology", got["industry"])

	list := call(t, app, http.MethodGet, "/industries", nil, http.StatusOK)
	items, ok := list["industries"].([]any)
	require.True(t, ok)
	assert.Len(t, items, 1)

	miss := call(t, app, http.MethodGet, "/industries/mining", nil, http.StatusNotFound)
	assert.Equal(t, "No such industry: mining", miss["message"])
}

func TestIndustries_DuplicateIsInternalError(t *testing.T) {
	app, _ := buildTestApp(t)
	body := map[string]any{"code": "tech", "industry": "Technology"}
	call(t, app, http.MethodPost, "/industries", body, http.StatusCreated)
	call(t, app, http.MethodPost, "/industries", body, http.StatusInternalServerError)
}

func TestIndustries_Associate(t *testing.T) {
	app, _ := buildTestApp(t)
	call(t, app, http.MethodPost, "/companies", map[string]any{"name": "Apple"}, http.StatusCreated)
	call(t, app, http.MethodPost, "/industries", map[string]any{"code": "tech", "industry": "Technology"}, http.StatusCreated)

	link := map[string]any{"companyCode": "apple", "industryCode": "tech"}
	out := call(t, app, http.MethodPost, "/industries/associate", link, http.StatusCreated)
	assert.Equal(t, "Industry tech associated with company apple successfully", out["message"])

	dup := call(t, app, http.MethodPost, "/industries/associate", link, http.StatusBadRequest)
	assert.Equal(t, "Industry tech is already associated with company apple", dup["message"])
}

func TestIndustries_AssociateReportsIndustryFirst(t *testing.T) {
	app, _ := buildTestApp(t)

	out := call(t, app, http.MethodPost, "/industries/associate",
		map[string]any{"companyCode": "ghost", "industryCode": "void"}, http.StatusNotFound)
	assert.Equal(t, "Industry not found: void", out["message"])

	call(t, app, http.MethodPost, "/industries", map[string]any{"code": "void", "industry": "Void"}, http.StatusCreated)
	out = call(t, app, http.MethodPost, "/industries/associate",
		map[string]any{"companyCode": "ghost", "industryCode": "void"}, http.StatusNotFound)
	assert.Equal(t, "Company not found: ghost", out["message"])
}
