package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

func TestRoutes_RegistersTools(t *testing.T) {
	rest := &Rest{
		Logger:  logging.SetupLogging("error"),
		Service: service.NewService(nil, nil, 0),
	}
	handler := rest.Routes()

	req := httptest.NewRequest(http.MethodGet, "/v1/taxonomy", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Expense")

	req = httptest.NewRequest(http.MethodGet, "/openapi.json", nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	for _, operationID := range []string{
		"insert-transaction",
		"find-transactions-by-description",
		"find-transactions-by-month-year",
		"find-transactions-by-date-range",
		"find-transactions-by-date",
		"list-transactions",
		"summarize-category",
		"get-taxonomy",
	} {
		assert.Contains(t, w.Body.String(), `"operationId":"`+operationID+`"`)
	}
}
