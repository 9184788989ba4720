package transaction

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-server/internal/service"
)

type mockTransactionFinder struct {
	mock.Mock
}

func (m *mockTransactionFinder) FindByDescription(ctx context.Context, substring string) ([]service.Transaction, error) {
	args := m.Called(ctx, substring)
	txs, _ := args.Get(0).([]service.Transaction)
	return txs, args.Error(1)
}

func (m *mockTransactionFinder) FindByMonthYear(ctx context.Context, month, year int) ([]service.Transaction, error) {
	args := m.Called(ctx, month, year)
	txs, _ := args.Get(0).([]service.Transaction)
	return txs, args.Error(1)
}

func (m *mockTransactionFinder) FindByDateRange(ctx context.Context, start, end string, category *string) ([]service.Transaction, error) {
	args := m.Called(ctx, start, end, category)
	txs, _ := args.Get(0).([]service.Transaction)
	return txs, args.Error(1)
}

func (m *mockTransactionFinder) FindByExactDate(ctx context.Context, date string) ([]service.Transaction, error) {
	args := m.Called(ctx, date)
	txs, _ := args.Get(0).([]service.Transaction)
	return txs, args.Error(1)
}

func newFindTestAPI(t *testing.T, svc transactionFinder) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewFindTransactionsHandler(svc).Register(api)
	return api
}

func decodeTransactions(t *testing.T, buf *bytes.Buffer) []Transaction {
	t.Helper()
	var body TransactionsResponseBody
	require.NoError(t, json.Unmarshal(buf.Bytes(), &body))
	return body.Transactions
}

func TestHTTP_FindByDescription(t *testing.T) {
	mockSvc := new(mockTransactionFinder)
	mockSvc.On("FindByDescription", mock.Anything, "lunch").
		Return([]service.Transaction{sampleTransaction(4, "2024-03-15")}, nil)

	resp := newFindTestAPI(t, mockSvc).Post("/v1/tools/find-transactions-by-description", FindByDescriptionBody{
		Description: "lunch",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	txs := decodeTransactions(t, resp.Body)
	require.Len(t, txs, 1)
	assert.Equal(t, int64(4), txs[0].ID)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_FindByMonthYear(t *testing.T) {
	mockSvc := new(mockTransactionFinder)
	mockSvc.On("FindByMonthYear", mock.Anything, 2, 2024).
		Return([]service.Transaction{sampleTransaction(1, "2024-02-29")}, nil)

	resp := newFindTestAPI(t, mockSvc).Post("/v1/tools/find-transactions-by-month-year", FindByMonthYearBody{
		Month: 2,
		Year:  2024,
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	txs := decodeTransactions(t, resp.Body)
	require.Len(t, txs, 1)
	assert.Equal(t, "2024-02-29", txs[0].Date)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_FindByMonthYear_InvalidMonth(t *testing.T) {
	mockSvc := new(mockTransactionFinder)
	mockSvc.On("FindByMonthYear", mock.Anything, 13, 2024).
		Return(([]service.Transaction)(nil), service.NewValidationError("month", service.ReasonInvalidMonth))

	resp := newFindTestAPI(t, mockSvc).Post("/v1/tools/find-transactions-by-month-year", FindByMonthYearBody{
		Month: 13,
		Year:  2024,
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_FindByDateRange_WithoutCategory(t *testing.T) {
	mockSvc := new(mockTransactionFinder)
	mockSvc.On("FindByDateRange", mock.Anything, "2024-03-01", "2024-03-31", (*string)(nil)).
		Return(([]service.Transaction)(nil), nil)

	resp := newFindTestAPI(t, mockSvc).Post("/v1/tools/find-transactions-by-date-range", FindByDateRangeBody{
		Start: "2024-03-01",
		End:   "2024-03-31",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Empty(t, decodeTransactions(t, resp.Body))
	mockSvc.AssertExpectations(t)
}

func TestHTTP_FindByDateRange_WithCategory(t *testing.T) {
	mockSvc := new(mockTransactionFinder)
	mockSvc.On("FindByDateRange", mock.Anything, "2024-03-01", "2024-03-31", mock.MatchedBy(func(c *string) bool {
		return c != nil && *c == "Health"
	})).Return([]service.Transaction{sampleTransaction(9, "2024-03-10")}, nil)

	resp := newFindTestAPI(t, mockSvc).Post("/v1/tools/find-transactions-by-date-range", FindByDateRangeBody{
		Start:    "2024-03-01",
		End:      "2024-03-31",
		Category: "Health",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Len(t, decodeTransactions(t, resp.Body), 1)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_FindByDateRange_InvalidDate(t *testing.T) {
	mockSvc := new(mockTransactionFinder)
	mockSvc.On("FindByDateRange", mock.Anything, "2024-13-01", "2024-03-31", (*string)(nil)).
		Return(([]service.Transaction)(nil), service.NewValidationError("start", service.ReasonInvalidDate))

	resp := newFindTestAPI(t, mockSvc).Post("/v1/tools/find-transactions-by-date-range", FindByDateRangeBody{
		Start: "2024-13-01",
		End:   "2024-03-31",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_FindByDate(t *testing.T) {
	mockSvc := new(mockTransactionFinder)
	mockSvc.On("FindByExactDate", mock.Anything, "2024-03-15").
		Return([]service.Transaction{sampleTransaction(2, "2024-03-15"), sampleTransaction(3, "2024-03-15")}, nil)

	resp := newFindTestAPI(t, mockSvc).Post("/v1/tools/find-transactions-by-date", FindByDateBody{
		Date: "2024-03-15",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	txs := decodeTransactions(t, resp.Body)
	require.Len(t, txs, 2)
	assert.Equal(t, int64(2), txs[0].ID)
	assert.Equal(t, int64(3), txs[1].ID)
	mockSvc.AssertExpectations(t)
}
