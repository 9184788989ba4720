package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/service"
)

// FindByDescriptionBody is the request body for a description search.
type FindByDescriptionBody struct {
	Description string `json:"description" required:"true" doc:"Case-insensitive substring to look for"`
}

// FindByDescriptionInput is the Huma input for a description search.
type FindByDescriptionInput struct {
	Body FindByDescriptionBody
}

// FindByMonthYearBody is the request body for a calendar month search.
type FindByMonthYearBody struct {
	Month int `json:"month" required:"true" doc:"Month number, 1 to 12"`
	Year  int `json:"year" required:"true" doc:"Four digit year"`
}

// FindByMonthYearInput is the Huma input for a calendar month search.
type FindByMonthYearInput struct {
	Body FindByMonthYearBody
}

// FindByDateRangeBody is the request body for a date range search.
type FindByDateRangeBody struct {
	Start    string `json:"start" required:"true" doc:"First day of the range, YYYY-MM-DD"`
	End      string `json:"end" required:"true" doc:"Last day of the range, YYYY-MM-DD"`
	Category string `json:"category,omitempty" doc:"Optional category restriction"`
}

// FindByDateRangeInput is the Huma input for a date range search.
type FindByDateRangeInput struct {
	Body FindByDateRangeBody
}

// FindByDateBody is the request body for an exact date search.
type FindByDateBody struct {
	Date string `json:"date" required:"true" doc:"Transaction date, YYYY-MM-DD"`
}

// FindByDateInput is the Huma input for an exact date search.
type FindByDateInput struct {
	Body FindByDateBody
}

// transactionFinder is the interface for the filtered reads.
type transactionFinder interface {
	FindByDescription(ctx context.Context, substring string) ([]service.Transaction, error)
	FindByMonthYear(ctx context.Context, month, year int) ([]service.Transaction, error)
	FindByDateRange(ctx context.Context, start, end string, category *string) ([]service.Transaction, error)
	FindByExactDate(ctx context.Context, date string) ([]service.Transaction, error)
}

// FindTransactionsHandler serves the four filtered read tools.
type FindTransactionsHandler struct {
	TransactionService transactionFinder
}

// NewFindTransactionsHandler creates a new FindTransactionsHandler.
func NewFindTransactionsHandler(svc transactionFinder) *FindTransactionsHandler {
	return &FindTransactionsHandler{TransactionService: svc}
}

// Register registers the find tools with the Huma API.
func (h *FindTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "find-transactions-by-description",
		Method:      http.MethodPost,
		Path:        "/v1/tools/find-transactions-by-description",
		Summary:     "Find transactions by description",
		Description: "Returns transactions whose description contains the given text, ignoring case.",
		Tags:        []string{"Tools"},
	}, h.byDescription)

	huma.Register(api, huma.Operation{
		OperationID: "find-transactions-by-month-year",
		Method:      http.MethodPost,
		Path:        "/v1/tools/find-transactions-by-month-year",
		Summary:     "Find transactions by month",
		Description: "Returns transactions dated within the given calendar month.",
		Tags:        []string{"Tools"},
	}, h.byMonthYear)

	huma.Register(api, huma.Operation{
		OperationID: "find-transactions-by-date-range",
		Method:      http.MethodPost,
		Path:        "/v1/tools/find-transactions-by-date-range",
		Summary:     "Find transactions by date range",
		Description: "Returns transactions dated between start and end inclusive, optionally restricted to one category.",
		Tags:        []string{"Tools"},
	}, h.byDateRange)

	huma.Register(api, huma.Operation{
		OperationID: "find-transactions-by-date",
		Method:      http.MethodPost,
		Path:        "/v1/tools/find-transactions-by-date",
		Summary:     "Find transactions by date",
		Description: "Returns transactions dated exactly on the given day.",
		Tags:        []string{"Tools"},
	}, h.byDate)
}

func (h *FindTransactionsHandler) byDescription(ctx context.Context, input *FindByDescriptionInput) (*TransactionsOutput, error) {
	stopTimer := startTimer(ctx, "findTransactionsMs")
	transactions, err := h.TransactionService.FindByDescription(ctx, input.Body.Description)
	stopTimer()
	if err != nil {
		return nil, toHumaError(ctx, "failed to find transactions", err)
	}

	addLogData(ctx, "transactionCount", len(transactions))
	return toTransactionsOutput(transactions), nil
}

func (h *FindTransactionsHandler) byMonthYear(ctx context.Context, input *FindByMonthYearInput) (*TransactionsOutput, error) {
	stopTimer := startTimer(ctx, "findTransactionsMs")
	transactions, err := h.TransactionService.FindByMonthYear(ctx, input.Body.Month, input.Body.Year)
	stopTimer()
	if err != nil {
		return nil, toHumaError(ctx, "failed to find transactions", err)
	}

	addLogData(ctx, "transactionCount", len(transactions))
	return toTransactionsOutput(transactions), nil
}

func (h *FindTransactionsHandler) byDateRange(ctx context.Context, input *FindByDateRangeInput) (*TransactionsOutput, error) {
	var category *string
	if input.Body.Category != "" {
		category = &input.Body.Category
	}

	stopTimer := startTimer(ctx, "findTransactionsMs")
	transactions, err := h.TransactionService.FindByDateRange(ctx, input.Body.Start, input.Body.End, category)
	stopTimer()
	if err != nil {
		return nil, toHumaError(ctx, "failed to find transactions", err)
	}

	addLogData(ctx, "transactionCount", len(transactions))
	return toTransactionsOutput(transactions), nil
}

func (h *FindTransactionsHandler) byDate(ctx context.Context, input *FindByDateInput) (*TransactionsOutput, error) {
	stopTimer := startTimer(ctx, "findTransactionsMs")
	transactions, err := h.TransactionService.FindByExactDate(ctx, input.Body.Date)
	stopTimer()
	if err != nil {
		return nil, toHumaError(ctx, "failed to find transactions", err)
	}

	addLogData(ctx, "transactionCount", len(transactions))
	return toTransactionsOutput(transactions), nil
}
