package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/service"
)

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context) ([]service.Transaction, error)
}

// ListTransactionsHandler handles POST /v1/tools/list-transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions tool with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/tools/list-transactions",
		Summary:     "List transactions",
		Description: "Returns every recorded transaction.",
		Tags:        []string{"Tools"},
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, _ *struct{}) (*TransactionsOutput, error) {
	stopTimer := startTimer(ctx, "listTransactionsMs")
	transactions, err := h.TransactionService.ListTransactions(ctx)
	stopTimer()
	if err != nil {
		return nil, toHumaError(ctx, "failed to list transactions", err)
	}

	addLogData(ctx, "transactionCount", len(transactions))
	return toTransactionsOutput(transactions), nil
}
