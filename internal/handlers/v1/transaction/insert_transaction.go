package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/service"
)

// InsertTransactionBody is the request body for recording a transaction.
type InsertTransactionBody struct {
	Kind        string `json:"kind" required:"true" doc:"Income or Expense"`
	Category    string `json:"category" required:"true" doc:"Category name, matched case-insensitively"`
	Amount      string `json:"amount" required:"true" doc:"Signed decimal amount"`
	Description string `json:"description,omitempty" doc:"Free-form description"`
	Date        string `json:"date" required:"true" doc:"Transaction date, YYYY-MM-DD"`
}

// InsertTransactionInput is the Huma input for recording a transaction.
type InsertTransactionInput struct {
	Body InsertTransactionBody
}

// InsertTransactionResponse is the response body for recording a transaction.
type InsertTransactionResponse struct {
	ID int64 `json:"id" doc:"Id assigned to the new transaction"`
}

// InsertTransactionOutput is the Huma output for recording a transaction.
type InsertTransactionOutput struct {
	Status int
	Body   InsertTransactionResponse
}

// transactionInserter is the interface for recording transactions.
type transactionInserter interface {
	InsertTransaction(ctx context.Context, req service.NewTransaction) (int64, error)
}

// InsertTransactionHandler handles POST /v1/tools/insert-transaction.
type InsertTransactionHandler struct {
	TransactionService transactionInserter
}

// NewInsertTransactionHandler creates a new InsertTransactionHandler.
func NewInsertTransactionHandler(svc transactionInserter) *InsertTransactionHandler {
	return &InsertTransactionHandler{TransactionService: svc}
}

// Register registers the insert transaction tool with the Huma API.
func (h *InsertTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "insert-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/tools/insert-transaction",
		Summary:     "Insert transaction",
		Description: "Records an income or expense after validating its kind, category and date.",
		Tags:        []string{"Tools"},
	}, h.handle)
}

// parseInsertTransactionInput converts the primitive body fields. Category
// and date are validated by the service.
func parseInsertTransactionInput(input *InsertTransactionInput) (service.NewTransaction, error) {
	kind, err := service.ParseKind(input.Body.Kind)
	if err != nil {
		return service.NewTransaction{}, err
	}
	amount, err := service.ParseAmount(input.Body.Amount)
	if err != nil {
		return service.NewTransaction{}, err
	}

	return service.NewTransaction{
		Kind:        kind,
		Category:    input.Body.Category,
		Amount:      amount,
		Description: input.Body.Description,
		Date:        input.Body.Date,
	}, nil
}

func (h *InsertTransactionHandler) handle(ctx context.Context, input *InsertTransactionInput) (*InsertTransactionOutput, error) {
	req, err := parseInsertTransactionInput(input)
	if err != nil {
		return nil, toHumaError(ctx, "invalid transaction", err)
	}

	stopTimer := startTimer(ctx, "insertTransactionMs")
	id, err := h.TransactionService.InsertTransaction(ctx, req)
	stopTimer()
	if err != nil {
		return nil, toHumaError(ctx, "failed to insert transaction", err)
	}

	addLogData(ctx, "transactionID", id)

	return &InsertTransactionOutput{
		Status: http.StatusCreated,
		Body:   InsertTransactionResponse{ID: id},
	}, nil
}
