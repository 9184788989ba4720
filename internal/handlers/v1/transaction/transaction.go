package transaction

import (
	"time"

	"github.com/carson-networks/ledger-server/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          int64  `json:"id" doc:"Transaction id assigned by the store"`
	Kind        string `json:"kind" doc:"Income or Expense"`
	Category    string `json:"category" doc:"Canonical category name"`
	Amount      string `json:"amount" doc:"Decimal amount as recorded"`
	Description string `json:"description" doc:"Free-form description"`
	Date        string `json:"date" doc:"Transaction date, YYYY-MM-DD"`
	CreatedAt   string `json:"createdAt" doc:"RFC3339 time the record was stored"`
}

// TransactionsResponseBody is shared by every operation returning transactions.
type TransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Matching transactions in ascending id order"`
}

// TransactionsOutput is the Huma output for operations returning transactions.
type TransactionsOutput struct {
	Body TransactionsResponseBody
}

func toTransactionsOutput(transactions []service.Transaction) *TransactionsOutput {
	resp := TransactionsResponseBody{
		Transactions: make([]Transaction, len(transactions)),
	}

	for i, tx := range transactions {
		resp.Transactions[i] = Transaction{
			ID:          tx.ID,
			Kind:        tx.Kind.String(),
			Category:    tx.Category.String(),
			Amount:      tx.Amount.String(),
			Description: tx.Description,
			Date:        tx.Date.Format(service.DateLayout),
			CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
		}
	}

	return &TransactionsOutput{Body: resp}
}
