package sqlconfig

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a row of the transactions table.
type Transaction struct {
	ID              int64           `db:"id"`
	Kind            string          `db:"kind"`
	Category        string          `db:"category"`
	Amount          decimal.Decimal `db:"amount"`
	Description     string          `db:"description"`
	TransactionDate time.Time       `db:"transaction_date"`
	CreatedAt       time.Time       `db:"created_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	Kind            string
	Category        string
	Amount          decimal.Decimal
	Description     string
	TransactionDate time.Time
}

// TransactionFilter specifies filters for listing transactions. Nil fields
// do not filter. Date bounds are inclusive.
type TransactionFilter struct {
	DescriptionContains *string
	DateFrom            *time.Time
	DateTo              *time.Time
	Category            *string
}

// KindTotal is one row of a per-kind aggregation.
type KindTotal struct {
	Kind  string          `db:"kind"`
	Total decimal.Decimal `db:"total"`
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	Insert(ctx context.Context, create *TransactionCreate) (int64, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	SumByKind(ctx context.Context, category string) ([]*KindTotal, error)
}
