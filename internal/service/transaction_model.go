package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
	"github.com/carson-networks/ledger-server/internal/taxonomy"
)

// DateLayout is the only accepted date format.
const DateLayout = "2006-01-02"

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID          int64
	Kind        taxonomy.Kind
	Category    taxonomy.Category
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	CreatedAt   time.Time
}

// NewTransaction is the input of InsertTransaction. Category is free text
// resolved through the taxonomy; Date is YYYY-MM-DD.
type NewTransaction struct {
	Kind        taxonomy.Kind
	Category    string
	Amount      decimal.Decimal
	Description string
	Date        string
}

// KindTotal is the sum of amounts for one kind within a category.
type KindTotal struct {
	Kind  taxonomy.Kind
	Total decimal.Decimal
}

// ParseDate reads a YYYY-MM-DD calendar date as UTC midnight.
func ParseDate(field, text string) (time.Time, error) {
	date, err := time.Parse(DateLayout, strings.TrimSpace(text))
	if err != nil {
		return time.Time{}, NewValidationError(field, ReasonInvalidDate)
	}
	return date, nil
}

// ParseKind resolves a kind token such as "Income" or "Despesa".
func ParseKind(text string) (taxonomy.Kind, error) {
	kind, ok := taxonomy.ParseKind(text)
	if !ok {
		return 0, NewValidationError("kind", ReasonInvalidKind)
	}
	return kind, nil
}

// ParseAmount reads a signed decimal amount.
func ParseAmount(text string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return decimal.Decimal{}, NewValidationError("amount", ReasonInvalidAmount)
	}
	return amount, nil
}

func transactionFromStorage(row *sqlconfig.Transaction) (Transaction, error) {
	kind, ok := taxonomy.ParseKind(row.Kind)
	if !ok {
		return Transaction{}, fmt.Errorf("row %d: unrecognized kind %q", row.ID, row.Kind)
	}
	category, ok := taxonomy.ResolveCategory(row.Category)
	if !ok {
		return Transaction{}, fmt.Errorf("row %d: unrecognized category %q", row.ID, row.Category)
	}

	d := row.TransactionDate
	return Transaction{
		ID:          row.ID,
		Kind:        kind,
		Category:    category,
		Amount:      row.Amount,
		Description: row.Description,
		Date:        time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC),
		CreatedAt:   row.CreatedAt,
	}, nil
}
