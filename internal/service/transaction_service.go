package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
	"github.com/carson-networks/ledger-server/internal/taxonomy"
)

const (
	minYear = 1
	maxYear = 9999
)

// writeProcessor runs a write action inside its own store transaction.
type writeProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// TransactionService implements the ledger operations. It keeps no
// transaction state between calls.
type TransactionService struct {
	storage *storage.Storage
	writes  writeProcessor
	timeout time.Duration
}

// NewTransactionService creates a new TransactionService. A positive timeout
// bounds every call.
func NewTransactionService(store *storage.Storage, writes writeProcessor, timeout time.Duration) *TransactionService {
	return &TransactionService{
		storage: store,
		writes:  writes,
		timeout: timeout,
	}
}

func (s *TransactionService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// InsertTransaction validates and records a transaction, returning the id
// assigned by the store. Nothing is written when validation fails.
func (s *TransactionService) InsertTransaction(ctx context.Context, req NewTransaction) (int64, error) {
	if !req.Kind.Valid() {
		return 0, NewValidationError("kind", ReasonInvalidKind)
	}
	category, ok := taxonomy.ResolveCategory(req.Category)
	if !ok {
		return 0, NewValidationError("category", ReasonInvalidCategory)
	}
	date, err := ParseDate("date", req.Date)
	if err != nil {
		return 0, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	action := &actions.InsertTransaction{
		Kind:            req.Kind.String(),
		Category:        category.String(),
		Amount:          req.Amount,
		Description:     req.Description,
		TransactionDate: date,
	}
	if err := s.writes.Process(ctx, action); err != nil {
		return 0, translateStoreError("insert transaction", err)
	}

	return action.ID, nil
}

// FindByDescription returns transactions whose description contains
// substring, ignoring case. An empty substring matches everything.
func (s *TransactionService) FindByDescription(ctx context.Context, substring string) ([]Transaction, error) {
	return s.list(ctx, "find by description", &sqlconfig.TransactionFilter{
		DescriptionContains: &substring,
	})
}

// FindByMonthYear returns the transactions dated within the given month.
func (s *TransactionService) FindByMonthYear(ctx context.Context, month, year int) ([]Transaction, error) {
	if month < 1 || month > 12 {
		return nil, NewValidationError("month", ReasonInvalidMonth)
	}
	if year < minYear || year > maxYear {
		return nil, NewValidationError("year", ReasonInvalidYear)
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	return s.list(ctx, "find by month and year", &sqlconfig.TransactionFilter{
		DateFrom: &first,
		DateTo:   &last,
	})
}

// FindByDateRange returns transactions dated from start to end, both
// inclusive, optionally restricted to one category. A reversed range or a
// category that does not resolve yields no transactions.
func (s *TransactionService) FindByDateRange(ctx context.Context, start, end string, category *string) ([]Transaction, error) {
	from, err := ParseDate("start", start)
	if err != nil {
		return nil, err
	}
	to, err := ParseDate("end", end)
	if err != nil {
		return nil, err
	}
	if from.After(to) {
		return []Transaction{}, nil
	}

	filter := &sqlconfig.TransactionFilter{
		DateFrom: &from,
		DateTo:   &to,
	}
	if category != nil {
		resolved, ok := taxonomy.ResolveCategory(*category)
		if !ok {
			return []Transaction{}, nil
		}
		name := resolved.String()
		filter.Category = &name
	}

	return s.list(ctx, "find by date range", filter)
}

// FindByExactDate returns the transactions dated on date.
func (s *TransactionService) FindByExactDate(ctx context.Context, date string) ([]Transaction, error) {
	day, err := ParseDate("date", date)
	if err != nil {
		return nil, err
	}

	return s.list(ctx, "find by date", &sqlconfig.TransactionFilter{
		DateFrom: &day,
		DateTo:   &day,
	})
}

// ListTransactions returns every transaction in the ledger.
func (s *TransactionService) ListTransactions(ctx context.Context) ([]Transaction, error) {
	return s.list(ctx, "list transactions", nil)
}

// SummarizeByCategory sums amounts per kind for one category. Kinds without
// transactions in the category are omitted.
func (s *TransactionService) SummarizeByCategory(ctx context.Context, categoryText string) ([]KindTotal, error) {
	category, ok := taxonomy.ResolveCategory(categoryText)
	if !ok {
		return nil, NewValidationError("category", ReasonInvalidCategory)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.storage.Transactions.SumByKind(ctx, category.String())
	if err != nil {
		return nil, translateStoreError("summarize category", err)
	}

	totals := make([]KindTotal, 0, len(rows))
	for _, row := range rows {
		kind, ok := taxonomy.ParseKind(row.Kind)
		if !ok {
			return nil, &StoreError{Op: "summarize category", Err: fmt.Errorf("unrecognized kind %q", row.Kind)}
		}
		totals = append(totals, KindTotal{Kind: kind, Total: row.Total})
	}
	slices.SortFunc(totals, func(a, b KindTotal) int {
		return int(a.Kind) - int(b.Kind)
	})

	return totals, nil
}

func (s *TransactionService) list(ctx context.Context, op string, filter *sqlconfig.TransactionFilter) ([]Transaction, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.storage.Transactions.List(ctx, filter)
	if err != nil {
		return nil, translateStoreError(op, err)
	}

	transactions := make([]Transaction, 0, len(rows))
	for _, row := range rows {
		tx, err := transactionFromStorage(row)
		if err != nil {
			return nil, &StoreError{Op: op, Err: err}
		}
		transactions = append(transactions, tx)
	}

	return transactions, nil
}
