package actions

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

// InsertTransaction appends one transaction. Kind and Category must already
// be canonical values. ID is set once Perform succeeds.
type InsertTransaction struct {
	Kind            string
	Category        string
	Amount          decimal.Decimal
	Description     string
	TransactionDate time.Time

	ID int64
}

func (a *InsertTransaction) Name() string {
	return "InsertTransaction"
}

func (a *InsertTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
		Kind:            a.Kind,
		Category:        a.Category,
		Amount:          a.Amount,
		Description:     a.Description,
		TransactionDate: a.TransactionDate,
	})
	if err != nil {
		return err
	}

	a.ID = id
	return nil
}
