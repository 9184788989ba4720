package sqlconfig

import (
	"context"
	"strings"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

const transactionsTableName = "transactions"

var transactionColumns = []any{
	"id",
	"kind",
	"category",
	"amount",
	"description",
	"transaction_date",
	"created_at",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

var _ ITransactionTable = (*TransactionsTable)(nil)

type TransactionsTable struct {
	exec bob.Executor
}

// NewTransactionsTable binds the table to an executor: the pooled bob.DB for
// reads, or a bob.Tx inside a write.
func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

// Insert creates a new transaction and returns its generated ID.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (int64, error) {
	q := psql.Insert(
		im.Into(transactionsTableName, "kind", "category", "amount", "description", "transaction_date"),
		im.Values(psql.Arg(
			create.Kind,
			create.Category,
			create.Amount,
			create.Description,
			create.TransactionDate,
		)),
		im.Returning("id"),
	)

	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[int64])
}

// List returns transactions matching the filter ordered by ascending ID. Nil
// filter returns all.
func (t *TransactionsTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	return bob.All(ctx, t.exec, listQuery(filter), scan.StructMapper[*Transaction]())
}

func listQuery(filter *TransactionFilter) bob.BaseQuery[*dialect.SelectQuery] {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(transactionColumns...),
		sm.From(transactionsTableName),
	}
	if filter != nil {
		if filter.DescriptionContains != nil {
			pattern := "%" + likeEscaper.Replace(*filter.DescriptionContains) + "%"
			queryMods = append(queryMods, sm.Where(psql.Raw("description ILIKE ?", pattern)))
		}
		if filter.DateFrom != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("transaction_date").GTE(psql.Arg(*filter.DateFrom))))
		}
		if filter.DateTo != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("transaction_date").LTE(psql.Arg(*filter.DateTo))))
		}
		if filter.Category != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("category").EQ(psql.Arg(*filter.Category))))
		}
	}
	queryMods = append(queryMods, sm.OrderBy(psql.Quote("id")).Asc())

	return psql.Select(queryMods...)
}

// SumByKind totals the amounts of one category per kind. NUMERIC addition
// happens in the database so the totals are exact.
func (t *TransactionsTable) SumByKind(ctx context.Context, category string) ([]*KindTotal, error) {
	q := psql.Select(
		sm.Columns("kind", "SUM(amount) AS total"),
		sm.From(transactionsTableName),
		sm.Where(psql.Quote("category").EQ(psql.Arg(category))),
		sm.GroupBy(psql.Quote("kind")),
		sm.OrderBy(psql.Quote("kind")).Asc(),
	)

	return bob.All(ctx, t.exec, q, scan.StructMapper[*KindTotal]())
}
