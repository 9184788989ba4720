package actions

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/storage"
)

// IAction is one unit of write work. Perform runs inside a single store
// transaction that the operator commits when it returns nil.
type IAction interface {
	Name() string
	Perform(ctx context.Context, writer *storage.Writer) error
}
