package service

import (
	"time"

	"github.com/carson-networks/ledger-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
}

// NewService creates a new Service with the given storage and write queue.
func NewService(store *storage.Storage, writes writeProcessor, timeout time.Duration) *Service {
	return &Service{
		Transaction: NewTransactionService(store, writes, timeout),
	}
}
