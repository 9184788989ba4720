package operator

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/carson-networks/ledger-server/internal/storage"
)

// fakeConnector hands out connections whose transactions only count calls.
type fakeConnector struct {
	commitDelay time.Duration
	commitErr   error

	begins         atomic.Int32
	commitAttempts atomic.Int32
	commits        atomic.Int32
	rollbacks      atomic.Int32
}

func (c *fakeConnector) Connect(context.Context) (driver.Conn, error) {
	return &fakeConn{connector: c}, nil
}

func (c *fakeConnector) Driver() driver.Driver {
	return fakeDriver{}
}

type fakeDriver struct{}

func (fakeDriver) Open(string) (driver.Conn, error) {
	return nil, errors.New("fake driver: open through the connector")
}

type fakeConn struct {
	connector *fakeConnector
}

func (c *fakeConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("fake driver: statements not supported")
}

func (c *fakeConn) Close() error {
	return nil
}

func (c *fakeConn) Begin() (driver.Tx, error) {
	c.connector.begins.Add(1)
	return &fakeTx{connector: c.connector}, nil
}

type fakeTx struct {
	connector *fakeConnector
}

func (t *fakeTx) Commit() error {
	t.connector.commitAttempts.Add(1)
	time.Sleep(t.connector.commitDelay)
	if t.connector.commitErr != nil {
		return t.connector.commitErr
	}
	t.connector.commits.Add(1)
	return nil
}

func (t *fakeTx) Rollback() error {
	t.connector.rollbacks.Add(1)
	return nil
}

func newFakeStorage(t *testing.T, connector *fakeConnector) *storage.Storage {
	t.Helper()
	db := sql.OpenDB(connector)
	t.Cleanup(func() { _ = db.Close() })
	return storage.New(db)
}
