package customer

import (
	"io"
	"log/slog"
	"testing"

	"github.com/corebank-ledger/internal/domain/account"
	"github.com/corebank-ledger/internal/eventlog"
	"github.com/corebank-ledger/internal/idgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDeps() (*idgen.Generator, *eventlog.Sink) {
	ids := idgen.NewGenerator()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return ids, eventlog.NewSink(ids, logger)
}

func TestNew(t *testing.T) {
	ids, _ := newTestDeps()

	first := New(ids, "Alice Smith", "1 Main St", "555-0100")
	second := New(ids, "Bob Jones", "2 Main St", "555-0101")

	assert.Equal(t, "CUS10000", first.ID())
	assert.Equal(t, "CUS10001", second.ID())
	assert.Equal(t, "Alice Smith", first.Name())
	assert.Equal(t, "1 Main St", first.Address())
	assert.Equal(t, "555-0100", first.Phone())
	assert.Empty(t, first.Accounts())
}

func TestAddAccount(t *testing.T) {
	ids, events := newTestDeps()
	cust := New(ids, "Alice Smith", "1 Main St", "555-0100")

	acc, err := account.NewSavings(ids, events, cust.ID(), 100, 0.01)
	require.NoError(t, err)

	require.NoError(t, cust.AddAccount(acc))
	assert.Len(t, cust.Accounts(), 1)

	assert.ErrorIs(t, cust.AddAccount(nil), ErrNilAccount)
	assert.Len(t, cust.Accounts(), 1)
}

func TestAccountLookup(t *testing.T) {
	ids, events := newTestDeps()
	cust := New(ids, "Alice Smith", "1 Main St", "555-0100")

	acc, err := account.NewChecking(ids, events, cust.ID(), 50, 25)
	require.NoError(t, err)
	require.NoError(t, cust.AddAccount(acc))

	found, ok := cust.Account(acc.Number())
	require.True(t, ok)
	assert.Equal(t, acc.Number(), found.Number())

	_, ok = cust.Account("ACC999999")
	assert.False(t, ok)
}
