package bank

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

func newTestBank(t *testing.T) (*Bank, *eventlog.Sink) {
	t.Helper()
	ids := idgen.NewGenerator()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	events := eventlog.NewSink(ids, logger)

	b, err := New("Test Bank", ids, events, 4)
	require.NoError(t, err)
	t.Cleanup(b.Close)
	return b, events
}

func TestCreateCustomer(t *testing.T) {
	b, _ := newTestBank(t)

	alice := b.CreateCustomer("Alice Smith", "1 Main St", "555-0100")
	bob := b.CreateCustomer("Bob Jones", "2 Main St", "555-0101")

	assert.Equal(t, "CUS10000", alice.ID())
	assert.Equal(t, "CUS10001", bob.ID())
	assert.Len(t, b.Customers(), 2)

	found, err := b.Customer(alice.ID())
	require.NoError(t, err)
	assert.Equal(t, alice.ID(), found.ID())

	byName, err := b.CustomerByName("Bob Jones")
	require.NoError(t, err)
	assert.Equal(t, bob.ID(), byName.ID())

	_, err = b.Customer("CUS99999")
	assert.ErrorIs(t, err, ErrCustomerNotFound{})

	_, err = b.CustomerByName("Nobody")
	assert.ErrorIs(t, err, ErrCustomerNotFound{})
}

func TestCreateAccounts(t *testing.T) {
	b, _ := newTestBank(t)
	alice := b.CreateCustomer("Alice Smith", "1 Main St", "555-0100")

	t.Run("Savings", func(t *testing.T) {
		acc, err := b.CreateSavingsAccount(alice.ID(), 1000, 0.01)
		require.NoError(t, err)
		assert.Equal(t, alice.ID(), acc.OwnerID())

		found, err := b.Account(acc.Number())
		require.NoError(t, err)
		assert.Equal(t, acc.Number(), found.Number())
	})

	t.Run("Checking", func(t *testing.T) {
		acc, err := b.CreateCheckingAccount(alice.ID(), 500, 200)
		require.NoError(t, err)
		assert.Equal(t, 200.0, acc.OverdraftLimit())
	})

	t.Run("CustomerNotFound", func(t *testing.T) {
		_, err := b.CreateSavingsAccount("CUS99999", 100, 0.01)
		assert.ErrorIs(t, err, ErrCustomerNotFound{ID: "CUS99999"})

		_, err = b.CreateCheckingAccount("CUS99999", 100, 50)
		assert.ErrorIs(t, err, ErrCustomerNotFound{})
	})

	t.Run("InvalidInitialBalance", func(t *testing.T) {
		_, err := b.CreateSavingsAccount(alice.ID(), -10, 0.01)
		assert.ErrorIs(t, err, account.ErrNegativeInitialBalance)
	})

	t.Run("AccountNotFound", func(t *testing.T) {
		_, err := b.Account("ACC999999")
		assert.ErrorIs(t, err, ErrAccountNotFound{})
	})
}

func TestTransfer(t *testing.T) {
	setup := func(t *testing.T) (*Bank, *account.Savings, *account.Checking) {
		b, _ := newTestBank(t)
		alice := b.CreateCustomer("Alice Smith", "1 Main St", "555-0100")
		bob := b.CreateCustomer("Bob Jones", "2 Main St", "555-0101")

		from, err := b.CreateSavingsAccount(alice.ID(), 1000, 0.01)
		require.NoError(t, err)
		to, err := b.CreateCheckingAccount(bob.ID(), 200, 100)
		require.NoError(t, err)
		return b, from, to
	}

	t.Run("Success", func(t *testing.T) {
		b, from, to := setup(t)

		err := b.Transfer(from.Number(), to.Number(), 300, "rent")

		require.NoError(t, err)
		assert.Equal(t, 700.0, from.Balance())
		assert.Equal(t, 500.0, to.Balance())

		fromHistory := from.History()
		require.Len(t, fromHistory, 1)
		assert.Equal(t, account.TypeWithdrawal, fromHistory[0].Type)
		assert.Equal(t, "Transfer to "+to.Number()+": rent", fromHistory[0].Description)

		toHistory := to.History()
		require.Len(t, toHistory, 1)
		assert.Equal(t, account.TypeDeposit, toHistory[0].Type)
		assert.Equal(t, "Transfer from "+from.Number()+": rent", toHistory[0].Description)
	})

	t.Run("ConservesMoney", func(t *testing.T) {
		b, from, to := setup(t)
		total := from.Balance() + to.Balance()

		require.NoError(t, b.Transfer(from.Number(), to.Number(), 123.45, ""))

		assert.InDelta(t, total, from.Balance()+to.Balance(), 1e-9)
	})

	t.Run("InvalidAmount", func(t *testing.T) {
		b, from, to := setup(t)

		err := b.Transfer(from.Number(), to.Number(), 0, "")

		assert.ErrorIs(t, err, account.ErrInvalidAmount)
		assert.Equal(t, 1000.0, from.Balance())
		assert.Equal(t, 200.0, to.Balance())
	})

	t.Run("InsufficientFunds", func(t *testing.T) {
		b, from, to := setup(t)

		err := b.Transfer(from.Number(), to.Number(), 5000, "")

		assert.ErrorIs(t, err, account.ErrInsufficientFunds)
		assert.Equal(t, 1000.0, from.Balance())
		assert.Equal(t, 200.0, to.Balance())
		assert.Empty(t, from.History(), "failed transfer leaves no partial effect")
		assert.Empty(t, to.History())
	})

	t.Run("SourceNotFound", func(t *testing.T) {
		b, _, to := setup(t)

		err := b.Transfer("ACC999999", to.Number(), 100, "")

		assert.ErrorIs(t, err, ErrAccountNotFound{Number: "ACC999999"})
		assert.Equal(t, 200.0, to.Balance())
	})

	t.Run("DestinationNotFound", func(t *testing.T) {
		b, from, _ := setup(t)

		err := b.Transfer(from.Number(), "ACC999999", 100, "")

		assert.ErrorIs(t, err, ErrAccountNotFound{Number: "ACC999999"})
		assert.Equal(t, 1000.0, from.Balance(), "source is untouched when destination is missing")
		assert.Empty(t, from.History())
	})

	t.Run("EmptyDescriptionOmitsSuffix", func(t *testing.T) {
		b, from, to := setup(t)

		require.NoError(t, b.Transfer(from.Number(), to.Number(), 10, ""))

		assert.Equal(t, "Transfer to "+to.Number(), from.History()[0].Description)
		assert.Equal(t, "Transfer from "+from.Number(), to.History()[0].Description)
	})
}

func TestRunMonthlyMaintenance(t *testing.T) {
	t.Run("VisitsEveryAccountOnce", func(t *testing.T) {
		b, _ := newTestBank(t)
		alice := b.CreateCustomer("Alice Smith", "1 Main St", "555-0100")
		bob := b.CreateCustomer("Bob Jones", "2 Main St", "555-0101")

		savings, err := b.CreateSavingsAccount(alice.ID(), 1000, 0.01)
		require.NoError(t, err)
		checking, err := b.CreateCheckingAccount(alice.ID(), 500, 100)
		require.NoError(t, err)
		savings2, err := b.CreateSavingsAccount(bob.ID(), 2000, 0.02)
		require.NoError(t, err)

		visited := b.RunMonthlyMaintenance()

		assert.Equal(t, 3, visited)
		assert.InDelta(t, 1010.0, savings.Balance(), 1e-9)
		assert.InDelta(t, 2040.0, savings2.Balance(), 1e-9)
		assert.Equal(t, 500.0, checking.Balance())

		require.Len(t, savings.History(), 1, "exactly one interest deposit per sweep")
		assert.Empty(t, checking.History(), "checking maintenance appends nothing")
	})

	t.Run("CompletesWhenInterestDepositFails", func(t *testing.T) {
		b, events := newTestBank(t)
		alice := b.CreateCustomer("Alice Smith", "1 Main St", "555-0100")

		broke, err := b.CreateSavingsAccount(alice.ID(), 0, 0.01)
		require.NoError(t, err)
		funded, err := b.CreateSavingsAccount(alice.ID(), 100, 0.10)
		require.NoError(t, err)

		visited := b.RunMonthlyMaintenance()

		assert.Equal(t, 2, visited, "a failing hook never aborts the sweep")
		assert.Equal(t, 0.0, broke.Balance())
		assert.InDelta(t, 110.0, funded.Balance(), 1e-9)

		var sawFailure bool
		for _, e := range events.Snapshot() {
			if e.Level == eventlog.LevelError {
				sawFailure = true
			}
		}
		assert.True(t, sawFailure)
	})

	t.Run("EmptyBank", func(t *testing.T) {
		b, _ := newTestBank(t)
		assert.Equal(t, 0, b.RunMonthlyMaintenance())
	})
}
