package handler

import (
	"io"
	"log/slog"

	"github.com/corebank-ledger/internal/domain/account"
	"github.com/corebank-ledger/internal/domain/customer"
	"github.com/corebank-ledger/internal/eventlog"
	"github.com/corebank-ledger/internal/idgen"
	"github.com/stretchr/testify/mock"
)

type MockBankService struct {
	mock.Mock
}

func (m *MockBankService) CreateCustomer(name, address, phone string) *customer.Customer {
	args := m.Called(name, address, phone)
	return args.Get(0).(*customer.Customer)
}

func (m *MockBankService) Customer(id string) (*customer.Customer, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockBankService) Customers() []*customer.Customer {
	args := m.Called()
	return args.Get(0).([]*customer.Customer)
}

func (m *MockBankService) CreateSavingsAccount(customerID string, initialBalance, interestRate float64) (*account.Savings, error) {
	args := m.Called(customerID, initialBalance, interestRate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Savings), args.Error(1)
}

func (m *MockBankService) CreateCheckingAccount(customerID string, initialBalance, overdraftLimit float64) (*account.Checking, error) {
	args := m.Called(customerID, initialBalance, overdraftLimit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Checking), args.Error(1)
}

func (m *MockBankService) Account(number string) (account.Account, error) {
	args := m.Called(number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(account.Account), args.Error(1)
}

func (m *MockBankService) Transfer(fromNumber, toNumber string, amount float64, description string) error {
	args := m.Called(fromNumber, toNumber, amount, description)
	return args.Error(0)
}

func (m *MockBankService) RunMonthlyMaintenance() int {
	args := m.Called()
	return args.Int(0)
}

var _ BankService = (*MockBankService)(nil)

type MockEventStore struct {
	mock.Mock
}

func (m *MockEventStore) Snapshot() []eventlog.Entry {
	args := m.Called()
	return args.Get(0).([]eventlog.Entry)
}

func (m *MockEventStore) Reset() {
	m.Called()
}

var _ EventStore = (*MockEventStore)(nil)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testDomain builds real domain objects for handler tests to return from
// mocks; the accounts write their events into a throwaway sink.
func testDomain() (*idgen.Generator, *eventlog.Sink) {
	ids := idgen.NewGenerator()
	return ids, eventlog.NewSink(ids, testLogger())
}
