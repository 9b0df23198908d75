package bank

import "errors"

// ErrDestinationCredit indicates a transfer whose destination deposit failed
// after the source withdrawal succeeded. The withdrawal is rolled back
// before this error is returned, so money is conserved either way.
var ErrDestinationCredit = errors.New("destination credit failed, transfer rolled back")

// ErrAccountNotFound indicates a lookup for an unknown account number.
type ErrAccountNotFound struct {
	Number string
}

func (e ErrAccountNotFound) Error() string {
	return "account not found: " + e.Number
}

// Is matches any ErrAccountNotFound when the target carries no number.
func (e ErrAccountNotFound) Is(target error) bool {
	t, ok := target.(ErrAccountNotFound)
	if !ok {
		return false
	}
	return t.Number == "" || t.Number == e.Number
}

// ErrCustomerNotFound indicates a lookup for an unknown customer ID.
type ErrCustomerNotFound struct {
	ID string
}

func (e ErrCustomerNotFound) Error() string {
	return "customer not found: " + e.ID
}

// Is matches any ErrCustomerNotFound when the target carries no ID.
func (e ErrCustomerNotFound) Is(target error) bool {
	t, ok := target.(ErrCustomerNotFound)
	if !ok {
		return false
	}
	return t.ID == "" || t.ID == e.ID
}
