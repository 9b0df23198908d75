package handler

// CreateCustomerRequest represents a request to register a new customer
type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Address  string            `json:"address,omitempty"`
	Phone    string            `json:"phone,omitempty"`
	Accounts []AccountResponse `json:"accounts"`
}

// CreateAccountRequest represents a request to open a new account.
// InterestRate applies to SAVINGS accounts, OverdraftLimit to CHECKING.
type CreateAccountRequest struct {
	CustomerID     string  `json:"customer_id" binding:"required"`
	Type           string  `json:"type" binding:"required,oneof=SAVINGS CHECKING"`
	InitialBalance float64 `json:"initial_balance"`
	InterestRate   float64 `json:"interest_rate"`
	OverdraftLimit float64 `json:"overdraft_limit"`
}

// AccountResponse represents an account in API responses
type AccountResponse struct {
	Number         string   `json:"number"`
	OwnerID        string   `json:"owner_id"`
	Type           string   `json:"type"`
	Balance        float64  `json:"balance"`
	InterestRate   *float64 `json:"interest_rate,omitempty"`
	OverdraftLimit *float64 `json:"overdraft_limit,omitempty"`
}

// AmountRequest represents a deposit or withdrawal against one account.
// Amount validity (must be positive) is enforced by the account itself.
type AmountRequest struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// TransactionResponse represents one history record in API responses
type TransactionResponse struct {
	ID            int64   `json:"id"`
	Timestamp     string  `json:"timestamp"`
	Type          string  `json:"type"`
	Amount        float64 `json:"amount"`
	AccountNumber string  `json:"account_number"`
	Description   string  `json:"description,omitempty"`
}

// TransferRequest represents a request to move funds between two accounts
type TransferRequest struct {
	FromAccount string  `json:"from_account" binding:"required"`
	ToAccount   string  `json:"to_account" binding:"required"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// MaintenanceResponse reports the outcome of a maintenance sweep
type MaintenanceResponse struct {
	AccountsVisited int `json:"accounts_visited"`
}

// EventResponse represents one event log entry in API responses
type EventResponse struct {
	ID          int64  `json:"id"`
	Timestamp   string `json:"timestamp"`
	Level       string `json:"level"`
	Description string `json:"description"`
}
