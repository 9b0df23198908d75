// Command bankdemo runs a scripted walkthrough of the banking core on the
// console: customers and accounts are created, money moves around, the
// monthly maintenance sweep runs, and the final state plus the full event
// log is printed.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/corebank-ledger/internal/bank"
	"github.com/corebank-ledger/internal/domain/customer"
	"github.com/corebank-ledger/internal/eventlog"
	"github.com/corebank-ledger/internal/idgen"
)

func printSeparator() {
	fmt.Println("\n-----------------------------------------")
}

func printCustomer(cust *customer.Customer) {
	fmt.Printf("Customer ID: %s\n", cust.ID())
	fmt.Printf("  Name: %s\n", cust.Name())
	fmt.Printf("  Address: %s\n", cust.Address())
	fmt.Printf("  Phone: %s\n", cust.Phone())
	accounts := cust.Accounts()
	fmt.Printf("  Accounts (%d):\n", len(accounts))
	for _, acc := range accounts {
		fmt.Printf("    - %s (Balance: $%.2f)\n", acc.Number(), acc.Balance())
	}
}

func printHistories(b *bank.Bank) {
	for _, acc := range b.Accounts() {
		fmt.Printf("History for %s (Balance: $%.2f):\n", acc.Number(), acc.Balance())
		for _, tx := range acc.History() {
			fmt.Printf("  %s\n", tx)
		}
	}
}

func main() {
	// The demo narrates through fmt; structured logs are discarded so the
	// console shows only the walkthrough and the event log at the end.
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	ids := idgen.NewGenerator()
	events := eventlog.NewSink(ids, log)

	b, err := bank.New("First National Demo Bank", ids, events, 4)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize bank: %v\n", err)
		os.Exit(1)
	}
	defer b.Close()

	fmt.Printf("Welcome to %s\n", b.Name())
	printSeparator()

	alice := b.CreateCustomer("Alice Smith", "1 Maple Ave", "555-0100")
	bob := b.CreateCustomer("Bob Jones", "2 Oak St", "555-0101")

	aliceSavings, err := b.CreateSavingsAccount(alice.ID(), 1000, 0.01)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open savings account: %v\n", err)
		os.Exit(1)
	}
	aliceChecking, err := b.CreateCheckingAccount(alice.ID(), 500, 200)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open checking account: %v\n", err)
		os.Exit(1)
	}
	bobChecking, err := b.CreateCheckingAccount(bob.ID(), 100, 100)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open checking account: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Performing deposits and withdrawals...")
	report := func(op string, err error) {
		if err != nil {
			fmt.Printf("  %s: REJECTED (%v)\n", op, err)
		} else {
			fmt.Printf("  %s: OK\n", op)
		}
	}

	report("deposit $250.75 into "+aliceSavings.Number(), aliceSavings.Deposit(250.75, "Paycheck"))
	report("withdraw $100 from "+aliceChecking.Number(), aliceChecking.Withdraw(100, "Groceries"))
	report("withdraw $550 from "+aliceChecking.Number(), aliceChecking.Withdraw(550, "Rent")) // dips into overdraft
	report("deposit $-50 into "+bobChecking.Number(), bobChecking.Deposit(-50, "bad amount"))
	report("withdraw $5000 from "+bobChecking.Number(), bobChecking.Withdraw(5000, "too much"))

	printSeparator()
	fmt.Println("Transferring funds...")
	report(fmt.Sprintf("transfer $200 %s -> %s", aliceSavings.Number(), bobChecking.Number()),
		b.Transfer(aliceSavings.Number(), bobChecking.Number(), 200, "Loan repayment"))
	report(fmt.Sprintf("transfer $75 %s -> ACC999999", bobChecking.Number()),
		b.Transfer(bobChecking.Number(), "ACC999999", 75, "to nowhere"))

	printSeparator()
	fmt.Println("Running monthly maintenance...")
	visited := b.RunMonthlyMaintenance()
	fmt.Printf("Maintenance visited %d accounts\n", visited)

	printSeparator()
	fmt.Println("Final customer state:")
	for _, cust := range b.Customers() {
		printCustomer(cust)
	}

	printSeparator()
	fmt.Println("Transaction histories:")
	printHistories(b)

	printSeparator()
	fmt.Println("Event log:")
	for _, entry := range events.Snapshot() {
		fmt.Printf("  %s\n", entry)
	}
}
