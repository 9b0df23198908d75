package bank

import "sync"

// RunMonthlyMaintenance invokes every account's maintenance hook exactly
// once, fanning the hooks out over the worker pool and waiting for all of
// them to finish. Failures inside a hook (for example a rejected interest
// deposit) are recorded in the event log by the account itself and never
// abort the sweep. Returns the number of accounts visited.
func (b *Bank) RunMonthlyMaintenance() int {
	b.events.Info("Starting monthly maintenance for all accounts")

	accounts := b.Accounts()

	var wg sync.WaitGroup
	for _, acc := range accounts {
		wg.Add(1)
		task := acc
		if err := b.pool.Submit(func() {
			defer wg.Done()
			task.MonthlyMaintenance()
		}); err != nil {
			// The pool is unavailable (released or saturated beyond
			// recovery); the account must still be visited.
			task.MonthlyMaintenance()
			wg.Done()
		}
	}
	wg.Wait()

	b.events.Info("Monthly maintenance completed for %d accounts", len(accounts))
	return len(accounts)
}
