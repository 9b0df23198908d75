// Package idgen provides process-wide unique identifier generation.
// Each entity class draws from its own monotonically increasing counter,
// so identifiers are never reused and never collide within a class.
package idgen

import "sync/atomic"

// Class selects which counter an identifier is drawn from.
type Class int

const (
	ClassAccount Class = iota
	ClassCustomer
	ClassTransaction
	ClassLogEntry

	numClasses
)

// Seeds per class. Account numbers start high so they are visually
// distinct from customer and transaction identifiers.
const (
	accountSeed     = 200000
	customerSeed    = 10000
	transactionSeed = 1001
	logEntrySeed    = 1
)

// Generator hands out strictly increasing identifiers per entity class.
// It is safe for concurrent use.
type Generator struct {
	counters [numClasses]atomic.Int64
}

// NewGenerator creates a generator with all class counters at their seeds.
// It is constructed once at process start and shared by reference.
func NewGenerator() *Generator {
	g := &Generator{}
	g.counters[ClassAccount].Store(accountSeed)
	g.counters[ClassCustomer].Store(customerSeed)
	g.counters[ClassTransaction].Store(transactionSeed)
	g.counters[ClassLogEntry].Store(logEntrySeed)
	return g
}

// Next returns the next identifier for the given class. Values are unique
// and strictly increasing per class; gaps are permitted, duplicates are not.
func (g *Generator) Next(c Class) int64 {
	return g.counters[c].Add(1) - 1
}
