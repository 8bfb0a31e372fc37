package stun

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomTransactionIDSourceProducesDistinctValues(t *testing.T) {
	a := DefaultTransactionIDSource.NewTransactionID()
	b := DefaultTransactionIDSource.NewTransactionID()
	assert.NotEqual(t, a, b)
}

func TestCounterTransactionIDSourceIsMonotonic(t *testing.T) {
	var src CounterTransactionIDSource
	first := src.NewTransactionID()
	second := src.NewTransactionID()

	assert.Equal(t, [4]byte{0, 0, 0, 0}, [4]byte(first[0:4]))
	assert.Equal(t, [4]byte{0, 0, 0, 1}, [4]byte(first[8:12]))
	assert.Equal(t, [4]byte{0, 0, 0, 2}, [4]byte(second[8:12]))
}

func TestCounterTransactionIDSourceConcurrentUse(t *testing.T) {
	var src CounterTransactionIDSource
	seen := make(map[[TransactionIDSize]byte]bool)
	done := make(chan [TransactionIDSize]byte, 100)
	for i := 0; i < 100; i++ {
		go func() { done <- src.NewTransactionID() }()
	}
	for i := 0; i < 100; i++ {
		seen[<-done] = true
	}
	assert.Len(t, seen, 100)
}
