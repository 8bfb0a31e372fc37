package stun

import (
	"crypto/rand"
	"sync"

	"github.com/kvasari/stun/internal/byteutil"
)

// TransactionIDSource produces 12-byte transaction IDs, unique among a
// process's concurrent in-flight requests. Grounded on the original
// design's §9 recommendation to encapsulate the reference counter
// behind an injectable source so tests can pin IDs, and on the
// teacher's NewTransactionID (message.go) and Agent mutex pattern
// (agent.go) for the two implementations below.
type TransactionIDSource interface {
	NewTransactionID() [TransactionIDSize]byte
}

// randomTransactionIDSource draws from crypto/rand, as the teacher's own
// NewTransactionID does. This is the default source InitRequest uses.
type randomTransactionIDSource struct{}

// DefaultTransactionIDSource is a CSPRNG-backed source. The on-wire
// contract only requires uniqueness and unpredictability relative to
// in-flight requests, which a 96-bit random value satisfies without any
// shared mutable state.
var DefaultTransactionIDSource TransactionIDSource = randomTransactionIDSource{}

func (randomTransactionIDSource) NewTransactionID() [TransactionIDSize]byte {
	var b [TransactionIDSize]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	return b
}

// CounterTransactionIDSource reproduces the original design's reference
// behavior: a single mutex-protected 64-bit counter, emitted into the
// low 8 bytes of the transaction ID with the top 4 bytes zeroed. Kept
// for parity with the original and for tests that want predictable,
// monotonic IDs; new code should prefer DefaultTransactionIDSource.
type CounterTransactionIDSource struct {
	mu      sync.Mutex
	counter uint64
}

// NewTransactionID returns the next counter value, big-endian encoded
// into bytes 4:12, with bytes 0:4 zeroed.
func (s *CounterTransactionIDSource) NewTransactionID() [TransactionIDSize]byte {
	s.mu.Lock()
	s.counter++
	v := s.counter
	s.mu.Unlock()

	var b [TransactionIDSize]byte
	byteutil.PutUint32BE(b[4:8], uint32(v>>32))
	byteutil.PutUint32BE(b[8:12], uint32(v))
	return b
}
