package usecase

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

const idSuffixAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// OrderIDGenerator produces ids of the form ORD-YYYYMMDDHHMMSS-XXXX where the
// suffix is four random uppercase alphanumerics. Ids generated within the same
// second still differ with high probability; global uniqueness is not
// guaranteed but collisions are negligible at the target load.
type OrderIDGenerator struct {
	now func() time.Time
	rnd *rand.Rand
	mu  sync.Mutex
}

// NewOrderIDGenerator constructs a generator on the wall clock and a
// time-seeded random source.
func NewOrderIDGenerator() *OrderIDGenerator {
	return newOrderIDGenerator(time.Now, rand.New(rand.NewSource(time.Now().UnixNano())))
}

func newOrderIDGenerator(now func() time.Time, rnd *rand.Rand) *OrderIDGenerator {
	return &OrderIDGenerator{now: now, rnd: rnd}
}

// Next returns a fresh order id.
func (g *OrderIDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = idSuffixAlphabet[g.rnd.Intn(len(idSuffixAlphabet))]
	}
	return fmt.Sprintf("ORD-%s-%s", g.now().Format("20060102150405"), suffix)
}
