// Package rollnumber produces student roll numbers of the form "S-NNNN".
//
// Numbers are drawn uniformly from [1000, 9999] and are not checked for
// uniqueness; callers that need distinct numbers must track issued values.
package rollnumber

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
)

const (
	// Prefix is prepended to every generated roll number
	Prefix = "S-"
	// Min is the smallest numeric part that can be drawn
	Min = 1000
	// Max is the largest numeric part that can be drawn
	Max = 9999
)

// Generator draws roll numbers from an injectable random source
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a generator backed by src
func New(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// NewSeeded creates a reproducible generator. A zero seed uses the current time.
func NewSeeded(seed uint64) *Generator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return New(rand.NewPCG(seed, seed>>1|1))
}

// Next returns a fresh roll number
func (g *Generator) Next() string {
	g.mu.Lock()
	n := Min + g.rng.IntN(Max-Min+1)
	g.mu.Unlock()
	return fmt.Sprintf("%s%d", Prefix, n)
}
