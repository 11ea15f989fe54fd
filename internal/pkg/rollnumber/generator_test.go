package rollnumber

import (
	"math/rand/v2"
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var rollPattern = regexp.MustCompile(`^S-\d{4}$`)

func TestNext_MatchesFormat(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64().Draw(t, "seed")
		g := New(rand.NewPCG(seed, seed))

		roll := g.Next()
		if !rollPattern.MatchString(roll) {
			t.Fatalf("roll number %q does not match S-NNNN", roll)
		}
		n, err := strconv.Atoi(roll[len(Prefix):])
		if err != nil || n < Min || n > Max {
			t.Fatalf("numeric part of %q out of range", roll)
		}
	})
}

func TestNewSeeded_IsReproducible(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)

	for i := 0; i < 20; i++ {
		require.Equal(t, a.Next(), b.Next())
	}
}

// fixedSource always yields the same value so every draw collides.
type fixedSource struct{}

func (fixedSource) Uint64() uint64 { return 7 }

func TestNext_DoesNotAvoidCollisions(t *testing.T) {
	g := New(fixedSource{})

	first := g.Next()
	assert.Equal(t, first, g.Next())
}

func TestNewSeeded_ZeroSeedStillProducesValidNumbers(t *testing.T) {
	g := NewSeeded(0)
	assert.Regexp(t, rollPattern, g.Next())
}
