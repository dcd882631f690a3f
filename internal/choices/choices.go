package choices

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// Sentinel errors for the choices package.
var (
	ErrInsufficientUniverse = errors.New("choices: universe smaller than choice count")
	ErrInvalidCount         = errors.New("choices: choice count must be positive")
)

// DefaultCount is the number of options on a board.
const DefaultCount = 4

// Generator builds multiple-choice option sets over a fixed universe of keys.
// It is validated once at construction so Choices never fails.
type Generator struct {
	universe []string
	count    int
	rng      *rand.Rand
}

// New creates a Generator drawing count options from universe. Duplicate keys
// in universe are ignored. A nil rng uses a time-seeded source.
func New(universe []string, count int, rng *rand.Rand) (*Generator, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}

	seen := make(map[string]bool, len(universe))
	keys := make([]string, 0, len(universe))
	for _, k := range universe {
		if seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, k)
	}
	if len(keys) < count {
		return nil, fmt.Errorf("%w: %d keys for %d choices", ErrInsufficientUniverse, len(keys), count)
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{universe: keys, count: count, rng: rng}, nil
}

// Count returns the number of options each call to Choices yields.
func (g *Generator) Count() int {
	return g.count
}

// Choices returns count distinct keys in random order: target once, plus
// count-1 distractors drawn uniformly without replacement from the rest of
// the universe.
func (g *Generator) Choices(target string) []string {
	pool := make([]string, 0, len(g.universe))
	for _, k := range g.universe {
		if k != target {
			pool = append(pool, k)
		}
	}
	g.shuffle(pool)

	n := g.count - 1
	if n > len(pool) {
		n = len(pool)
	}
	out := make([]string, 0, n+1)
	out = append(out, target)
	out = append(out, pool[:n]...)
	g.shuffle(out)
	return out
}

// shuffle is a Fisher-Yates shuffle driven by the generator's source.
func (g *Generator) shuffle(s []string) {
	for i := len(s) - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
