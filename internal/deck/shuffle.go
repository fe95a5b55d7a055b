package deck

import (
	"fmt"
	"math/rand"
	"time"
)

// Mode selects the swap range used while shuffling.
type Mode int

const (
	// ModeLegacy draws j from [0, i). The last element therefore never
	// stays in place; this matches how decks have always been dealt.
	ModeLegacy Mode = iota
	// ModeUniform draws j from [0, i] (Fisher-Yates).
	ModeUniform
)

func (m Mode) String() string {
	switch m {
	case ModeLegacy:
		return "legacy"
	case ModeUniform:
		return "uniform"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Source is the subset of *rand.Rand a Shuffler needs.
type Source interface {
	Intn(n int) int
}

// Shuffler permutes decks in place.
type Shuffler struct {
	rng  Source
	mode Mode
}

// NewShuffler seeds a shuffler. A zero seed uses the current time.
func NewShuffler(seed int64, mode Mode) *Shuffler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewShufflerWithSource(rand.New(rand.NewSource(seed)), mode)
}

func NewShufflerWithSource(rng Source, mode Mode) *Shuffler {
	return &Shuffler{rng: rng, mode: mode}
}

func (s *Shuffler) Mode() Mode {
	return s.mode
}

// Shuffle walks from the last index down to 1 swapping each slot with an
// earlier (or, in uniform mode, the same) one. Decks of 0 or 1 rows are
// left untouched.
func (s *Shuffler) Shuffle(d Deck) {
	for i := len(d) - 1; i > 0; i-- {
		bound := i
		if s.mode == ModeUniform {
			bound = i + 1
		}
		j := s.rng.Intn(bound)
		d[i], d[j] = d[j], d[i]
	}
}
