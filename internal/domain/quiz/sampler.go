package quiz

import (
	"fmt"
	"math/rand"

	"github.com/remaimber-it/vocabdrill/internal/domain/vocabulary"
)

// Number of wrong options shown next to the target in a listening round.
const listeningDistractors = 3

// Sampler draws round-sized subsets from a vocabulary pool.
type Sampler struct {
	rng *rand.Rand
}

func NewSampler(rng *rand.Rand) *Sampler {
	return &Sampler{rng: rng}
}

// Sample returns k items. When the pool holds at least k items no identifier
// repeats. Otherwise shuffled copies of the pool are chained until k items
// exist, swapping at each seam so the same item does not appear twice in a
// row when the pool allows it.
func (s *Sampler) Sample(pool []vocabulary.Item, k int) []vocabulary.Item {
	if k <= 0 || len(pool) == 0 {
		return nil
	}
	if len(pool) >= k {
		return s.shuffled(pool)[:k]
	}

	out := make([]vocabulary.Item, 0, k+len(pool))
	for len(out) < k {
		next := s.shuffled(pool)
		if n := len(out); n > 0 && len(next) > 1 && next[0].ID == out[n-1].ID {
			j := 1 + s.rng.Intn(len(next)-1)
			next[0], next[j] = next[j], next[0]
		}
		out = append(out, next...)
	}
	return out[:k]
}

// SampleOne returns a single random item.
func (s *Sampler) SampleOne(pool []vocabulary.Item) vocabulary.Item {
	return pool[s.rng.Intn(len(pool))]
}

// SampleListening picks a target and three distinct distractors drawn from
// the rest of the pool.
func (s *Sampler) SampleListening(pool []vocabulary.Item) (vocabulary.Item, []vocabulary.Item, error) {
	need := listeningDistractors + 1
	if len(pool) < need {
		return vocabulary.Item{}, nil, fmt.Errorf("%w: listening needs %d items, have %d",
			ErrInsufficientPool, need, len(pool))
	}
	picked := s.shuffled(pool)[:need]
	return picked[0], picked[1:], nil
}

// shuffled returns a Fisher-Yates shuffled copy of items.
func (s *Sampler) shuffled(items []vocabulary.Item) []vocabulary.Item {
	out := make([]vocabulary.Item, len(items))
	copy(out, items)
	s.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
