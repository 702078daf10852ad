package quiz

import (
	"fmt"
	"math/rand"
)

// Kind tags the challenge variant of a round.
type Kind int

const (
	KindMatching Kind = iota
	KindTyping
	KindSentence
	KindListening
)

// Kinds lists every variant a mixed quiz draws from.
var Kinds = [...]Kind{KindMatching, KindTyping, KindSentence, KindListening}

var kindNames = [...]string{
	KindMatching:  "matching",
	KindTyping:    "typing",
	KindSentence:  "sentence",
	KindListening: "listening",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// SelectKind draws a variant uniformly at random. Consecutive rounds may
// repeat the same variant.
func SelectKind(rng *rand.Rand) Kind {
	return Kinds[rng.Intn(len(Kinds))]
}
