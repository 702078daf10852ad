package quiz

// Round is the working state of one challenge. The four engines in this
// package are its only implementations; Session dispatches on the concrete
// type.
type Round interface {
	Kind() Kind
	Feedback() Feedback
	Complete() bool
	round()
}

var (
	_ Round = (*MatchingRound)(nil)
	_ Round = (*TypingRound)(nil)
	_ Round = (*SentenceRound)(nil)
	_ Round = (*ListeningRound)(nil)
)
