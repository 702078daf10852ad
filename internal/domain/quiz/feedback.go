package quiz

import "fmt"

// Feedback is the observable verdict of an engine.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackCorrect
	FeedbackWrong
)

var feedbackNames = [...]string{
	FeedbackNone:    "NONE",
	FeedbackCorrect: "CORRECT",
	FeedbackWrong:   "WRONG",
}

func (f Feedback) String() string {
	if f >= 0 && int(f) < len(feedbackNames) {
		return feedbackNames[f]
	}
	return fmt.Sprintf("Feedback(%d)", int(f))
}

func (f Feedback) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}
