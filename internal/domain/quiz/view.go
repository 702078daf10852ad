package quiz

// View is a read-only snapshot of a session for presentation.
type View struct {
	SessionID   string         `json:"session_id"`
	Mode        Mode           `json:"mode"`
	Phase       Phase          `json:"phase"`
	Round       int            `json:"round"`
	TotalRounds int            `json:"total_rounds"`
	Kind        string         `json:"kind,omitempty"`
	Feedback    Feedback       `json:"feedback"`
	AutoAdvance bool           `json:"auto_advance"`
	Matching    *MatchingView  `json:"matching,omitempty"`
	Typing      *TypingView    `json:"typing,omitempty"`
	Sentence    *SentenceView  `json:"sentence,omitempty"`
	Listening   *ListeningView `json:"listening,omitempty"`
}

type MatchingView struct {
	Target   MatchTarget `json:"target"`
	Left     []Card      `json:"left"`
	Right    []Card      `json:"right"`
	Selected *int        `json:"selected,omitempty"`
	Matched  int         `json:"matched"`
	Pairs    int         `json:"pairs"`
}

type TypingView struct {
	Prompt   string `json:"prompt"`
	Revealed string `json:"revealed,omitempty"`
	Attempts int    `json:"attempts"`
}

type SentenceView struct {
	Translation string     `json:"translation"`
	Pool        []Fragment `json:"pool"`
	Answer      []Fragment `json:"answer"`
}

type ListeningView struct {
	Speak    string   `json:"speak"`
	Options  []Choice `json:"options"`
	Selected string   `json:"selected,omitempty"`
}

// View captures the session and its live round.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		SessionID:   s.id,
		Mode:        s.cfg.Mode,
		Phase:       s.phase,
		Round:       s.index,
		TotalRounds: s.cfg.TotalRounds,
		AutoAdvance: s.cfg.AutoAdvance(),
	}
	if s.round == nil {
		return v
	}
	v.Kind = s.round.Kind().String()
	v.Feedback = s.round.Feedback()

	switch r := s.round.(type) {
	case *MatchingRound:
		mv := &MatchingView{
			Target:  r.Target(),
			Left:    r.Left(),
			Right:   r.Right(),
			Matched: r.Matched(),
			Pairs:   r.Pairs(),
		}
		if slot, ok := r.Selected(); ok {
			mv.Selected = &slot
		}
		v.Matching = mv
	case *TypingRound:
		v.Typing = &TypingView{
			Prompt:   r.Prompt(),
			Revealed: r.Revealed(),
			Attempts: r.Attempts(),
		}
	case *SentenceRound:
		v.Sentence = &SentenceView{
			Translation: r.Translation(),
			Pool:        r.Pool(),
			Answer:      r.Answer(),
		}
	case *ListeningRound:
		v.Listening = &ListeningView{
			Speak:    r.Spoken(),
			Options:  r.Options(),
			Selected: r.Selected(),
		}
	}
	return v
}
