package game

// Phase is the session-level state. Won and Lost are terminal.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseWon
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	}
	return "playing"
}

// GameState is the score of one session. Only the collision resolver
// changes Destroyed.
type GameState struct {
	Destroyed int
	Threshold int
	Phase     Phase
}

func NewGameState(threshold int) GameState {
	return GameState{Threshold: threshold, Phase: PhasePlaying}
}

// RecordHit counts a destroyed target and reports whether the session
// just crossed the threshold. The win needs strictly more than Threshold.
func (s *GameState) RecordHit() bool {
	s.Destroyed++
	return s.Phase == PhasePlaying && s.Destroyed > s.Threshold
}

// Finish moves a playing session to its terminal phase. It returns false
// when the session had already ended, so callers forward only the first
// outcome.
func (s *GameState) Finish(o Outcome) bool {
	if s.Phase != PhasePlaying {
		return false
	}
	if o == OutcomeWon {
		s.Phase = PhaseWon
	} else {
		s.Phase = PhaseLost
	}
	return true
}

func (s GameState) Over() bool { return s.Phase != PhasePlaying }
