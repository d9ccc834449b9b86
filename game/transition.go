package game

//go:generate go tool mockgen -destination=./mocks/transition_mock.go -package=mocks . Transitioner,Effects

// Outcome is how a session ended.
type Outcome int

const (
	OutcomeLost Outcome = iota
	OutcomeWon
)

func (o Outcome) String() string {
	if o == OutcomeWon {
		return "won"
	}
	return "lost"
}

// TransitionRequest asks the host to present the results scene.
type TransitionRequest struct {
	Outcome Outcome
	Size    Size
}

// Transitioner presents the results scene. The scene forwards at most one
// request per session.
type Transitioner interface {
	RequestTransition(req TransitionRequest)
}

// Effects receives feedback cues (sounds) for shots and hits.
type Effects interface {
	Shot()
	Hit()
}

// NopEffects discards every cue.
type NopEffects struct{}

func (NopEffects) Shot() {}
func (NopEffects) Hit()  {}
