package game

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Options wires a Scene to its host.
type Options struct {
	Config       Config
	Sprites      Sprites
	Transitioner Transitioner
	Effects      Effects
	Random       *Random
}

// Scene is one session: the shooter, the live targets and projectiles, and
// the score. Every method must be called from the frame goroutine.
type Scene struct {
	id  uuid.UUID
	cfg Config
	log *slog.Logger

	sprites      Sprites
	transitioner Transitioner
	effects      Effects
	rnd          *Random

	sched    *Scheduler
	contacts *ContactDetector
	dispatch map[kindPair]contactHandler

	state    GameState
	shooter  *Entity
	entities []*Entity
	nextID   EntityID
	closed   bool
}

// NewScene starts a session: the shooter is placed, one target spawns
// right away and then one every SpawnInterval.
func NewScene(opts Options) *Scene {
	if opts.Sprites == nil {
		opts.Sprites = DefaultSprites()
	}
	if opts.Effects == nil {
		opts.Effects = NopEffects{}
	}
	if opts.Random == nil {
		opts.Random = NewRandom(opts.Config.Seed)
	}

	id := uuid.New()
	s := &Scene{
		id:           id,
		cfg:          opts.Config,
		log:          slog.With("session", id.String()),
		sprites:      opts.Sprites,
		transitioner: opts.Transitioner,
		effects:      opts.Effects,
		rnd:          opts.Random,
		sched:        NewScheduler(),
		contacts:     NewContactDetector(opts.Config.Size()),
		state:        NewGameState(opts.Config.ScoreThreshold),
	}
	s.dispatch = s.contactTable()

	s.shooter = s.newEntity(KindShooter, SpriteShooter)
	s.shooter.Pos = Point{X: s.cfg.Width * 0.05, Y: s.cfg.Height * 0.5}
	s.add(s.shooter)

	s.spawnTarget()
	s.sched.Every(s.cfg.SpawnInterval.Duration, func() { s.spawnTarget() })

	s.log.Info("session started", "width", s.cfg.Width, "height", s.cfg.Height)
	return s
}

func (s *Scene) ID() uuid.UUID    { return s.id }
func (s *Scene) Size() Size       { return s.cfg.Size() }
func (s *Scene) State() GameState { return s.state }
func (s *Scene) Shooter() *Entity { return s.shooter }
func (s *Scene) Now() time.Duration {
	return s.sched.Now()
}

// Entities returns the live entities, shooter first, in creation order.
func (s *Scene) Entities() []*Entity {
	out := make([]*Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

// Count returns how many live entities are of kind k.
func (s *Scene) Count(k Kind) int {
	n := 0
	for _, e := range s.entities {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// Update advances the session by one frame. A finished or closed session
// is frozen.
func (s *Scene) Update(dt time.Duration) {
	if s.closed || s.state.Over() {
		return
	}
	s.sched.Advance(dt, s.run)
	if s.state.Over() {
		return
	}
	for _, c := range s.contacts.Step() {
		s.resolve(c.A, c.B)
	}
}

// Close tears the scene down: pending spawns and motions are cancelled.
func (s *Scene) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.sched.Close()
	s.log.Debug("session closed", "entities", len(s.entities))
}

func (s *Scene) run(e *Entity, a Action) {
	switch a {
	case ActionLose:
		s.finish(OutcomeLost)
	case ActionRemove:
		s.remove(e)
	}
}

// finish forwards the first terminal outcome of the session.
func (s *Scene) finish(o Outcome) {
	if !s.state.Finish(o) {
		return
	}
	s.log.Info("session over", "outcome", o, "destroyed", s.state.Destroyed)
	if s.transitioner != nil {
		s.transitioner.RequestTransition(TransitionRequest{Outcome: o, Size: s.Size()})
	}
}

func (s *Scene) newEntity(k Kind, name string) *Entity {
	s.nextID++
	return &Entity{
		ID:     s.nextID,
		Kind:   k,
		Name:   name,
		Size:   s.sprites.Size(name),
		Active: true,
	}
}

func (s *Scene) add(e *Entity) {
	s.entities = append(s.entities, e)
	s.contacts.Add(e)
}

// remove is idempotent.
func (s *Scene) remove(e *Entity) {
	if !e.Active {
		return
	}
	e.Active = false
	s.contacts.Remove(e)
	for i, x := range s.entities {
		if x == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			break
		}
	}
}
