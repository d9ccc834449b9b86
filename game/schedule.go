package game

import "time"

// Action runs when a motion completes. A motion's actions run in the
// order they were given.
type Action int

const (
	// ActionLose ends the session as lost.
	ActionLose Action = iota
	// ActionRemove takes the entity out of the scene.
	ActionRemove
)

func (a Action) String() string {
	if a == ActionLose {
		return "lose"
	}
	return "remove"
}

type timer struct {
	next  time.Duration
	every time.Duration
	fn    func()
}

type motion struct {
	e        *Entity
	from, to Point
	start    time.Duration
	duration time.Duration
	then     []Action
}

// Scheduler is the timed-event queue driven by the frame clock. Nothing
// here blocks: deadlines are checked on each Advance.
type Scheduler struct {
	now     time.Duration
	timers  []*timer
	motions []*motion
	closed  bool
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now is the scene time elapsed since the scheduler was created.
func (s *Scheduler) Now() time.Duration { return s.now }

// Every calls fn each interval, first at now+interval, until Close.
func (s *Scheduler) Every(interval time.Duration, fn func()) {
	if s.closed || interval <= 0 {
		return
	}
	s.timers = append(s.timers, &timer{next: s.now + interval, every: interval, fn: fn})
}

// MoveTo moves e linearly from its current position to `to` over d, then
// runs the actions in order. A motion is dropped once its entity is removed.
func (s *Scheduler) MoveTo(e *Entity, to Point, d time.Duration, then ...Action) {
	if s.closed {
		return
	}
	s.motions = append(s.motions, &motion{
		e:        e,
		from:     e.Pos,
		to:       to,
		start:    s.now,
		duration: d,
		then:     then,
	})
}

// Pending is the number of motions still in flight.
func (s *Scheduler) Pending() int { return len(s.motions) }

// Advance moves the clock by dt: due timers fire first, then every motion
// is stepped and completed motions run their actions through run.
func (s *Scheduler) Advance(dt time.Duration, run func(*Entity, Action)) {
	if s.closed {
		return
	}
	s.now += dt

	for _, t := range s.timers {
		for !s.closed && t.next <= s.now {
			t.fn()
			t.next += t.every
		}
	}

	// actions may schedule new motions; those wait for the next frame
	motions := s.motions
	s.motions = nil
	kept := motions[:0]
	for _, m := range motions {
		if s.closed {
			break
		}
		if !m.e.Active {
			continue
		}
		elapsed := s.now - m.start
		if m.duration > 0 && elapsed < m.duration {
			m.e.Pos = m.from.Lerp(m.to, float64(elapsed)/float64(m.duration))
			kept = append(kept, m)
			continue
		}
		m.e.Pos = m.to
		for _, a := range m.then {
			if s.closed || !m.e.Active {
				break
			}
			run(m.e, a)
		}
	}
	if s.closed {
		return
	}
	s.motions = append(kept, s.motions...)
}

// Close cancels every timer and motion. Further calls are no-ops.
func (s *Scheduler) Close() {
	s.closed = true
	s.timers = nil
	s.motions = nil
}
