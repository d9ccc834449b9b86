package game

import (
	"reflect"
	"testing"
	"time"
)

type actionLog struct {
	calls []Action
}

func (l *actionLog) run(e *Entity, a Action) {
	l.calls = append(l.calls, a)
	if a == ActionRemove {
		e.Active = false
	}
}

func TestScheduler_MoveTo(t *testing.T) {
	s := NewScheduler()
	e := &Entity{ID: 1, Pos: Point{100, 50}, Active: true}
	var log actionLog

	s.MoveTo(e, Point{0, 50}, 2*time.Second, ActionLose, ActionRemove)

	s.Advance(500*time.Millisecond, log.run)
	if want := (Point{75, 50}); e.Pos != want {
		t.Errorf("Pos after 0.5s = %v, want %v", e.Pos, want)
	}
	if len(log.calls) != 0 {
		t.Errorf("actions ran early: %v", log.calls)
	}

	s.Advance(1500*time.Millisecond, log.run)
	if want := (Point{0, 50}); e.Pos != want {
		t.Errorf("Pos after 2s = %v, want %v", e.Pos, want)
	}
	if want := []Action{ActionLose, ActionRemove}; !reflect.DeepEqual(log.calls, want) {
		t.Errorf("actions = %v, want %v", log.calls, want)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", s.Pending())
	}

	// completed motions never fire again
	s.Advance(time.Second, log.run)
	if len(log.calls) != 2 {
		t.Errorf("actions = %v, want exactly two", log.calls)
	}
}

func TestScheduler_DropsRemovedEntity(t *testing.T) {
	s := NewScheduler()
	e := &Entity{ID: 1, Active: true}
	var log actionLog

	s.MoveTo(e, Point{10, 0}, time.Second, ActionLose, ActionRemove)
	s.Advance(100*time.Millisecond, log.run)
	e.Active = false
	s.Advance(2*time.Second, log.run)

	if len(log.calls) != 0 {
		t.Errorf("actions = %v, want none", log.calls)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", s.Pending())
	}
}

func TestScheduler_StopsActionsOnceRemoved(t *testing.T) {
	s := NewScheduler()
	e := &Entity{ID: 1, Active: true}
	var log actionLog

	s.MoveTo(e, Point{}, time.Second, ActionRemove, ActionLose)
	s.Advance(time.Second, log.run)

	if want := []Action{ActionRemove}; !reflect.DeepEqual(log.calls, want) {
		t.Errorf("actions = %v, want %v", log.calls, want)
	}
}

func TestScheduler_Every(t *testing.T) {
	s := NewScheduler()
	n := 0
	s.Every(time.Second, func() { n++ })

	s.Advance(999*time.Millisecond, nil)
	if n != 0 {
		t.Errorf("fired %d times before the first interval", n)
	}
	s.Advance(time.Millisecond, nil)
	if n != 1 {
		t.Errorf("fired %d times at 1s, want 1", n)
	}
	// a long frame catches up on every missed deadline
	s.Advance(3*time.Second, nil)
	if n != 4 {
		t.Errorf("fired %d times at 4s, want 4", n)
	}
}

func TestScheduler_Close(t *testing.T) {
	s := NewScheduler()
	e := &Entity{ID: 1, Active: true}
	n := 0
	var log actionLog

	s.Every(time.Second, func() { n++ })
	s.MoveTo(e, Point{5, 5}, time.Second, ActionRemove)
	s.Close()
	s.Advance(10*time.Second, log.run)

	if n != 0 || len(log.calls) != 0 {
		t.Errorf("closed scheduler fired: timers=%d actions=%v", n, log.calls)
	}
	if e.Pos != (Point{}) {
		t.Errorf("closed scheduler moved entity to %v", e.Pos)
	}
	s.MoveTo(e, Point{1, 1}, time.Second)
	if s.Pending() != 0 {
		t.Errorf("Pending = %d after Close, want 0", s.Pending())
	}
}
