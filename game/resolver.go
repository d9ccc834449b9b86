package game

type kindPair struct {
	first, second Kind
}

// contactHandler gets the pair in table order.
type contactHandler func(first, second *Entity)

// contactTable lists the contact pairs that mean something. Keys are in
// canonical order: lower category first.
func (s *Scene) contactTable() map[kindPair]contactHandler {
	return map[kindPair]contactHandler{
		{KindTarget, KindBullet}: func(target, bullet *Entity) {
			s.bulletDidCollideWithTarget(bullet, target)
		},
	}
}

// resolve handles a contact-begin between a and b. Pairs missing from the
// table are ignored.
func (s *Scene) resolve(a, b *Entity) {
	if !a.Active || !b.Active {
		return
	}
	first, second := a, b
	if b.Category < a.Category {
		first, second = b, a
	}
	h, ok := s.dispatch[kindPair{first.Kind, second.Kind}]
	if !ok {
		return
	}
	h(first, second)
}

func (s *Scene) bulletDidCollideWithTarget(bullet, target *Entity) {
	s.remove(bullet)
	s.remove(target)
	s.effects.Hit()

	won := s.state.RecordHit()
	s.log.Debug("gotcha", "target", target.ID, "destroyed", s.state.Destroyed)
	if won {
		s.finish(OutcomeWon)
	}
}
