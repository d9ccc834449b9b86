package game

// Launch fires a projectile from the shooter toward p, the point where the
// player released. Shots aimed behind the shooter (it faces +x) are dropped
// and nil is returned.
func (s *Scene) Launch(p Point) *Entity {
	if s.closed || s.state.Over() {
		return nil
	}
	origin := s.shooter.Pos
	offset := p.Sub(origin)
	if offset.X < 0 {
		return nil
	}
	// straight at the shooter's own centre: no direction to normalize
	if offset.Length() == 0 {
		return nil
	}

	b := s.newEntity(KindBullet, SpriteStar)
	b.Pos = origin
	b.Category = CategoryBullet
	b.ContactMask = CategoryTarget
	b.CollisionMask = CategoryNone
	b.Precise = true
	s.add(b)

	dest := origin.Add(offset.Normalized().Scale(s.cfg.BulletRange))
	s.sched.MoveTo(b, dest, s.cfg.BulletDuration.Duration, ActionRemove)
	s.effects.Shot()

	s.log.Debug("bullet fired", "id", b.ID, "toward", p)
	return b
}
