package game

// spawnTarget drops a random target just past the right edge and sends it
// across the playfield. If it makes it to the far side the session is lost.
func (s *Scene) spawnTarget() *Entity {
	name := TargetSprites[s.rnd.Intn(len(TargetSprites))]
	t := s.newEntity(KindTarget, name)
	t.Category = CategoryTarget
	t.ContactMask = CategoryBullet
	t.CollisionMask = CategoryNone

	half := t.Size.Half()
	y := s.rnd.Range(half.Y, s.cfg.Height-half.Y)
	t.Pos = Point{X: s.cfg.Width + half.X, Y: y}
	s.add(t)

	d := s.rnd.Duration(s.cfg.TargetMinDuration.Duration, s.cfg.TargetMaxDuration.Duration)
	s.sched.MoveTo(t, Point{X: -half.X, Y: y}, d, ActionLose, ActionRemove)

	s.log.Debug("target spawned", "id", t.ID, "shape", name, "y", y, "crossing", d)
	return t
}
