package shooter

// resolveCollisions resolves at most one event per tick.
//
// Shapes are scanned newest first and, for each shape, bullets newest first.
// The first overlapping pair is destroyed and scores a point. A shape whose
// bottom edge reaches the viewport bottom ends the run. Either outcome stops
// the scan.
func (s *Session) resolveCollisions(viewportH float64) StepEvent {
	for i := len(s.world.Shapes) - 1; i >= 0; i-- {
		shape := s.world.Shapes[i].Rect()

		for j := len(s.world.Bullets) - 1; j >= 0; j-- {
			if s.world.Bullets[j].Rect().Intersects(shape) {
				s.world.removeShape(i)
				s.world.removeBullet(j)
				s.score++
				return EventHit
			}
		}

		if shape.Bottom() >= viewportH {
			s.endRun()
			return EventGameOver
		}
	}
	return EventNone
}
