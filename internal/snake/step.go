package snake

import "time"

// Step computes the session that follows s when the snake moves in dir.
//
// The checks run in a fixed order: wall, then body, then food. Every check is
// made against the pre-move body, so moving into the current tail cell is a
// collision even though the tail would have moved away. On a collision the
// returned session is s with State set to StateGameOver and nothing else
// changed. Step draws from rng only when food is eaten.
func Step(s Session, dir Direction, cfg Config, rng Rand) (Session, Outcome) {
	newHead := s.Head().Add(dir)

	if !newHead.In(cfg.BoardSize) {
		return s.over(), OutcomeWall
	}
	for _, seg := range s.Snake[1:] {
		if seg == newHead {
			return s.over(), OutcomeSelf
		}
	}

	next := s
	next.Direction = dir
	next.Ticks++

	if s.HasFood && newHead == s.Food {
		body := make([]Cell, 0, len(s.Snake)+1)
		body = append(body, newHead)
		body = append(body, s.Snake...)

		next.Snake = body
		next.Score = s.Score + cfg.FoodReward
		next.Interval = speedUp(s.Score, next.Score, s.Interval, cfg)
		next.Food, next.HasFood = spawnFood(cfg.BoardSize, body, rng)
		return next, OutcomeAte
	}

	body := make([]Cell, 0, len(s.Snake))
	body = append(body, newHead)
	body = append(body, s.Snake[:len(s.Snake)-1]...)
	next.Snake = body
	return next, OutcomeMoved
}

// over freezes s as a finished game.
func (s Session) over() Session {
	s.State = StateGameOver
	return s
}

// speedUp shortens the interval once for every score threshold crossed
// between oldScore and newScore, never going below cfg.MinInterval.
func speedUp(oldScore, newScore int, interval time.Duration, cfg Config) time.Duration {
	crossed := newScore/cfg.ScoreThreshold - oldScore/cfg.ScoreThreshold
	if crossed <= 0 {
		return interval
	}
	interval -= time.Duration(crossed) * cfg.SpeedDecrement
	return max(interval, cfg.MinInterval)
}
