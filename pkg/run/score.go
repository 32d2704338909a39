package run

import "math"

// Summary is the snapshot scoring consumes when a run ends: the level that
// ended it, that level's serviced and total car counts, the cash balance and
// the time left on the clock.
type Summary struct {
	Level         int
	CarsCompleted int
	TotalCars     int
	Cash          int
	TimeRemaining int
}

// Score converts a run summary into a final score:
// cars completed pay 100 each, a full clear adds 500 per level, the running
// total is multiplied by the level reached, then remaining time (x10), 10%
// of the cash balance, and a flat 1000 for a 75%+ completion rate are added.
func Score(s Summary) int {
	score := float64(s.CarsCompleted * 100)

	if s.TotalCars > 0 && s.CarsCompleted == s.TotalCars {
		score += float64(500 * s.Level)
	}

	score *= float64(s.Level)
	score += float64(s.TimeRemaining * 10)
	score += math.Floor(float64(s.Cash) * 0.1)

	if s.TotalCars > 0 {
		rate := float64(s.CarsCompleted) / float64(s.TotalCars)
		if rate >= 0.75 {
			score += 1000
		}
	}

	return int(math.Floor(score))
}

// Stars converts a final score into the meta-currency reward: one star per
// level reached plus one per 1000 points.
func Stars(score, level int) int {
	return level + score/1000
}
