package run

// Config holds the gameplay tunables. The config package populates it from
// viper; tests construct it directly.
type Config struct {
	// Canvas and movement
	CanvasWidth      float64
	CanvasHeight     float64
	PlayerSpeed      float64 // World units per second
	PlayerSize       float64
	InteractionRange float64 // Max distance to open a car's menu

	// Level timing
	BaseTime             int // Seconds on level 1, before TimeBonus
	MinTime              int // Floor after per-level decreases
	TimeDecreasePerLevel int

	// Level completion
	CompleteThreshold float64 // Fraction of cars needed when time runs out

	// Spawning
	BaseCars     int // Cars requested on level 0
	CarsPerLevel int // Additional cars requested per level

	// Special properties
	SpecialBaseChance     float64
	SpecialChancePerLevel float64

	// Random level events
	EventChance float64
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		CanvasWidth:           1280,
		CanvasHeight:          720,
		PlayerSpeed:           300,
		PlayerSize:            100,
		InteractionRange:      120,
		BaseTime:              60,
		MinTime:               30,
		TimeDecreasePerLevel:  5,
		CompleteThreshold:     0.5,
		BaseCars:              5,
		CarsPerLevel:          2,
		SpecialBaseChance:     0.1,
		SpecialChancePerLevel: 0.05,
		EventChance:           0.3,
	}
}

// LevelTime computes the countdown for a level:
// base + time bonus, minus the per-level decrease, floored at the minimum.
func (c Config) LevelTime(level, timeBonus int) int {
	t := c.BaseTime + timeBonus - (level-1)*c.TimeDecreasePerLevel
	if t < c.MinTime {
		t = c.MinTime
	}
	return t
}
