package catalog

import "math/rand"

// LevelEvent is a random modifier rolled at most once per level during
// setup. Stat effects last for that level's stats snapshot; EffectExtraCars
// is consumed by that level's spawn only.
type LevelEvent struct {
	Name        string
	Description string
	Effect      Effect
}

// LevelEvents is the static event catalog.
var LevelEvents = []LevelEvent{
	{Name: "Rainstorm", Description: "It's raining! Cleaning is 30% faster.", Effect: Effect{Kind: EffectCleanSpeed, Value: 0.7}},
	{Name: "Rush Hour", Description: "Rush hour! More cars appear this level.", Effect: Effect{Kind: EffectExtraCars, Value: 3}},
	{Name: "Customer Demands", Description: "Some customers demand priority service! Prioritize their cars.", Effect: Effect{Kind: EffectNone}},
}

// RandomLevelEvent picks one event uniformly from the catalog.
func RandomLevelEvent(rng *rand.Rand) *LevelEvent {
	return &LevelEvents[rng.Intn(len(LevelEvents))]
}
