package run

import (
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/golangdaddy/grimeshine/pkg/catalog"
)

// Spawner populates a level with cars: spot shuffling, rarity-weighted type
// draws, dirty/vacuum state and special-property assignment.
type Spawner struct {
	cfg Config
	rng *rand.Rand
	log zerolog.Logger
}

// NewSpawner creates a spawner on the given RNG.
func NewSpawner(cfg Config, rng *rand.Rand, log zerolog.Logger) *Spawner {
	return &Spawner{cfg: cfg, rng: rng, log: log}
}

// SpawnLevel places cars for a level. extraCars comes from a Rush Hour
// style event and is consumed here only. The request is clamped to the
// free spots; running short of spots is a warning, never an error. Zero
// available spots spawns zero cars.
func (sp *Spawner) SpawnLevel(level, extraCars int, alloc *SpotAllocator) []*Car {
	requested := sp.cfg.BaseCars + level*sp.cfg.CarsPerLevel + extraCars

	available := alloc.Available()
	count := requested
	if count > len(available) {
		sp.log.Warn().
			Int("level", level).
			Int("requested", requested).
			Int("spots", len(available)).
			Msg("not enough parking spots, clamping spawn")
		count = len(available)
	}

	// Shuffle free spots so placement varies between levels
	sp.rng.Shuffle(len(available), func(i, j int) {
		available[i], available[j] = available[j], available[i]
	})

	cars := make([]*Car, 0, count)
	for i := 0; i < count; i++ {
		spot := available[i]
		carType := catalog.RandomCarType(sp.rng, level)

		// Imperfect parking: center of the bay plus up to ±5 units of
		// jitter, with a coin flip on facing. Cosmetic only; reward logic
		// never reads position or facing.
		offsetX := sp.rng.Float64()*10 - 5
		offsetY := sp.rng.Float64()*10 - 5

		car := &Car{
			Type:        carType,
			SpotID:      spot.ID,
			X:           spot.X + SpotWidth/2 + offsetX,
			Y:           spot.Y + SpotHeight/2 + offsetY,
			Flipped:     sp.rng.Float64() > 0.5,
			Orientation: spot.Orientation,
		}

		// Exactly one of the two service states
		if sp.rng.Float64() < 0.5 {
			car.NeedsCleaning = true
		} else {
			car.NeedsVacuumOrSearch = true
		}

		specialChance := sp.cfg.SpecialBaseChance + float64(level)*sp.cfg.SpecialChancePerLevel
		if sp.rng.Float64() < specialChance {
			candidates := specialCandidates(level)
			car.Special = candidates[sp.rng.Intn(len(candidates))]
			sp.log.Debug().
				Int("spot", spot.ID).
				Str("special", string(car.Special)).
				Msg("special car spawned")
		}

		if err := alloc.Occupy(spot.ID); err != nil {
			// Cannot happen with a freshly reset allocator; skip the spot
			// rather than double-park.
			sp.log.Error().Err(err).Int("spot", spot.ID).Msg("spot conflict during spawn")
			continue
		}
		cars = append(cars, car)
	}

	sp.log.Info().Int("level", level).Int("cars", len(cars)).Msg("level spawned")
	return cars
}
