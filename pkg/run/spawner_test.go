package run

import (
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSpawner(seed int64) *Spawner {
	return NewSpawner(DefaultConfig(), rand.New(rand.NewSource(seed)), zerolog.Nop())
}

func TestSpawnLevel_CountFollowsLevel(t *testing.T) {
	sp := newTestSpawner(1)

	// 5 base + 2 per level
	alloc := NewSpotAllocator()
	cars := sp.SpawnLevel(1, 0, alloc)
	assert.Len(t, cars, 7)

	alloc.Reset()
	cars = sp.SpawnLevel(3, 0, alloc)
	assert.Len(t, cars, 11)
}

func TestSpawnLevel_ClampsToSpots(t *testing.T) {
	sp := newTestSpawner(1)

	// Level 10 requests 25 cars; only 16 spots exist
	alloc := NewSpotAllocator()
	cars := sp.SpawnLevel(10, 0, alloc)
	assert.Len(t, cars, 16)
	assert.Empty(t, alloc.Available())
}

func TestSpawnLevel_ExtraCarsFromEvent(t *testing.T) {
	sp := newTestSpawner(1)

	alloc := NewSpotAllocator()
	cars := sp.SpawnLevel(1, 3, alloc)
	assert.Len(t, cars, 10)
}

func TestSpawnLevel_CarsOccupyDistinctSpots(t *testing.T) {
	sp := newTestSpawner(2)

	alloc := NewSpotAllocator()
	cars := sp.SpawnLevel(5, 0, alloc)

	seen := map[int]bool{}
	for _, car := range cars {
		assert.False(t, seen[car.SpotID], "spot %d used twice", car.SpotID)
		seen[car.SpotID] = true
	}
}

func TestSpawnLevel_ExactlyOneServiceState(t *testing.T) {
	sp := newTestSpawner(3)

	alloc := NewSpotAllocator()
	for _, car := range sp.SpawnLevel(8, 0, alloc) {
		require.NotNil(t, car.Type)
		assert.NotEqual(t, car.NeedsCleaning, car.NeedsVacuumOrSearch,
			"car must need exactly one of cleaning or vacuum/search")
		assert.False(t, car.Interacted)
	}
}

func TestSpawnLevel_SpecialsGatedByLevel(t *testing.T) {
	sp := newTestSpawner(4)

	// At level 1 the deep-run specials must never appear
	for i := 0; i < 50; i++ {
		alloc := NewSpotAllocator()
		for _, car := range sp.SpawnLevel(1, 0, alloc) {
			assert.NotEqual(t, SpecialComplexInterior, car.Special)
			assert.NotEqual(t, SpecialVIPOwner, car.Special)
			assert.NotEqual(t, SpecialSuspicious, car.Special)
		}
	}
}

func TestSpecialCandidates_PoolGrowth(t *testing.T) {
	assert.Len(t, specialCandidates(1), 2)
	assert.Len(t, specialCandidates(3), 3)
	assert.Len(t, specialCandidates(5), 4)
	assert.Len(t, specialCandidates(7), 5)
	assert.Contains(t, specialCandidates(7), SpecialSuspicious)
}

func TestSpawnLevel_PositionsInsideBays(t *testing.T) {
	sp := newTestSpawner(5)

	alloc := NewSpotAllocator()
	spotsByID := map[int]Spot{}
	for _, spot := range alloc.All() {
		spotsByID[spot.ID] = spot
	}

	for _, car := range sp.SpawnLevel(6, 0, alloc) {
		spot := spotsByID[car.SpotID]
		// Bay center plus at most 5 units of jitter each way
		assert.InDelta(t, spot.X+SpotWidth/2, car.X, 5.0)
		assert.InDelta(t, spot.Y+SpotHeight/2, car.Y, 5.0)
	}
}
