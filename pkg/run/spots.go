package run

import (
	"errors"
	"fmt"
)

// ErrSpotOccupied is returned when occupying a spot that already holds a car.
var ErrSpotOccupied = errors.New("parking spot already occupied")

// Spot is one parking position in the lot. X/Y is the top-left corner of
// the painted bay; spots are laid out for vertical parking only.
type Spot struct {
	ID          int
	X, Y        float64
	Orientation string // "vertical" for every spot in the current lot
	Occupied    bool
}

// Bay dimensions of a painted parking spot.
const (
	SpotWidth  = 120.0
	SpotHeight = 180.0
)

// SpotAllocator owns the fixed set of parking spots. All spots reset to
// unoccupied at every level start; individual spots are never freed
// mid-level. Single-threaded sequential use only.
type SpotAllocator struct {
	spots []Spot
}

// NewSpotAllocator builds the lot: two rows of eight vertical spots.
func NewSpotAllocator() *SpotAllocator {
	sa := &SpotAllocator{}
	// Top row
	for i := 0; i < 8; i++ {
		sa.spots = append(sa.spots, Spot{ID: i + 1, X: 70 + float64(i)*145, Y: 50, Orientation: "vertical"})
	}
	// Bottom row
	for i := 0; i < 8; i++ {
		sa.spots = append(sa.spots, Spot{ID: i + 9, X: 70 + float64(i)*145, Y: 410, Orientation: "vertical"})
	}
	return sa
}

// Reset marks every spot unoccupied. Called once per level start.
func (sa *SpotAllocator) Reset() {
	for i := range sa.spots {
		sa.spots[i].Occupied = false
	}
}

// Available returns the spots currently unoccupied.
func (sa *SpotAllocator) Available() []*Spot {
	var free []*Spot
	for i := range sa.spots {
		if !sa.spots[i].Occupied {
			free = append(free, &sa.spots[i])
		}
	}
	return free
}

// Occupy marks a spot as holding a car.
func (sa *SpotAllocator) Occupy(id int) error {
	for i := range sa.spots {
		if sa.spots[i].ID == id {
			if sa.spots[i].Occupied {
				return ErrSpotOccupied
			}
			sa.spots[i].Occupied = true
			return nil
		}
	}
	return fmt.Errorf("unknown parking spot %d", id)
}

// All returns every spot, occupied or not, for rendering.
func (sa *SpotAllocator) All() []Spot {
	return sa.spots
}
