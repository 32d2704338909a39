package run

import "github.com/golangdaddy/grimeshine/pkg/catalog"

// SpecialProperty marks a car with an extra modifier for this level only.
type SpecialProperty string

const (
	SpecialNone              SpecialProperty = ""
	SpecialExtraDirty        SpecialProperty = "Extra Dirty"
	SpecialHiddenCompartment SpecialProperty = "Hidden Compartment"
	SpecialComplexInterior   SpecialProperty = "Complex Interior" // Level 3+
	SpecialVIPOwner          SpecialProperty = "VIP Owner"        // Level 5+
	SpecialSuspicious        SpecialProperty = "Suspicious"       // Level 7+
)

// specialCandidates returns the special properties that can roll at the
// given level. The pool grows as the run gets deeper.
func specialCandidates(level int) []SpecialProperty {
	props := []SpecialProperty{SpecialExtraDirty, SpecialHiddenCompartment}
	if level >= 3 {
		props = append(props, SpecialComplexInterior)
	}
	if level >= 5 {
		props = append(props, SpecialVIPOwner)
	}
	if level >= 7 {
		props = append(props, SpecialSuspicious)
	}
	return props
}

// Car is one spawned car instance, alive for exactly one level. Exactly one
// of NeedsCleaning / NeedsVacuumOrSearch is true and determines which
// actions the interaction menu offers.
type Car struct {
	Type        *catalog.CarType
	SpotID      int
	X, Y        float64 // Center position, including parking jitter
	Flipped     bool    // Cosmetic: car backed into the space
	Orientation string
	Special     SpecialProperty

	NeedsCleaning       bool
	NeedsVacuumOrSearch bool

	// Interacted flips to true when an action completes on this car; the
	// car then stays in the lot but accepts no further actions.
	Interacted bool
}
