package state

const (
	// Infinity is the reserved maximum cost, used as the unreachable sentinel.
	Infinity = ^(Cost)(0)
	// MaxFinite is the largest cost that is not a retraction; saturating
	// arithmetic clamps here.
	MaxFinite = Infinity - 1

	// DeleteCost is the wire sentinel meaning "remove this link".
	DeleteCost = -1
)

var (
	DefaultMaxRounds    = 100
	DefaultUpdateMarker = "APPLYING UPDATES"
)
