package state

import "strconv"

// Cost is a link or path cost. Infinity marks an unreachable destination and
// behaves as positive infinity under AddCost and under min.
type Cost uint32

// AddCost saturates instead of wrapping. Infinity absorbs any addend, and
// finite sums clamp at MaxFinite so they can never collide with the sentinel.
func AddCost(a, b Cost) Cost {
	if a == Infinity || b == Infinity {
		return Infinity
	}
	return Cost(min(uint64(MaxFinite), uint64(a)+uint64(b)))
}

func (c Cost) String() string {
	if c == Infinity {
		return "INF"
	}
	return strconv.FormatUint(uint64(c), 10)
}
