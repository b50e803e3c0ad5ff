package layout

import "math"

// apportion splits amount into integer shares proportional to weights.
// Rounding follows largest-remainder allocation: every share is floored,
// then the leftover cells go one each to the shares with the largest
// fractional remainders, earlier indices winning ties. The shares always
// sum exactly to amount, so repeated layout passes are deterministic.
//
// A negative amount produces non-positive shares by the same rule applied
// to its magnitude. A zero weight sum yields all-zero shares.
func apportion(amount int, weights []float64) []int {
	shares := make([]int, len(weights))
	if amount == 0 || len(weights) == 0 {
		return shares
	}

	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return shares
	}

	negative := amount < 0
	magnitude := amount
	if negative {
		magnitude = -magnitude
	}

	type remainder struct {
		index int
		frac  float64
	}
	remainders := make([]remainder, len(weights))

	allocated := 0
	for i, w := range weights {
		exact := float64(magnitude) * w / total
		floor := int(math.Floor(exact))
		shares[i] = floor
		allocated += floor
		remainders[i] = remainder{index: i, frac: exact - float64(floor)}
	}

	// Hand out the cells lost to flooring, largest remainder first.
	// Insertion-ordered selection keeps ties on input order.
	for leftover := magnitude - allocated; leftover > 0; leftover-- {
		best := -1
		for i := range remainders {
			if best == -1 || remainders[i].frac > remainders[best].frac {
				best = i
			}
		}
		shares[remainders[best].index]++
		remainders[best].frac = -1
	}

	if negative {
		for i := range shares {
			shares[i] = -shares[i]
		}
	}
	return shares
}

// apportionEqual splits amount into n integer shares as evenly as possible,
// the first shares taking the extra cells when it does not divide.
func apportionEqual(amount, n int) []int {
	if n <= 0 {
		return nil
	}
	shares := make([]int, n)
	base := amount / n
	extra := amount % n
	for i := range shares {
		shares[i] = base
		if i < extra {
			shares[i]++
		}
	}
	return shares
}
