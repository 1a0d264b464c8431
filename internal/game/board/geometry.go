package board

// Orthogonal is the taxicab distance |Δrow| + |Δcol|. It is the
// movement and attack metric for every archetype except the
// diagonal-capable one.
func Orthogonal(a, b Position) int {
	return abs(b.Row-a.Row) + abs(b.Col-a.Col)
}

// Chebyshev is the king-move distance max(|Δrow|, |Δcol|), used by the
// diagonal-capable archetype for both movement and attacks.
func Chebyshev(a, b Position) int {
	return max(abs(b.Row-a.Row), abs(b.Col-a.Col))
}

// PathClear traces the straight line from one cell toward another and
// reports whether it is unobstructed. With diagonal false the segment
// must be axis-aligned. The line is subdivided into
// max(|Δrow|,|Δcol|) equal increments and every cell the trace passes
// through must be both unoccupied and non-terrain; off-axis segments
// snap each increment to the containing cell. When includeDest is true
// the destination cell is part of the check, otherwise it is the
// caller's to validate.
func (b *Board) PathClear(from, to Position, diagonal, includeDest bool) bool {
	dr := to.Row - from.Row
	dc := to.Col - from.Col

	if !diagonal && dr != 0 && dc != 0 {
		return false
	}

	steps := max(abs(dr), abs(dc))
	if steps == 0 {
		return true
	}

	incR := float64(dr) / float64(steps)
	incC := float64(dc) / float64(steps)

	last := steps - 1
	if includeDest {
		last = steps
	}
	for i := 1; i <= last; i++ {
		cur := Position{
			Row: int(float64(from.Row) + incR*float64(i)),
			Col: int(float64(from.Col) + incC*float64(i)),
		}
		if b.Occupied(cur) || b.IsTerrain(cur) {
			return false
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
