package engine

// maxMultiplier is the multiplier cap: a -4 tile never merges further.
const maxMultiplier = -4

// slideColumn collapses one column toward the bottom (index 3) and returns
// the new column plus the score gained from merges.
//
// A single bottom-up scan moves a read cursor through the tiles and a write
// cursor through the output. For each non-empty tile the nearest non-empty
// tile above it is a merge candidate; when the pair merges, both tiles are
// consumed and the scan resumes strictly above them, so a merged tile never
// merges again in the same move.
func slideColumn(col [BoardSize]int) ([BoardSize]int, int) {
	var out [BoardSize]int
	score := 0
	write := BoardSize - 1

	read := BoardSize - 1
	for read >= 0 {
		if col[read] == 0 {
			read--
			continue
		}

		far := read - 1
		for far >= 0 && col[far] == 0 {
			far--
		}

		if far >= 0 {
			if merged, add, ok := mergeTiles(col[read], col[far], read == far+1, col[read+1:]); ok {
				out[write] = merged
				score += add
				write--
				read = far - 1
				continue
			}
		}

		out[write] = col[read]
		write--
		read--
	}

	return out, score
}

// mergeTiles decides whether the pair (near, far) merges. near is the tile
// closer to the slide edge, far the nearest non-empty tile above it.
// adjacent is true when no empty cell separates the pair in the original
// column; below holds the cells strictly between near and the slide edge.
// Returns the merged value, its score contribution, and whether it fired.
func mergeTiles(near, far int, adjacent bool, below []int) (int, int, bool) {
	// Equal value tiles merge additively until the 65536 cap.
	if near > 0 && far > 0 && near == far && near < MaxTile {
		return near + far, near + far, true
	}

	// Equal multiplier tiles double in magnitude up to x4. The merged value
	// is negative, so these merges cost score.
	if near < 0 && far < 0 && near == far && near > maxMultiplier {
		return near * 2, near * 2, true
	}

	// A value tile merges into a multiplier only when it slides directly
	// onto it: the pair must be adjacent and the near tile already settled,
	// with nothing empty between it and the edge to fall into. Unlike the
	// value rule this one has no cap; multiplying a 65536 past the maximum
	// is allowed because the move that built the 65536 already won the game.
	if near*far < 0 && adjacent && noneEmpty(below) {
		value, mult := near, far
		if value < 0 {
			value, mult = far, near
		}
		v := value * -mult
		return v, v, true
	}

	return 0, 0, false
}

// noneEmpty reports whether every cell in the slice is occupied.
func noneEmpty(cells []int) bool {
	for _, v := range cells {
		if v == 0 {
			return false
		}
	}
	return true
}

// slideBoard resolves one move without spawning. The direction code is the
// clockwise rotation count that turns the move into a downward slide.
func slideBoard(b Board, dir Direction) (Board, int) {
	rot := int(dir)
	work := rotate(b, rot)

	delta := 0
	for c := range BoardSize {
		col, add := slideColumn([BoardSize]int{work[0][c], work[1][c], work[2][c], work[3][c]})
		delta += add
		for r := range BoardSize {
			work[r][c] = col[r]
		}
	}

	return rotate(work, (4-rot)%4), delta
}
