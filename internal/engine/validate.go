package engine

// isPowerOfTwo reports whether v is a positive power of two.
func isPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}

// validTile reports whether v is inside the tile domain: empty, a value
// tile in [2, 65536], or one of the three multiplier tiles.
func validTile(v int) bool {
	switch {
	case v == 0:
		return true
	case v >= 2 && v <= MaxTile && isPowerOfTwo(v):
		return true
	case v == -1 || v == -2 || v == -4:
		return true
	}
	return false
}

// Validate checks every cell of b against the tile domain and fails with
// InvalidTileError on the first offender. Step does not call this; callers
// that accept boards from untrusted sources opt in.
func Validate(b Board) error {
	for r := range BoardSize {
		for c := range BoardSize {
			if !validTile(b[r][c]) {
				return &InvalidTileError{Value: b[r][c]}
			}
		}
	}
	return nil
}
