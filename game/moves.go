package game

// FlipSet returns the cells that turn to color when color plays at pos,
// starting with pos itself. Each direction contributes its captured run in
// near-to-far order. With earlyExit the scan stops at the first capture,
// which is enough to tell legality. An illegal move yields nil.
func (b *Board) FlipSet(color Stone, pos Pos, earlyExit bool) []Pos {
	if !pos.InBounds() || b.At(pos) != Empty {
		return nil
	}
	opponent := color.Reverse()

	flips := []Pos{pos}
	for _, d := range directions {
		cur := pos.add(d)
		run := 0
		for cur.InBounds() && b.At(cur) == opponent {
			cur = cur.add(d)
			run++
		}
		if run == 0 || !cur.InBounds() || b.At(cur) != color {
			continue
		}
		cur = pos.add(d)
		for range run {
			flips = append(flips, cur)
			if earlyExit {
				return flips
			}
			cur = cur.add(d)
		}
	}

	if len(flips) == 1 {
		return nil
	}
	return flips
}

// LegalMoves lists the cells color can play, in row-major order.
func (b *Board) LegalMoves(color Stone) []Pos {
	var moves []Pos
	for r := range Size {
		for c := range Size {
			p := Pos{Row: r, Col: c}
			if b.cells[r][c] == Empty && b.FlipSet(color, p, true) != nil {
				moves = append(moves, p)
			}
		}
	}
	return moves
}

// HasMove reports whether color has at least one legal move.
func (b *Board) HasMove(color Stone) bool {
	for r := range Size {
		for c := range Size {
			if b.cells[r][c] == Empty && b.FlipSet(color, Pos{Row: r, Col: c}, true) != nil {
				return true
			}
		}
	}
	return false
}

// Apply sets every cell of flips to color. flips must come from FlipSet on
// this board; no legality check is done here.
func (b *Board) Apply(color Stone, flips []Pos) {
	for _, p := range flips {
		b.cells[p.Row][p.Col] = color
	}
	b.Recount()
}

// IsGameOver reports whether neither color can move. Playouts stop under
// the same condition.
func (b *Board) IsGameOver() bool {
	return !b.HasMove(First) && !b.HasMove(Second)
}

// CanPass reports whether color must pass: it has no move while the game
// is still running.
func (b *Board) CanPass(color Stone) bool {
	return !b.HasMove(color) && b.HasMove(color.Reverse())
}
