package game

// Board is a value type: assigning a Board copies the whole grid.
type Board struct {
	cells  [Size][Size]Stone
	first  int
	second int
}

// NewBoard returns the standard opening cross with First to move.
func NewBoard() Board {
	var b Board
	b.cells[3][3] = First
	b.cells[4][4] = First
	b.cells[3][4] = Second
	b.cells[4][3] = Second
	b.Recount()
	return b
}

func (b *Board) At(p Pos) Stone {
	if !p.InBounds() {
		return Empty
	}
	return b.cells[p.Row][p.Col]
}

// Count returns the number of cells holding color.
func (b *Board) Count(color Stone) int {
	switch color {
	case First:
		return b.first
	case Second:
		return b.second
	default:
		return b.Empties()
	}
}

func (b *Board) Empties() int {
	return Size*Size - b.first - b.second
}

func (b *Board) Full() bool {
	return b.Empties() == 0
}

// Recount recomputes the cached counts from the grid.
func (b *Board) Recount() {
	b.first, b.second = 0, 0
	for r := range Size {
		for c := range Size {
			switch b.cells[r][c] {
			case First:
				b.first++
			case Second:
				b.second++
			}
		}
	}
}

// Score returns the stone counts of both colors.
func (b *Board) Score() (first, second int) {
	return b.first, b.second
}

// Winner returns the color holding more stones, or Empty on a draw.
func (b *Board) Winner() Stone {
	switch {
	case b.first > b.second:
		return First
	case b.second > b.first:
		return Second
	default:
		return Empty
	}
}
