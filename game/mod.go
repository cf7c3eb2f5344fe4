package game

// Size is the fixed board dimension.
const Size = 8

// Stone is the content of a board cell.
type Stone int8

const (
	Empty Stone = iota
	First
	Second
)

// Reverse swaps First and Second. Empty is a fixed point.
func (s Stone) Reverse() Stone {
	switch s {
	case First:
		return Second
	case Second:
		return First
	default:
		return Empty
	}
}

func (s Stone) String() string {
	switch s {
	case First:
		return "first"
	case Second:
		return "second"
	default:
		return "empty"
	}
}

// Pos is a board coordinate. Row 0 is printed as rank 1, Col 0 as file a.
type Pos struct {
	Row, Col int
}

func (p Pos) InBounds() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

func (p Pos) add(d Pos) Pos {
	return Pos{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

func (p Pos) String() string {
	if !p.InBounds() {
		return "??"
	}
	return string([]byte{byte('a' + p.Col), byte('1' + p.Row)})
}

var directions = [8]Pos{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}
