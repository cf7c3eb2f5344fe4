package game

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	firstRune  = 'O'
	secondRune = 'X'
	emptyRune  = '.'
)

// ParsePos reads a coordinate such as "d3".
func ParsePos(s string) (Pos, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return Pos{}, errors.Errorf("invalid coordinate %q", s)
	}
	p := Pos{Row: int(s[1] - '1'), Col: int(s[0] - 'a')}
	if !p.InBounds() {
		return Pos{}, errors.Errorf("coordinate %q is off the board", s)
	}
	return p, nil
}

// ParseBoard reads Size rows of Size cells, with O for First, X for Second
// and . for Empty. Whitespace inside a row and blank lines are ignored.
func ParseBoard(text string) (Board, error) {
	var b Board
	row := 0
	for i, line := range strings.Split(text, "\n") {
		line = strings.Join(strings.Fields(line), "")
		if line == "" {
			continue
		}
		if row == Size {
			return Board{}, errors.Errorf("line %d: more than %d rows", i+1, Size)
		}
		if err := b.parseRow(row, line); err != nil {
			return Board{}, errors.Wrapf(err, "line %d", i+1)
		}
		row++
	}
	if row != Size {
		return Board{}, errors.Errorf("got %d rows, want %d", row, Size)
	}
	b.Recount()
	return b, nil
}

func (b *Board) parseRow(row int, line string) error {
	if len(line) != Size {
		return errors.Errorf("got %d cells, want %d", len(line), Size)
	}
	for col := range Size {
		switch line[col] {
		case firstRune:
			b.cells[row][col] = First
		case secondRune:
			b.cells[row][col] = Second
		case emptyRune:
			b.cells[row][col] = Empty
		default:
			return errors.Errorf("unknown cell %q at column %d", line[col], col+1)
		}
	}
	return nil
}

func (b *Board) String() string {
	var sb strings.Builder
	for r := range Size {
		for c := range Size {
			switch b.cells[r][c] {
			case First:
				sb.WriteByte(firstRune)
			case Second:
				sb.WriteByte(secondRune)
			default:
				sb.WriteByte(emptyRune)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseStone reads a color name as printed by Stone.String.
func ParseStone(s string) (Stone, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "first", "o":
		return First, nil
	case "second", "x":
		return Second, nil
	default:
		return Empty, errors.Errorf("unknown color %q", s)
	}
}
