package board

import (
	"fmt"
	"strings"
)

// Size is the number of rows and columns on the board.
const Size = 8

// Position identifies a single cell as a zero-indexed row/column pair.
type Position struct {
	Row int
	Col int
}

// Valid reports whether the position lies on the board.
func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Offset returns the position shifted i steps along the given direction.
func (p Position) Offset(d Direction, i int) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + i*dr, Col: p.Col + i*dc}
}

// Direction is one of the eight compass directions on the grid.
type Direction uint8

const (
	DirUp Direction = iota
	DirUpRight
	DirRight
	DirDownRight
	DirDown
	DirDownLeft
	DirLeft
	DirUpLeft
	DirNone Direction = 255
)

var directionNames = map[Direction]string{
	DirUp:        "up",
	DirUpRight:   "up-right",
	DirRight:     "right",
	DirDownRight: "down-right",
	DirDown:      "down",
	DirDownLeft:  "down-left",
	DirLeft:      "left",
	DirUpLeft:    "up-left",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "?"
}

// Delta returns the per-step row and column increments for the direction.
// Rows grow downward, matching the zero-indexed board layout.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirUpRight:
		return -1, 1
	case DirRight:
		return 0, 1
	case DirDownRight:
		return 1, 1
	case DirDown:
		return 1, 0
	case DirDownLeft:
		return 1, -1
	case DirLeft:
		return 0, -1
	case DirUpLeft:
		return -1, -1
	default:
		return 0, 0
	}
}

// Cardinal reports whether the direction is one of the four orthogonal ones.
func (d Direction) Cardinal() bool {
	switch d {
	case DirUp, DirDown, DirLeft, DirRight:
		return true
	default:
		return false
	}
}

// ParseDirection parses a textual direction such as "up" or "down-left".
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return DirUp, true
	case "down":
		return DirDown, true
	case "left":
		return DirLeft, true
	case "right":
		return DirRight, true
	case "up-left":
		return DirUpLeft, true
	case "up-right":
		return DirUpRight, true
	case "down-left":
		return DirDownLeft, true
	case "down-right":
		return DirDownRight, true
	default:
		return DirNone, false
	}
}

// Directions lists all eight directions in clockwise order starting at up.
func Directions() []Direction {
	return []Direction{DirUp, DirUpRight, DirRight, DirDownRight, DirDown, DirDownLeft, DirLeft, DirUpLeft}
}

// Neighbors returns the up to eight on-board cells adjacent to p.
// Edge and corner cells simply yield fewer neighbors.
func (p Position) Neighbors() []Position {
	neighbors := make([]Position, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			adj := Position{Row: p.Row + dr, Col: p.Col + dc}
			if adj.Valid() {
				neighbors = append(neighbors, adj)
			}
		}
	}
	return neighbors
}
