package rules

import "fmt"

// Player identifies one of the two sides.
type Player int

const (
	PlayerNone Player = 0
	PlayerOne  Player = 1
	PlayerTwo  Player = 2
)

func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "P1"
	case PlayerTwo:
		return "P2"
	case PlayerNone:
		return "-"
	default:
		return fmt.Sprintf("player(%d)", int(p))
	}
}

// Opponent returns the other side.
func (p Player) Opponent() Player {
	switch p {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	default:
		return PlayerNone
	}
}

// Valid reports whether p names an actual side.
func (p Player) Valid() bool {
	return p == PlayerOne || p == PlayerTwo
}

// Players lists both sides in evaluation order, player one first.
func Players() []Player {
	return []Player{PlayerOne, PlayerTwo}
}
