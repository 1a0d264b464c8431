package board

// Board is an 8×8 grid of optional occupant slots plus a fixed set of
// terrain cells. Slots hold opaque figure IDs; the figure records
// themselves live in the game state arena, so a slot and the figure's
// position field are two views of the same fact and must be updated
// together by the owning game state.
type Board struct {
	cells   [Size][Size]string
	terrain map[Position]bool
}

// DefaultTerrain returns the two terrain cells of the standard layout.
func DefaultTerrain() []Position {
	return []Position{{Row: 3, Col: 0}, {Row: 4, Col: 7}}
}

// New creates an empty board with the given terrain cells.
// Off-board terrain positions are ignored.
func New(terrain []Position) *Board {
	b := &Board{terrain: make(map[Position]bool, len(terrain))}
	for _, p := range terrain {
		if p.Valid() {
			b.terrain[p] = true
		}
	}
	return b
}

// IsTerrain reports whether the cell is a fixed terrain cell.
func (b *Board) IsTerrain(p Position) bool {
	return b.terrain[p]
}

// Terrain returns the terrain cells.
func (b *Board) Terrain() []Position {
	out := make([]Position, 0, len(b.terrain))
	for p := range b.terrain {
		out = append(out, p)
	}
	return out
}

// OccupantAt returns the figure ID occupying the cell, if any.
// Off-board positions are never occupied.
func (b *Board) OccupantAt(p Position) (string, bool) {
	if !p.Valid() {
		return "", false
	}
	id := b.cells[p.Row][p.Col]
	return id, id != ""
}

// Occupied reports whether a figure occupies the cell.
func (b *Board) Occupied(p Position) bool {
	_, ok := b.OccupantAt(p)
	return ok
}

// Place puts a figure ID into an empty, non-terrain cell.
func (b *Board) Place(id string, p Position) bool {
	if id == "" || !p.Valid() || b.terrain[p] || b.cells[p.Row][p.Col] != "" {
		return false
	}
	b.cells[p.Row][p.Col] = id
	return true
}

// Clear empties the cell.
func (b *Board) Clear(p Position) {
	if p.Valid() {
		b.cells[p.Row][p.Col] = ""
	}
}
