package core

import (
	"encoding/binary"
	"strings"
)

// Concise is the deduplication form of a State: terrain, balls, and the set
// of cells the player can walk to. The action log and the player's exact cell
// are left out, so states that differ only in where the player stands inside
// one region collapse into a single search node.
type Concise struct {
	Ground []Ground
	Balls  []Ball
	Reach  []bool
}

// Concise returns the deduplication form of the state.
func (s *State) Concise() Concise {
	ground := make([]Ground, len(s.Grid.Cells))
	copy(ground, s.Grid.Cells)
	return Concise{
		Ground: ground,
		Balls:  cloneBalls(s.Balls),
		Reach:  s.ReachMask(),
	}
}

// ReachMask flood-fills from the player over non-Block cells without balls.
// The result is indexed like Grid.Cells. The player's cell is always marked.
func (s *State) ReachMask() []bool {
	g := s.Grid
	mask := make([]bool, g.W*g.H)
	if !g.InBounds(s.Player) {
		return mask
	}

	queue := make([]Coord, 0, g.W*g.H)
	mask[g.index(s.Player)] = true
	queue = append(queue, s.Player)

	for head := 0; head < len(queue); head++ {
		for _, next := range queue[head].Neighbors() {
			if !g.InBounds(next) || mask[g.index(next)] {
				continue
			}
			if !s.passable(next) {
				continue
			}
			mask[g.index(next)] = true
			queue = append(queue, next)
		}
	}
	return mask
}

// Key encodes the concise form as a string usable as a map key.
// For states of the same puzzle, equal keys mean equal concise forms.
func (c Concise) Key() string {
	var sb strings.Builder
	sb.Grow(len(c.Ground) + len(c.Balls)*12 + len(c.Reach)/8 + 8)

	for _, g := range c.Ground {
		sb.WriteByte(byte(g))
	}
	sb.WriteByte('|')

	var buf [binary.MaxVarintLen64]byte
	for _, b := range c.Balls {
		for _, v := range [3]int{b.Size, b.Pos.X, b.Pos.Y} {
			n := binary.PutVarint(buf[:], int64(v))
			sb.Write(buf[:n])
		}
	}
	sb.WriteByte('|')

	var bits byte
	for i, r := range c.Reach {
		if r {
			bits |= 1 << (i % 8)
		}
		if i%8 == 7 {
			sb.WriteByte(bits)
			bits = 0
		}
	}
	if len(c.Reach)%8 != 0 {
		sb.WriteByte(bits)
	}
	return sb.String()
}

// Fingerprint returns the visited-set key of the state.
func (s *State) Fingerprint() string {
	return s.Concise().Key()
}
