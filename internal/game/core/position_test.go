package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPosition(t *testing.T) {
	p := NewPosition(3, 5)
	assert.Equal(t, 3, p.X)
	assert.Equal(t, 5, p.Y)
}

func TestPosition_DistanceTo(t *testing.T) {
	tests := []struct {
		name     string
		from     Position
		to       Position
		expected int
	}{
		{"Same", Position{5, 5}, Position{5, 5}, 0},
		{"Adjacent_East", Position{5, 5}, Position{6, 5}, 1},
		{"Adjacent_South", Position{5, 5}, Position{5, 6}, 1},
		{"Adjacent_NorthEast", Position{5, 5}, Position{6, 4}, 1},
		{"Adjacent_SouthWest", Position{5, 5}, Position{4, 6}, 1},
		{"SameSign", Position{0, 0}, Position{1, 1}, 2},
		{"OppositeSign", Position{0, 0}, Position{3, -2}, 3},
		{"OppositeSignLongY", Position{0, 0}, Position{-2, 5}, 5},
		{"Far", Position{0, 0}, Position{5, 7}, 12},
		{"Negative", Position{-2, -3}, Position{2, 3}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.from.DistanceTo(tt.to))
			assert.Equal(t, tt.expected, tt.to.DistanceTo(tt.from), "Distance not symmetric")
		})
	}
}

func TestPosition_MatchesCubeDistance(t *testing.T) {
	cube := func(a, b Position) int {
		dq := a.X - b.X
		dr := a.Y - b.Y
		ds := -dq - dr
		return max(abs(dq), abs(dr), abs(ds))
	}
	origin := Position{0, 0}
	for x := -6; x <= 6; x++ {
		for y := -6; y <= 6; y++ {
			p := Position{x, y}
			assert.Equal(t, cube(origin, p), origin.DistanceTo(p), "distance to %s", p)
		}
	}
}

func TestPosition_Neighbors(t *testing.T) {
	p := Position{2, 2}
	neighbors := p.Neighbors()

	seen := map[Position]bool{}
	for _, n := range neighbors {
		assert.Equal(t, 1, p.DistanceTo(n), "neighbor %s should be one step away", n)
		assert.True(t, p.IsAdjacentTo(n))
		seen[n] = true
	}
	assert.Len(t, seen, 6, "neighbors should be distinct")
	assert.False(t, p.IsAdjacentTo(Position{3, 3}))
}

func TestPosition_Move(t *testing.T) {
	p := Position{0, 0}
	assert.Equal(t, Position{0, -1}, p.Move(North))
	assert.Equal(t, Position{-1, 1}, p.Move(SouthWest))
	assert.Equal(t, p, p.Move(Direction(42)))
}

func TestRect(t *testing.T) {
	r := BoundsOf([]Position{{1, 4}, {3, 0}, {-1, 2}})
	assert.Equal(t, Rect{Min: Position{-1, 0}, Max: Position{3, 4}}, r)
	assert.True(t, r.Contains(Position{0, 0}))
	assert.True(t, r.Contains(Position{3, 4}))
	assert.False(t, r.Contains(Position{4, 4}))
	assert.Equal(t, Rect{}, BoundsOf(nil))
}

func TestPathLength(t *testing.T) {
	path := []Position{{0, 0}, {1, 0}, {1, 1}, {0, 2}}
	assert.Equal(t, 3, PathLength(path))
	assert.Equal(t, 0, PathLength(path[:1]))
	assert.Equal(t, 2, PathLength([]Position{{0, 0}, {0, 0}, {2, 0}}))
}

func TestPosition_String(t *testing.T) {
	assert.Equal(t, "(3,-1)", Position{3, -1}.String())
}
