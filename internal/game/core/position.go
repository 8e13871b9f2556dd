package core

import "fmt"

// Position is an axial coordinate on the hex grid.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// NewPosition creates a new position with the given x and y values
func NewPosition(x, y int) Position {
	return Position{X: x, Y: y}
}

// Direction indexes the six hex neighbors.
type Direction int

const (
	North Direction = iota
	NorthEast
	SouthEast
	South
	SouthWest
	NorthWest
)

// DirectionVectors provides coordinate offsets for each direction
var DirectionVectors = [6]Position{
	North:     {X: 0, Y: -1},
	NorthEast: {X: 1, Y: -1},
	SouthEast: {X: 1, Y: 0},
	South:     {X: 0, Y: 1},
	SouthWest: {X: -1, Y: 1},
	NorthWest: {X: -1, Y: 0},
}

// DistanceTo returns the number of hex steps between p and other.
// When both axis deltas point the same way the steps add up; otherwise one
// diagonal step covers both axes at once.
func (p Position) DistanceTo(other Position) int {
	dx := other.X - p.X
	dy := other.Y - p.Y
	if (dx >= 0) == (dy >= 0) {
		return abs(dx) + abs(dy)
	}
	return max(abs(dx), abs(dy))
}

// IsAdjacentTo checks if this position is one hex step away from other
func (p Position) IsAdjacentTo(other Position) bool {
	return p.DistanceTo(other) == 1
}

// Neighbors returns the six neighbors of this position
func (p Position) Neighbors() [6]Position {
	var out [6]Position
	for i, d := range DirectionVectors {
		out[i] = p.Add(d)
	}
	return out
}

// Move returns a new position moved one step in the given direction
func (p Position) Move(direction Direction) Position {
	if direction < 0 || int(direction) >= len(DirectionVectors) {
		return p
	}
	return p.Add(DirectionVectors[direction])
}

// Add returns the sum of this position and another
func (p Position) Add(other Position) Position {
	return Position{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference between this position and another
func (p Position) Sub(other Position) Position {
	return Position{X: p.X - other.X, Y: p.Y - other.Y}
}

// String returns a string representation of the position
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect is an inclusive bounding rectangle of positions.
type Rect struct {
	Min Position `json:"min"`
	Max Position `json:"max"`
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Position) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// BoundsOf returns the smallest rectangle holding every position.
func BoundsOf(positions []Position) Rect {
	if len(positions) == 0 {
		return Rect{}
	}
	r := Rect{Min: positions[0], Max: positions[0]}
	for _, p := range positions[1:] {
		r.Min.X = min(r.Min.X, p.X)
		r.Min.Y = min(r.Min.Y, p.Y)
		r.Max.X = max(r.Max.X, p.X)
		r.Max.Y = max(r.Max.Y, p.Y)
	}
	return r
}

// PathLength sums the hex distance between consecutive positions.
func PathLength(path []Position) int {
	total := 0
	for i := 1; i < len(path); i++ {
		total += path[i-1].DistanceTo(path[i])
	}
	return total
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
