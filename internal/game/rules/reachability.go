package rules

import (
	"container/heap"

	"github.com/mitchelldurbincs/HexTactics/internal/game/core"
)

// ReachableSet returns every position unit may end its move at, each mapped
// to the cheapest path there. Expansion is cheapest-first from the unit's
// tile; positions are settled once and never re-expanded. Tiles holding a
// friendly unit are passed through but not recorded.
func ReachableSet(b Board, unit core.Unit) map[core.Position][]core.Position {
	result := make(map[core.Position][]core.Position)

	origin, ok := b.UnitTile(unit.ID)
	if !ok {
		return result
	}
	start := []core.Position{origin.Position}
	if CanStayAt(b, unit, origin.Position) == nil {
		result[origin.Position] = start
	}
	if unit.Deployed {
		return result
	}

	bounds := b.Bounds()
	movement := unit.Type.Movement()
	budget := unit.Type.MovePoints()

	settled := map[core.Position]bool{}
	frontier := &searchQueue{}
	heap.Push(frontier, &searchNode{pos: origin.Position, path: start})
	seq := 1

	for frontier.Len() > 0 {
		node := heap.Pop(frontier).(*searchNode)
		if settled[node.pos] {
			continue
		}
		settled[node.pos] = true

		if node.pos != origin.Position && CanStayAt(b, unit, node.pos) == nil {
			result[node.pos] = node.path
		}

		for _, next := range node.pos.Neighbors() {
			if settled[next] || !bounds.Contains(next) {
				continue
			}
			tile, ok := b.TileAt(next)
			if !ok {
				continue
			}
			step, ok := movement.Cost(tile.Terrain)
			if !ok || node.cost+step > budget {
				continue
			}
			if blocker, ok := occupant(b, tile); ok && blocker.Owner != unit.Owner {
				continue
			}

			path := make([]core.Position, len(node.path)+1)
			copy(path, node.path)
			path[len(node.path)] = next
			heap.Push(frontier, &searchNode{pos: next, path: path, cost: node.cost + step, seq: seq})
			seq++
		}
	}
	return result
}

type searchNode struct {
	pos  core.Position
	path []core.Position
	cost int
	seq  int
}

// searchQueue is a min-heap on (cost, seq) so equal-cost ties resolve in
// discovery order.
type searchQueue []*searchNode

func (q searchQueue) Len() int { return len(q) }

func (q searchQueue) Less(i, j int) bool {
	if q[i].cost != q[j].cost {
		return q[i].cost < q[j].cost
	}
	return q[i].seq < q[j].seq
}

func (q searchQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *searchQueue) Push(x any) { *q = append(*q, x.(*searchNode)) }

func (q *searchQueue) Pop() any {
	old := *q
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return node
}
