package aocgrid

import (
	"cmp"
	"math"
	"slices"

	"github.com/emirpasic/gods/trees/binaryheap"
)

// Unreachable is the cost reported for pairs with no path between them.
const Unreachable int64 = math.MaxInt64

// Route is a shortest path: the nodes from start to goal inclusive and
// the total edge cost along them.
type Route[K comparable] struct {
	Cost int64
	Path []K
}

type frontierItem[K comparable] struct {
	node K
	g, f int64
	seq  uint64
}

// newFrontier returns a min-heap on f. Equal f prefers the higher g,
// then the smaller node under cmpKey, then the earlier push.
func newFrontier[K comparable](cmpKey func(a, b K) int) *binaryheap.Heap {
	return binaryheap.NewWith(func(a, b interface{}) int {
		x, y := a.(*frontierItem[K]), b.(*frontierItem[K])
		if c := cmp.Compare(x.f, y.f); c != 0 {
			return c
		}
		if c := cmp.Compare(y.g, x.g); c != 0 {
			return c
		}
		if cmpKey != nil {
			if c := cmpKey(x.node, y.node); c != 0 {
				return c
			}
		}
		return cmp.Compare(x.seq, y.seq)
	})
}

// keyCompare orders Pt keys lexicographically and leaves other key types
// to insertion order.
func keyCompare[K comparable]() func(a, b K) int {
	var zero K
	if _, ok := any(zero).(Pt); !ok {
		return nil
	}
	return func(a, b K) int {
		return any(a).(Pt).Compare(any(b).(Pt))
	}
}

type searcher[K comparable] struct {
	next      func(n K, visit func(m K, cost int64))
	heuristic func(K) int64 // nil for Dijkstra
	cmpKey    func(a, b K) int
}

func (s searcher[K]) run(start K, isGoal func(K) bool) (Route[K], bool) {
	best := map[K]int64{start: 0}
	prev := map[K]K{}
	open := newFrontier(s.cmpKey)
	var seq uint64
	push := func(n K, g int64) {
		f := g
		if s.heuristic != nil {
			f += s.heuristic(n)
		}
		open.Push(&frontierItem[K]{node: n, g: g, f: f, seq: seq})
		seq++
	}
	push(start, 0)
	for !open.Empty() {
		v, _ := open.Pop()
		cur := v.(*frontierItem[K])
		if cur.g > best[cur.node] {
			continue // stale
		}
		if isGoal(cur.node) {
			return Route[K]{Cost: cur.g, Path: walkBack(prev, start, cur.node)}, true
		}
		s.next(cur.node, func(m K, cost int64) {
			mustNonNegative(cost)
			g := cur.g + cost
			if b, ok := best[m]; ok && b <= g {
				return
			}
			best[m] = g
			prev[m] = cur.node
			push(m, g)
		})
	}
	return Route[K]{}, false
}

func walkBack[K comparable](prev map[K]K, start, goal K) []K {
	path := []K{goal}
	for n := goal; n != start; {
		n = prev[n]
		path = append(path, n)
	}
	slices.Reverse(path)
	return path
}

// Dijkstra searches from start until it pops a node satisfying isGoal.
// next reports the outgoing edges of a node; costs must be non-negative.
// It suits search state richer than a position, such as a position plus
// an AsciiSet of collected keys.
func Dijkstra[K comparable](start K, isGoal func(K) bool, next func(n K, visit func(m K, cost int64))) (Route[K], bool) {
	return searcher[K]{next: next, cmpKey: keyCompare[K]()}.run(start, isGoal)
}

// AStar is Dijkstra guided by heuristic, which must not overestimate the
// remaining cost.
func AStar[K comparable](start K, isGoal func(K) bool, next func(n K, visit func(m K, cost int64)), heuristic func(K) int64) (Route[K], bool) {
	return searcher[K]{next: next, heuristic: heuristic, cmpKey: keyCompare[K]()}.run(start, isGoal)
}

func graphNext[K comparable](g *Graph[K]) func(n K, visit func(m K, cost int64)) {
	return func(n K, visit func(K, int64)) {
		for m, w := range g.Edges[n] {
			visit(m, w)
		}
	}
}

// DijkstraGraph returns the cheapest route from start to goal in g.
func DijkstraGraph[K comparable](g *Graph[K], start, goal K) (Route[K], bool) {
	if !g.Nodes[start] {
		return Route[K]{}, false
	}
	return Dijkstra(start, func(k K) bool { return k == goal }, graphNext(g))
}

// AStarGraph is DijkstraGraph guided by a distance-to-goal heuristic.
// The heuristic is scaled by the cheapest edge in g and is Manhattan
// distance when every edge is an axis-aligned unit step, Chebyshev
// distance when diagonal unit steps occur, and zero otherwise, so it
// never overestimates.
func AStarGraph(g *Graph[Pt], start, goal Pt) (Route[Pt], bool) {
	if !g.Nodes[start] {
		return Route[Pt]{}, false
	}
	return AStar(start, func(p Pt) bool { return p == goal }, graphNext(g), graphHeuristic(g, goal))
}

func graphHeuristic(g *Graph[Pt], goal Pt) func(Pt) int64 {
	minCost := Unreachable
	diagonal := false
	for a, e := range g.Edges {
		for b, w := range e {
			minCost = min(minCost, w)
			switch d := a.Sub(b); {
			case AbsDiff(d.X, 0)+AbsDiff(d.Y, 0) == 1:
			case AbsDiff(d.X, 0) == 1 && AbsDiff(d.Y, 0) == 1:
				diagonal = true
			default:
				return nil
			}
		}
	}
	if minCost == Unreachable || minCost <= 0 {
		return nil
	}
	if diagonal {
		return func(p Pt) int64 { return int64(p.ChebyshevDist(goal)) * minCost }
	}
	return func(p Pt) int64 { return int64(p.MDist(goal)) * minCost }
}

// IsNodeFunc reports whether the cell at p with value v is walkable.
type IsNodeFunc[T any] func(p Pt, v T) bool

// EdgeCostFunc returns the cost of moving from (p1,v1) to (p2,v2), or
// false if there is no edge.
type EdgeCostFunc[T any] func(p1 Pt, v1 T, p2 Pt, v2 T) (int64, bool)

func gridNext[T any](g Grid[T], isNode IsNodeFunc[T], edgeCost EdgeCostFunc[T], sawCheap *bool) func(p Pt, visit func(Pt, int64)) {
	return func(p Pt, visit func(Pt, int64)) {
		v1, _ := g.AtOk(p)
		ForNeighborsIn(g, p, Conn4, func(q Pt, v2 T) bool {
			if !isNode(q, v2) {
				return true
			}
			if c, ok := edgeCost(p, v1, q, v2); ok {
				if c < 1 && sawCheap != nil {
					*sawCheap = true
				}
				visit(q, c)
			}
			return true
		})
	}
}

func gridStartOk[T any](g Grid[T], isNode IsNodeFunc[T], start Pt) bool {
	v, ok := g.AtOk(start)
	return ok && isNode(start, v)
}

// DijkstraGrid searches g directly, moving between 4-connected node
// cells and building edges as it goes.
func DijkstraGrid[T any](g Grid[T], isNode IsNodeFunc[T], edgeCost EdgeCostFunc[T], start, goal Pt) (Route[Pt], bool) {
	if !gridStartOk(g, isNode, start) {
		return Route[Pt]{}, false
	}
	return Dijkstra(start, func(p Pt) bool { return p == goal }, gridNext(g, isNode, edgeCost, nil))
}

// AStarGrid is DijkstraGrid with a Manhattan heuristic. The heuristic
// assumes every edge costs at least 1; if the search meets a cheaper edge
// it is redone without the heuristic.
func AStarGrid[T any](g Grid[T], isNode IsNodeFunc[T], edgeCost EdgeCostFunc[T], start, goal Pt) (Route[Pt], bool) {
	if !gridStartOk(g, isNode, start) {
		return Route[Pt]{}, false
	}
	var sawCheap bool
	r, ok := AStar(start, func(p Pt) bool { return p == goal },
		gridNext(g, isNode, edgeCost, &sawCheap),
		func(p Pt) int64 { return int64(p.MDist(goal)) })
	if sawCheap {
		return DijkstraGrid(g, isNode, edgeCost, start, goal)
	}
	return r, ok
}
