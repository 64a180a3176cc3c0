package aocgrid

// GraphOptions configures ToGraph.
type GraphOptions struct {
	// Conn is Conn4 or Conn8. The zero value means Conn4.
	Conn Conn
	// Directed makes ToGraph ask edgeCost about each direction
	// separately.
	Directed bool
}

// ToGraph converts g into a graph whose nodes are exactly the cells
// accepted by isNode. For each pair of neighbouring nodes an edge is
// added iff edgeCost returns true. Undirected graphs ask edgeCost once per
// pair, from the smaller point (Pt.Compare) to the larger.
func ToGraph[T any](g Grid[T], isNode IsNodeFunc[T], edgeCost EdgeCostFunc[T], opts GraphOptions) *Graph[Pt] {
	conn := opts.Conn
	if conn != Conn8 {
		conn = Conn4
	}
	out := NewGraph[Pt](opts.Directed)
	g.ForCells(func(p Pt, v T) bool {
		if !isNode(p, v) {
			return true
		}
		out.AddNode(p)
		ForNeighborsIn(g, p, conn, func(q Pt, w T) bool {
			if !isNode(q, w) || (!opts.Directed && !p.Less(q)) {
				return true
			}
			if c, ok := edgeCost(p, v, q, w); ok {
				out.AddEdge(p, q, c)
			}
			return true
		})
		return true
	})
	return out
}

// UnitCost is an EdgeCostFunc where every move costs 1.
func UnitCost[T any](_ Pt, _ T, _ Pt, _ T) (int64, bool) {
	return 1, true
}

// IsNot returns an IsNodeFunc accepting every cell not equal to wall.
func IsNot[T comparable](wall T) IsNodeFunc[T] {
	return func(_ Pt, v T) bool { return v != wall }
}

// Is returns an IsNodeFunc accepting cells equal to one of vs.
func Is[T comparable](vs ...T) IsNodeFunc[T] {
	return func(_ Pt, v T) bool {
		for _, x := range vs {
			if v == x {
				return true
			}
		}
		return false
	}
}
