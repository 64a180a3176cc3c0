package aocgrid

import (
	"fmt"
	"math"

	"golang.org/x/exp/maps"
)

// Graph is a weighted graph keyed by node. Nodes are added implicitly by
// AddEdge, so a Pt works as a node id without any registry. Undirected
// graphs store every edge in both directions.
type Graph[K comparable] struct {
	Directed bool
	Nodes    map[K]bool
	Edges    map[K]map[K]int64
}

func NewGraph[K comparable](directed bool) *Graph[K] {
	return &Graph[K]{
		Directed: directed,
		Nodes:    make(map[K]bool),
		Edges:    make(map[K]map[K]int64),
	}
}

func (g *Graph[K]) Clone() *Graph[K] {
	out := Graph[K]{Directed: g.Directed}
	out.Nodes = maps.Clone(g.Nodes)
	out.Edges = maps.Clone(g.Edges)
	for k, e := range g.Edges {
		out.Edges[k] = maps.Clone(e)
	}
	return &out
}

// AddNode adds a. Adding an existing node is a no-op.
func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

// AddEdge adds an edge from a to b with weight w, replacing any existing
// one. Undirected graphs also get the edge from b to a.
func (g *Graph[K]) AddEdge(a, b K, w int64) {
	InitMap(&g.Edges)
	g.AddNode(a)
	g.AddNode(b)
	g.addArc(a, b, w)
	if !g.Directed {
		g.addArc(b, a, w)
	}
}

func (g *Graph[K]) addArc(a, b K, w int64) {
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int64)
	}
	g.Edges[a][b] = w
}

func (g *Graph[K]) RemoveEdge(a, b K) {
	delete(g.Edges[a], b)
	if !g.Directed {
		delete(g.Edges[b], a)
	}
}

// RemoveNode deletes a and every edge touching it.
func (g *Graph[K]) RemoveNode(a K) {
	if g.Directed {
		for _, e := range g.Edges {
			delete(e, a)
		}
	} else {
		for k := range g.Edges[a] {
			delete(g.Edges[k], a)
		}
	}
	delete(g.Edges, a)
	delete(g.Nodes, a)
}

func (g *Graph[K]) HasEdge(a, b K) bool {
	_, ok := g.Edges[a][b]
	return ok
}

// Weight returns the weight of the edge from a to b.
func (g *Graph[K]) Weight(a, b K) (int64, bool) {
	w, ok := g.Edges[a][b]
	return w, ok
}

// Neighbors returns the outgoing edges of a. The map must not be modified.
func (g *Graph[K]) Neighbors(a K) map[K]int64 {
	return g.Edges[a]
}

// NumEdges counts each undirected edge once.
func (g *Graph[K]) NumEdges() int {
	n := 0
	for _, e := range g.Edges {
		n += len(e)
	}
	if !g.Directed {
		n /= 2
	}
	return n
}

// NumPathsWithRestriction counts the paths from start to end where every
// step must satisfy canVisit.
func (g *Graph[K]) NumPathsWithRestriction(start, end K, canVisit func(x K, alreadyVisited map[K]int) bool) int {
	return g.numPathsHelper(start, end, canVisit, make(map[K]int))
}

// NumPaths counts the simple paths from start to end.
func (g *Graph[K]) NumPaths(start, end K) int {
	return g.NumPathsWithRestriction(start, end, func(x K, alreadyVisited map[K]int) bool {
		return alreadyVisited[x] == 0
	})
}

func (g *Graph[K]) numPathsHelper(start, end K, canVisit func(x K, alreadyVisited map[K]int) bool, visited map[K]int) int {
	if start == end {
		return 1
	}
	visited[start]++
	defer func() {
		visited[start]--
	}()
	count := 0
	for k := range g.Edges[start] {
		if canVisit(k, visited) {
			count += g.numPathsHelper(k, end, canVisit, visited)
		}
	}
	return count
}

// AllShortestPaths returns the distance between every ordered pair of
// nodes using Floyd–Warshall. Unconnected pairs map to Unreachable.
func (g *Graph[K]) AllShortestPaths() map[Edge[K]]int64 {
	type key = Edge[K]
	nodes := maps.Keys(g.Nodes)
	dist := make(map[key]int64, len(nodes)*len(nodes))
	for _, a := range nodes {
		for _, b := range nodes {
			switch w, ok := g.Edges[a][b]; {
			case a == b:
				dist[key{a, b}] = 0
			case ok:
				dist[key{a, b}] = w
			default:
				dist[key{a, b}] = Unreachable
			}
		}
	}
	for _, via := range nodes {
		for _, a := range nodes {
			av := dist[key{a, via}]
			if av == Unreachable {
				continue
			}
			for _, b := range nodes {
				vb := dist[key{via, b}]
				if vb == Unreachable {
					continue
				}
				if d := av + vb; d < dist[key{a, b}] {
					dist[key{a, b}] = d
				}
			}
		}
	}
	return dist
}

// ReachableNodes returns every node reachable from a, a included.
func (g *Graph[K]) ReachableNodes(a K) map[K]bool {
	visited := make(map[K]bool)
	q := NewQueue(a)
	q.While(func(v K) bool {
		if visited[v] {
			return true
		}
		visited[v] = true
		for k := range g.Edges[v] {
			q.Push(k)
		}
		return true
	})
	return visited
}

// LongestPath returns the weight of the heaviest simple path from start
// to end. It is exponential; collapse corridors first.
func (g *Graph[K]) LongestPath(start, end K) (rp int64, ok bool) {
	return g.longestPathHelper(start, end, make(map[K]bool))
}

func (g *Graph[K]) longestPathHelper(start, end K, visited map[K]bool) (rp int64, ok bool) {
	if start == end {
		return 0, true
	}

	visited[start] = true
	defer func() {
		visited[start] = false
	}()
	best := int64(-1)
	for k, v := range g.Edges[start] {
		if visited[k] {
			continue
		}
		got, ok := g.longestPathHelper(k, end, visited)
		got += v
		if ok && got > best {
			best = got
		}
	}
	if best != -1 {
		return best, true
	}
	return 0, false
}

// Collapse repeatedly removes nodes with exactly two neighbours, joining
// those neighbours with an edge weighing the sum of the two. Nodes in
// keep are never removed. When the neighbours are already joined the
// cheaper edge wins. It panics on directed graphs.
func (g *Graph[K]) Collapse(keep ...K) {
	if g.Directed {
		panic("Collapse: directed graph")
	}
	pinned := make(map[K]bool, len(keep))
	for _, k := range keep {
		pinned[k] = true
	}
	for {
		trimmed := false
		for k1, e := range g.Edges {
			if len(e) != 2 || pinned[k1] {
				continue
			}
			var ks [2]K
			var ds [2]int64
			i := 0
			for k, d := range e {
				ks[i], ds[i] = k, d
				i++
			}
			if ks[0] == k1 || ks[1] == k1 {
				continue // self loop
			}
			g.RemoveNode(k1)
			w := ds[0] + ds[1]
			if old, ok := g.Weight(ks[0], ks[1]); !ok || w < old {
				g.AddEdge(ks[0], ks[1], w)
			}
			trimmed = true
		}
		if !trimmed {
			return
		}
	}
}

type Edge[T comparable] struct {
	A, B T
}

// MinCut calculates the minimum cut of an undirected graph using the
// Stoer–Wagner algorithm. It returns the edges that make up the cut.
func (g *Graph[T]) MinCut() []Edge[T] {
	if g.Directed {
		panic("MinCut: directed graph")
	}
	if len(g.Nodes) < 2 {
		return nil
	}
	var (
		g2     = g.Clone() // copy of graph to mutate
		start  = AnyKey(g2.Nodes)
		groups = map[T][]T{} // merged node -> original nodes it stands for

		minCut  = int64(math.MaxInt64)
		bestSet []T
	)
	group := func(k T) []T {
		if s, ok := groups[k]; ok {
			return s
		}
		return []T{k}
	}
	for len(g2.Nodes) > 1 {
		s, t, w := g2.minCutPhase(start)
		if w < minCut {
			minCut = w
			bestSet = append([]T(nil), group(t)...)
		}
		groups[s] = append(group(s), group(t)...)
		delete(groups, t)
		g2.merge(s, t)
	}

	side := make(map[T]bool, len(bestSet))
	for _, v := range bestSet {
		side[v] = true
	}
	var cuts []Edge[T]
	var total int64
	for _, v := range bestSet {
		for e, w := range g.Edges[v] {
			if !side[e] {
				cuts = append(cuts, Edge[T]{v, e})
				total += w
			}
		}
	}
	if total != minCut {
		panic(fmt.Sprintf("reconstructed cut weight = %d; want %d", total, minCut))
	}
	return cuts
}

// minCutPhase runs one phase of the min cut algorithm. It returns the last two
// nodes traversed and the weight of the cut.
//
// It is equivalent to running a max flow algorithm from start to any other node
// in the graph.
func (g *Graph[T]) minCutPhase(start T) (s, t T, wOut int64) {
	pq := MaxQueue[T]()
	pris := map[T]*PQI[T]{}
	for k := range g.Nodes {
		i := &PQI[T]{V: k}
		if k == start {
			i.P = math.MaxInt64
		}
		pris[k] = i
		pq.Push(i)
	}

	for pq.Len() > 0 {
		next := pq.Pop()
		for k, v := range g.Edges[next.V] {
			if p := pris[k]; p.Index() != -1 {
				p.P += v
				pq.Update(p)
			}
		}
		s, t = t, next.V
		wOut = next.P
	}
	return
}

func (g *Graph[T]) merge(s, t T) {
	for k, tvk := range g.Edges[t] {
		if k == s {
			continue
		}
		svk := g.Edges[s][k]
		g.AddEdge(s, k, svk+tvk)
	}
	g.RemoveNode(t)
}
