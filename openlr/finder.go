// Package openlr: shortest-path search between two edges.
//
// The search is Dijkstra over edges rather than junctions: a state is an edge
// together with the length accumulated to reach its end, the source edge
// counting as zero. Expanding a state walks the outgoing edges of its end
// junction.
//
// Complexity:
//
//   - Time:  O((V + E) log E) bounded by the length budget, where V and E are
//     the edges and edge transitions reachable within maxLength + LengthSlack.
//   - Space: O(V + E) for the score map, parent links and lazy heap entries.
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: improved states are pushed again and stale entries
//     are ignored on pop by comparing against the best known score.
//   - Heap order is (score, edge) so ties resolve identically on every run.
//   - States beyond the budget are dropped on pop, not on push.
package openlr

import (
	"container/heap"
	"log/slog"
	"slices"

	"github.com/katalvlaran/roadref/roadgraph"
)

// LengthSlack is the margin, in meters, added to the requested maximum path
// length to bound the search.
const LengthSlack = 10.0

// PathFinder finds length-bounded shortest paths between two edges.
type PathFinder struct {
	graph  roadgraph.Graph
	logger *slog.Logger
}

// NewPathFinder returns a PathFinder over g. A nil logger means slog.Default().
func NewPathFinder(g roadgraph.Graph, logger *slog.Logger) *PathFinder {
	if logger == nil {
		logger = slog.Default()
	}

	return &PathFinder{graph: g, logger: logger}
}

// Find returns the shortest path that starts with source and ends with
// target, where the cost of a path is the sum of the lengths of every edge
// after source. Paths whose cost exceeds maxLength + LengthSlack are not
// explored.
//
// The returned sequence begins with source and ends with target; when
// source == target it is that single edge. ok is false if target is not
// reachable within the budget, which is an expected outcome.
//
// frc is accepted for interface stability and does not influence the search.
func (f *PathFinder) Find(source, target roadgraph.Edge, frc FunctionalRoadClass, maxLength float64) (path EdgeSequence, ok bool) {
	r := &searchRunner{
		graph:  f.graph,
		source: source,
		target: target,
		budget: maxLength + LengthSlack,
		scores: map[roadgraph.Edge]float64{source: 0},
		links:  make(map[roadgraph.Edge]roadgraph.Edge),
	}
	heap.Push(&r.pq, searchState{edge: source, score: 0})

	// the source edge costs nothing: its length belongs to the candidate
	path, ok = r.run()
	if !ok {
		f.logger.Debug("no path within budget",
			slog.String("source", source.String()),
			slog.String("target", target.String()),
			slog.Float64("budget", r.budget))
	}

	return path, ok
}

// searchRunner holds the mutable state of one Find call.
type searchRunner struct {
	graph  roadgraph.Graph
	source roadgraph.Edge
	target roadgraph.Edge
	budget float64

	scores map[roadgraph.Edge]float64        // best known score per edge
	links  map[roadgraph.Edge]roadgraph.Edge // edge → predecessor on the best path
	pq     statePQ
}

// run is the main loop. Each popped state is settled at most once.
//
// Complexity: O((V + E) log E) within the budget.
func (r *searchRunner) run() (EdgeSequence, bool) {
	for r.pq.Len() > 0 {
		// 1) Pop the cheapest state
		st := heap.Pop(&r.pq).(searchState)
		u, us := st.edge, st.score

		// 2) Drop states past the length budget
		if us > r.budget {
			continue
		}
		// 3) Skip stale entries superseded by a cheaper push
		if us > r.scores[u] {
			continue
		}
		// 4) Target settled: its score is final
		if u == r.target {
			return r.reconstruct(u), true
		}

		// 5) Relax every edge leaving u's end junction on strict improvement
		for _, e := range r.graph.OutgoingEdges(u.End) {
			eScore := us + e.Length
			if best, seen := r.scores[e]; !seen || best > eScore {
				r.scores[e] = eScore
				r.links[e] = u
				heap.Push(&r.pq, searchState{edge: e, score: eScore})
			}
		}
	}

	return nil, false
}

// reconstruct walks parent links from last back to the source and reverses.
func (r *searchRunner) reconstruct(last roadgraph.Edge) EdgeSequence {
	var path EdgeSequence
	for e := last; e != r.source; e = r.links[e] {
		path = append(path, e)
	}
	path = append(path, r.source)
	slices.Reverse(path)

	return path
}

// searchState is a heap entry: an edge and the cost to reach its end.
type searchState struct {
	edge  roadgraph.Edge
	score float64
}

// statePQ is a min-heap of searchState ordered by (score, edge).
type statePQ []searchState

func (pq statePQ) Len() int { return len(pq) }

func (pq statePQ) Less(i, j int) bool {
	if pq[i].score != pq[j].score {
		return pq[i].score < pq[j].score
	}

	return roadgraph.Compare(pq[i].edge, pq[j].edge) < 0
}

func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *statePQ) Push(x any) { *pq = append(*pq, x.(searchState)) }

func (pq *statePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
