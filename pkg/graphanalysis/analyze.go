// Package graphanalysis implements the Graph Analyzer (spec §4.9): a pure
// function over an assembled model.Graph that reports cycles (Tarjan's
// SCC), condensation-DAG depth, hub scores, isolated nodes, and unresolved
// specifiers. It holds no state across calls and takes no lock of its
// own — the graph it reads must already be build-complete and read-only,
// per spec §5's "read-only after build" contract.
package graphanalysis

import (
	"sort"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/kestrel-dev/srcmap/pkg/model"
)

// DefaultHubWeightIn and DefaultHubWeightOut are the α_p/α_q coefficients
// from spec §4.9's hub score formula.
const (
	DefaultHubWeightIn  = 1.0
	DefaultHubWeightOut = 0.5
)

// DefaultTopHubs bounds how many hub entries Analyze reports by default.
const DefaultTopHubs = 10

// DepthStats summarizes longest-path depth in the condensation DAG.
type DepthStats struct {
	Max       int
	Mean      float64
	Histogram map[int]int // depth -> node count at that depth
}

// Hub is one node's connectivity score.
type Hub struct {
	NodeID    string
	InDegree  int
	OutDegree int
	Score     float64
}

// Unresolved restates model.UnresolvedSpecifier for the analyzer's own
// report shape, keeping graphanalysis's public surface self-contained.
type Unresolved = model.UnresolvedSpecifier

// Report is everything Analyze derives from a graph.
type Report struct {
	Cycles     [][]string
	Depth      DepthStats
	Hubs       []Hub
	Isolated   []string
	Unresolved []Unresolved
}

// Analyze computes the full structural report for g. It is safe to call
// concurrently on distinct graphs, and on the same graph once building has
// finished (spec P4: cycle detection is correct and unique up to
// rotation).
func Analyze(g *model.Graph) Report {
	ids := g.NodeIDs()
	sccs := tarjanSCCs(g, ids)

	var cycles [][]string
	for _, scc := range sccs {
		if len(scc) >= 2 || selfLoop(g, scc) {
			cycles = append(cycles, canonicalRotation(g, scc))
		}
	}
	sort.Slice(cycles, func(i, j int) bool { return cycles[i][0] < cycles[j][0] })

	inDegree, outDegree := degrees(g, ids)

	return Report{
		Cycles:     cycles,
		Depth:      computeDepth(g, ids, sccs),
		Hubs:       computeHubs(ids, inDegree, outDegree, DefaultTopHubs),
		Isolated:   isolatedNodes(ids, inDegree, outDegree),
		Unresolved: g.Metadata.UnresolvedSpecifiers,
	}
}

func selfLoop(g *model.Graph, scc []string) bool {
	if len(scc) != 1 {
		return false
	}
	for _, e := range g.OutEdges(scc[0]) {
		if e.To == scc[0] {
			return true
		}
	}
	return false
}

// canonicalRotation returns scc's members rotated to start at the
// lexicographically smallest id, so the same cycle always serializes
// identically regardless of discovery order.
func canonicalRotation(g *model.Graph, scc []string) []string {
	if len(scc) <= 1 {
		out := make([]string, len(scc))
		copy(out, scc)
		return out
	}

	members := make(map[string]bool, len(scc))
	for _, id := range scc {
		members[id] = true
	}

	start := scc[0]
	for _, id := range scc {
		if id < start {
			start = id
		}
	}

	ordered := []string{start}
	current := start
	for len(ordered) < len(scc) {
		next := ""
		for _, e := range g.OutEdges(current) {
			if members[e.To] && e.To != current {
				alreadyUsed := false
				for _, o := range ordered {
					if o == e.To {
						alreadyUsed = true
						break
					}
				}
				if !alreadyUsed {
					next = e.To
					break
				}
			}
		}
		if next == "" {
			break
		}
		ordered = append(ordered, next)
		current = next
	}
	return ordered
}

type tarjanState struct {
	index   map[string]int
	lowlink map[string]int
	onStack map[string]bool
	stack   *arraystack.Stack
	counter int
	sccs    [][]string
}

// tarjanSCCs runs Tarjan's strongly-connected-components algorithm with an
// explicit stack (no recursion, so arbitrarily deep graphs cannot overflow
// the goroutine stack).
func tarjanSCCs(g *model.Graph, ids []string) [][]string {
	st := &tarjanState{
		index:   make(map[string]int),
		lowlink: make(map[string]int),
		onStack: make(map[string]bool),
		stack:   arraystack.New(),
	}

	for _, id := range ids {
		if _, seen := st.index[id]; !seen {
			strongConnect(g, id, st)
		}
	}
	return st.sccs
}

type frame struct {
	node     string
	edges    []model.Edge
	edgeIdx  int
}

func strongConnect(g *model.Graph, root string, st *tarjanState) {
	var call []*frame
	push := func(id string) {
		st.index[id] = st.counter
		st.lowlink[id] = st.counter
		st.counter++
		st.stack.Push(id)
		st.onStack[id] = true
		call = append(call, &frame{node: id, edges: g.OutEdges(id)})
	}
	push(root)

	for len(call) > 0 {
		top := call[len(call)-1]
		if top.edgeIdx < len(top.edges) {
			e := top.edges[top.edgeIdx]
			top.edgeIdx++
			w := e.To
			if _, seen := st.index[w]; !seen {
				push(w)
			} else if st.onStack[w] {
				if st.index[w] < st.lowlink[top.node] {
					st.lowlink[top.node] = st.index[w]
				}
			}
			continue
		}

		call = call[:len(call)-1]
		if len(call) > 0 {
			parent := call[len(call)-1]
			if st.lowlink[top.node] < st.lowlink[parent.node] {
				st.lowlink[parent.node] = st.lowlink[top.node]
			}
		}

		if st.lowlink[top.node] == st.index[top.node] {
			var scc []string
			for {
				v, _ := st.stack.Pop()
				id := v.(string)
				st.onStack[id] = false
				scc = append(scc, id)
				if id == top.node {
					break
				}
			}
			st.sccs = append(st.sccs, scc)
		}
	}
}

func degrees(g *model.Graph, ids []string) (map[string]int, map[string]int) {
	in := make(map[string]int, len(ids))
	out := make(map[string]int, len(ids))
	for _, id := range ids {
		out[id] = len(g.OutEdges(id))
		for _, e := range g.OutEdges(id) {
			in[e.To]++
		}
	}
	return in, out
}

func computeHubs(ids []string, in, out map[string]int, topK int) []Hub {
	hubs := make([]Hub, 0, len(ids))
	for _, id := range ids {
		score := DefaultHubWeightIn*float64(in[id]) + DefaultHubWeightOut*float64(out[id])
		hubs = append(hubs, Hub{NodeID: id, InDegree: in[id], OutDegree: out[id], Score: score})
	}
	sort.Slice(hubs, func(i, j int) bool {
		if hubs[i].Score != hubs[j].Score {
			return hubs[i].Score > hubs[j].Score
		}
		return hubs[i].NodeID < hubs[j].NodeID
	})
	if topK > 0 && len(hubs) > topK {
		hubs = hubs[:topK]
	}
	return hubs
}

func isolatedNodes(ids []string, in, out map[string]int) []string {
	var isolated []string
	for _, id := range ids {
		if in[id] == 0 && out[id] == 0 {
			isolated = append(isolated, id)
		}
	}
	return isolated
}

// computeDepth builds the SCC condensation DAG and returns the longest
// path from each node to any leaf (a node with no outgoing condensed
// edges), matching spec §4.9's "depth = longest path to any leaf" metric.
func computeDepth(g *model.Graph, ids []string, sccs [][]string) DepthStats {
	componentOf := make(map[string]int, len(ids))
	for i, scc := range sccs {
		for _, id := range scc {
			componentOf[id] = i
		}
	}

	condensedOut := make(map[int]map[int]bool, len(sccs))
	for _, id := range ids {
		cu := componentOf[id]
		for _, e := range g.OutEdges(id) {
			cv := componentOf[e.To]
			if cv == cu {
				continue
			}
			if condensedOut[cu] == nil {
				condensedOut[cu] = make(map[int]bool)
			}
			condensedOut[cu][cv] = true
		}
	}

	memo := make(map[int]int, len(sccs))
	var depthOf func(c int, visiting map[int]bool) int
	depthOf = func(c int, visiting map[int]bool) int {
		if d, ok := memo[c]; ok {
			return d
		}
		if visiting[c] {
			return 0
		}
		visiting[c] = true
		best := 0
		for next := range condensedOut[c] {
			d := 1 + depthOf(next, visiting)
			if d > best {
				best = d
			}
		}
		visiting[c] = false
		memo[c] = best
		return best
	}

	histogram := make(map[int]int)
	total := 0
	maxDepth := 0
	for i := range sccs {
		d := depthOf(i, make(map[int]bool))
		histogram[d] += len(sccs[i])
		total += d * len(sccs[i])
		if d > maxDepth {
			maxDepth = d
		}
	}

	mean := 0.0
	if len(ids) > 0 {
		mean = float64(total) / float64(len(ids))
	}

	return DepthStats{Max: maxDepth, Mean: mean, Histogram: histogram}
}
