// Package core: Graph method implementations.
//
// This file provides the vertex and edge management operations on the Graph
// type defined in types.go. Adjacency is stored as a nested map:
// adjacency[from][to][edgeID] = struct{}{}, mirrored both ways, allowing
// constant-time existence checks and insertion of parallel edges.

package core

import (
	"fmt"
	"sort"
)

const edgeIDPrefix = "e"

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	// Validate input: empty IDs are not allowed
	if id == "" {
		return ErrEmptyVertexID
	}
	// No-op for existing vertex
	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id}
	// Initialize adjacency entry for this vertex
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]map[string]struct{})
	}

	return nil
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	_, exists := g.vertices[id]

	return exists
}

// Vertices returns all vertex IDs sorted lexicographically ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	return len(g.vertices)
}

// AddEdge creates a new undirected edge between from and to with the given
// weight and returns its unique Edge.ID. Parallel edges are permitted and
// remain distinct entities; self-loops are rejected. Missing endpoints are
// created implicitly.
// Returns ErrEmptyVertexID or ErrLoopNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	// 2) Loop constraint
	if from == to {
		return "", ErrLoopNotAllowed
	}
	// 3) Ensure both endpoints exist (idempotent)
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	// 4) Generate a new Edge.ID
	g.nextEdgeID++
	eid := fmt.Sprintf("%s%d", edgeIDPrefix, g.nextEdgeID)

	// 5) Store in the global map and mirror into adjacency both ways
	e := &Edge{ID: eid, From: from, To: to, Weight: weight}
	g.edges[eid] = e
	g.ensureAdjMap(from, to)
	g.adjacency[from][to][eid] = struct{}{}
	g.ensureAdjMap(to, from)
	g.adjacency[to][from][eid] = struct{}{}

	return eid, nil
}

// Edge returns the edge with the given ID.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) Edge(eid string) (*Edge, error) {
	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges sorted by Edge.ID ascending.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	es := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		es = append(es, e)
	}
	sort.Slice(es, func(i, j int) bool { return es[i].ID < es[j].ID })

	return es
}

// EdgeCount returns the number of edges (parallel edges counted separately).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// HasEdge reports true if at least one edge between from and to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	inner, ok := g.adjacency[from][to]

	return ok && len(inner) > 0
}

// Neighbors returns all edges incident to the given vertex, sorted by
// Edge.ID ascending. Each parallel edge appears once; use Edge.Other(id) for
// the opposite endpoint. Returned pointers reference live catalog edges and
// must be treated as read-only.
// Returns ErrEmptyVertexID or ErrVertexNotFound.
// Complexity: O(d log d) where d is the vertex degree.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, bucket := range g.adjacency[id] {
		for eid := range bucket {
			out = append(out, g.edges[eid])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// Degree returns the number of edges incident to the given vertex, counting
// parallel edges separately.
// Returns ErrEmptyVertexID or ErrVertexNotFound.
// Complexity: O(u) where u is the number of distinct neighbors.
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}
	d := 0
	for _, bucket := range g.adjacency[id] {
		d += len(bucket)
	}

	return d, nil
}

// TotalWeight returns the sum of all edge weights.
// Complexity: O(E).
func (g *Graph) TotalWeight() float64 {
	var sum float64
	for _, e := range g.edges {
		sum += e.Weight
	}

	return sum
}

// Clone returns a deep copy of the Graph: vertices, edges, and adjacency are
// all duplicated, and the edge ID generator continues from the same point so
// clones stay deterministic.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := NewGraph()
	c.nextEdgeID = g.nextEdgeID
	for id := range g.vertices {
		c.vertices[id] = &Vertex{ID: id}
		c.adjacency[id] = make(map[string]map[string]struct{})
	}
	for eid, e := range g.edges {
		dup := *e
		c.edges[eid] = &dup
		c.ensureAdjMap(e.From, e.To)
		c.adjacency[e.From][e.To][eid] = struct{}{}
		c.ensureAdjMap(e.To, e.From)
		c.adjacency[e.To][e.From][eid] = struct{}{}
	}

	return c
}

// ensureAdjMap lazily initializes the nested adjacency bucket from→to.
func (g *Graph) ensureAdjMap(from, to string) {
	if _, ok := g.adjacency[from]; !ok {
		g.adjacency[from] = make(map[string]map[string]struct{})
	}
	if _, ok := g.adjacency[from][to]; !ok {
		g.adjacency[from][to] = make(map[string]struct{})
	}
}
