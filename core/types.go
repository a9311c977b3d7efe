// Package core defines the Graph type used by the path-counting solvers,
// and provides thread-safe primitives for building and querying it.
//
// Vertices are identified by non-empty strings. Edges are unweighted and
// carry no identity of their own: a pair of vertices is either joined or not.
//
// This file declares Graph, GraphOption, sentinel errors, and the NewGraph
// constructor.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrLoopNotAllowed - self-loop when loops are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether edges are one-way (true) or mirrored (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is a simple in-memory graph over string vertex IDs.
//
// Adding an edge that already exists is a no-op, so at most one edge joins
// any ordered pair (one unordered pair when undirected).
// mu guards every field below it.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	directed   bool
	allowLoops bool

	// adjacency[from][to] = struct{}{}; undirected edges are stored both ways.
	adjacency map[string]map[string]struct{}
	edgeCount int
}

// NewGraph creates an empty Graph with the given options.
// By default, the Graph is undirected and rejects self-loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }
