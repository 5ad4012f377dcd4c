package csr

import (
	"errors"
	"math"
)

// Sentinel errors for element-store construction.
var (
	// ErrInvalidGraph indicates malformed input: a negative vertex count,
	// or an edge endpoint outside [0, NumVertices).
	ErrInvalidGraph = errors.New("csr: invalid graph input")

	// ErrAllocation indicates an element store was requested with negative
	// vertex or edge dimensions.
	ErrAllocation = errors.New("csr: element store allocation out of range")
)

// Erased marks an edge column slot whose edge has been contracted away.
// All four edge columns (key, dst, weight, origin) carry it together.
const Erased int64 = -1

// Unclaimed is the claim-lock value meaning "no vertex has won this slot yet".
// Vertex ids are dense and non-negative, so no valid id collides with it.
// A lock transitions from Unclaimed to the owning vertex id exactly once per
// round and never reverts.
const Unclaimed int64 = -1

// NoEdgeWeight is the minimum-incident-weight assigned to a vertex with no
// incident edges. No real edge weight equals it, so such a vertex never
// claims a successor and roots itself.
const NoEdgeWeight int64 = math.MaxInt64

// WeightedEdge is one undirected input edge U—V with weight W.
// Endpoints are dense vertex indices in [0, NumVertices).
type WeightedEdge struct {
	U, V int
	W    int64
}
