// Package matching solves maximum weight matching on general undirected
// graphs with Galil's O(V³) blossom algorithm, in the array-based layout
// popularized by Van Rantwijk's reference implementation.
//
// Vertices are dense ints 0..n-1 and blossoms occupy n..2n-1, so every
// per-node attribute is a flat slice. The solver runs in stages: each stage
// grows alternating trees from free vertices, shrinks odd cycles into
// blossoms, adjusts LP dual variables when progress stalls, and finishes by
// augmenting along the discovered path. MaxCardinality mode forbids the
// dual adjustment that would leave vertices exposed, which forces a perfect
// matching whenever one exists.
package matching
