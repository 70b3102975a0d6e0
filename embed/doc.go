// Package embed derives and manipulates combinatorial planar embeddings of
// core.Graph multigraphs: rotation systems from 2D coordinates, face tracing,
// plane triangulation, and the expanded dual the Kasteleyn stages operate on.
//
// A rotation system is, per vertex, the cyclic counterclockwise order of its
// incident edges under a fixed crossing-free drawing. Everything downstream
// of FromCoordinates is purely combinatorial: faces are traced by following,
// from each directed edge, the next edge after its reverse in the head
// vertex's rotation ("face on the left"; bounded faces come out
// counterclockwise).
//
// PlaneTriangulate inserts zero-weight chords until every face - including
// the unbounded one - is bounded by exactly three edges, splicing each chord
// into the rotation system locally so the embedding stays valid. It is
// idempotent on already-triangulated input and never removes original
// vertices or edges.
//
// ExpandedDual builds the graph whose perfect matchings enumerate even
// subgraphs of the planar dual: one node per directed edge (arc) of the
// triangulated graph, one "long" connection between the two arcs of every
// edge, and a triangle gadget inside every face. The Kasteleyn matrix and
// the ground-state matching are both defined on this structure.
//
// Correctness assumption (not verified, see the pipeline contract): the
// supplied coordinates must describe a crossing-free drawing of the graph.
// Violations are not detected here; they surface as incorrect results or
// invariant failures downstream.
package embed
