// Package geo3 provides 3D geometry primitives for Go.
//
// Geo3 implements points, vectors and line segments in three-dimensional
// Euclidean space, centered on exact closest-distance computation between
// segments, plus an in-memory collection for proximity queries over stored
// segments.
//
// # Quick Start
//
// Primitives:
//
//	a := geo3.NewSegment(geo3.NewPoint(0, 0, 0), geo3.NewPoint(5, 0, 0))
//	b := geo3.NewSegment(geo3.NewPoint(2, -2, 0), geo3.NewPoint(2, 2, 0))
//
//	d := geo3.ClosestDistance(a, b)          // 0, the segments intersect
//	p1, p2 := geo3.ClosestPoints(a, b)       // witness points, one per segment
//
// Collections:
//
//	ctx := context.Background()
//	col := geo3.NewCollection[string]()
//
//	id := col.Insert(ctx, a, "runway")
//	results, _ := col.Nearest(ctx, b, 10)
//	for _, r := range results {
//	    fmt.Println(r.ID, r.Distance, r.Data)
//	}
//
// # Tolerances
//
// Every comparison that needs a tolerance has two forms: a default form
// using Epsilon and a ...Within form taking an explicit tolerance:
//
//	geo3.ClosestDistance(a, b)                  // uses geo3.Epsilon
//	geo3.ClosestDistanceWithin(a, b, 1e-9)      // explicit tolerance
//
// Collections thread a tolerance through all queries via WithTolerance.
//
// # Degenerate Segments
//
// A segment whose endpoints coincide (within tolerance) behaves exactly
// like a point: closest-distance computations against it agree with the
// point-to-segment and point-to-point distances.
//
// # Text Format
//
// Points serialize as "Point[x, y, z]" via String and parse from three
// whitespace-separated coordinates via ParsePoint and ReadPoint. Parsing
// is strict: malformed input yields a zero Point and an error.
//
// # Key Features
//
//   - Exact closest distance between segments, no iteration
//   - Witness points realizing the minimum distance
//   - Degenerate segments handled as points
//   - Generic collection with k-nearest and radius queries
//   - Optional sharded scans for large collections
package geo3
