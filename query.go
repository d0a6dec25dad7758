// Package geo3 provides 3D geometry primitives and proximity queries.
//
// This file implements a fluent query API over segment collections.
package geo3

import (
	"context"
	"iter"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Query creates a new fluent query builder probing with the given segment.
//
// Example:
//
//	results, err := col.Query(probe).
//	    K(10).
//	    Execute(ctx)
//
//	// Or with streaming:
//	for result, err := range col.Query(probe).K(100).Stream(ctx) {
//	    if err != nil { break }
//	    if result.Distance > threshold { break }
//	    process(result)
//	}
func (c *Collection[T]) Query(probe Segment) *QueryBuilder[T] {
	return &QueryBuilder[T]{
		c:     c,
		probe: probe,
		k:     10, // Default k
	}
}

// QueryAt creates a fluent query builder probing from a single point.
// It is equivalent to Query with a degenerate probe segment.
func (c *Collection[T]) QueryAt(probe Point) *QueryBuilder[T] {
	return c.Query(NewSegment(probe, probe))
}

// QueryBuilder is a fluent builder for constructing proximity queries.
type QueryBuilder[T any] struct {
	c     *Collection[T]
	probe Segment
	k     int

	radius    float64
	hasRadius bool

	// Filters
	filter FilterFunc[T]
	ids    *roaring64.Bitmap
}

// K sets the number of nearest segments to return.
func (qb *QueryBuilder[T]) K(k int) *QueryBuilder[T] {
	qb.k = k
	return qb
}

// Within switches the query to radius mode: Execute returns every stored
// segment whose distance to the probe is at most radius instead of the k
// nearest.
func (qb *QueryBuilder[T]) Within(radius float64) *QueryBuilder[T] {
	qb.radius = radius
	qb.hasRadius = true
	return qb
}

// Filter sets a filter predicate for query candidates.
// Only entries where fn returns true are considered.
func (qb *QueryBuilder[T]) Filter(fn FilterFunc[T]) *QueryBuilder[T] {
	qb.filter = fn
	return qb
}

// WhereIDs restricts candidates to the given allow-list of IDs.
func (qb *QueryBuilder[T]) WhereIDs(ids *roaring64.Bitmap) *QueryBuilder[T] {
	qb.ids = ids
	return qb
}

// Execute runs the query and returns the results.
func (qb *QueryBuilder[T]) Execute(ctx context.Context) ([]Result[T], error) {
	if qb.hasRadius {
		return qb.c.WithinRadius(ctx, qb.probe, qb.radius, qb.apply)
	}
	return qb.c.Nearest(ctx, qb.probe, qb.k, qb.apply)
}

// MustExecute runs the query, panicking on error.
// Use this only in tests or when you're certain the query is valid.
func (qb *QueryBuilder[T]) MustExecute(ctx context.Context) []Result[T] {
	results, err := qb.Execute(ctx)
	if err != nil {
		panic(err)
	}
	return results
}

// Stream returns an iterator over query results for memory-efficient
// processing. Results are yielded in order from nearest to farthest.
// The iterator supports early termination by breaking from the loop.
func (qb *QueryBuilder[T]) Stream(ctx context.Context) iter.Seq2[Result[T], error] {
	if qb.hasRadius {
		return func(yield func(Result[T], error) bool) {
			results, err := qb.Execute(ctx)
			if err != nil {
				yield(Result[T]{}, err)
				return
			}
			for _, result := range results {
				if !yield(result, nil) {
					return
				}
			}
		}
	}
	return qb.c.NearestStream(ctx, qb.probe, qb.k, qb.apply)
}

// First returns only the nearest result, or ErrNotFound if none matched.
func (qb *QueryBuilder[T]) First(ctx context.Context) (Result[T], error) {
	if !qb.hasRadius {
		qb.k = 1
	}
	results, err := qb.Execute(ctx)
	if err != nil {
		return Result[T]{}, err
	}
	if len(results) == 0 {
		return Result[T]{}, ErrNotFound
	}
	return results[0], nil
}

// Count executes the query and returns the number of results.
func (qb *QueryBuilder[T]) Count(ctx context.Context) (int, error) {
	results, err := qb.Execute(ctx)
	if err != nil {
		return 0, err
	}
	return len(results), nil
}

// Exists checks if at least one stored segment matches the query.
func (qb *QueryBuilder[T]) Exists(ctx context.Context) (bool, error) {
	if !qb.hasRadius {
		qb.k = 1
	}
	results, err := qb.Execute(ctx)
	if err != nil {
		return false, err
	}
	return len(results) > 0, nil
}

func (qb *QueryBuilder[T]) apply(o *QueryOptions[T]) {
	if qb.filter != nil {
		o.Filter = qb.filter
	}
	if qb.ids != nil {
		o.IDs = qb.ids
	}
}
