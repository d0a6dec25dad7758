// Package geo3 provides 3D geometry primitives and proximity queries.
//
// This file implements the segment collection and its query surface.
package geo3

import (
	"context"
	"fmt"
	"iter"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/geo3/internal/queue"
)

// minParallelScan is the candidate count below which sharded scans are not
// worth the merge overhead and queries stay on the calling goroutine.
const minParallelScan = 1024

// entry pairs a stored segment with its caller data.
type entry[T any] struct {
	segment Segment
	data    T
}

// Collection is an in-memory, concurrency-safe store of segments with
// attached data of type T, queried by proximity. Lookups scan linearly, so
// results are exact; there is no spatial index.
type Collection[T any] struct {
	mu      sync.RWMutex
	entries map[uint64]entry[T]
	live    *roaring64.Bitmap
	nextID  uint64

	tolerance   float64
	parallelism int
	metrics     MetricsCollector
	logger      *Logger
}

// NewCollection creates an empty Collection.
func NewCollection[T any](optFns ...Option) *Collection[T] {
	opts := applyOptions(optFns)

	return &Collection[T]{
		entries:     make(map[uint64]entry[T]),
		live:        roaring64.New(),
		tolerance:   opts.tolerance,
		parallelism: opts.parallelism,
		metrics:     opts.metricsCollector,
		logger:      opts.logger,
	}
}

// Insert stores a segment with its data and returns the assigned ID.
// IDs are monotonically increasing and never reused.
func (c *Collection[T]) Insert(ctx context.Context, seg Segment, data T) uint64 {
	start := time.Now()

	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.entries[id] = entry[T]{segment: seg, data: data}
	c.live.Add(id)
	c.mu.Unlock()

	c.metrics.RecordInsert(time.Since(start))
	c.logger.LogInsert(ctx, id)
	return id
}

// BatchInsert stores several segments under a single lock acquisition and
// returns their IDs in input order. segments and data must have the same
// length.
func (c *Collection[T]) BatchInsert(ctx context.Context, segments []Segment, data []T) ([]uint64, error) {
	start := time.Now()

	if len(segments) != len(data) {
		err := fmt.Errorf("geo3: %w: %d segments, %d data values", ErrLengthMismatch, len(segments), len(data))
		c.logger.LogBatchInsert(ctx, len(segments), err)
		return nil, err
	}

	c.mu.Lock()
	ids := make([]uint64, len(segments))
	for i, seg := range segments {
		id := c.nextID
		c.nextID++
		c.entries[id] = entry[T]{segment: seg, data: data[i]}
		c.live.Add(id)
		ids[i] = id
	}
	c.mu.Unlock()

	c.metrics.RecordBatchInsert(len(segments), time.Since(start))
	c.logger.LogBatchInsert(ctx, len(segments), nil)
	return ids, nil
}

// Get retrieves a stored segment and its data by ID.
func (c *Collection[T]) Get(id uint64) (Segment, T, error) {
	c.mu.RLock()
	ent, ok := c.entries[id]
	c.mu.RUnlock()

	if !ok {
		var zero T
		return Segment{}, zero, ErrNotFound
	}
	return ent.segment, ent.data, nil
}

// Update replaces the segment and data stored under id.
func (c *Collection[T]) Update(ctx context.Context, id uint64, seg Segment, data T) error {
	start := time.Now()

	c.mu.Lock()
	_, ok := c.entries[id]
	if ok {
		c.entries[id] = entry[T]{segment: seg, data: data}
	}
	c.mu.Unlock()

	var err error
	if !ok {
		err = ErrNotFound
	}
	c.metrics.RecordUpdate(time.Since(start), err)
	c.logger.LogUpdate(ctx, id, err)
	return err
}

// Delete removes the segment stored under id.
func (c *Collection[T]) Delete(ctx context.Context, id uint64) error {
	start := time.Now()

	c.mu.Lock()
	_, ok := c.entries[id]
	if ok {
		delete(c.entries, id)
		c.live.Remove(id)
	}
	c.mu.Unlock()

	var err error
	if !ok {
		err = ErrNotFound
	}
	c.metrics.RecordDelete(time.Since(start), err)
	c.logger.LogDelete(ctx, id, err)
	return err
}

// Len returns the number of stored segments.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Result is a single proximity query hit.
type Result[T any] struct {
	// ID is the stored segment's collection ID.
	ID uint64

	// Distance is the closest distance between the probe and Segment.
	Distance float64

	// Segment is the stored segment.
	Segment Segment

	// Data is the associated data of the stored segment.
	Data T
}

// FilterFunc is a predicate over stored entries used for filtering query
// candidates.
type FilterFunc[T any] func(id uint64, seg Segment, data T) bool

// QueryOptions contains options for proximity queries.
type QueryOptions[T any] struct {
	// Filter keeps only entries for which it returns true.
	Filter FilterFunc[T]

	// IDs restricts candidates to the given allow-list, intersected with
	// the live set. nil means no restriction. The bitmap is not retained
	// after the query returns.
	IDs *roaring64.Bitmap
}

// Nearest returns the k stored segments closest to the probe segment,
// ordered by ascending distance with ties broken by ascending ID. Fewer
// than k results are returned when the collection (after filtering) is
// smaller than k.
func (c *Collection[T]) Nearest(ctx context.Context, probe Segment, k int, optFns ...func(o *QueryOptions[T])) ([]Result[T], error) {
	start := time.Now()

	dist := func(s Segment) float64 {
		return ClosestDistanceWithin(probe, s, c.tolerance)
	}
	results, err := c.nearest(ctx, dist, k, applyQueryOptions(optFns))

	c.metrics.RecordQuery(k, time.Since(start), err)
	c.logger.LogQuery(ctx, k, len(results), err)
	return results, err
}

// NearestToPoint returns the k stored segments closest to the probe point.
// It is equivalent to Nearest with a degenerate probe segment, minus the
// degenerate-segment bookkeeping.
func (c *Collection[T]) NearestToPoint(ctx context.Context, probe Point, k int, optFns ...func(o *QueryOptions[T])) ([]Result[T], error) {
	start := time.Now()

	dist := func(s Segment) float64 {
		return s.DistanceToWithin(probe, c.tolerance)
	}
	results, err := c.nearest(ctx, dist, k, applyQueryOptions(optFns))

	c.metrics.RecordQuery(k, time.Since(start), err)
	c.logger.LogQuery(ctx, k, len(results), err)
	return results, err
}

// NearestStream returns an iterator over the k nearest stored segments.
// Results are yielded in order from nearest to farthest. The iterator
// supports early termination - stop iterating to cancel.
//
// Example:
//
//	for result, err := range col.NearestStream(ctx, probe, 100) {
//	    if err != nil {
//	        return err
//	    }
//	    if result.Distance > threshold {
//	        break // Early termination
//	    }
//	    process(result)
//	}
func (c *Collection[T]) NearestStream(ctx context.Context, probe Segment, k int, optFns ...func(o *QueryOptions[T])) iter.Seq2[Result[T], error] {
	return func(yield func(Result[T], error) bool) {
		results, err := c.Nearest(ctx, probe, k, optFns...)
		if err != nil {
			yield(Result[T]{}, err)
			return
		}

		for _, result := range results {
			if !yield(result, nil) {
				return // Early termination
			}
		}
	}
}

// WithinRadius returns all stored segments whose closest distance to the
// probe is at most radius, ordered by ascending distance with ties broken
// by ascending ID.
func (c *Collection[T]) WithinRadius(ctx context.Context, probe Segment, radius float64, optFns ...func(o *QueryOptions[T])) ([]Result[T], error) {
	start := time.Now()

	results, err := c.withinRadius(ctx, probe, radius, applyQueryOptions(optFns))

	c.metrics.RecordRadiusQuery(time.Since(start), err)
	c.logger.LogRadiusQuery(ctx, radius, len(results), err)
	return results, err
}

func (c *Collection[T]) withinRadius(ctx context.Context, probe Segment, radius float64, opts QueryOptions[T]) ([]Result[T], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if math.IsNaN(radius) || radius < 0 {
		return nil, ErrInvalidRadius
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []Result[T]
	for _, id := range c.candidateIDs(opts.IDs) {
		ent, ok := c.entries[id]
		if !ok {
			continue
		}
		if opts.Filter != nil && !opts.Filter(id, ent.segment, ent.data) {
			continue
		}
		d := ClosestDistanceWithin(probe, ent.segment, c.tolerance)
		if d <= radius {
			out = append(out, Result[T]{ID: id, Distance: d, Segment: ent.segment, Data: ent.data})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// nearest runs the top-k scan shared by Nearest and NearestToPoint.
func (c *Collection[T]) nearest(ctx context.Context, dist func(Segment) float64, k int, opts QueryOptions[T]) ([]Result[T], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if k <= 0 {
		return nil, ErrInvalidK
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	candidates := c.candidateIDs(opts.IDs)
	if len(candidates) == 0 {
		return nil, nil
	}

	actualK := min(k, len(candidates))

	var top *queue.PriorityQueue
	if c.parallelism > 1 && len(candidates) >= minParallelScan {
		var err error
		top, err = c.scanSharded(ctx, candidates, dist, actualK, opts.Filter)
		if err != nil {
			return nil, err
		}
	} else {
		top = c.scanTopK(candidates, dist, actualK, opts.Filter)
	}

	results := make([]Result[T], top.Len())
	for i := top.Len() - 1; i >= 0; i-- {
		item, _ := top.PopItem()
		ent := c.entries[item.ID]
		results[i] = Result[T]{ID: item.ID, Distance: item.Distance, Segment: ent.segment, Data: ent.data}
	}
	return results, nil
}

// scanTopK performs the linear top-k scan over the given candidate IDs.
// The caller must hold at least a read lock.
func (c *Collection[T]) scanTopK(ids []uint64, dist func(Segment) float64, k int, filter FilterFunc[T]) *queue.PriorityQueue {
	top := queue.NewMax(k)

	for _, id := range ids {
		ent, ok := c.entries[id]
		if !ok {
			continue
		}
		if filter != nil && !filter(id, ent.segment, ent.data) {
			continue
		}

		d := dist(ent.segment)

		if top.Len() < k {
			top.PushItem(queue.PriorityQueueItem{ID: id, Distance: d})
			continue
		}

		largest, _ := top.TopItem()
		if itemLess(d, id, largest) {
			top.PopItem()
			top.PushItem(queue.PriorityQueueItem{ID: id, Distance: d})
		}
	}

	return top
}

// scanSharded splits the candidate IDs across goroutines, computes a
// per-shard top-k and merges the shard heaps. Results are identical to
// scanTopK since the (distance, ID) ordering is total.
func (c *Collection[T]) scanSharded(ctx context.Context, ids []uint64, dist func(Segment) float64, k int, filter FilterFunc[T]) (*queue.PriorityQueue, error) {
	shards := min(c.parallelism, len(ids))
	chunk := (len(ids) + shards - 1) / shards
	heaps := make([]*queue.PriorityQueue, shards)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(shards)

	for i := range shards {
		lo := i * chunk
		hi := min(lo+chunk, len(ids))
		if lo >= hi {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			heaps[i] = c.scanTopK(ids[lo:hi], dist, k, filter)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := queue.NewMax(k)
	for _, h := range heaps {
		if h == nil {
			continue
		}
		for {
			item, ok := h.PopItem()
			if !ok {
				break
			}
			if merged.Len() < k {
				merged.PushItem(item)
				continue
			}
			largest, _ := merged.TopItem()
			if itemLess(item.Distance, item.ID, largest) {
				merged.PopItem()
				merged.PushItem(item)
			}
		}
	}
	return merged, nil
}

// candidateIDs returns the live IDs, restricted to the allow-list when one
// is set. The caller must hold at least a read lock.
func (c *Collection[T]) candidateIDs(allow *roaring64.Bitmap) []uint64 {
	bm := c.live
	if allow != nil {
		bm = c.live.Clone()
		bm.And(allow)
	}
	return bm.ToArray()
}

// itemLess reports whether a candidate with the given distance and ID
// ranks ahead of item in the (distance, ID) ordering.
func itemLess(d float64, id uint64, item queue.PriorityQueueItem) bool {
	if d != item.Distance {
		return d < item.Distance
	}
	return id < item.ID
}

func applyQueryOptions[T any](optFns []func(o *QueryOptions[T])) QueryOptions[T] {
	var o QueryOptions[T]
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
