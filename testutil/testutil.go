package testutil

import (
	"math/rand"
	"sort"
	"sync"

	"github.com/hupe1980/geo3"
)

// SearchResult represents a ground-truth search result.
type SearchResult struct {
	ID       uint64
	Distance float64
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformFloat returns a pseudo-random float64 in [minVal, maxVal).
func (r *RNG) UniformFloat(minVal, maxVal float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return minVal + r.rand.Float64()*(maxVal-minVal)
}

// UniformPoint returns a pseudo-random point with each coordinate in
// [minVal, maxVal).
func (r *RNG) UniformPoint(minVal, maxVal float64) geo3.Point {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.uniformPointLocked(minVal, maxVal)
}

// uniformPointLocked is the internal implementation (caller must hold lock).
func (r *RNG) uniformPointLocked(minVal, maxVal float64) geo3.Point {
	span := maxVal - minVal
	return geo3.Point{
		X: minVal + r.rand.Float64()*span,
		Y: minVal + r.rand.Float64()*span,
		Z: minVal + r.rand.Float64()*span,
	}
}

// UniformSegment returns a pseudo-random segment with both endpoints inside
// the cube [minVal, maxVal)^3.
func (r *RNG) UniformSegment(minVal, maxVal float64) geo3.Segment {
	r.mu.Lock()
	defer r.mu.Unlock()
	return geo3.Segment{
		Start: r.uniformPointLocked(minVal, maxVal),
		End:   r.uniformPointLocked(minVal, maxVal),
	}
}

// UniformSegments generates num pseudo-random segments inside the cube
// [minVal, maxVal)^3.
func (r *RNG) UniformSegments(num int, minVal, maxVal float64) []geo3.Segment {
	r.mu.Lock()
	defer r.mu.Unlock()

	segments := make([]geo3.Segment, num)
	for i := range num {
		segments[i] = geo3.Segment{
			Start: r.uniformPointLocked(minVal, maxVal),
			End:   r.uniformPointLocked(minVal, maxVal),
		}
	}

	return segments
}

// UnitVector generates a single L2-normalized random vector.
// Uses Gaussian coordinates for uniform distribution on the sphere.
func (r *RNG) UnitVector() geo3.Vector {
	r.mu.Lock()
	defer r.mu.Unlock()

	for {
		v := geo3.Vector{
			X: r.rand.NormFloat64(),
			Y: r.rand.NormFloat64(),
			Z: r.rand.NormFloat64(),
		}
		if u := v.Normalize(); !u.IsZero() {
			return u
		}
	}
}

// BruteForceNearest performs exact k-nearest search for ground truth.
// Segment IDs are their slice indices. Ties on distance break by ascending
// ID, matching Collection ordering.
func BruteForceNearest(segments []geo3.Segment, probe geo3.Segment, k int) []SearchResult {
	results := make([]SearchResult, len(segments))

	for i, s := range segments {
		results[i] = SearchResult{ID: uint64(i), Distance: geo3.ClosestDistance(probe, s)}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Distance != results[j].Distance {
			return results[i].Distance < results[j].Distance
		}
		return results[i].ID < results[j].ID
	})

	if len(results) > k {
		results = results[:k]
	}

	return results
}
