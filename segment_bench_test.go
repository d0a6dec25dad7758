package geo3_test

import (
	"testing"

	"github.com/hupe1980/geo3"
)

func BenchmarkClosestDistanceSkew(b *testing.B) {
	b.ReportAllocs()

	s1 := geo3.NewSegment(geo3.NewPoint(0, 0, 0), geo3.NewPoint(5, 0, 0))
	s2 := geo3.NewSegment(geo3.NewPoint(2, -2, 1), geo3.NewPoint(2, 2, 1))

	var sink float64
	b.ResetTimer()
	for b.Loop() {
		sink = geo3.ClosestDistance(s1, s2)
	}
	_ = sink
}

func BenchmarkClosestDistanceParallel(b *testing.B) {
	b.ReportAllocs()

	s1 := geo3.NewSegment(geo3.NewPoint(0, 0, 0), geo3.NewPoint(5, 0, 0))
	s2 := geo3.NewSegment(geo3.NewPoint(0, 3, 1), geo3.NewPoint(5, 3, 1))

	var sink float64
	b.ResetTimer()
	for b.Loop() {
		sink = geo3.ClosestDistance(s1, s2)
	}
	_ = sink
}

func BenchmarkClosestDistanceDegenerate(b *testing.B) {
	b.ReportAllocs()

	s1 := geo3.NewSegment(geo3.NewPoint(2, 5, 0), geo3.NewPoint(2, 5, 0))
	s2 := geo3.NewSegment(geo3.NewPoint(0, 0, 0), geo3.NewPoint(10, 0, 0))

	var sink float64
	b.ResetTimer()
	for b.Loop() {
		sink = geo3.ClosestDistance(s1, s2)
	}
	_ = sink
}

func BenchmarkClosestPoints(b *testing.B) {
	b.ReportAllocs()

	s1 := geo3.NewSegment(geo3.NewPoint(0, 0, 0), geo3.NewPoint(5, 0, 0))
	s2 := geo3.NewSegment(geo3.NewPoint(2, -2, 1), geo3.NewPoint(2, 2, 1))

	var sink geo3.Point
	b.ResetTimer()
	for b.Loop() {
		sink, _ = geo3.ClosestPoints(s1, s2)
	}
	_ = sink
}

func BenchmarkSegmentDistanceTo(b *testing.B) {
	b.ReportAllocs()

	s := geo3.NewSegment(geo3.NewPoint(0, 0, 0), geo3.NewPoint(10, 0, 0))
	p := geo3.NewPoint(3, 5, 0)

	var sink float64
	b.ResetTimer()
	for b.Loop() {
		sink = s.DistanceTo(p)
	}
	_ = sink
}
