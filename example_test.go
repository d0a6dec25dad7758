package geo3_test

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/hupe1980/geo3"
)

// Example_closestDistance demonstrates the closest distance between two segments.
func Example_closestDistance() {
	// Two segments crossing at (2, 0, 0)
	a := geo3.NewSegment(geo3.NewPoint(0, 0, 0), geo3.NewPoint(5, 0, 0))
	b := geo3.NewSegment(geo3.NewPoint(2, -2, 0), geo3.NewPoint(2, 2, 0))

	fmt.Println(geo3.ClosestDistance(a, b))

	// The same pair lifted one unit along z no longer touches
	c := geo3.NewSegment(geo3.NewPoint(2, -2, 1), geo3.NewPoint(2, 2, 1))

	fmt.Println(geo3.ClosestDistance(a, c))
	// Output:
	// 0
	// 1
}

// Example_closestPoints demonstrates the witness points realizing the minimum distance.
func Example_closestPoints() {
	a := geo3.NewSegment(geo3.NewPoint(0, 0, 0), geo3.NewPoint(5, 0, 0))
	b := geo3.NewSegment(geo3.NewPoint(0, 3, 1), geo3.NewPoint(5, 3, 1))

	p1, p2 := geo3.ClosestPoints(a, b)

	fmt.Println(p1)
	fmt.Println(p2)
	// Output:
	// Point[0, 0, 0]
	// Point[0, 3, 1]
}

// Example_pointArithmetic demonstrates basic vector operations.
func Example_pointArithmetic() {
	a := geo3.NewPoint(1, 2, 3)
	b := geo3.NewPoint(4, 5, 6)

	fmt.Println(a.Add(b))
	fmt.Println(a.Dot(b))
	fmt.Println(a.Cross(b))
	// Output:
	// Point[5, 7, 9]
	// 32
	// Point[-3, 6, -3]
}

// Example_parsePoint demonstrates decoding points from text.
func Example_parsePoint() {
	p, err := geo3.ParsePoint("0.5 -2 3e2")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(p)
	// Output: Point[0.5, -2, 300]
}

// Example_readPoint demonstrates decoding consecutive points from a stream.
func Example_readPoint() {
	r := strings.NewReader("1 2 3\n4 5 6")

	for range 2 {
		p, err := geo3.ReadPoint(r)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(p)
	}
	// Output:
	// Point[1, 2, 3]
	// Point[4, 5, 6]
}

// Example_collection demonstrates proximity queries over stored segments.
func Example_collection() {
	ctx := context.Background()
	col := geo3.NewCollection[string]()

	col.Insert(ctx, geo3.NewSegment(geo3.NewPoint(0, 5, 0), geo3.NewPoint(10, 5, 0)), "north wall")
	col.Insert(ctx, geo3.NewSegment(geo3.NewPoint(0, -1, 0), geo3.NewPoint(10, -1, 0)), "south wall")

	probe := geo3.NewSegment(geo3.NewPoint(2, 0, 0), geo3.NewPoint(8, 0, 0))

	results, err := col.Nearest(ctx, probe, 1)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s at distance %g\n", results[0].Data, results[0].Distance)
	// Output: south wall at distance 1
}

// Example_streamingQuery demonstrates NearestStream with early termination.
func Example_streamingQuery() {
	ctx := context.Background()
	col := geo3.NewCollection[string]()

	for i := 1; i <= 10; i++ {
		seg := geo3.NewSegment(
			geo3.NewPoint(0, float64(i), 0),
			geo3.NewPoint(1, float64(i), 0),
		)
		col.Insert(ctx, seg, fmt.Sprintf("level-%d", i))
	}

	probe := geo3.NewSegment(geo3.NewPoint(0, 0, 0), geo3.NewPoint(1, 0, 0))
	count := 0

	for result, err := range col.NearestStream(ctx, probe, 10) {
		if err != nil {
			log.Fatal(err)
		}
		if result.Distance > 3.5 {
			break // Stop early
		}
		count++
	}

	fmt.Printf("Found %d segments within range\n", count)
	// Output: Found 3 segments within range
}

// Example_degenerateSegments demonstrates that point-like segments behave as points.
func Example_degenerateSegments() {
	p := geo3.NewPoint(2, 5, 0)
	pointLike := geo3.NewSegment(p, p)
	s := geo3.NewSegment(geo3.NewPoint(0, 0, 0), geo3.NewPoint(10, 0, 0))

	fmt.Println(geo3.ClosestDistance(pointLike, s))
	fmt.Println(s.DistanceTo(p))
	// Output:
	// 5
	// 5
}
