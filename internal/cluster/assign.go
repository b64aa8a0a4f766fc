package cluster

import (
	"math"

	"tastemap/internal/domain"
)

// Assign partitions points into k groups and returns a cluster index per
// point, values in [0,k). k is derived from the input size as
// clamp(round(sqrt(n/2)), 2, 8); three points or fewer all land in cluster 0.
//
// Centers are seeded with the farthest-point heuristic (the next center is
// the point maximizing its minimum distance to all chosen centers) and every
// point is then assigned to its nearest center in a single pass, ties going
// to the lowest index. There is no iterative refinement; this is not Lloyd's
// k-means, and the centers themselves are not returned.
func Assign[T any](points []T, distance func(a, b T) float64) []int {
	n := len(points)
	if n == 0 {
		return nil
	}
	assignment := make([]int, n)
	if n <= 3 {
		return assignment
	}
	k := int(math.Round(math.Sqrt(float64(n) / 2)))
	if k < 2 {
		k = 2
	}
	if k > 8 {
		k = 8
	}

	centers := make([]int, 1, k)
	centers[0] = 0
	for len(centers) < k {
		farthest := 0
		farthestDist := -1.0
		for i := range points {
			nearest := math.Inf(1)
			for _, c := range centers {
				if d := distance(points[i], points[c]); d < nearest {
					nearest = d
				}
			}
			if nearest > farthestDist {
				farthestDist = nearest
				farthest = i
			}
		}
		centers = append(centers, farthest)
	}

	for i := range points {
		best := 0
		bestDist := distance(points[i], points[centers[0]])
		for j := 1; j < len(centers); j++ {
			if d := distance(points[i], points[centers[j]]); d < bestDist {
				bestDist = d
				best = j
			}
		}
		assignment[i] = best
	}
	return assignment
}

// Euclidean is the default distance for projected 2D points.
func Euclidean(a, b domain.Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}
