package projection

import (
	"math"

	"tastemap/internal/domain"
)

// Project reduces equal-dimension vectors to 2D coordinates, index-aligned
// with the input. This is the simplified variance-directed projection used
// for the embedding scatter view, not a true PCA: the first basis is always
// the first centered vector and the second is the most cosine-dissimilar
// vector after one Gram-Schmidt step, so the layout is deterministic given
// input order.
func Project(vectors [][]float64) []domain.Point {
	if len(vectors) == 0 {
		return nil
	}
	dimension := len(vectors[0])
	if dimension <= 2 {
		points := make([]domain.Point, len(vectors))
		for i, v := range vectors {
			if len(v) > 0 {
				points[i].X = v[0]
			}
			if len(v) > 1 {
				points[i].Y = v[1]
			}
		}
		return points
	}

	mean := make([]float64, dimension)
	for _, v := range vectors {
		for j, x := range v {
			mean[j] += x
		}
	}
	for j := range mean {
		mean[j] /= float64(len(vectors))
	}
	centered := make([][]float64, len(vectors))
	for i, v := range vectors {
		c := make([]float64, dimension)
		for j, x := range v {
			c[j] = x - mean[j]
		}
		centered[i] = c
	}

	basis1 := centered[0]
	basis2Raw := centered[0]
	bestDistance := -1.0
	for _, c := range centered {
		if d := 1 - cosineSimilarity(c, basis1); d > bestDistance {
			bestDistance = d
			basis2Raw = c
		}
	}
	// Single Gram-Schmidt step to orthogonalize the second axis.
	basis2 := make([]float64, dimension)
	b1b1 := dot(basis1, basis1)
	scale := 0.0
	if b1b1 != 0 {
		scale = dot(basis2Raw, basis1) / b1b1
	}
	for j := range basis2 {
		basis2[j] = basis2Raw[j] - scale*basis1[j]
	}

	norm1 := math.Sqrt(b1b1)
	norm2 := math.Sqrt(dot(basis2, basis2))
	points := make([]domain.Point, len(vectors))
	for i, c := range centered {
		// Zero-norm axes project to 0 rather than dividing by zero.
		if norm1 != 0 {
			points[i].X = dot(c, basis1) / norm1
		}
		if norm2 != 0 {
			points[i].Y = dot(c, basis2) / norm2
		}
	}
	return points
}

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func cosineSimilarity(a, b []float64) float64 {
	na := math.Sqrt(dot(a, a))
	nb := math.Sqrt(dot(b, b))
	if na == 0 || nb == 0 {
		return 0
	}
	return dot(a, b) / (na * nb)
}
