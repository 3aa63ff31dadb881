package domain

import "math"

// CosineSimilarity computes the cosine of the angle between two sparse weighted vectors.
// Returns 0 when either vector is empty or has zero magnitude.
func CosineSimilarity(a, b map[string]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	// Iterate the smaller map for the dot product.
	small, large := a, b
	if len(small) > len(large) {
		small, large = large, small
	}

	var dot float64
	for key, va := range small {
		if vb, ok := large[key]; ok {
			dot += va * vb
		}
	}
	if dot == 0 {
		return 0
	}

	normA := magnitude(a)
	normB := magnitude(b)
	if normA == 0 || normB == 0 {
		return 0
	}

	sim := dot / (normA * normB)
	// Rounding can push identical vectors fractionally past 1.
	return math.Min(sim, 1)
}

func magnitude(v map[string]float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// PriceBucket is the ordinal price band of a product.
type PriceBucket int

// priceBreakpoints are the upper bounds (exclusive) of buckets 0..3, in VND.
var priceBreakpoints = []float64{
	1_000_000,
	5_000_000,
	15_000_000,
	50_000_000,
}

// PriceBucketOf maps a price to its bucket: <1M → 0, <5M → 1, <15M → 2, <50M → 3, otherwise 4.
func PriceBucketOf(price float64) PriceBucket {
	for i, limit := range priceBreakpoints {
		if price < limit {
			return PriceBucket(i)
		}
	}
	return PriceBucket(len(priceBreakpoints))
}

// Adjacent reports whether two buckets differ by exactly one.
func (b PriceBucket) Adjacent(other PriceBucket) bool {
	diff := b - other
	return diff == 1 || diff == -1
}

// ContentWeights holds the contribution of each attribute match to a content score.
type ContentWeights struct {
	Category            float64
	Material            float64
	SamePriceBucket     float64
	AdjacentPriceBucket float64

	// Featured is a flat bonus when the candidate is featured.
	Featured float64
}

// ContentScore scores how closely a candidate's attributes match a reference product.
func ContentScore(reference, candidate Product, weights ContentWeights) float64 {
	var score float64

	if reference.Category != "" && reference.Category == candidate.Category {
		score += weights.Category
	}
	if reference.Material != "" && reference.Material == candidate.Material {
		score += weights.Material
	}

	refBucket := PriceBucketOf(reference.Price)
	candBucket := PriceBucketOf(candidate.Price)
	switch {
	case refBucket == candBucket:
		score += weights.SamePriceBucket
	case refBucket.Adjacent(candBucket):
		score += weights.AdjacentPriceBucket
	}

	if candidate.IsFeatured {
		score += weights.Featured
	}

	return score
}
