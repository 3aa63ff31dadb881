package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity(t *testing.T) {
	cases := []struct {
		name     string
		a        map[string]float64
		b        map[string]float64
		expected float64
	}{
		{
			name:     "both_empty",
			a:        map[string]float64{},
			b:        map[string]float64{},
			expected: 0,
		},
		{
			name:     "one_empty",
			a:        map[string]float64{"p1": 1},
			b:        nil,
			expected: 0,
		},
		{
			name:     "identical",
			a:        map[string]float64{"p1": 6, "p2": 1},
			b:        map[string]float64{"p1": 6, "p2": 1},
			expected: 1,
		},
		{
			name:     "parallel_scaled",
			a:        map[string]float64{"p1": 1, "p2": 2},
			b:        map[string]float64{"p1": 3, "p2": 6},
			expected: 1,
		},
		{
			name:     "disjoint",
			a:        map[string]float64{"p1": 1},
			b:        map[string]float64{"p2": 1},
			expected: 0,
		},
		{
			name:     "partial_overlap",
			a:        map[string]float64{"p1": 1, "p2": 1},
			b:        map[string]float64{"p1": 1},
			expected: 0.7071, // 1 / sqrt(2)
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, CosineSimilarity(tc.a, tc.b), 0.0001)
		})
	}
}

func TestCosineSimilarity_Symmetric(t *testing.T) {
	profiles := []map[string]float64{
		{"p1": 6, "p2": 1},
		{"p1": 1, "p3": 4, "p4": 0.5},
		{"p2": 3, "p3": 3},
		{},
		{"p1": 0.25},
	}

	for i, a := range profiles {
		for j, b := range profiles {
			assert.InDelta(t, CosineSimilarity(a, b), CosineSimilarity(b, a), 1e-12, "profiles %d and %d", i, j)
		}
	}
}

func TestPriceBucketOf(t *testing.T) {
	cases := []struct {
		price    float64
		expected PriceBucket
	}{
		{price: 0, expected: 0},
		{price: 999_999, expected: 0},
		{price: 1_000_000, expected: 1},
		{price: 3_000_000, expected: 1},
		{price: 12_000_000, expected: 2},
		{price: 15_000_000, expected: 3},
		{price: 49_999_999, expected: 3},
		{price: 50_000_000, expected: 4},
		{price: 250_000_000, expected: 4},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, PriceBucketOf(tc.price), "price %f", tc.price)
	}
}

func TestPriceBucket_Adjacent(t *testing.T) {
	assert.True(t, PriceBucket(2).Adjacent(1))
	assert.True(t, PriceBucket(2).Adjacent(3))
	assert.False(t, PriceBucket(2).Adjacent(2))
	assert.False(t, PriceBucket(0).Adjacent(2))
	assert.False(t, PriceBucket(4).Adjacent(0))
}

func TestContentScore(t *testing.T) {
	weights := ContentWeights{
		Category:            0.4,
		Material:            0.3,
		SamePriceBucket:     0.2,
		AdjacentPriceBucket: 0.1,
		Featured:            0.1,
	}

	reference := Product{ID: "ring-18k", Category: "nhan", Material: "gold_18k", Price: 12_000_000}

	cases := []struct {
		name      string
		candidate Product
		expected  float64
	}{
		{
			name:      "category_and_adjacent_bucket",
			candidate: Product{ID: "ring-silver", Category: "nhan", Material: "silver", Price: 3_000_000},
			expected:  0.5,
		},
		{
			name: "category_and_adjacent_bucket_featured",
			candidate: Product{
				ID: "ring-silver-featured", Category: "nhan", Material: "silver", Price: 3_000_000, IsFeatured: true,
			},
			expected: 0.6,
		},
		{
			name:      "full_match",
			candidate: Product{ID: "ring-18k-2", Category: "nhan", Material: "gold_18k", Price: 14_000_000},
			expected:  0.9,
		},
		{
			name:      "material_only_far_bucket",
			candidate: Product{ID: "necklace", Category: "day_chuyen", Material: "gold_18k", Price: 80_000_000},
			expected:  0.3,
		},
		{
			name:      "nothing_in_common",
			candidate: Product{ID: "charm", Category: "charm", Material: "silver", Price: 500_000},
			expected:  0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, ContentScore(reference, tc.candidate, weights), 0.0001)
		})
	}
}

func TestContentScore_EmptyAttributesDoNotMatch(t *testing.T) {
	weights := ContentWeights{Category: 0.4, Material: 0.3}
	assert.InDelta(t, 0.0, ContentScore(Product{Price: 1e9}, Product{Price: 1}, weights), 0.0001)
}
