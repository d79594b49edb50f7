package blend

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distmv"

	"remaster/internal/services"
)

// sumTolerance is the accepted deviation from 1.0 for a caller-supplied
// weight vector.
const sumTolerance = 0.01

// ReferenceSet pairs reference file paths with their blend weights. Weights
// are parallel to Paths and sum to 1.
type ReferenceSet struct {
	Paths   []string
	Weights []float64
}

// Uniform builds a reference set with equal weight on every path.
func Uniform(paths []string) ReferenceSet {
	weights := make([]float64, len(paths))
	for i := range weights {
		weights[i] = 1.0 / float64(len(paths))
	}
	return ReferenceSet{Paths: paths, Weights: weights}
}

// Validate checks the weight vector against the paths. Empty weights are
// allowed and mean uniform.
func (r ReferenceSet) Validate() error {
	if len(r.Paths) == 0 {
		return services.Wrap(services.ErrInvalidWeights, "blend", "validate", "no reference paths", nil)
	}
	if len(r.Weights) == 0 {
		return nil
	}
	if len(r.Weights) != len(r.Paths) {
		return services.Wrap(services.ErrInvalidWeights, "blend", "validate",
			fmt.Sprintf("%d weights for %d references", len(r.Weights), len(r.Paths)), nil)
	}
	var sum float64
	for _, w := range r.Weights {
		if w < 0 {
			return services.Wrap(services.ErrInvalidWeights, "blend", "validate",
				fmt.Sprintf("negative weight %v", w), nil)
		}
		sum += w
	}
	if math.Abs(sum-1.0) > sumTolerance {
		return services.Wrap(services.ErrInvalidWeights, "blend", "validate",
			fmt.Sprintf("weights sum to %v", sum), nil)
	}
	return nil
}

// Resolved returns the effective weights, filling in uniform when unset.
func (r ReferenceSet) Resolved() []float64 {
	if len(r.Weights) == len(r.Paths) && len(r.Weights) > 0 {
		return r.Weights
	}
	return Uniform(r.Paths).Weights
}

// Variation is one weight vector over the reference set plus the index of
// the most heavily weighted reference.
type Variation struct {
	Weights  []float64
	Dominant int
}

// Generate produces numVariations weight vectors over numReferences
// references. With one variation the blend is uniform; with up to one
// variation per reference each vector emphasizes a different reference;
// beyond that the list starts uniform, adds one emphasis vector per
// reference, and fills the rest with draws from a symmetric Dirichlet with
// concentration 2. Every returned vector lies on the probability simplex.
func Generate(numReferences, numVariations int) ([]Variation, error) {
	if numReferences < 1 {
		return nil, services.Wrap(services.ErrInvalidWeights, "blend", "generate",
			fmt.Sprintf("num references %d", numReferences), nil)
	}
	if numVariations < 1 {
		return nil, services.Wrap(services.ErrInvalidWeights, "blend", "generate",
			fmt.Sprintf("num variations %d", numVariations), nil)
	}

	var out []Variation
	switch {
	case numVariations == 1:
		out = append(out, NewVariation(uniform(numReferences)))

	case numVariations <= numReferences:
		for i := 0; i < numVariations; i++ {
			out = append(out, NewVariation(emphasis(numReferences, i, 0.1, 0.9)))
		}

	default:
		out = append(out, NewVariation(uniform(numReferences)))
		for i := 0; i < min(numReferences, numVariations-1); i++ {
			out = append(out, NewVariation(emphasis(numReferences, i, 0.2, 0.8)))
		}
		for len(out) < numVariations {
			out = append(out, NewVariation(dirichletDraw(numReferences)))
		}
	}
	return out, nil
}

// NewVariation wraps a weight vector with its arg-max dominant index.
func NewVariation(weights []float64) Variation {
	dominant := 0
	for i, w := range weights {
		if w > weights[dominant] {
			dominant = i
		}
	}
	return Variation{Weights: weights, Dominant: dominant}
}

func uniform(n int) []float64 {
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1.0 / float64(n)
	}
	return weights
}

// emphasis builds a vector with base weight everywhere and a larger weight at
// index peak, then renormalizes. The peak weight is floored at the base so
// large reference counts degenerate toward uniform instead of going negative.
func emphasis(n, peak int, base, budget float64) []float64 {
	weights := make([]float64, n)
	top := budget - base*float64(n-1)
	if top < base {
		top = base
	}
	var sum float64
	for i := range weights {
		weights[i] = base
		if i == peak {
			weights[i] = top
		}
		sum += weights[i]
	}
	for i := range weights {
		weights[i] /= sum
	}
	return weights
}

func dirichletDraw(n int) []float64 {
	alpha := make([]float64, n)
	for i := range alpha {
		alpha[i] = 2
	}
	dist := distmv.NewDirichlet(alpha, nil)
	return dist.Rand(nil)
}
