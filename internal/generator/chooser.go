package generator

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/DjordjeVuckovic/fieldbench/internal/apperr"
)

type pair struct {
	label  string
	weight float64
}

// Chooser draws labels with probability proportional to their weight.
// Labels are kept in lexical order so a fixed seed gives a fixed sequence.
type Chooser struct {
	values []pair
	sum    float64
	rng    *rand.Rand
}

func NewChooser(weights map[string]float64, rng *rand.Rand) (*Chooser, error) {
	if len(weights) == 0 {
		return nil, apperr.NewValidation("weight table is empty")
	}
	if rng == nil {
		return nil, apperr.NewValidation("chooser needs a random source")
	}

	c := &Chooser{rng: rng, values: make([]pair, 0, len(weights))}
	for label, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return nil, apperr.NewValidation(fmt.Sprintf("invalid weight %v for %q", w, label))
		}
		c.values = append(c.values, pair{label: label, weight: w})
		c.sum += w
	}
	if c.sum <= 0 {
		return nil, apperr.NewValidation("weights sum to zero")
	}

	sort.Slice(c.values, func(i, j int) bool { return c.values[i].label < c.values[j].label })
	return c, nil
}

func (c *Chooser) Next() string {
	value := c.rng.Float64() * c.sum

	last := ""
	for _, p := range c.values {
		if p.weight == 0 {
			continue
		}
		if value < p.weight {
			return p.label
		}
		value -= p.weight
		last = p.label
	}
	// float rounding can leave value just past the final bucket
	return last
}

func (c *Chooser) Labels() []string {
	out := make([]string, len(c.values))
	for i, p := range c.values {
		out[i] = p.label
	}
	return out
}
