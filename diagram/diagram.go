package diagram

import (
	"errors"

	"github.com/montanaflynn/stats"

	"github.com/mirvel/tdakit/persistence"
)

// ErrNilDiagram indicates a nil diagram input.
var ErrNilDiagram = errors.New("diagram: diagram is nil")

// Betti returns the number of dimension-dim classes alive at the given
// scale: born at or before it and dying strictly after it. Infinite bars
// born by the scale always count.
func Betti(d *persistence.Diagram, dim int, scale float64) (int, error) {
	if d == nil {
		return 0, ErrNilDiagram
	}

	alive := 0
	for _, p := range d.Pairs(dim) {
		if p.Birth > scale {
			continue
		}
		if p.Infinite || p.Death > scale {
			alive++
		}
	}

	return alive, nil
}

// Lifetimes returns the finite bar lengths of one dimension, in the
// diagram's pair order. Zero-length bars are included; callers filter.
func Lifetimes(d *persistence.Diagram, dim int) ([]float64, error) {
	if d == nil {
		return nil, ErrNilDiagram
	}

	var out []float64
	for _, p := range d.Pairs(dim) {
		if p.Infinite {
			continue
		}
		out = append(out, p.Persistence())
	}

	return out, nil
}

// Summary condenses one homology dimension of a diagram.
type Summary struct {
	Dim      int
	Finite   int
	Infinite int

	// Lifetime statistics over the finite bars; all zero when there are
	// none.
	MeanLife   float64
	MedianLife float64
	MaxLife    float64
}

// Summarize computes a Summary for one dimension.
func Summarize(d *persistence.Diagram, dim int) (Summary, error) {
	if d == nil {
		return Summary{}, ErrNilDiagram
	}

	s := Summary{Dim: dim}
	lifetimes, err := Lifetimes(d, dim)
	if err != nil {
		return Summary{}, err
	}
	s.Finite = len(lifetimes)
	for _, p := range d.Pairs(dim) {
		if p.Infinite {
			s.Infinite++
		}
	}
	if len(lifetimes) == 0 {
		return s, nil
	}

	data := stats.Float64Data(lifetimes)
	if s.MeanLife, err = data.Mean(); err != nil {
		return Summary{}, err
	}
	if s.MedianLife, err = data.Median(); err != nil {
		return Summary{}, err
	}
	if s.MaxLife, err = data.Max(); err != nil {
		return Summary{}, err
	}

	return s, nil
}
