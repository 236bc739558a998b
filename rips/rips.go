package rips

import (
	"golang.org/x/sync/errgroup"

	"github.com/mirvel/tdakit/distmat"
	"github.com/mirvel/tdakit/simplex"
)

// candidate is one accepted clique extension, produced by the level scan
// and committed sequentially afterwards.
type candidate struct {
	s     simplex.Simplex
	birth float64
}

// Build constructs the Vietoris–Rips filtration of m under the configured
// radius and dimension bounds. The returned filtration uses the
// capacity-bounded storage strategy (point count and dimension bound are
// both known up front).
//
// Complexity: O(n²) for edges plus the clique-expansion cost per extra
// dimension (worst case exponential in MaxDim).
func Build(m *distmat.Matrix, opts ...Option) (*simplex.Filtration, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	o := gatherOptions(opts...)
	if o.err != nil {
		return nil, o.err
	}

	n := m.N()
	f, err := simplex.NewBoundedFiltration(n, o.MaxDim)
	if err != nil {
		return nil, err
	}

	// Level 0: every point is a vertex at birth 0.
	for i := 0; i < n; i++ {
		if _, err = f.Add(0, simplex.New(i)); err != nil {
			return nil, err
		}
	}
	if o.MaxDim == 0 {
		return f, nil
	}

	// Level 1: edges within the radius, born at their length.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if d := m.Dist(i, j); d <= o.MaxRadius {
				if _, err = f.Add(d, simplex.New(i, j)); err != nil {
					return nil, err
				}
			}
		}
	}

	// Levels 2..k: extend each (d-1)-simplex σ by every v > max(σ) within
	// the radius of all of σ. Simplices are stored with ascending vertex
	// order, so σ's last vertex is its maximum and each clique is produced
	// exactly once. A barrier sits between levels: level d+1 scans the
	// finished level d.
	for dim := 2; dim <= o.MaxDim; dim++ {
		prev := f.Simplices(dim - 1)
		births := make([]float64, len(prev))
		for idx := range prev {
			if births[idx], err = f.Birth(dim-1, idx); err != nil {
				return nil, err
			}
		}

		var cands []candidate
		if o.Workers > 1 && len(prev) > 1 {
			cands = scanLevelParallel(m, prev, births, o)
		} else {
			cands = scanLevel(m, prev, births, o.MaxRadius, 0, len(prev))
		}

		for _, c := range cands {
			if _, err = f.Add(c.birth, c.s); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

// BuildRows validates raw distance rows through distmat and builds the
// filtration. Structural violations surface as the distmat sentinel family.
func BuildRows(rows [][]float64, opts ...Option) (*simplex.Filtration, error) {
	m, err := distmat.New(rows)
	if err != nil {
		return nil, err
	}

	return Build(m, opts...)
}

// scanLevel scans prev[lo:hi] for clique extensions. Candidates come out
// ordered by (parent index, extension vertex), which is exactly the
// deterministic insertion order of the level.
func scanLevel(m *distmat.Matrix, prev []simplex.Simplex, births []float64, rmax float64, lo, hi int) []candidate {
	n := m.N()
	var out []candidate
	for idx := lo; idx < hi; idx++ {
		s := prev[idx]
		for v := s[len(s)-1] + 1; v < n; v++ {
			reach := 0.0
			ok := true
			for _, u := range s {
				d := m.Dist(v, u)
				if d > rmax {
					ok = false
					break
				}
				if d > reach {
					reach = d
				}
			}
			if !ok {
				continue
			}

			birth := births[idx]
			if reach > birth {
				birth = reach
			}
			ext := make(simplex.Simplex, 0, len(s)+1)
			ext = append(ext, s...)
			ext = append(ext, v)
			out = append(out, candidate{s: ext, birth: birth})
		}
	}

	return out
}

// scanLevelParallel partitions the parent list into contiguous blocks, one
// per worker, and merges the per-block results in block order so the
// outcome is byte-identical to the sequential scan.
func scanLevelParallel(m *distmat.Matrix, prev []simplex.Simplex, births []float64, o Options) []candidate {
	workers := o.Workers
	if workers > len(prev) {
		workers = len(prev)
	}
	blocks := make([][]candidate, workers)
	chunk := (len(prev) + workers - 1) / workers

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(prev) {
			hi = len(prev)
		}
		if lo >= hi {
			break
		}
		w := w
		g.Go(func() error {
			blocks[w] = scanLevel(m, prev, births, o.MaxRadius, lo, hi)
			return nil
		})
	}
	// Workers return no errors; Wait is the level barrier.
	_ = g.Wait()

	var out []candidate
	for _, b := range blocks {
		out = append(out, b...)
	}

	return out
}
