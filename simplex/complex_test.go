package simplex_test

import (
	"testing"

	"github.com/mirvel/tdakit/simplex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// strategies returns one fresh complex per storage strategy, keyed by name,
// so the shared contract is exercised against both.
func strategies(t *testing.T) map[string]simplex.Complex {
	t.Helper()
	bounded, err := simplex.NewBounded(16, 3)
	require.NoError(t, err)

	return map[string]simplex.Complex{
		"general": simplex.NewComplex(),
		"bounded": bounded,
	}
}

// TestComplex_AddFaceMissing verifies that Add on an empty complex rejects
// an edge whose vertices are absent.
func TestComplex_AddFaceMissing(t *testing.T) {
	for name, c := range strategies(t) {
		t.Run(name, func(t *testing.T) {
			_, err := c.Add(simplex.New(0, 1))
			assert.ErrorIs(t, err, simplex.ErrFaceMissing)
			assert.ErrorContains(t, err, "facet {1} of {0 1}")
			assert.Equal(t, 0, c.Size(), "failed Add must not mutate")
		})
	}
}

// TestComplex_AddAssignsSequentialIndices verifies per-dimension index
// assignment in insertion order.
func TestComplex_AddAssignsSequentialIndices(t *testing.T) {
	for name, c := range strategies(t) {
		t.Run(name, func(t *testing.T) {
			for want, v := range []int{4, 7, 2} {
				idx, err := c.Add(simplex.New(v))
				require.NoError(t, err)
				assert.Equal(t, want, idx)
			}

			idx, err := c.Add(simplex.New(4, 7))
			require.NoError(t, err)
			assert.Equal(t, 0, idx, "first edge gets index 0 in its own dimension")

			assert.Equal(t, 3, c.Count(0))
			assert.Equal(t, 1, c.Count(1))
			assert.Equal(t, 4, c.Size())
			assert.Equal(t, 1, c.MaxDim())
		})
	}
}

// TestComplex_SetIdentity verifies that vertex order does not affect
// identity: {1,0} is the same entity as {0,1}.
func TestComplex_SetIdentity(t *testing.T) {
	for name, c := range strategies(t) {
		t.Run(name, func(t *testing.T) {
			_, err := c.AddRecursive(simplex.New(0, 1))
			require.NoError(t, err)

			_, err = c.Add(simplex.New(1, 0))
			assert.ErrorIs(t, err, simplex.ErrDuplicateSimplex)

			dim, idx, ok := c.Index(simplex.New(1, 0))
			require.True(t, ok)
			assert.Equal(t, 1, dim)
			assert.Equal(t, 0, idx)
		})
	}
}

// TestComplex_AddRecursive verifies the full face closure of a triangle.
func TestComplex_AddRecursive(t *testing.T) {
	for name, c := range strategies(t) {
		t.Run(name, func(t *testing.T) {
			idx, err := c.AddRecursive(simplex.New(0, 1, 2))
			require.NoError(t, err)
			assert.Equal(t, 0, idx)

			assert.Equal(t, 3, c.Count(0))
			assert.Equal(t, 3, c.Count(1))
			assert.Equal(t, 1, c.Count(2))

			// Idempotent: re-adding returns the stored index, no error.
			again, err := c.AddRecursive(simplex.New(2, 1, 0))
			require.NoError(t, err)
			assert.Equal(t, idx, again)
			assert.Equal(t, 7, c.Size())
		})
	}
}

// TestComplex_SimplicesOrderStable verifies insertion-order enumeration and
// that the returned slices are defensive copies.
func TestComplex_SimplicesOrderStable(t *testing.T) {
	for name, c := range strategies(t) {
		t.Run(name, func(t *testing.T) {
			_, err := c.AddRecursive(simplex.New(0, 1, 2))
			require.NoError(t, err)

			edges := c.Simplices(1)
			require.Len(t, edges, 3)
			edges[0][0] = 99

			fresh := c.Simplices(1)
			assert.NotEqual(t, 99, fresh[0][0], "Simplices must return copies")
			assert.Nil(t, c.Simplices(5))
		})
	}
}

// TestComplex_ByIndex verifies indexed retrieval and range errors.
func TestComplex_ByIndex(t *testing.T) {
	for name, c := range strategies(t) {
		t.Run(name, func(t *testing.T) {
			_, err := c.AddRecursive(simplex.New(3, 5))
			require.NoError(t, err)

			s, err := c.ByIndex(1, 0)
			require.NoError(t, err)
			assert.Equal(t, simplex.New(3, 5), s)

			_, err = c.ByIndex(1, 1)
			assert.ErrorIs(t, err, simplex.ErrIndexOutOfRange)
			_, err = c.ByIndex(-1, 0)
			assert.ErrorIs(t, err, simplex.ErrIndexOutOfRange)
		})
	}
}

// TestComplex_Malformed verifies vertex-tuple validation.
func TestComplex_Malformed(t *testing.T) {
	for name, c := range strategies(t) {
		t.Run(name, func(t *testing.T) {
			_, err := c.Add(simplex.Simplex{})
			assert.ErrorIs(t, err, simplex.ErrMalformedSimplex)
			_, err = c.Add(simplex.New(-1))
			assert.ErrorIs(t, err, simplex.ErrMalformedSimplex)
			_, err = c.AddRecursive(simplex.New(1, 1))
			assert.ErrorIs(t, err, simplex.ErrMalformedSimplex)
		})
	}
}

// TestBounded_CapacityExceeded verifies the bounded strategy rejects
// out-of-capacity vertices and dimensions without partial mutation.
func TestBounded_CapacityExceeded(t *testing.T) {
	c, err := simplex.NewBounded(4, 1)
	require.NoError(t, err)

	_, err = c.Add(simplex.New(4))
	assert.ErrorIs(t, err, simplex.ErrCapacityExceeded)
	assert.ErrorContains(t, err, "{4} outside 4 vertices")

	_, err = c.AddRecursive(simplex.New(0, 1, 2))
	assert.ErrorIs(t, err, simplex.ErrCapacityExceeded)
	assert.Equal(t, 0, c.Size(), "capacity failure must not insert faces")

	_, err = c.AddRecursive(simplex.New(0, 3))
	assert.NoError(t, err)

	_, err = simplex.NewBounded(0, 2)
	assert.ErrorIs(t, err, simplex.ErrCapacityExceeded)
	_, err = simplex.NewBounded(3, -1)
	assert.ErrorIs(t, err, simplex.ErrCapacityExceeded)
}

// TestSimplex_Facets verifies boundary order: facet i omits vertex i.
func TestSimplex_Facets(t *testing.T) {
	s := simplex.New(7, 3, 9)

	facets := s.Facets()
	require.Len(t, facets, 3)
	assert.Equal(t, simplex.New(3, 9), facets[0])
	assert.Equal(t, simplex.New(7, 9), facets[1])
	assert.Equal(t, simplex.New(7, 3), facets[2])

	assert.Nil(t, simplex.New(4).Facets(), "vertices have no facets")
	assert.Equal(t, 2, s.Dim())
	assert.Equal(t, "3,7,9", s.Key())
}
