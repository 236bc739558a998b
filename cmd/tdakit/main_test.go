package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirvel/tdakit/distmat"
)

// writeCSV drops content into a temp file and returns its path.
func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dists.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

// TestLoadMatrix_Valid verifies CSV ingestion of a plain distance matrix.
func TestLoadMatrix_Valid(t *testing.T) {
	path := writeCSV(t, "0,1,2\n1,0,1\n2,1,0\n")

	m, err := loadMatrix(path)
	require.NoError(t, err)
	assert.Equal(t, 3, m.N())
	assert.Equal(t, 2.0, m.Dist(0, 2))
}

// TestLoadMatrix_Inf verifies that "inf" cells are admitted as +Inf
// ("farther than every scale"), in any letter case.
func TestLoadMatrix_Inf(t *testing.T) {
	path := writeCSV(t, "0,1,inf\n1,0,INF\ninf,INF,0\n")

	m, err := loadMatrix(path)
	require.NoError(t, err)
	assert.True(t, math.IsInf(m.Dist(0, 2), 1))
	assert.True(t, math.IsInf(m.Dist(1, 2), 1))
	assert.Equal(t, 1.0, m.Dist(0, 1))
}

// TestLoadMatrix_Bad verifies malformed cells and contract violations
// surface as errors.
func TestLoadMatrix_Bad(t *testing.T) {
	_, err := loadMatrix(writeCSV(t, "0,abc\nabc,0\n"))
	assert.Error(t, err)

	// Asymmetric input fails distmat validation.
	_, err = loadMatrix(writeCSV(t, "0,1\n2,0\n"))
	assert.ErrorIs(t, err, distmat.ErrInvalidMatrix)

	_, err = loadMatrix(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}
