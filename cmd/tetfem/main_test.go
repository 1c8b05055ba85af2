package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/TetFEM/results"
)

// unit tet, k = 6 so that K = BᵗB, T = 2 on node 1 and a 0.5 flux on node 2
const unitTetDat = `6 0 2 0.5
4 1 1 1
Coordinates
1 0 0 0
2 1 0 0
3 0 1 0
4 0 0 1
EndCoordinates
Elements
1 1 2 3 4
EndElements
Dirichlet
1
EndDirichlet
Neumann
2
EndNeumann
`

func TestRunDat(t *testing.T) {
	base := filepath.Join(t.TempDir(), "case")
	require.NoError(t, os.WriteFile(base+".dat", []byte(unitTetDat), 0o644))

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-v", "-workers", "2", "-plot", "x", base}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "Performing assembly")
	assert.Contains(t, stdout.String(), "Number of nodes: 4")

	got, err := results.ReadGiDFile(base + ".post.res")
	require.NoError(t, err)
	assert.Equal(t, 2.0, got[1])
	assert.InDelta(t, 2.5, got[2], 1e-12)
	assert.InDelta(t, 2.0, got[3], 1e-12)
	assert.InDelta(t, 2.0, got[4], 1e-12)

	_, err = os.Stat(base + ".png")
	assert.NoError(t, err)
}

func TestRunQuiet(t *testing.T) {
	base := filepath.Join(t.TempDir(), "case")
	require.NoError(t, os.WriteFile(base+".dat", []byte(unitTetDat), 0o644))
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{base}, &stdout, &stderr))
	assert.Empty(t, stdout.String())
}

func TestRunUsage(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"a", "b"},
		{"-nosuchflag", "a"},
	} {
		var stdout, stderr bytes.Buffer
		err := run(args, &stdout, &stderr)
		assert.ErrorIs(t, err, errUsage, "%v", args)
		assert.Contains(t, stderr.String(), "usage: tetfem", "%v", args)
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer

	err := run([]string{filepath.Join(dir, "missing")}, &stdout, &stderr)
	assert.ErrorIs(t, err, os.ErrNotExist)

	base := filepath.Join(dir, "case")
	require.NoError(t, os.WriteFile(base+".dat", []byte(unitTetDat), 0o644))
	assert.Error(t, run([]string{"-model", "elasticity", base}, &stdout, &stderr))
	assert.Error(t, run([]string{"-plot", "w", base}, &stdout, &stderr))
	assert.Error(t, run([]string{"-partitioning", "metis", base}, &stdout, &stderr))
	_, err = os.Stat(base + ".post.res")
	assert.ErrorIs(t, err, os.ErrNotExist, "nothing is written when options are invalid")
}
