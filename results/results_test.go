package results

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/TetFEM/dense"
	"github.com/notargets/TetFEM/fem"
	"github.com/notargets/TetFEM/mesh"
)

func unitTetMesh(t *testing.T) *mesh.Mesh {
	m := mesh.New(mesh.Problem{Conductivity: 6, Source: 0}, 4, 1)
	for i, c := range [][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}} {
		_, err := m.AddNode(i+1, c[0], c[1], c[2])
		require.NoError(t, err)
	}
	_, err := m.AddElement(1, [4]int{1, 2, 3, 4})
	require.NoError(t, err)
	return m
}

func TestWriteGiDFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteGiD(&buf, dense.NewVectorFrom([]float64{2, 2.5, -0.125})))
	want := `GiD Post Results File 1.0
Result "Temperature" "Load Case 1" 1 Scalar OnNodes
ComponentNames "T"
Values
1     2
2     2.5
3     -0.125
End values
`
	assert.Equal(t, want, buf.String())
}

func TestGiDRoundTripFromSolve(t *testing.T) {
	m := unitTetMesh(t)
	require.NoError(t, m.AddDirichlet(1, 2))
	require.NoError(t, m.AddNeumann(2, 0.5))
	res, err := fem.Run(m, fem.DefaultOptions())
	require.NoError(t, err)

	base := filepath.Join(t.TempDir(), "case")
	require.NoError(t, WriteGiDFile(base, res.Values))
	got, err := ReadGiDFile(PostResPath(base))
	require.NoError(t, err)

	require.Len(t, got, 4)
	assert.Equal(t, 2.0, got[1])
	for id := 1; id <= 4; id++ {
		assert.Equal(t, res.Values.AtVec(id-1), got[id], "node %d", id)
	}
	assert.InDelta(t, 2.5, got[2], 1e-12)
}

func TestReadGiDMalformed(t *testing.T) {
	good := "GiD Post Results File 1.0\n" +
		"Result \"Temperature\" \"Load Case 1\" 1 Scalar OnNodes\n" +
		"ComponentNames \"T\"\nValues\n1 1.5\n2 3\nEnd values\n"
	got, err := ReadGiD(strings.NewReader(good))
	require.NoError(t, err)
	assert.Equal(t, map[int]float64{1: 1.5, 2: 3}, got)

	for name, in := range map[string]string{
		"empty":      "",
		"bad header": strings.Replace(good, "1.0", "2.0", 1),
		"no end":     strings.Replace(good, "End values\n", "", 1),
		"bad value":  strings.Replace(good, "1 1.5", "1 one", 1),
		"extra col":  strings.Replace(good, "1 1.5", "1 1.5 7", 1),
		"duplicate":  strings.Replace(good, "2 3", "1 3", 1),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ReadGiD(strings.NewReader(in))
			assert.ErrorIs(t, err, ErrMalformedResults)
		})
	}
}

func TestProfile(t *testing.T) {
	m := unitTetMesh(t)
	values := dense.NewVectorFrom([]float64{1, 2, 3, 4})

	pts, err := ProfileXYs(m, values, AxisY)
	require.NoError(t, err)
	assert.Equal(t, 1.0, pts[2].X)
	assert.Equal(t, 3.0, pts[2].Y)
	assert.Equal(t, 0.0, pts[1].X)

	_, err = ProfileXYs(m, dense.NewVector(3), AxisX)
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "profile.png")
	require.NoError(t, PlotProfile(m, values, AxisZ, path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestParseAxis(t *testing.T) {
	a, err := ParseAxis(" Z ")
	require.NoError(t, err)
	assert.Equal(t, AxisZ, a)
	assert.Equal(t, "z", a.String())
	_, err = ParseAxis("w")
	assert.ErrorIs(t, err, ErrUnknownAxis)
}
