package io

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	fname := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fname, []byte(contents), 0644))
	return fname
}

func TestReadConfigInline(t *testing.T) {
	dir := t.TempDir()
	fname := writeFile(t, dir, "tables.cfg", `
[Table1D "gain"]
X = 0
X = 10
Y = 1
Y = 2

[Table2D "ttc"]
X = 0
X = 1
Y = 0
Y = 5
Y = 10
Values = 0
Values = 1
Values = 2
Values = 3
Values = 4
Values = 5
View = true
`)

	con, err := ReadConfig(fname)
	require.NoError(t, err)

	want1D := map[string]*Table1DConfig{
		"gain": {X: []float64{0, 10}, Y: []float64{1, 2}, Name: "gain"},
	}
	if diff := cmp.Diff(want1D, con.Table1D); diff != "" {
		t.Errorf("Table1D mismatch (-want +got):\n%s", diff)
	}

	ttc := con.Table2D["ttc"]
	require.NotNil(t, ttc)
	assert.True(t, ttc.View)
	assert.Equal(t, "ttc", ttc.Name)

	xs, ys, vals, err := ttc.Samples()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, xs)
	assert.Equal(t, []float64{0, 5, 10}, ys)
	if diff := cmp.Diff([][]float64{{0, 1, 2}, {3, 4, 5}}, vals); diff != "" {
		t.Errorf("surface mismatch (-want +got):\n%s", diff)
	}
}

func TestReadConfigFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "drag.txt", "0 5 100\n1 6 200\n2 7 300\n")
	writeFile(t, dir, "surface.txt", "1 2\n3 4\n5 6\n")
	fname := writeFile(t, dir, "tables.cfg", `
[Table1D "drag"]
File = drag.txt
YColumn = 2

[Table1D "default-columns"]
File = drag.txt

[Table2D "brake"]
X = 0
X = 10
X = 20
Y = 0
Y = 1
File = surface.txt
`)

	con, err := ReadConfig(fname)
	require.NoError(t, err)

	drag := con.Table1D["drag"]
	assert.Equal(t, filepath.Join(dir, "drag.txt"), drag.File)
	xs, ys, err := drag.Samples()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, xs)
	assert.Equal(t, []float64{100, 200, 300}, ys)

	def := con.Table1D["default-columns"]
	assert.Equal(t, 0, def.XColumn)
	assert.Equal(t, 1, def.YColumn)
	_, ys, err = def.Samples()
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 6, 7}, ys)

	_, _, vals, err := con.Table2D["brake"].Samples()
	require.NoError(t, err)
	if diff := cmp.Diff([][]float64{{1, 2}, {3, 4}, {5, 6}}, vals); diff != "" {
		t.Errorf("surface mismatch (-want +got):\n%s", diff)
	}
}

func TestReadConfigUnknownVariable(t *testing.T) {
	dir := t.TempDir()
	fname := writeFile(t, dir, "tables.cfg", `
[Table1D "gain"]
X = 0
X = 10
Y = 1
Y = 2
Colour = blue
`)

	con, err := ReadConfig(fname)
	require.NoError(t, err)
	assert.Len(t, con.Table1D, 1)
}

func TestReadConfigErrors(t *testing.T) {
	tests := []struct {
		name, contents string
	}{
		{"empty", "\n"},
		{"syntax", "[Table1D \"gain\"\nX = 1\n"},
		{"bad float", "[Table1D \"gain\"]\nX = one\n"},
		{"no samples", "[Table1D \"gain\"]\nView = true\n"},
		{"uneven 1D", "[Table1D \"gain\"]\nX = 1\nX = 2\nY = 1\n"},
		{"file and inline", "[Table1D \"gain\"]\nX = 1\nX = 2\nFile = a.txt\n"},
		{"same columns", "[Table1D \"gain\"]\nFile = a.txt\nXColumn = 2\nYColumn = 2\n"},
		{"negative column", "[Table1D \"gain\"]\nFile = a.txt\nXColumn = -1\n"},
		{"no x grid", "[Table2D \"ttc\"]\nY = 1\nY = 2\n"},
		{"no y grid", "[Table2D \"ttc\"]\nX = 1\nX = 2\n"},
		{"short values", "[Table2D \"ttc\"]\nX = 1\nX = 2\nY = 1\nY = 2\nValues = 1\n"},
		{"file and values",
			"[Table2D \"ttc\"]\nX = 1\nY = 1\nValues = 1\nFile = a.txt\n"},
	}

	dir := t.TempDir()
	for _, test := range tests {
		fname := writeFile(t, dir, "tables.cfg", test.contents)
		_, err := ReadConfig(fname)
		assert.Error(t, err, test.name)
	}

	_, err := ReadConfig(filepath.Join(dir, "does_not_exist.cfg"))
	assert.Error(t, err)
}

func TestExampleConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "drag.txt", "0 5 100\n1 6 200\n")
	writeFile(t, dir, "brake_surface.txt", "1 2\n3 4\n5 6\n")
	fname := writeFile(t, dir, "example.cfg", ExampleConfigFile)

	con, err := ReadConfig(fname)
	require.NoError(t, err)
	assert.Len(t, con.Table1D, 2)
	assert.Len(t, con.Table2D, 2)
	assert.Equal(t, 2, con.Table1D["drag"].YColumn)
	assert.True(t, con.Table2D["brake"].View)
}
