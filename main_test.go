package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsFileDrivesGeneration(t *testing.T) {
	data, err := os.ReadFile("testdata/options_grid.json")
	require.NoError(t, err)

	var opts GenerationOptions
	require.NoError(t, json.Unmarshal(data, &opts))
	assert.Equal(t, "grid", opts.PatternType)
	require.NotNil(t, opts.LayerCount)
	assert.Equal(t, 2, *opts.LayerCount)

	art := Generate(opts, nil, time.Now())
	require.False(t, art.Result.Failed)
	assert.Equal(t, int64(42), art.Result.Seed)
	assert.Len(t, art.Result.Layers, 2)
	assert.Contains(t, art.Doc, "Gradient id=\"grad-")
}

func TestLoadPaletteTable(t *testing.T) {
	table := loadPaletteTable("testdata/palettes.json")
	require.NotNil(t, table)
	assert.Len(t, table["ocean"], 5)

	pal := resolvePalette(nil, "sunset", table)
	assert.Equal(t, table["sunset"], pal)
}

func TestLoadPaletteTableMissingFileIsNotFatal(t *testing.T) {
	assert.Nil(t, loadPaletteTable(""))
	assert.Nil(t, loadPaletteTable("testdata/no-such-file.json"))
}

func TestExportFramesWritesNumberedFiles(t *testing.T) {
	art := Generate(GenerationOptions{PatternType: "scatter", Seed: "8"}, nil, time.Now())
	prefix := filepath.Join(t.TempDir(), "anim")

	require.NoError(t, exportFrames(art, prefix, 4))

	for f := 0; f < 4; f++ {
		data, err := os.ReadFile(fmt.Sprintf("%s_%03d.svg", prefix, f))
		require.NoError(t, err, "frame %d", f)
		assert.Contains(t, string(data), "<svg")
	}
}
