package halfmap

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseGrid reads SizeY rows of SizeX glyphs as drawn by Grid.String.
func parseGrid(t *testing.T, rows ...string) Grid {
	t.Helper()
	require.Len(t, rows, SizeY)

	var g Grid
	for j, row := range rows {
		require.Len(t, row, SizeX, "row %d", j)
		for i := 0; i < SizeX; i++ {
			switch row[i] {
			case '.':
				g[i][j] = TerrainGrass
			case '~':
				g[i][j] = TerrainWater
			case '^':
				g[i][j] = TerrainMountain
			default:
				t.Fatalf("unknown glyph %q at (%d,%d)", row[i], i, j)
			}
		}
	}
	return g
}

func TestGridCounts(t *testing.T) {
	g := parseGrid(t,
		"^^^.....",
		"...~~...",
		"...~~..~",
		"~.......",
	)

	assert.Equal(t, 3, g.Count(TerrainMountain))
	assert.Equal(t, 6, g.Count(TerrainWater))
	assert.Equal(t, 23, g.Count(TerrainGrass))

	assert.Equal(t, 1, g.ColumnCount(0, TerrainWater))
	assert.Equal(t, 1, g.ColumnCount(SizeX-1, TerrainWater))
	assert.Equal(t, 2, g.ColumnCount(3, TerrainWater))

	assert.Equal(t, 0, g.RowCount(0, TerrainWater))
	assert.Equal(t, 3, g.RowCount(0, TerrainMountain))
	assert.Equal(t, 1, g.RowCount(SizeY-1, TerrainWater))

	assert.Equal(t, TerrainWater, g.At(NewCoordinates(7, 2)))
	assert.Equal(t, TerrainMountain, g.At(NewCoordinates(2, 0)))
}

func TestGridString(t *testing.T) {
	rows := []string{
		"^^^.....",
		"...~~...",
		"...~~...",
		"........",
	}
	g := parseGrid(t, rows...)

	assert.Equal(t, "^^^.....\n...~~...\n...~~...\n........\n", g.String())
}

func TestGridIsValueType(t *testing.T) {
	var g Grid
	copied := g
	copied[0][0] = TerrainWater

	assert.Equal(t, TerrainGrass, g[0][0])
}

func TestTerrainText(t *testing.T) {
	tests := []struct {
		terrain Terrain
		text    string
	}{
		{terrain: TerrainGrass, text: "grass"},
		{terrain: TerrainWater, text: "water"},
		{terrain: TerrainMountain, text: "mountain"},
	}

	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			assert.Equal(t, test.text, test.terrain.String())

			data, err := json.Marshal(test.terrain)
			require.NoError(t, err)
			assert.Equal(t, `"`+test.text+`"`, string(data))

			var back Terrain
			require.NoError(t, json.Unmarshal(data, &back))
			assert.Equal(t, test.terrain, back)
		})
	}

	_, err := json.Marshal(Terrain(9))
	assert.Error(t, err)

	var bad Terrain
	assert.Error(t, json.Unmarshal([]byte(`"lava"`), &bad))
}
