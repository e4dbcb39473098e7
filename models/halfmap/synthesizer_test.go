package halfmap

import (
	"testing"

	"github.com/saeidalz13/halfmap/internal/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeNeverPlacesIsleWater(t *testing.T) {
	r := rng.New(12345)
	for n := 0; n < 2000; n++ {
		g := Synthesize(r)
		for i := 0; i < SizeX; i++ {
			for j := 0; j < SizeY; j++ {
				require.LessOrEqual(t, uint8(g[i][j]), uint8(TerrainMountain))
				if g[i][j] == TerrainWater {
					require.False(t, IsIsleRisk(g, i, j), "isle water at (%d,%d) in\n%s", i, j, g)
				}
			}
		}
	}
}

func TestSynthesizeIsDeterministicForSeed(t *testing.T) {
	a, b := rng.New(99), rng.New(99)
	for n := 0; n < 20; n++ {
		require.Equal(t, Synthesize(a), Synthesize(b))
	}
}

func TestSynthesizeUsesAllTerrains(t *testing.T) {
	r := rng.New(3)
	seen := make(map[Terrain]bool)
	for n := 0; n < 50; n++ {
		g := Synthesize(r)
		for i := 0; i < SizeX; i++ {
			for j := 0; j < SizeY; j++ {
				seen[g[i][j]] = true
			}
		}
	}
	assert.Len(t, seen, 3)
}

func TestIsIsleRisk(t *testing.T) {
	tests := []struct {
		name   string
		rows   []string
		i, j   int
		isRisk bool
	}{
		{
			name:   "first column never at risk",
			rows:   []string{"~.......", "~.......", "........", "........"},
			i:      0,
			j:      2,
			isRisk: false,
		},
		{
			name:   "middle row with water up-left",
			rows:   []string{"~.......", "........", "........", "........"},
			i:      1,
			j:      1,
			isRisk: true,
		},
		{
			name:   "middle row with water down-left",
			rows:   []string{"........", "........", "~.......", "........"},
			i:      1,
			j:      1,
			isRisk: true,
		},
		{
			name:   "middle row with water directly left only",
			rows:   []string{"........", "~.......", "........", "........"},
			i:      1,
			j:      1,
			isRisk: false,
		},
		{
			name:   "first row with water down-left",
			rows:   []string{"........", "~.......", "........", "........"},
			i:      1,
			j:      0,
			isRisk: true,
		},
		{
			name:   "first row with water left",
			rows:   []string{"~.......", "........", "........", "........"},
			i:      1,
			j:      0,
			isRisk: false,
		},
		{
			name:   "last row with water up-left",
			rows:   []string{"........", "........", "~.......", "........"},
			i:      1,
			j:      3,
			isRisk: true,
		},
		{
			name:   "last column with water left",
			rows:   []string{"........", "......~.", "........", "........"},
			i:      7,
			j:      1,
			isRisk: true,
		},
		{
			name:   "last column first row with water left",
			rows:   []string{"......~.", "........", "........", "........"},
			i:      7,
			j:      0,
			isRisk: true,
		},
		{
			name:   "last row with water above",
			rows:   []string{"........", "........", "...~....", "........"},
			i:      3,
			j:      3,
			isRisk: true,
		},
		{
			name:   "last row of first column with water above",
			rows:   []string{"........", "........", "~.......", "........"},
			i:      0,
			j:      3,
			isRisk: true,
		},
		{
			name:   "water only in later cells is ignored",
			rows:   []string{"........", "..~~....", "..~.....", "........"},
			i:      2,
			j:      0,
			isRisk: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g := parseGrid(t, test.rows...)
			assert.Equal(t, test.isRisk, IsIsleRisk(g, test.i, test.j))
		})
	}
}
