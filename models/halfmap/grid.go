package halfmap

import (
	"fmt"
	"strings"
)

const (
	TerrainGrass Terrain = iota
	TerrainWater
	TerrainMountain
)

// Grid dimensions. X is the column (primary) index, Y the row.
const (
	SizeX = 8
	SizeY = 4
)

type Terrain uint8

func (t Terrain) String() string {
	switch t {
	case TerrainGrass:
		return "grass"
	case TerrainWater:
		return "water"
	case TerrainMountain:
		return "mountain"
	}
	return fmt.Sprintf("terrain(%d)", uint8(t))
}

func (t Terrain) glyph() byte {
	switch t {
	case TerrainWater:
		return '~'
	case TerrainMountain:
		return '^'
	}
	return '.'
}

func (t Terrain) MarshalText() ([]byte, error) {
	if t > TerrainMountain {
		return nil, fmt.Errorf("unknown terrain: %d", uint8(t))
	}
	return []byte(t.String()), nil
}

func (t *Terrain) UnmarshalText(text []byte) error {
	switch string(text) {
	case "grass":
		*t = TerrainGrass
	case "water":
		*t = TerrainWater
	case "mountain":
		*t = TerrainMountain
	default:
		return fmt.Errorf("unknown terrain: %q", text)
	}
	return nil
}

type Coordinates struct {
	X uint8 `json:"x"`
	Y uint8 `json:"y"`
}

func NewCoordinates(x, y uint8) Coordinates {
	return Coordinates{X: x, Y: y}
}

// Grid is indexed [column][row]. It is a value type, so a returned
// grid is never shared with the generator.
type Grid [SizeX][SizeY]Terrain

func (g Grid) At(c Coordinates) Terrain {
	return g[c.X][c.Y]
}

func (g Grid) Count(t Terrain) int {
	n := 0
	for i := 0; i < SizeX; i++ {
		n += g.ColumnCount(i, t)
	}
	return n
}

func (g Grid) ColumnCount(i int, t Terrain) int {
	n := 0
	for j := 0; j < SizeY; j++ {
		if g[i][j] == t {
			n++
		}
	}
	return n
}

func (g Grid) RowCount(j int, t Terrain) int {
	n := 0
	for i := 0; i < SizeX; i++ {
		if g[i][j] == t {
			n++
		}
	}
	return n
}

// String draws the grid row by row, '.' grass, '~' water, '^' mountain.
func (g Grid) String() string {
	var sb strings.Builder
	for j := 0; j < SizeY; j++ {
		for i := 0; i < SizeX; i++ {
			sb.WriteByte(g[i][j].glyph())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
