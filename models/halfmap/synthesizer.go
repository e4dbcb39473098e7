package halfmap

import "github.com/saeidalz13/halfmap/internal/rng"

// Synthesize fills a grid column by column, each cell drawn uniformly
// from the three terrains. A water draw that could leave an isle is
// turned into grass. No count limits are applied here.
func Synthesize(r *rng.RNG) Grid {
	var g Grid
	for i := 0; i < SizeX; i++ {
		for j := 0; j < SizeY; j++ {
			switch Terrain(r.IntN(3)) {
			case TerrainGrass:
				g[i][j] = TerrainGrass
			case TerrainWater:
				if IsIsleRisk(g, i, j) {
					g[i][j] = TerrainGrass
				} else {
					g[i][j] = TerrainWater
				}
			case TerrainMountain:
				g[i][j] = TerrainMountain
			}
		}
	}
	return g
}

// IsIsleRisk reports whether water at (i, j) would only touch other water
// diagonally. It reads the cells filled before (i, j) in column-major
// order only, so it holds for a finished grid as well as a partial one.
//
// The five cases are tied to the 8x4 size and the fill order. Keep them
// exactly as they are.
func IsIsleRisk(g Grid, i, j int) bool {
	water := func(x, y int) bool { return g[x][y] == TerrainWater }

	switch {
	case i > 0 && j > 0 && j < SizeY-1 && (water(i-1, j-1) || water(i-1, j+1)):
		return true
	case i > 0 && j == 0 && water(i-1, j+1):
		return true
	case i > 0 && j == SizeY-1 && water(i-1, j-1):
		return true
	case i == SizeX-1 && water(i-1, j):
		return true
	case j == SizeY-1 && water(i, j-1):
		return true
	}
	return false
}
