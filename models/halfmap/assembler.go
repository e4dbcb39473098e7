package halfmap

import (
	cerr "github.com/saeidalz13/halfmap/internal/error"
	"github.com/saeidalz13/halfmap/internal/rng"
)

// PlaceCastle puts the castle on a uniformly chosen grass cell.
func PlaceCastle(g Grid, r *rng.RNG) (HalfMap, error) {
	grassCount := g.Count(TerrainGrass)
	if grassCount == 0 {
		return HalfMap{}, cerr.ErrNoGrassCell()
	}
	return Assemble(g, r.IntN(grassCount))
}

// Assemble builds one field per cell. The castle goes on the grass cell
// whose position among all grass cells, counted in column-major order,
// equals castle.
func Assemble(g Grid, castle int) (HalfMap, error) {
	grassCount := g.Count(TerrainGrass)
	if grassCount == 0 {
		return HalfMap{}, cerr.ErrNoGrassCell()
	}
	if castle < 0 || castle >= grassCount {
		return HalfMap{}, cerr.ErrCastleIndexOutOfRange(castle, grassCount)
	}

	fields := make([]Field, 0, SizeX*SizeY)
	grassCounter := 0
	for i := 0; i < SizeX; i++ {
		for j := 0; j < SizeY; j++ {
			castleHere := false
			if g[i][j] == TerrainGrass {
				castleHere = grassCounter == castle
				grassCounter++
			}

			fields = append(fields, Field{
				Coordinates:    NewCoordinates(uint8(i), uint8(j)),
				Terrain:        g[i][j],
				HasCastle:      castleHere,
				PlayerPosition: NoPlayer,
			})
		}
	}

	return HalfMap{Fields: fields}, nil
}
