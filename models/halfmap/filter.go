package halfmap

const (
	MinMountains = 3
	MinGrass     = 15
	MinWater     = 4

	// Short edges are the first and last column, long edges the first
	// and last row.
	MaxWaterShortEdge = 1
	MaxWaterLongEdge  = 3
)

type Predicate struct {
	Name  string
	Holds func(Grid) bool
}

// AcceptancePredicates must all hold for a grid to be accepted.
// Thresholds are inclusive.
var AcceptancePredicates = []Predicate{
	{
		Name:  "min mountains",
		Holds: func(g Grid) bool { return g.Count(TerrainMountain) >= MinMountains },
	},
	{
		Name:  "min grass",
		Holds: func(g Grid) bool { return g.Count(TerrainGrass) >= MinGrass },
	},
	{
		Name:  "min water",
		Holds: func(g Grid) bool { return g.Count(TerrainWater) >= MinWater },
	},
	{
		Name:  "water on first column",
		Holds: func(g Grid) bool { return g.ColumnCount(0, TerrainWater) <= MaxWaterShortEdge },
	},
	{
		Name:  "water on last column",
		Holds: func(g Grid) bool { return g.ColumnCount(SizeX-1, TerrainWater) <= MaxWaterShortEdge },
	},
	{
		Name:  "water on first row",
		Holds: func(g Grid) bool { return g.RowCount(0, TerrainWater) <= MaxWaterLongEdge },
	},
	{
		Name:  "water on last row",
		Holds: func(g Grid) bool { return g.RowCount(SizeY-1, TerrainWater) <= MaxWaterLongEdge },
	},
}

func Accept(g Grid) bool {
	for _, p := range AcceptancePredicates {
		if !p.Holds(g) {
			return false
		}
	}
	return true
}

// Rejections returns the names of every predicate the grid fails.
func Rejections(g Grid) []string {
	var failed []string
	for _, p := range AcceptancePredicates {
		if !p.Holds(g) {
			failed = append(failed, p.Name)
		}
	}
	return failed
}
