package halfmap

import "strings"

const (
	NoPlayer PlayerPosition = iota
	MyPlayer
	EnemyPlayer
	BothPlayers
)

// PlayerPosition tags which player currently stands on a field.
type PlayerPosition uint8

// Field is the per cell record handed to the game. The treasure and
// visibility flags belong to gameplay logic; the generator leaves them false.
type Field struct {
	Coordinates
	Terrain        Terrain        `json:"terrain"`
	HasTreasure    bool           `json:"hasTreasure"`
	IsRevealed     bool           `json:"isRevealed"`
	IsVisited      bool           `json:"isVisited"`
	HasCastle      bool           `json:"hasCastle"`
	PlayerPosition PlayerPosition `json:"playerPosition"`
}

type HalfMap struct {
	Uuid   string  `json:"uuid"`
	Fields []Field `json:"fields"`
}

func (hm HalfMap) Castle() (Field, bool) {
	for _, f := range hm.Fields {
		if f.HasCastle {
			return f, true
		}
	}
	return Field{}, false
}

// Grid rebuilds the terrain grid the half map was assembled from.
func (hm HalfMap) Grid() Grid {
	var g Grid
	for _, f := range hm.Fields {
		g[f.X][f.Y] = f.Terrain
	}
	return g
}

// String draws the half map like Grid.String with the castle as 'C'.
func (hm HalfMap) String() string {
	rows := strings.Split(strings.TrimSuffix(hm.Grid().String(), "\n"), "\n")
	if castle, ok := hm.Castle(); ok {
		row := []byte(rows[castle.Y])
		row[castle.X] = 'C'
		rows[castle.Y] = string(row)
	}
	return strings.Join(rows, "\n") + "\n"
}
