package systems

import (
	"warren-server/internal/terrain"
	"warren-server/pkg/hexgrid"
)

// ChooseMove выбирает соседа тайла from, минимизирующего евклидово
// расстояние до target в мировых координатах. Ничья отдается первому
// кандидату в детерминированном порядке Neighbors.
//
// Это жадный hill-climbing, не поиск пути: хищник может застрять за
// препятствием. На масштабе ходов этой игры так и задумано.
// Второе значение false = легальных ходов нет, хищник пропускает ход.
func ChooseMove(reg *terrain.Registry, from, target hexgrid.TileIndex) (Neighbor, bool) {
	candidates := Neighbors(reg, from)
	if len(candidates) == 0 {
		return Neighbor{}, false
	}

	best := candidates[0]
	bestDist := hexgrid.WorldDistance(best.Index, target)
	for _, c := range candidates[1:] {
		if d := hexgrid.WorldDistance(c.Index, target); d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best, true
}
