package systems

import (
	"warren-server/internal/terrain"
	"warren-server/pkg/hexgrid"
)

// Neighbor - один легальный сосед тайла: индекс + направление в градусах.
type Neighbor struct {
	Index hexgrid.TileIndex
	Angle float64
}

// Neighbors перечисляет до шести легальных соседей тайла: кандидат входит
// в результат, только если он есть в реестре (на карте) И проходим.
// Порядок детерминирован - идет по таблице направлений
// (0°, 300°, 240°, 180°, 120°, 60°), это важно для тестов и для
// разрешения ничьих в AI.
func Neighbors(reg *terrain.Registry, idx hexgrid.TileIndex) []Neighbor {
	out := make([]Neighbor, 0, 6)
	for _, o := range hexgrid.NeighborOffsets(idx.Y) {
		candidate := idx.Shift(o)
		tile, ok := reg.Get(candidate)
		if !ok || !tile.Passable {
			continue
		}
		out = append(out, Neighbor{Index: candidate, Angle: o.Angle})
	}
	return out
}

// NeighborInDirection возвращает индекс соседа в заданном направлении,
// не проверяя проходимость (этим занимается CalculateMove).
func NeighborInDirection(idx hexgrid.TileIndex, angle float64) (hexgrid.TileIndex, bool) {
	for _, o := range hexgrid.NeighborOffsets(idx.Y) {
		if o.Angle == angle {
			return idx.Shift(o), true
		}
	}
	return hexgrid.TileIndex{}, false
}
