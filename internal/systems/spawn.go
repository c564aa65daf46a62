package systems

import (
	"errors"
	"math/rand"

	"warren-server/internal/terrain"
	"warren-server/pkg/hexgrid"
)

// ErrNoSpawnTile возвращается, когда легальных тайлов для спавна не осталось.
var ErrNoSpawnTile = errors.New("no valid spawn tile available")

// SpawnPicker раздает случайные тайлы для расстановки акторов.
// Вместо бесконечного цикла "возьми случайный тайл и проверь"
// кандидаты собираются один раз, и каждый Pick выбирает
// равномерно из оставшихся - без повторов и с гарантией завершения.
type SpawnPicker struct {
	rng  *rand.Rand
	pool []hexgrid.TileIndex
}

// NewSpawnPicker собирает пул из всех проходимых тайлов реестра.
func NewSpawnPicker(reg *terrain.Registry, rng *rand.Rand) *SpawnPicker {
	return &SpawnPicker{
		rng:  rng,
		pool: reg.PassableTiles(),
	}
}

// Remaining возвращает количество свободных тайлов в пуле.
func (p *SpawnPicker) Remaining() int {
	return len(p.pool)
}

// Exclude убирает тайл из пула (например, стартовую позицию игрока).
func (p *SpawnPicker) Exclude(idx hexgrid.TileIndex) {
	for i, t := range p.pool {
		if t == idx {
			p.removeAt(i)
			return
		}
	}
}

// Pick выбирает равномерно случайный тайл и убирает его из пула.
func (p *SpawnPicker) Pick() (hexgrid.TileIndex, error) {
	if len(p.pool) == 0 {
		return hexgrid.TileIndex{}, ErrNoSpawnTile
	}
	i := p.rng.Intn(len(p.pool))
	tile := p.pool[i]
	p.removeAt(i)
	return tile, nil
}

// PickBeyond выбирает тайл не ближе minDist (в мировых единицах) от from.
// Если таких не осталось, откатывается на обычный Pick - пустая партия
// хуже, чем лиса поблизости.
func (p *SpawnPicker) PickBeyond(from hexgrid.TileIndex, minDist float64) (hexgrid.TileIndex, error) {
	far := make([]int, 0, len(p.pool))
	for i, t := range p.pool {
		if hexgrid.WorldDistance(t, from) >= minDist {
			far = append(far, i)
		}
	}
	if len(far) == 0 {
		return p.Pick()
	}
	i := far[p.rng.Intn(len(far))]
	tile := p.pool[i]
	p.removeAt(i)
	return tile, nil
}

func (p *SpawnPicker) removeAt(i int) {
	last := len(p.pool) - 1
	p.pool[i] = p.pool[last]
	p.pool = p.pool[:last]
}
