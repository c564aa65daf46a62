package systems

import (
	"warren-server/internal/domain"
	"warren-server/internal/terrain"
	"warren-server/pkg/hexgrid"
)

// MoveResult - результат вычисления шага. Не меняет состояние мира!
type MoveResult struct {
	Target hexgrid.TileIndex
	Moved  bool

	// Причина отказа (для статусного сообщения; игровая логика
	// различает "за краем карты" и "тайл занят/вода")
	OffMap     bool
	Impassable bool
}

// CalculateMove вычисляет шаг из тайла в направлении angle.
// Отказ - это не ошибка: позиция просто не меняется, решает вызывающий,
// что показать игроку.
func CalculateMove(reg *terrain.Registry, from hexgrid.TileIndex, angle float64) MoveResult {
	target, ok := NeighborInDirection(from, angle)
	if !ok {
		// Неизвестное направление приравниваем к шагу за край
		return MoveResult{OffMap: true}
	}

	res := MoveResult{Target: target}

	tile, found := reg.Get(target)
	if !found {
		res.OffMap = true
		return res
	}
	if !tile.Passable {
		res.Impassable = true
		return res
	}

	res.Moved = true
	return res
}

// ApplyMove применяет шаг к актору: при успехе обновляет тайл и разворот,
// при отказе не трогает ничего.
func ApplyMove(reg *terrain.Registry, actor *domain.Actor, angle float64) MoveResult {
	res := CalculateMove(reg, actor.Tile, angle)
	if res.Moved {
		actor.Tile = res.Target
		actor.Facing = angle
	}
	return res
}
