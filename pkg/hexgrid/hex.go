// Package hexgrid содержит чистую математику гекс-сетки: осевые индексы
// тайлов, упаковку индекса в один ключ и таблицу соседей для offset-раскладки
// (нечетные ряды сдвинуты на полтайла по X).
package hexgrid

import "math"

// Шаг сетки в мировых координатах (расстояние между центрами тайлов
// для гекса с единичным радиусом).
const (
	HexW = 1.77  // по X, от ребра до ребра
	HexH = 1.535 // по Z, между соседними рядами
)

// Параметры упаковки индекса (X,Y) в один int-ключ.
// PackStride должен быть строго больше 2*MaxCoord, иначе ключи коллидируют.
// Множитель без смещения молча ломается на отрицательных координатах,
// поэтому контракт биекции закреплен явно и проверяется в InPackRange.
const (
	PackStride = 1024
	PackOffset = 512
	MaxCoord   = PackOffset - 1 // поддерживаемый диапазон: |X|,|Y| <= 511
)

// TileIndex - осевой индекс тайла на сетке.
type TileIndex struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pack упаковывает индекс в один ключ. Биекция на |x|,|y| <= MaxCoord.
func Pack(x, y int) int {
	return (x+PackOffset)*PackStride + (y + PackOffset)
}

// Unpack - обратная операция к Pack.
func Unpack(key int) (x, y int) {
	x = key/PackStride - PackOffset
	y = key%PackStride - PackOffset
	return
}

// Key возвращает упакованный ключ индекса.
func (t TileIndex) Key() int {
	return Pack(t.X, t.Y)
}

// InPackRange сообщает, покрывается ли индекс контрактом биекции Pack/Unpack.
func InPackRange(x, y int) bool {
	return x >= -MaxCoord && x <= MaxCoord && y >= -MaxCoord && y <= MaxCoord
}

// ToWorld переводит индекс тайла в мировые координаты (px, pz).
// Сдвиг (y%2)*0.5 обязателен: без него нечетные ряды не перемежаются
// с четными. Усеченный остаток сдвигает отрицательные нечетные ряды
// на -0.5, а не +0.5 - таблица соседей ниже учитывает именно это.
func ToWorld(x, y int) (px, pz float64) {
	px = (float64(x) + 0.5*float64(y%2)) * HexW
	pz = float64(y) * HexH
	return
}

// World возвращает мировую позицию тайла.
func (t TileIndex) World() (px, pz float64) {
	return ToWorld(t.X, t.Y)
}

// WorldDistance - евклидово расстояние между центрами двух тайлов.
func WorldDistance(a, b TileIndex) float64 {
	ax, az := a.World()
	bx, bz := b.World()
	return math.Hypot(ax-bx, az-bz)
}

// Offset описывает одного соседа: дельта индекса + метка направления
// в градусах (кратна 60).
type Offset struct {
	DX, DY int
	Angle  float64
}

// NeighborOffsets возвращает шесть дельт соседей для ряда y.
// Соседи 0° и 180° не зависят от ряда. Четыре диагональных зависят от
// четности ряда И от знака y: из-за усеченного остатка в ToWorld ряд y=0,
// положительные и отрицательные ряды сдвинуты по-разному. Каждая дельта
// выбрана так, что сосед лежит ровно в (±HexW/2, ±HexH) от тайла, а
// отношение соседства взаимно (если B сосед A, то A сосед B).
func NeighborOffsets(y int) [6]Offset {
	// dx для диагоналей: [60° (y-1, вправо), 120° (y-1, влево),
	//                     240° (y+1, влево), 300° (y+1, вправо)]
	var n60, n120, n240, n300 int

	switch {
	case y == 0:
		n60, n120 = 1, 0
		n240, n300 = -1, 0
	case y%2 == 0 && y > 0:
		n60, n120 = 0, -1
		n240, n300 = -1, 0
	case y%2 == 0 && y < 0:
		n60, n120 = 1, 0
		n240, n300 = 0, 1
	case y > 0: // нечетный положительный
		n60, n120 = 1, 0
		n240, n300 = 0, 1
	default: // нечетный отрицательный
		n60, n120 = 0, -1
		n240, n300 = -1, 0
	}

	return [6]Offset{
		{DX: 1, DY: 0, Angle: 0},
		{DX: n300, DY: 1, Angle: 300},
		{DX: n240, DY: 1, Angle: 240},
		{DX: -1, DY: 0, Angle: 180},
		{DX: n120, DY: -1, Angle: 120},
		{DX: n60, DY: -1, Angle: 60},
	}
}

// Shift возвращает индекс соседа по дельте, не проверяя границ карты.
func (t TileIndex) Shift(o Offset) TileIndex {
	return TileIndex{X: t.X + o.DX, Y: t.Y + o.DY}
}
