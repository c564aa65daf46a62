package terrain

import (
	"sort"

	"warren-server/pkg/hexgrid"
)

// Tile - один тайл острова. Создается один раз при генерации; после этого
// Registry меняет только флаг Passable (и только вниз: закрыть можно,
// открыть обратно нельзя).
type Tile struct {
	Index    hexgrid.TileIndex `json:"index"`
	PX       float64           `json:"px"`
	PZ       float64           `json:"pz"`
	Height   float64           `json:"height"`
	Passable bool              `json:"passable"`
	Water    bool              `json:"water"`
}

// Registry - единственный владелец тайлов карты.
// "Нет в реестре" и "есть, но непроходим" - разные ситуации:
// первое значит "за краем карты".
type Registry struct {
	tiles  map[int]*Tile
	keys   []int // отсортированные ключи для детерминированного обхода
	radius float64
}

func newRegistry(radius float64) *Registry {
	return &Registry{
		tiles:  make(map[int]*Tile),
		radius: radius,
	}
}

func (r *Registry) add(t *Tile) {
	key := t.Index.Key()
	if _, exists := r.tiles[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.tiles[key] = t
}

func (r *Registry) seal() {
	sort.Ints(r.keys)
}

// Get возвращает тайл по индексу. Второе значение false = за краем карты.
func (r *Registry) Get(idx hexgrid.TileIndex) (*Tile, bool) {
	t, ok := r.tiles[idx.Key()]
	return t, ok
}

// SetPassable опускает флаг проходимости (камень или дерево заняли тайл).
// Поднять флаг обратно нельзя - возвращает false при такой попытке
// и при отсутствии тайла.
func (r *Registry) SetPassable(idx hexgrid.TileIndex, passable bool) bool {
	t, ok := r.tiles[idx.Key()]
	if !ok {
		return false
	}
	if passable && !t.Passable {
		return false
	}
	t.Passable = passable
	return true
}

// Radius возвращает мировой радиус карты.
func (r *Registry) Radius() float64 {
	return r.radius
}

// Len возвращает количество тайлов.
func (r *Registry) Len() int {
	return len(r.tiles)
}

// Each обходит тайлы в детерминированном порядке (по возрастанию ключа).
func (r *Registry) Each(fn func(*Tile)) {
	for _, key := range r.keys {
		fn(r.tiles[key])
	}
}

// PassableTiles возвращает срез всех проходимых тайлов (детерминированный
// порядок). Используется для спавна: один раз собираем кандидатов вместо
// бесконечного цикла "выбери случайный и проверь".
func (r *Registry) PassableTiles() []hexgrid.TileIndex {
	out := make([]hexgrid.TileIndex, 0, len(r.keys))
	for _, key := range r.keys {
		if t := r.tiles[key]; t.Passable {
			out = append(out, t.Index)
		}
	}
	return out
}
