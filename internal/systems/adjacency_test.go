package systems

import (
	"testing"

	"warren-server/internal/terrain"
	"warren-server/pkg/hexgrid"
)

func TestNeighborsCountBound(t *testing.T) {
	reg := createTestRegistry()

	reg.Each(func(tile *terrain.Tile) {
		n := Neighbors(reg, tile.Index)
		if len(n) > 6 {
			t.Errorf("tile (%d,%d): %d neighbors", tile.Index.X, tile.Index.Y, len(n))
		}
	})

	// В центре карты без препятствий соседей ровно шесть
	n := Neighbors(reg, hexgrid.TileIndex{X: 0, Y: 0})
	if len(n) != 6 {
		t.Errorf("origin: expected 6 neighbors, got %d", len(n))
	}
}

func TestNeighborsReciprocalOnMap(t *testing.T) {
	reg := createTestRegistry()

	reg.Each(func(tile *terrain.Tile) {
		if !tile.Passable {
			return
		}
		for _, nb := range Neighbors(reg, tile.Index) {
			back := false
			for _, rev := range Neighbors(reg, nb.Index) {
				if rev.Index == tile.Index {
					back = true
					break
				}
			}
			if !back {
				t.Errorf("adjacency not reciprocal: (%d,%d) -> (%d,%d)",
					tile.Index.X, tile.Index.Y, nb.Index.X, nb.Index.Y)
			}
		}
	})
}

func TestNeighborsFilterImpassable(t *testing.T) {
	reg := createTestRegistry()
	origin := hexgrid.TileIndex{X: 0, Y: 0}

	blocked := hexgrid.TileIndex{X: 1, Y: 0}
	reg.SetPassable(blocked, false)

	for _, nb := range Neighbors(reg, origin) {
		if nb.Index == blocked {
			t.Error("impassable tile listed as neighbor")
		}
	}
	if len(Neighbors(reg, origin)) != 5 {
		t.Errorf("expected 5 neighbors after blocking one, got %d", len(Neighbors(reg, origin)))
	}
}

func TestNeighborsDeterministicOrder(t *testing.T) {
	reg := createTestRegistry()
	origin := hexgrid.TileIndex{X: 0, Y: 0}

	first := Neighbors(reg, origin)
	for i := 0; i < 10; i++ {
		again := Neighbors(reg, origin)
		if len(again) != len(first) {
			t.Fatal("neighbor count changed between calls")
		}
		for j := range first {
			if first[j] != again[j] {
				t.Fatal("neighbor order changed between calls")
			}
		}
	}
}

func TestNeighborsAtMapEdge(t *testing.T) {
	reg := createTestRegistry()

	// Ищем тайл у края: хотя бы один сосед за картой
	edgeFound := false
	reg.Each(func(tile *terrain.Tile) {
		if len(Neighbors(reg, tile.Index)) < 6 {
			edgeFound = true
		}
	})
	if !edgeFound {
		t.Error("expected edge tiles with fewer than 6 neighbors")
	}
}
