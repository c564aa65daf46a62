package systems

import (
	"warren-server/internal/terrain"
)

// flatNoise дает одинаковую высоту по всей карте (вся суша при v=0)
type flatNoise struct{ v float64 }

func (f flatNoise) Eval2(x, y float64) float64 { return f.v }

// createTestRegistry строит небольшой остров без воды.
func createTestRegistry() *terrain.Registry {
	cfg := terrain.DefaultGenConfig()
	cfg.Radius = 10
	return terrain.Generate(cfg, flatNoise{v: 0})
}
