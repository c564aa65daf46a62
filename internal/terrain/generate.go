// Генерация острова: детерминированный 2D-шум по мировым координатам тайла,
// степень 1.5 прижимает рельеф к низинам, все ниже уровня воды - непроходимо.
package terrain

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"warren-server/pkg/hexgrid"
)

// Noise2D - внешний источник шума (спрятан за интерфейсом для тестов).
// opensimplex.Noise реализует его напрямую.
type Noise2D interface {
	Eval2(x, y float64) float64
}

// GenConfig хранит параметры генерации карты.
type GenConfig struct {
	Radius     float64 // мировой радиус: тайл попадает на карту при ||ToWorld|| < Radius
	Frequency  float64 // масштаб шума
	HeightExp  float64 // степень, прижимающая рельеф к низинам
	MaxHeight  float64
	WaterLevel float64 // высота, ниже которой тайл - вода (непроходим)
}

// DefaultGenConfig возвращает параметры, близкие к оригинальной карте.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Radius:     12,
		Frequency:  0.25,
		HeightExp:  1.5,
		MaxHeight:  2.0,
		WaterLevel: 0.35,
	}
}

// Generate строит реестр тайлов. Никогда не падает: источник шума тотален.
func Generate(cfg GenConfig, noise Noise2D) *Registry {
	reg := newRegistry(cfg.Radius)

	// Диапазон индексов, гарантированно накрывающий круг радиуса Radius
	nx := int(math.Ceil(cfg.Radius/hexgrid.HexW)) + 1
	ny := int(math.Ceil(cfg.Radius/hexgrid.HexH)) + 1

	for y := -ny; y <= ny; y++ {
		for x := -nx; x <= nx; x++ {
			px, pz := hexgrid.ToWorld(x, y)
			if math.Hypot(px, pz) >= cfg.Radius {
				continue
			}

			// Нормализованный шум [0,1], затем прижимаем к низинам
			raw := (noise.Eval2(px*cfg.Frequency, pz*cfg.Frequency) + 1) / 2
			height := math.Pow(raw, cfg.HeightExp) * cfg.MaxHeight

			water := height < cfg.WaterLevel
			reg.add(&Tile{
				Index:    hexgrid.TileIndex{X: x, Y: y},
				PX:       px,
				PZ:       pz,
				Height:   height,
				Passable: !water,
				Water:    water,
			})
		}
	}

	reg.seal()
	return reg
}

// GenerateSeeded - удобная обертка: opensimplex по сиду.
// Один сид = одна и та же карта, что нужно и тестам, и дебагу.
func GenerateSeeded(cfg GenConfig, seed int64) *Registry {
	return Generate(cfg, opensimplex.New(seed))
}
