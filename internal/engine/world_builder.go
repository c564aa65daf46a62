package engine

import (
	"fmt"
	"math/rand"

	"warren-server/internal/domain"
	"warren-server/internal/systems"
	"warren-server/internal/terrain"
	"warren-server/pkg/hexgrid"
)

// buildSessionWorld генерирует остров и расставляет всех акторов партии.
// Любой отказ спавна (кончились легальные тайлы) фатален для сборки
// сцены: частичную партию не показываем.
func buildSessionWorld(cfg Config, rng *rand.Rand, seed int64) (*terrain.Registry, *domain.Actor, []*domain.Actor, error) {
	genCfg := terrain.DefaultGenConfig()
	genCfg.Radius = cfg.Radius
	reg := terrain.GenerateSeeded(genCfg, seed)

	picker := systems.NewSpawnPicker(reg, rng)

	// 1. Игрок: центр карты, если он на суше, иначе случайный тайл
	start := hexgrid.TileIndex{X: 0, Y: 0}
	if tile, ok := reg.Get(start); ok && tile.Passable {
		picker.Exclude(start)
	} else {
		var err error
		if start, err = picker.Pick(); err != nil {
			return nil, nil, nil, fmt.Errorf("spawn player: %w", err)
		}
	}

	player := domain.NewActor(domain.KindPlayer, domain.SpeciesRabbit, start)
	player.Player = &domain.PlayerState{
		Lives:           cfg.StartLives,
		BabiesRemaining: cfg.BabyCount,
	}
	actors := []*domain.Actor{player}

	// 2. Блокирующие декорации: валуны и деревья закрывают свои тайлы
	for i := 0; i < cfg.RockCount; i++ {
		tile, err := picker.Pick()
		if err != nil {
			return nil, nil, nil, fmt.Errorf("spawn rock: %w", err)
		}
		species := domain.SpeciesRock
		if i%2 == 1 {
			species = domain.SpeciesTree
		}
		rock := domain.NewActor(domain.KindHazard, species, tile)
		systems.ClaimTile(reg, rock)
		actors = append(actors, rock)
	}

	// 3. Капканы (тайл остается проходимым - в этом и опасность)
	for i := 0; i < cfg.TrapCount; i++ {
		tile, err := picker.PickBeyond(start, domain.TrapRadius)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("spawn trap: %w", err)
		}
		actors = append(actors, domain.NewActor(domain.KindHazard, domain.SpeciesTrap, tile))
	}

	// 4. Крольчата
	for i := 0; i < cfg.BabyCount; i++ {
		tile, err := picker.Pick()
		if err != nil {
			return nil, nil, nil, fmt.Errorf("spawn baby: %w", err)
		}
		actors = append(actors, domain.NewActor(domain.KindCollectible, domain.SpeciesBaby, tile))
	}

	// 5. Нора - подальше от старта, иначе партия тривиальна
	burrowTile, err := picker.PickBeyond(start, cfg.Radius*0.6)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("spawn burrow: %w", err)
	}
	actors = append(actors, domain.NewActor(domain.KindCollectible, domain.SpeciesBurrow, burrowTile))

	// 6. Хищники: не ближе PredatorMinDist к игроку
	spawnPredator := func(species domain.Species, n int) error {
		for i := 0; i < n; i++ {
			tile, err := picker.PickBeyond(start, cfg.PredatorMinDist)
			if err != nil {
				return fmt.Errorf("spawn %s: %w", species, err)
			}
			actors = append(actors, domain.NewActor(domain.KindPredator, species, tile))
		}
		return nil
	}
	if err := spawnPredator(domain.SpeciesFox, cfg.FoxCount); err != nil {
		return nil, nil, nil, err
	}
	if err := spawnPredator(domain.SpeciesBear, cfg.BearCount); err != nil {
		return nil, nil, nil, err
	}
	if err := spawnPredator(domain.SpeciesHunter, cfg.HunterCount); err != nil {
		return nil, nil, nil, err
	}

	return reg, player, actors, nil
}
