package engine

import (
	"math/rand"
	"testing"

	"warren-server/internal/domain"
	"warren-server/internal/terrain"
	"warren-server/pkg/api"
	"warren-server/pkg/hexgrid"
)

// flatNoise дает предсказуемый рельеф: v=0 - весь остров суша.
type flatNoise struct{ v float64 }

func (f flatNoise) Eval2(x, y float64) float64 { return f.v }

// newTestSession собирает минимальную партию вручную: плоский остров,
// игрок в центре и больше никого. Акторов тесты добавляют сами, чтобы
// сцена была полностью детерминированной.
func newTestSession(t *testing.T) *GameSession {
	t.Helper()

	cfg := NewConfig()
	cfg.Seed = 42

	genCfg := terrain.DefaultGenConfig()
	genCfg.Radius = 10
	reg := terrain.Generate(genCfg, flatNoise{0})

	player := domain.NewActor(domain.KindPlayer, domain.SpeciesRabbit, hexgrid.TileIndex{X: 0, Y: 0})
	player.Player = &domain.PlayerState{
		Lives:           cfg.StartLives,
		BabiesRemaining: cfg.BabyCount,
	}

	return &GameSession{
		Token:       "test-token",
		Cfg:         cfg,
		Seed:        42,
		Registry:    reg,
		Player:      player,
		Actors:      []*domain.Actor{player},
		Rng:         rand.New(rand.NewSource(42)),
		CommandChan: make(chan domain.InternalCommand, 100),
		service:     NewService(cfg),
		logs:        []api.LogEntry{},
		inZones:     make(map[string]bool),
		stop:        make(chan struct{}),
	}
}

// addActor подселяет актора в партию.
func addActor(s *GameSession, kind domain.ActorKind, species domain.Species, x, y int) *domain.Actor {
	a := domain.NewActor(kind, species, hexgrid.TileIndex{X: x, Y: y})
	s.Actors = append(s.Actors, a)
	return a
}

// move шлет команду движения напрямую в обработчик (без горутины Run).
func move(s *GameSession, dir string) {
	s.handleCommand(domain.InternalCommand{
		Action:  domain.ActionMove,
		Token:   s.Token,
		Payload: []byte(`{"dir":"` + dir + `"}`),
	})
}

// confirm - ход на месте.
func confirm(s *GameSession) {
	s.handleCommand(domain.InternalCommand{Action: domain.ActionConfirm, Token: s.Token})
}
