package engine

import (
	"fmt"
	"math/rand"
	"time"

	"warren-server/internal/domain"
	"warren-server/internal/engine/handlers"
	"warren-server/internal/terrain"
	"warren-server/pkg/api"
	"warren-server/pkg/logger"
	"warren-server/pkg/utils"
)

// GameSession - одна изолированная партия одного клиента. Владеет реестром
// тайлов, акторами и GameState; больше их не мутирует никто.
//
// Два независимых источника событий - ввод игрока и wall-clock тик
// охотника - сходятся в один CommandChan и обрабатываются одной горутиной.
// Никаких замков на игровом состоянии не нужно.
type GameSession struct {
	Token string
	Cfg   Config
	Seed  int64

	Registry *terrain.Registry
	Player   *domain.Actor
	Actors   []*domain.Actor
	State    domain.GameState
	Rng      *rand.Rand

	CommandChan chan domain.InternalCommand

	service *GameService

	// Накопители между рассылками
	logs    []api.LogEntry
	removed []string // ID акторов, убранных со сцены с прошлого ответа
	status  string
	endMsg  string

	// Тумблеры отладки (ToggleDebugA/B)
	debugNeighbors bool
	debugPursuit   bool

	// Для правила "бросок при входе в зону": помним, в чьих зонах игрок
	// стоял в прошлый ход, чтобы отличать вход от стояния
	inZones map[string]bool

	stop chan struct{}
}

// NewGameSession строит партию. Ошибка сборки мира - аналог
// StartupAssetFailure: сессия не создается вовсе.
func NewGameSession(token string, cfg Config, service *GameService) (*GameSession, error) {
	seed := cfg.Seed ^ utils.StringToSeed(token)
	rng := rand.New(rand.NewSource(seed))

	reg, player, actors, err := buildSessionWorld(cfg, rng, seed)
	if err != nil {
		return nil, fmt.Errorf("build session world: %w", err)
	}

	s := &GameSession{
		Token:       token,
		Cfg:         cfg,
		Seed:        seed,
		Registry:    reg,
		Player:      player,
		Actors:      actors,
		Rng:         rng,
		CommandChan: make(chan domain.InternalCommand, 100),
		service:     service,
		logs:        []api.LogEntry{},
		inZones:     make(map[string]bool),
		stop:        make(chan struct{}),
	}
	return s, nil
}

// Run запускает цикл сессии: единственный потребитель CommandChan.
// Тикер охотника - второй производитель наравне с вводом клиента.
func (s *GameSession) Run() {
	logger.Log.WithField("token", s.Token).Info("Session loop started")

	ticker := time.NewTicker(s.Cfg.HunterTick)
	defer ticker.Stop()

	for {
		select {
		case cmd := <-s.CommandChan:
			s.handleCommand(cmd)
		case <-ticker.C:
			s.handleCommand(domain.InternalCommand{Action: domain.ActionHunterTick})
		case <-s.stop:
			logger.Log.WithField("token", s.Token).Info("Session loop stopped")
			return
		}
	}
}

// Stop завершает цикл сессии.
func (s *GameSession) Stop() {
	close(s.stop)
}

// handleCommand выполняет одну команду. Вызывается только из Run
// (или напрямую из тестов - там горутина не нужна).
func (s *GameSession) handleCommand(cmd domain.InternalCommand) {
	switch cmd.Action {
	case domain.ActionInit:
		s.executeHandler(cmd)
		s.publish(true)
		return

	case domain.ActionDebugA:
		s.debugNeighbors = !s.debugNeighbors
		s.status = fmt.Sprintf("debug: дамп соседей %s", onOff(s.debugNeighbors))
		s.publish(false)
		return

	case domain.ActionDebugB:
		s.debugPursuit = !s.debugPursuit
		s.status = fmt.Sprintf("debug: трассировка хищников %s", onOff(s.debugPursuit))
		s.publish(false)
		return
	}

	// Терминальная фаза: машина ходов заперта, ввод и тики игнорируются
	if s.State.Phase.Terminal() {
		return
	}

	switch cmd.Action {
	case domain.ActionHunterTick:
		s.hunterTick()
		s.publish(false)

	case domain.ActionMove, domain.ActionConfirm:
		result := s.executeHandler(cmd)
		if result.Spent {
			s.advanceTurn()
		}
		s.publish(false)
	}
}

// executeHandler прогоняет команду через зарегистрированный хендлер.
func (s *GameSession) executeHandler(cmd domain.InternalCommand) handlers.Result {
	handler, ok := s.service.actionHandlers[cmd.Action]
	if !ok {
		return handlers.EmptyResult()
	}

	ctx := handlers.Context{
		Registry: s.Registry,
		Player:   s.Player,
		Actors:   s.Actors,
		Rng:      s.Rng,
	}

	result, err := handler(ctx, cmd.Payload)
	if err != nil {
		logger.Log.WithError(err).WithField("token", s.Token).Warn("handler rejected command")
		return handlers.EmptyResult()
	}

	if result.Msg != "" {
		s.AddLog(result.Msg, result.MsgType)
	}
	return result
}

// AddLog добавляет запись в буфер логов текущей рассылки.
func (s *GameSession) AddLog(text, logType string) {
	if logType == "" {
		logType = "INFO"
	}
	s.logs = append(s.logs, api.LogEntry{
		ID:        utils.GenerateID(),
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	})
}

// publish рассылает снимок состояния подписчику сессии.
func (s *GameSession) publish(withTerrain bool) {
	state := s.BuildState(withTerrain)
	s.service.Hub.SendTo(s.Token, *state)
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}
