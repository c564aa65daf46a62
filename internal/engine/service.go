package engine

import (
	"sync"

	"warren-server/internal/domain"
	"warren-server/internal/engine/handlers"
	"warren-server/internal/engine/handlers/actions"
	"warren-server/internal/network"
	"warren-server/pkg/api"
	"warren-server/pkg/logger"
)

// GameService управляет сессиями: одна сессия на клиента, игры изолированы.
type GameService struct {
	Cfg Config
	Hub *network.Broadcaster

	mu       sync.RWMutex
	Sessions map[string]*GameSession

	actionHandlers map[domain.ActionType]handlers.HandlerFunc
}

func NewService(cfg Config) *GameService {
	s := &GameService{
		Cfg:            cfg,
		Hub:            network.NewBroadcaster(),
		Sessions:       make(map[string]*GameSession),
		actionHandlers: make(map[domain.ActionType]handlers.HandlerFunc),
	}
	s.registerHandlers()
	return s
}

func (s *GameService) registerHandlers() {
	s.actionHandlers[domain.ActionMove] = handlers.WithPayload(actions.HandleMove)
	s.actionHandlers[domain.ActionConfirm] = handlers.WithEmptyPayload(actions.HandleConfirm)
	s.actionHandlers[domain.ActionInit] = handlers.WithEmptyPayload(actions.HandleInit)
}

// SnapshotSessions возвращает срез активных сессий.
// Нужен debug-эндпоинтам; содержимое сессий читать только как снимок.
func (s *GameService) SnapshotSessions() []*GameSession {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*GameSession, 0, len(s.Sessions))
	for _, session := range s.Sessions {
		out = append(out, session)
	}
	return out
}

// GetSession возвращает сессию клиента, если она есть.
func (s *GameService) GetSession(token string) *GameSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Sessions[token]
}

// GetOrCreateSession находит или создает партию для клиента.
// Сборка мира может отказать (нет тайлов для спавна) - это фатально
// для подключения, частичную сцену не показываем.
func (s *GameService) GetOrCreateSession(token string) (*GameSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.Sessions[token]; ok {
		return session, nil
	}

	session, err := NewGameSession(token, s.Cfg, s)
	if err != nil {
		return nil, err
	}
	s.Sessions[token] = session
	go session.Run()

	logger.Log.WithField("token", token).Infof("🐇 New session (seed %d, %d tiles)", session.Seed, session.Registry.Len())
	return session, nil
}

// RemoveSession останавливает и удаляет партию клиента.
func (s *GameService) RemoveSession(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.Sessions[token]; ok {
		session.Stop()
		delete(s.Sessions, token)
		logger.Log.WithField("token", token).Info("Session removed")
	}
}

// Shutdown останавливает все партии. Вызывается при выключении сервера.
func (s *GameService) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, session := range s.Sessions {
		session.Stop()
		delete(s.Sessions, token)
	}
	logger.Log.Info("All sessions stopped")
}

// SessionCount возвращает количество активных партий.
func (s *GameService) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.Sessions)
}

// ProcessCommand принимает команду от внешнего мира (WebSocket) и
// направляет ее в сессию клиента. Валидация payload происходит уже
// в хендлере, внутри цикла сессии.
func (s *GameService) ProcessCommand(externalCmd api.ClientCommand) {
	actionType := domain.ParseAction(externalCmd.Action)
	if actionType == domain.ActionUnknown {
		logger.Log.Warnf("Unknown action: %s", externalCmd.Action)
		return
	}

	session := s.GetSession(externalCmd.Token)
	if session == nil {
		logger.Log.WithField("token", externalCmd.Token).Warn("Command for missing session")
		return
	}

	select {
	case session.CommandChan <- domain.InternalCommand{
		Action:  actionType,
		Token:   externalCmd.Token,
		Payload: externalCmd.Payload,
	}:
	default:
		// Канал забит - клиент спамит быстрее, чем цикл успевает
		logger.Log.WithField("token", externalCmd.Token).Warn("Command channel full, dropping")
	}
}
