package handlers

import (
	"encoding/json"
	"math/rand"

	"warren-server/internal/domain"
	"warren-server/internal/terrain"
)

// Context передает хендлеру состояние сессии.
// Мы передаем ссылки, чтобы хендлер мог менять состояние (мутировать данные).
type Context struct {
	Registry *terrain.Registry
	Player   *domain.Actor
	Actors   []*domain.Actor
	Rng      *rand.Rand
}

// Result - результат выполнения команды.
// Хендлер НЕ пишет в логи сессии напрямую, он возвращает данные.
type Result struct {
	Msg     string // Текст лога
	MsgType string // Тип лога (INFO, DANGER, SCORE, ERROR)

	// Spent = true, если действие тратит ход. Отклоненный шаг ход
	// НЕ тратит - счетчик ходов двигают только подтвержденные действия.
	Spent bool
}

// HandlerFunc - это контракт для любой команды (MOVE, CONFIRM, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}
