package actions

import (
	"warren-server/internal/domain"
	"warren-server/internal/engine/handlers"
	"warren-server/internal/systems"
	"warren-server/pkg/api"
)

func HandleMove(ctx handlers.Context, p api.MovePayload) (handlers.Result, error) {
	angle, ok := domain.InputSymbol(p.Dir).DirectionAngle()
	if !ok {
		return handlers.EmptyResult(), nil
	}

	res := systems.ApplyMove(ctx.Registry, ctx.Player, angle)

	if res.Moved {
		// Подтвержденный ход: машина ходов двинет счетчик и хищников
		return handlers.Result{Spent: true}, nil
	}

	// Отказ тихий: позиция и счетчик ходов не меняются,
	// игроку только подсказываем причину
	if res.OffMap {
		return handlers.Result{Msg: "Дальше только море.", MsgType: "INFO"}, nil
	}
	return handlers.Result{Msg: "Путь прегражден.", MsgType: "INFO"}, nil
}
