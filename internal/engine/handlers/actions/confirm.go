package actions

import (
	"warren-server/internal/engine/handlers"
)

// HandleConfirm - остаться на месте. В отличие от отклоненного шага
// это осознанное действие, и оно тратит ход.
func HandleConfirm(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{
		Msg:     "Вы затаились на месте.",
		MsgType: "INFO",
		Spent:   true,
	}, nil
}
