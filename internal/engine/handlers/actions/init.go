package actions

import "warren-server/internal/engine/handlers"

func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{
		Msg:     "Соберите крольчат и доберитесь до норы. Берегитесь лис!",
		MsgType: "INFO",
	}, nil
}
