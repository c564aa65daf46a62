package domain

import "encoding/json"

// InternalCommand - команда внутри движка. Token - ID клиента-владельца
// сессии; системные команды (тик охотника) идут с пустым токеном.
type InternalCommand struct {
	Action  ActionType
	Token   string
	Payload json.RawMessage
}
