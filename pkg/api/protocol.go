package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse - корневой объект, который сервер шлет клиенту после
// каждой мутации состояния. Клиент (браузерный рендерер) не считает правил:
// он только исполняет сценические операции и обновляет HUD.
type ServerResponse struct {
	// Type тип сообщения: "INIT" (первый снимок, несет Terrain),
	// "UPDATE" (очередной ход) или "END" (терминальная фаза, несет End).
	Type string `json:"type"`

	// Turn текущий номер хода. Не убывает; растет ровно на 1
	// за подтвержденный ход.
	Turn int `json:"turn"`

	// Phase фаза партии: PLAYING, WON, LOST.
	Phase string `json:"phase"`

	// HUD значения для панели интерфейса (fire-and-forget, клиент
	// ничего не возвращает).
	HUD *HUDView `json:"hud,omitempty"`

	// Scene операции для рендерера: поставить/убрать/развернуть актора.
	Scene []SceneOp `json:"scene,omitempty"`

	// Terrain полный снимок карты. Отправляется один раз, в ответе INIT:
	// после этого карта меняется только флагами проходимости.
	Terrain []TileView `json:"terrain,omitempty"`

	// Logs новые сообщения с прошлого хода.
	Logs []LogEntry `json:"logs,omitempty"`

	// End экран окончания партии (только при Type == "END").
	End *EndView `json:"end,omitempty"`
}

// HUDView - значения для панели счета.
type HUDView struct {
	Score           int    `json:"score"`
	Lives           int    `json:"lives"`
	BabiesRemaining int    `json:"babiesRemaining"`
	Status          string `json:"status,omitempty"`
}

// SceneOp - одна операция для рендерера.
// Op: "PLACE" (создать/передвинуть), "REMOVE" (убрать), "FACE" (развернуть).
type SceneOp struct {
	Op      string  `json:"op"`
	ActorID string  `json:"actorId"`
	Species string  `json:"species,omitempty"`
	PX      float64 `json:"px"`
	PY      float64 `json:"py"` // высота тайла; рендер ставит актора на рельеф
	PZ      float64 `json:"pz"`
	Angle   float64 `json:"angle,omitempty"`
}

// TileView - DTO одного тайла карты для построения меша.
type TileView struct {
	X        int     `json:"x"`
	Y        int     `json:"y"`
	PX       float64 `json:"px"`
	PZ       float64 `json:"pz"`
	Height   float64 `json:"height"`
	Passable bool    `json:"passable"`
	Water    bool    `json:"water"`
}

// EndView - данные финального экрана.
type EndView struct {
	Won             bool   `json:"won"`
	BabiesRemaining int    `json:"babiesRemaining"`
	Message         string `json:"message"`
}

// LogEntry представляет одну запись в игровом логе.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, DANGER, SCORE, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand - корневой объект всех сообщений от клиента.
type ClientCommand struct {
	// Token ID клиента. Обязателен только в первом сообщении (LOGIN).
	Token string `json:"token,omitempty"`

	// Action: INIT, MOVE, CONFIRM, DEBUG_A, DEBUG_B.
	Action string `json:"action"`

	// Payload зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// MovePayload - нормализованный символ направления для MOVE.
type MovePayload struct {
	Dir string `json:"dir"` // LEFT, RIGHT, UP, DOWN
}
