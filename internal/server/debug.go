package server

import (
	"encoding/json"
	"net/http"

	"warren-server/internal/engine"
	"warren-server/internal/terrain"
	"warren-server/pkg/api"
)

// DebugHandler предоставляет доступ к внутреннему состоянию движка
type DebugHandler struct {
	Service *engine.GameService
}

func NewDebugHandler(s *engine.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/sessions", h.handleListSessions)
	mux.HandleFunc("/debug/actors", h.handleDumpActors)
	mux.HandleFunc("/debug/terrain", h.handleDumpTerrain)
}

// /debug/sessions - список активных партий
func (h *DebugHandler) handleListSessions(w http.ResponseWriter, r *http.Request) {
	type SessionSummary struct {
		Token      string `json:"token"`
		Seed       int64  `json:"seed"`
		Turn       int    `json:"turn"`
		Phase      string `json:"phase"`
		ActorCount int    `json:"actor_count"`
		Tiles      int    `json:"tiles"`
	}

	var summary []SessionSummary

	// Снимок без остановки игровых горутин: значения могут быть
	// на ход позади, для дебага сойдет.
	for _, session := range h.Service.SnapshotSessions() {
		summary = append(summary, SessionSummary{
			Token:      session.Token,
			Seed:       session.Seed,
			Turn:       session.State.TurnNumber,
			Phase:      session.State.Phase.String(),
			ActorCount: len(session.Actors),
			Tiles:      session.Registry.Len(),
		})
	}

	writeJSON(w, summary)
}

// /debug/actors?token=abc - дамп всех актеров партии (включая скрытые поля)
func (h *DebugHandler) handleDumpActors(w http.ResponseWriter, r *http.Request) {
	session := h.Service.GetSession(r.URL.Query().Get("token"))
	if session == nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	writeJSON(w, session.Actors)
}

// /debug/terrain?token=abc - дамп рельефа партии
func (h *DebugHandler) handleDumpTerrain(w http.ResponseWriter, r *http.Request) {
	session := h.Service.GetSession(r.URL.Query().Get("token"))
	if session == nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	tiles := make([]api.TileView, 0, session.Registry.Len())
	session.Registry.Each(func(tile *terrain.Tile) {
		tiles = append(tiles, api.TileView{
			X:        tile.Index.X,
			Y:        tile.Index.Y,
			PX:       tile.PX,
			PZ:       tile.PZ,
			Height:   tile.Height,
			Passable: tile.Passable,
			Water:    tile.Water,
		})
	})
	writeJSON(w, tiles)
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Разрешаем запросы с любого источника (нужно для локального debug_client.html)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	// Пустой результат - [] вместо null
	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
