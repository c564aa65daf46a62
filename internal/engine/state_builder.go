package engine

import (
	"warren-server/internal/domain"
	"warren-server/internal/terrain"
	"warren-server/pkg/api"
)

// BuildState собирает снимок сессии для клиента. withTerrain = true только
// для ответа на INIT: карта после генерации не меняется (кроме флагов
// проходимости), гонять ее каждый ход незачем.
func (s *GameSession) BuildState(withTerrain bool) *api.ServerResponse {
	resp := &api.ServerResponse{
		Type:  "UPDATE",
		Turn:  s.State.TurnNumber,
		Phase: s.State.Phase.String(),
	}
	if withTerrain {
		resp.Type = "INIT"
		resp.Terrain = s.buildTerrain()
	}

	// HUD (UI-сток: клиент ничего не возвращает)
	resp.HUD = &api.HUDView{
		Score:           s.Player.Player.Score,
		Lives:           s.Player.Player.Lives,
		BabiesRemaining: s.Player.Player.BabiesRemaining,
		Status:          s.status,
	}
	s.status = ""

	// Сценические операции: полный PLACE активных акторов + накопленные
	// REMOVE. Клиент сам решает, создать объект или передвинуть.
	for _, a := range s.Actors {
		if a.Eliminated {
			continue
		}
		tile, ok := s.Registry.Get(a.Tile)
		if !ok {
			continue
		}
		resp.Scene = append(resp.Scene, api.SceneOp{
			Op:      "PLACE",
			ActorID: a.ID,
			Species: string(a.Species),
			PX:      tile.PX,
			PY:      tile.Height,
			PZ:      tile.PZ,
			Angle:   a.Facing,
		})
	}
	for _, id := range s.removed {
		resp.Scene = append(resp.Scene, api.SceneOp{Op: "REMOVE", ActorID: id})
	}
	s.removed = s.removed[:0]

	// Логи с прошлой рассылки
	if len(s.logs) > 0 {
		resp.Logs = s.logs
		s.logs = []api.LogEntry{}
	}

	// Финальный экран
	if s.State.Phase.Terminal() {
		resp.Type = "END"
		resp.End = &api.EndView{
			Won:             s.State.Phase == domain.PhaseWon,
			BabiesRemaining: s.Player.Player.BabiesRemaining,
			Message:         s.endMsg,
		}
	}

	return resp
}

func (s *GameSession) buildTerrain() []api.TileView {
	out := make([]api.TileView, 0, s.Registry.Len())
	s.Registry.Each(func(t *terrain.Tile) {
		out = append(out, api.TileView{
			X:        t.Index.X,
			Y:        t.Index.Y,
			PX:       t.PX,
			PZ:       t.PZ,
			Height:   t.Height,
			Passable: t.Passable,
			Water:    t.Water,
		})
	})
	return out
}
