package engine

import (
	"fmt"

	"warren-server/internal/domain"
	"warren-server/internal/systems"
	"warren-server/pkg/hexgrid"
	"warren-server/pkg/logger"
)

// advanceTurn - сердце машины ходов. Вызывается ТОЛЬКО после
// подтвержденного действия игрока: отклоненный шаг сюда не попадает,
// поэтому счетчик растет ровно на 1 за реальный ход.
func (s *GameSession) advanceTurn() {
	s.State.TurnNumber++

	// Кадансы хищников привязаны к счетчику ходов
	if s.State.TurnNumber%domain.FoxTurnCadence == 0 {
		s.movePredators(domain.SpeciesFox)
	}
	if s.State.TurnNumber%domain.BearTurnCadence == 0 {
		s.movePredators(domain.SpeciesBear)
	}

	s.resolveCollisions()

	if s.debugNeighbors {
		s.logNeighbors()
	}
}

// hunterTick двигает охотников по wall-clock таймеру. Счетчик ходов
// не трогает - это второй, независимый каданс.
func (s *GameSession) hunterTick() {
	s.movePredators(domain.SpeciesHunter)
	s.resolveCollisions()
}

// movePredators делает по одному жадному шагу каждым хищником вида.
func (s *GameSession) movePredators(species domain.Species) {
	for _, a := range s.Actors {
		if !a.IsPredator() || a.Species != species {
			continue
		}

		nb, ok := systems.ChooseMove(s.Registry, a.Tile, s.Player.Tile)
		if !ok {
			// Легальных ходов нет - хищник пропускает ход
			continue
		}
		a.Tile = nb.Index
		a.Facing = nb.Angle

		if s.debugPursuit {
			s.AddLog(fmt.Sprintf("debug: %s -> (%d,%d) %v°", a.Species, nb.Index.X, nb.Index.Y, nb.Angle), "INFO")
		}
	}
}

// resolveCollisions применяет правила столкновений на тайле игрока,
// затем проверку жизней. Порядок важен: Lost перекрывает Won,
// если оба случились в одном ходу.
func (s *GameSession) resolveCollisions() {
	playerTile := s.Player.Tile
	reachedBurrow := false

	for _, a := range s.Actors {
		if a.Eliminated || a == s.Player {
			continue
		}

		switch {
		case a.IsPredator() && a.Tile == playerTile:
			s.AddLog(systems.ApplyPredatorHit(s.Player, a), "DANGER")
			s.relocatePredator(a)

		case a.Kind == domain.KindCollectible && a.Species == domain.SpeciesBaby && a.Tile == playerTile:
			s.AddLog(systems.ApplyBabyPickup(s.Player, a), "SCORE")
			s.removed = append(s.removed, a.ID)

		case a.Kind == domain.KindCollectible && a.Species == domain.SpeciesBurrow && a.Tile == playerTile:
			reachedBurrow = true

		case a.Species == domain.SpeciesTrap:
			s.checkDangerZone(a, playerTile)
		}
	}

	if reachedBurrow {
		s.winGame()
	}

	// Проверка жизней перекрывает все остальные исходы этого хода
	if s.Player.Player.Lives <= 0 {
		s.loseGame()
	}
}

// checkDangerZone - бросок без памяти при каждом ВХОДЕ в зону капкана.
// Стояние внутри зоны повторных бросков не дает; выход и повторный
// вход - дает, независимо от прошлых визитов.
func (s *GameSession) checkDangerZone(trap *domain.Actor, playerTile hexgrid.TileIndex) {
	inside := systems.InDangerZone(trap.Tile, playerTile)
	wasInside := s.inZones[trap.ID]
	s.inZones[trap.ID] = inside

	if !inside || wasInside {
		return
	}
	if systems.TrapTriggered(s.Rng) {
		s.Player.Player.Lives -= domain.TrapLifePenalty
		s.AddLog("Капкан щелкнул совсем рядом! -1 жизнь", "DANGER")
	} else {
		s.AddLog("Здесь пахнет железом. Осторожнее.", "INFO")
	}
}

// relocatePredator уводит хищника на свежий тайл после контакта -
// иначе он продолжал бы снимать жизни каждый ход, стоя на игроке.
func (s *GameSession) relocatePredator(p *domain.Actor) {
	picker := systems.NewSpawnPicker(s.Registry, s.Rng)
	picker.Exclude(s.Player.Tile)

	tile, err := picker.PickBeyond(s.Player.Tile, s.Cfg.PredatorMinDist)
	if err != nil {
		// Некуда отселять - хищник остается, следующий ход снова ударит
		logger.Log.WithField("token", s.Token).Warn("no tile to relocate predator")
		return
	}
	p.Tile = tile
}

// winGame переводит партию в Won и начисляет бонус за оставшиеся ходы.
func (s *GameSession) winGame() {
	bonus := s.Cfg.MaxTurns - s.State.TurnNumber
	if bonus < 0 {
		bonus = 0
	}
	s.Player.Player.Score += bonus

	s.State.Phase = domain.PhaseWon
	if s.Player.Player.BabiesRemaining == 0 {
		s.endMsg = "Все крольчата дома! Нора спасена."
	} else {
		s.endMsg = fmt.Sprintf("Вы в норе, но %d крольчат остались в лесу...", s.Player.Player.BabiesRemaining)
	}
	s.AddLog(fmt.Sprintf("Бонус за скорость: +%d очков", bonus), "SCORE")
}

// loseGame переводит партию в Lost.
func (s *GameSession) loseGame() {
	s.State.Phase = domain.PhaseLost
	s.endMsg = "Жизни кончились. Лес победил."
}

// logNeighbors - отладочный дамп легальных соседей игрока (ToggleDebugA).
func (s *GameSession) logNeighbors() {
	for _, nb := range systems.Neighbors(s.Registry, s.Player.Tile) {
		s.AddLog(fmt.Sprintf("debug: сосед (%d,%d) %v°", nb.Index.X, nb.Index.Y, nb.Angle), "INFO")
	}
}
