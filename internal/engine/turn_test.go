package engine

import (
	"testing"

	"warren-server/internal/domain"
	"warren-server/pkg/hexgrid"
)

func TestTurnAdvancesOnlyOnSpentActions(t *testing.T) {
	t.Run("accepted move advances turn by one", func(t *testing.T) {
		s := newTestSession(t)

		move(s, "LEFT") // 0° -> (1,0)

		if s.State.TurnNumber != 1 {
			t.Fatalf("turn = %d, want 1", s.State.TurnNumber)
		}
		if s.Player.Tile != (hexgrid.TileIndex{X: 1, Y: 0}) {
			t.Errorf("player tile = %v, want (1,0)", s.Player.Tile)
		}
	})

	t.Run("confirm spends turn without moving", func(t *testing.T) {
		s := newTestSession(t)

		confirm(s)

		if s.State.TurnNumber != 1 {
			t.Fatalf("turn = %d, want 1", s.State.TurnNumber)
		}
		if s.Player.Tile != (hexgrid.TileIndex{X: 0, Y: 0}) {
			t.Errorf("player moved on confirm: %v", s.Player.Tile)
		}
	})

	t.Run("rejected move leaves turn untouched", func(t *testing.T) {
		s := newTestSession(t)
		s.Registry.SetPassable(hexgrid.TileIndex{X: 1, Y: 0}, false)

		move(s, "LEFT")

		if s.State.TurnNumber != 0 {
			t.Fatalf("rejected move advanced turn to %d", s.State.TurnNumber)
		}
		if s.Player.Tile != (hexgrid.TileIndex{X: 0, Y: 0}) {
			t.Errorf("player moved onto blocked tile: %v", s.Player.Tile)
		}
	})

	t.Run("invalid payload leaves turn untouched", func(t *testing.T) {
		s := newTestSession(t)

		move(s, "SIDEWAYS")

		if s.State.TurnNumber != 0 {
			t.Fatalf("invalid dir advanced turn to %d", s.State.TurnNumber)
		}
	})
}

func TestFoxMovesEverySecondTurn(t *testing.T) {
	s := newTestSession(t)
	fox := addActor(s, domain.KindPredator, domain.SpeciesFox, 4, 0)

	confirm(s) // ход 1: лиса стоит
	if fox.Tile != (hexgrid.TileIndex{X: 4, Y: 0}) {
		t.Fatalf("fox moved on odd turn: %v", fox.Tile)
	}

	confirm(s) // ход 2: лиса делает жадный шаг к игроку
	if fox.Tile != (hexgrid.TileIndex{X: 3, Y: 0}) {
		t.Fatalf("fox tile after turn 2 = %v, want (3,0)", fox.Tile)
	}
}

func TestBearMovesEveryThirdTurn(t *testing.T) {
	s := newTestSession(t)
	bear := addActor(s, domain.KindPredator, domain.SpeciesBear, -4, 0)

	confirm(s)
	confirm(s)
	if bear.Tile != (hexgrid.TileIndex{X: -4, Y: 0}) {
		t.Fatalf("bear moved before turn 3: %v", bear.Tile)
	}

	confirm(s)
	if bear.Tile != (hexgrid.TileIndex{X: -3, Y: 0}) {
		t.Fatalf("bear tile after turn 3 = %v, want (-3,0)", bear.Tile)
	}
}

func TestHunterTickMovesWithoutSpendingTurn(t *testing.T) {
	s := newTestSession(t)
	hunter := addActor(s, domain.KindPredator, domain.SpeciesHunter, 4, 0)

	s.handleCommand(domain.InternalCommand{Action: domain.ActionHunterTick})

	if hunter.Tile != (hexgrid.TileIndex{X: 3, Y: 0}) {
		t.Fatalf("hunter tile = %v, want (3,0)", hunter.Tile)
	}
	if s.State.TurnNumber != 0 {
		t.Errorf("hunter tick advanced turn to %d", s.State.TurnNumber)
	}
}

func TestPredatorContactPenaltyAndRelocation(t *testing.T) {
	s := newTestSession(t)
	fox := addActor(s, domain.KindPredator, domain.SpeciesFox, 1, 0)

	confirm(s)
	confirm(s) // ход 2: лиса шагает (1,0) -> (0,0) и бьет игрока

	if got := s.Player.Player.Lives; got != s.Cfg.StartLives-domain.FoxLifePenalty {
		t.Errorf("lives = %d, want %d", got, s.Cfg.StartLives-domain.FoxLifePenalty)
	}
	if got := s.Player.Player.Score; got != -domain.FoxScorePenalty {
		t.Errorf("score = %d, want %d", got, -domain.FoxScorePenalty)
	}

	// После контакта лиса отселяется минимум на PredatorMinDist
	if dist := hexgrid.WorldDistance(fox.Tile, s.Player.Tile); dist < s.Cfg.PredatorMinDist {
		t.Errorf("fox relocated only %.2f away, want >= %.2f", dist, s.Cfg.PredatorMinDist)
	}
}

func TestBabyPickup(t *testing.T) {
	s := newTestSession(t)
	s.Player.Player.BabiesRemaining = 1
	baby := addActor(s, domain.KindCollectible, domain.SpeciesBaby, 1, 0)

	move(s, "LEFT")

	if !baby.Eliminated {
		t.Fatal("baby not eliminated after pickup")
	}
	if got := s.Player.Player.Score; got != domain.BabyScoreReward {
		t.Errorf("score = %d, want %d", got, domain.BabyScoreReward)
	}
	if got := s.Player.Player.BabiesRemaining; got != 0 {
		t.Errorf("babies remaining = %d, want 0", got)
	}
}

func TestWinAtBurrow(t *testing.T) {
	t.Run("all babies collected", func(t *testing.T) {
		s := newTestSession(t)
		s.Player.Player.BabiesRemaining = 0
		addActor(s, domain.KindCollectible, domain.SpeciesBurrow, 1, 0)

		move(s, "LEFT")

		if s.State.Phase != domain.PhaseWon {
			t.Fatalf("phase = %v, want Won", s.State.Phase)
		}
		// Бонус за скорость: остаток лимита ходов
		wantScore := s.Cfg.MaxTurns - 1
		if got := s.Player.Player.Score; got != wantScore {
			t.Errorf("score = %d, want %d", got, wantScore)
		}
		if s.endMsg != "Все крольчата дома! Нора спасена." {
			t.Errorf("end message = %q", s.endMsg)
		}
	})

	t.Run("babies left in the forest", func(t *testing.T) {
		s := newTestSession(t)
		s.Player.Player.BabiesRemaining = 2
		addActor(s, domain.KindCollectible, domain.SpeciesBurrow, 1, 0)

		move(s, "LEFT")

		if s.State.Phase != domain.PhaseWon {
			t.Fatalf("phase = %v, want Won", s.State.Phase)
		}
		if s.endMsg != "Вы в норе, но 2 крольчат остались в лесу..." {
			t.Errorf("end message = %q", s.endMsg)
		}
	})
}

func TestLoseWhenLivesRunOut(t *testing.T) {
	s := newTestSession(t)
	s.Player.Player.Lives = 1
	addActor(s, domain.KindPredator, domain.SpeciesFox, 1, 0)

	confirm(s)
	confirm(s) // лиса доходит до игрока, -2 жизни

	if s.State.Phase != domain.PhaseLost {
		t.Fatalf("phase = %v, want Lost", s.State.Phase)
	}
	if s.endMsg != "Жизни кончились. Лес победил." {
		t.Errorf("end message = %q", s.endMsg)
	}
}

func TestLossOverridesWinInSameTurn(t *testing.T) {
	s := newTestSession(t)
	s.Player.Player.Lives = 1
	s.Player.Player.BabiesRemaining = 0
	addActor(s, domain.KindCollectible, domain.SpeciesBurrow, 1, 0)
	addActor(s, domain.KindPredator, domain.SpeciesFox, 1, 0)

	// Игрок шагает в нору, где уже стоит лиса: побед и поражений
	// в одном ходу быть не может, жизни решают
	move(s, "LEFT")
	// Лиса неподвижна на нечетном ходу, но контакт тайлов уже случился
	if s.Player.Tile != (hexgrid.TileIndex{X: 1, Y: 0}) {
		t.Fatalf("player tile = %v, want (1,0)", s.Player.Tile)
	}

	if s.State.Phase != domain.PhaseLost {
		t.Fatalf("phase = %v, want Lost", s.State.Phase)
	}
}

func TestDangerZoneRollsOnlyOnEntry(t *testing.T) {
	s := newTestSession(t)
	trap := addActor(s, domain.KindHazard, domain.SpeciesTrap, 2, 0)

	inside := hexgrid.TileIndex{X: 1, Y: 0}  // ~1.77 до капкана, в зоне
	outside := hexgrid.TileIndex{X: -2, Y: 0} // далеко за радиусом

	// Вход в зону: один бросок, жизнь либо уходит, либо нет
	s.checkDangerZone(trap, inside)
	livesAfterEntry := s.Player.Player.Lives
	if d := s.Cfg.StartLives - livesAfterEntry; d != 0 && d != domain.TrapLifePenalty {
		t.Fatalf("entry roll cost %d lives", d)
	}
	if !s.inZones[trap.ID] {
		t.Fatal("zone entry not recorded")
	}

	// Стояние внутри: повторных бросков нет
	for i := 0; i < 10; i++ {
		s.checkDangerZone(trap, inside)
	}
	if s.Player.Player.Lives != livesAfterEntry {
		t.Fatalf("standing inside zone cost lives: %d -> %d", livesAfterEntry, s.Player.Player.Lives)
	}

	// Выход сбрасывает память зоны
	s.checkDangerZone(trap, outside)
	if s.inZones[trap.ID] {
		t.Fatal("zone exit not recorded")
	}

	// Повторный вход - новый бросок
	s.checkDangerZone(trap, inside)
	if d := livesAfterEntry - s.Player.Player.Lives; d != 0 && d != domain.TrapLifePenalty {
		t.Fatalf("re-entry roll cost %d lives", d)
	}
}

func TestTerminalPhaseLocksSession(t *testing.T) {
	s := newTestSession(t)
	s.Player.Player.BabiesRemaining = 0
	addActor(s, domain.KindCollectible, domain.SpeciesBurrow, 1, 0)
	hunter := addActor(s, domain.KindPredator, domain.SpeciesHunter, 4, 0)

	move(s, "LEFT")
	if s.State.Phase != domain.PhaseWon {
		t.Fatalf("phase = %v, want Won", s.State.Phase)
	}

	turn := s.State.TurnNumber
	score := s.Player.Player.Score

	// Ввод и тики охотника после конца партии игнорируются
	move(s, "RIGHT")
	confirm(s)
	s.handleCommand(domain.InternalCommand{Action: domain.ActionHunterTick})

	if s.State.TurnNumber != turn {
		t.Errorf("turn changed after end: %d -> %d", turn, s.State.TurnNumber)
	}
	if s.Player.Tile != (hexgrid.TileIndex{X: 1, Y: 0}) {
		t.Errorf("player moved after end: %v", s.Player.Tile)
	}
	if hunter.Tile != (hexgrid.TileIndex{X: 4, Y: 0}) {
		t.Errorf("hunter moved after end: %v", hunter.Tile)
	}
	if s.Player.Player.Score != score {
		t.Errorf("score changed after end: %d -> %d", score, s.Player.Player.Score)
	}
}
