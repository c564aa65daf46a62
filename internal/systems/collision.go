package systems

import (
	"fmt"
	"math/rand"

	"warren-server/internal/domain"
	"warren-server/internal/terrain"
	"warren-server/pkg/hexgrid"
)

// PredatorPenalty возвращает штрафы (жизни, очки) за контакт с хищником.
func PredatorPenalty(species domain.Species) (lives, score int) {
	switch species {
	case domain.SpeciesBear:
		return domain.BearLifePenalty, domain.BearScorePenalty
	default:
		// Лиса и охотник бьют одинаково
		return domain.FoxLifePenalty, domain.FoxScorePenalty
	}
}

// ApplyPredatorHit списывает жизни и очки за контакт. Возвращает сообщение
// для лога клиента.
func ApplyPredatorHit(player *domain.Actor, predator *domain.Actor) string {
	lives, score := PredatorPenalty(predator.Species)
	player.Player.Lives -= lives
	player.Player.Score -= score

	switch predator.Species {
	case domain.SpeciesBear:
		return fmt.Sprintf("Медведь поймал вас! -%d жизни", lives)
	case domain.SpeciesHunter:
		return fmt.Sprintf("Охотник настиг вас! -%d жизни", lives)
	default:
		return fmt.Sprintf("Лиса поймала вас! -%d жизни", lives)
	}
}

// ApplyBabyPickup начисляет очки за найденного крольчонка и помечает его
// собранным.
func ApplyBabyPickup(player *domain.Actor, baby *domain.Actor) string {
	baby.Eliminated = true
	player.Player.Score += domain.BabyScoreReward
	player.Player.BabiesRemaining--
	return fmt.Sprintf("Вы нашли крольчонка! +%d очков", domain.BabyScoreReward)
}

// InDangerZone сообщает, попадает ли тайл в радиус действия капкана.
func InDangerZone(trapTile, tile hexgrid.TileIndex) bool {
	return hexgrid.WorldDistance(trapTile, tile) <= domain.TrapRadius
}

// TrapTriggered - разовый бросок при входе в зону. Без памяти: каждый вход
// в зону бросается заново, независимо от прошлых визитов.
func TrapTriggered(rng *rand.Rand) bool {
	return rng.Float64() < domain.TrapChance
}

// ClaimTile закрывает тайл под блокирующей декорацией (валун, дерево).
func ClaimTile(reg *terrain.Registry, actor *domain.Actor) bool {
	if !actor.BlocksTile() {
		return false
	}
	return reg.SetPassable(actor.Tile, false)
}
