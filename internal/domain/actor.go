package domain

import (
	"warren-server/pkg/hexgrid"
	"warren-server/pkg/utils"
)

// ActorKind - роль актора в правилах игры. Фиксируется при создании.
type ActorKind uint8

const (
	KindPlayer ActorKind = iota
	KindPredator
	KindCollectible
	KindHazard
)

func (k ActorKind) String() string {
	switch k {
	case KindPlayer:
		return "PLAYER"
	case KindPredator:
		return "PREDATOR"
	case KindCollectible:
		return "COLLECTIBLE"
	case KindHazard:
		return "HAZARD"
	default:
		return "UNKNOWN"
	}
}

// Species уточняет вид внутри роли: хищники различаются штрафами и кадансом,
// коллекционные - наградой, опасности - поведением.
type Species string

const (
	SpeciesRabbit Species = "RABBIT" // игрок
	SpeciesFox    Species = "FOX"    // быстрый хищник, ходит каждый 2-й ход
	SpeciesBear   Species = "BEAR"   // медленный хищник, каждый 3-й ход
	SpeciesHunter Species = "HUNTER" // ходит по wall-clock таймеру, не по ходам
	SpeciesBaby   Species = "BABY"   // крольчонок, +10 очков
	SpeciesBurrow Species = "BURROW" // нора - цель игры
	SpeciesTrap   Species = "TRAP"   // капкан - опасная зона
	SpeciesRock   Species = "ROCK"   // валун - закрывает тайл
	SpeciesTree   Species = "TREE"   // дерево - закрывает тайл
)

// PlayerState - состояние, принадлежащее только игроку.
type PlayerState struct {
	Lives           int `json:"lives"`
	Score           int `json:"score"`
	BabiesRemaining int `json:"babiesRemaining"`
}

// Actor - сущность, привязанная к тайлу. Мировая позиция не хранится:
// она всегда выводится из индекса тайла через реестр.
type Actor struct {
	ID      string            `json:"id"`
	Kind    ActorKind         `json:"-"`
	Species Species           `json:"species"`
	Tile    hexgrid.TileIndex `json:"tile"`
	Facing  float64           `json:"facing"` // градусы, кратно 60

	Eliminated bool `json:"eliminated"`

	// Только у игрока, у остальных nil
	Player *PlayerState `json:"player,omitempty"`
}

// NewActor создает актора на тайле.
func NewActor(kind ActorKind, species Species, tile hexgrid.TileIndex) *Actor {
	return &Actor{
		ID:      utils.GenerateID(),
		Kind:    kind,
		Species: species,
		Tile:    tile,
	}
}

// IsPredator сообщает, охотится ли актор на игрока.
func (a *Actor) IsPredator() bool {
	return a.Kind == KindPredator && !a.Eliminated
}

// BlocksTile сообщает, закрывает ли актор свой тайл для движения.
func (a *Actor) BlocksTile() bool {
	return a.Species == SpeciesRock || a.Species == SpeciesTree
}
