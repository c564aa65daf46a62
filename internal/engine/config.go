package engine

import "time"

// Config хранит параметры запуска движка.
// Seed - мастер-зерно; сид конкретной партии = Seed XOR hash(token),
// так что один и тот же клиент всегда получает одну и ту же карту.
type Config struct {
	Seed   int64
	Radius float64 // мировой радиус острова

	MaxTurns   int // лимит ходов; бонус за победу = остаток
	StartLives int

	FoxCount    int
	BearCount   int
	HunterCount int
	BabyCount   int
	TrapCount   int
	RockCount   int

	// Минимальная стартовая дистанция хищника от игрока
	PredatorMinDist float64

	// Wall-clock каданс охотника. Независим от счетчика ходов:
	// охотник идет, даже если игрок стоит.
	HunterTick time.Duration
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:            time.Now().UnixNano(),
		Radius:          12,
		MaxTurns:        100,
		StartLives:      5,
		FoxCount:        3,
		BearCount:       2,
		HunterCount:     1,
		BabyCount:       5,
		TrapCount:       3,
		RockCount:       6,
		PredatorMinDist: 5,
		HunterTick:      2 * time.Second,
	}
}
