package domain

// ActionType - внутренний числовой идентификатор действия.
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionInit                // первый запрос состояния, ход не тратит
	ActionMove                // подтвержденный шаг в направлении
	ActionConfirm             // остаться на месте (тратит ход)
	ActionDebugA              // тумблер отладки: дамп соседей
	ActionDebugB              // тумблер отладки: трассировка хищников
	ActionHunterTick          // системное: тик охотника по wall-clock таймеру
)

// ParseAction переводит строку протокола во внутренний тип.
func ParseAction(s string) ActionType {
	switch s {
	case "INIT":
		return ActionInit
	case "MOVE":
		return ActionMove
	case "CONFIRM":
		return ActionConfirm
	case "DEBUG_A":
		return ActionDebugA
	case "DEBUG_B":
		return ActionDebugB
	default:
		return ActionUnknown
	}
}

// InputSymbol - нормализованный символ ввода. Сырые клавиши разбирает
// клиент, ядро видит только эти значения.
type InputSymbol string

const (
	InputMoveLeft  InputSymbol = "LEFT"
	InputMoveRight InputSymbol = "RIGHT"
	InputMoveUp    InputSymbol = "UP"
	InputMoveDown  InputSymbol = "DOWN"
)

// DirectionAngle возвращает направление в градусах для символа ввода.
// Раскладка зеркальная из-за положения камеры в оригинале:
// LEFT двигает в сторону 0°. Второе значение false = не направление.
func (s InputSymbol) DirectionAngle() (float64, bool) {
	switch s {
	case InputMoveLeft:
		return 0, true
	case InputMoveRight:
		return 180, true
	case InputMoveUp:
		return 60, true
	case InputMoveDown:
		return 240, true
	default:
		return 0, false
	}
}

// Правила столкновений и очков.
const (
	FoxLifePenalty   = 2
	FoxScorePenalty  = 5
	BearLifePenalty  = 4
	BearScorePenalty = 10
	BabyScoreReward  = 10

	// Кадансы хищников: лисы ходят каждый 2-й ход, медведи каждый 3-й
	FoxTurnCadence  = 2
	BearTurnCadence = 3

	// Капканы: вход в опасную зону - разовый бросок без памяти
	TrapChance      = 0.3
	TrapRadius      = 2.0 // мировые единицы
	TrapLifePenalty = 1
)
