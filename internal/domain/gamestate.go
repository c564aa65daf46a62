package domain

// Phase - фаза партии. Won и Lost терминальны: после них машина ходов
// не принимает ввод и не двигает акторов.
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseWon
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "PLAYING"
	case PhaseWon:
		return "WON"
	case PhaseLost:
		return "LOST"
	default:
		return "UNKNOWN"
	}
}

// Terminal сообщает, закончена ли партия.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// GameState мутируется только машиной ходов.
type GameState struct {
	TurnNumber int   `json:"turnNumber"`
	Phase      Phase `json:"-"`
}
