package component

// Wave — состояние директора волн на время сессии.
type Wave struct {
	Timer      Timer
	Number     int
	EnemyCount int
	Variants   []EnemyKind // пул в порядке открытия
}

// GameState — режим симуляции внутри сессии.
type GameState int

const (
	Running GameState = iota
	Paused
)

func (s GameState) String() string {
	if s == Paused {
		return "Paused"
	}
	return "Running"
}
