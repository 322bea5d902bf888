// internal/event/types.go
package event

const (
	GameOver        EventType = "GameOver"        // База разрушена, Data: GameOverData
	EnemyKilled     EventType = "EnemyKilled"     // Враг уничтожен снарядом, Data: EnemyKilledData
	PartCollected   EventType = "PartCollected"   // Игрок подобрал деталь, Data: component.Part
	BaseLeveledUp   EventType = "BaseLeveledUp"   // База получила уровень, Data: int64
	PlayerRespawned EventType = "PlayerRespawned" // Игрок погиб и возрождён у базы
	WaveStarted     EventType = "WaveStarted"     // Директор выпустил волну, Data: int
	DeaconConsumed  EventType = "DeaconConsumed"  // Deacon вылечил врага, Data: types.EntityID
)

// SessionEvents — события, которые учитывает статистика забега.
var SessionEvents = []EventType{
	EnemyKilled, PartCollected, BaseLeveledUp, PlayerRespawned, WaveStarted, DeaconConsumed,
}

// GameOverData — итог забега.
type GameOverData struct {
	TimeAlive uint64 // секунды с момента появления базы
	BaseLevel int64
}

// EnemyKilledData описывает гибель врага.
type EnemyKilledData struct {
	Kind      string
	X, Y      float64
	Reward    bool
	Offspring int
}
