// internal/component/projectile.go
package component

// Projectile представляет летящий снаряд.
// Урон и скорость переписываются каждый кадр по уровню базы.
type Projectile struct {
	Speed     float64
	Direction Vec2 // единичный вектор
	Size      Vec2
	Damage    int64
	SpawnTime float64
}
