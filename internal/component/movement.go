// component/movement.go
package component

import "math"

// Vec2 — двумерный вектор в мировых координатах (ось Y направлена вниз).
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

func (v Vec2) Length() float64 { return math.Hypot(v.X, v.Y) }

// Normalize возвращает единичный вектор; нулевой вектор остаётся нулевым.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Distance — расстояние между двумя точками.
func (v Vec2) Distance(o Vec2) float64 { return v.Sub(o).Length() }

// Angle — угол вектора в радианах.
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// Transform — позиция, поворот и масштаб визуального объекта.
type Transform struct {
	Position Vec2
	Rotation float64 // радианы
	Scale    float64
}
