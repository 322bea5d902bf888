package component

// Timer — счётчик времени с повтором или без.
// Tick накапливает время; Finished истинен в тот кадр, когда накопленное время
// пересекло Duration (для повторяющегося таймера — каждый раз).
type Timer struct {
	Duration  float64
	Elapsed   float64
	Repeating bool

	finished      bool
	timesFinished int
}

// NewTimer создаёт таймер с заданной длительностью в секундах.
func NewTimer(duration float64, repeating bool) Timer {
	return Timer{Duration: duration, Repeating: repeating}
}

// Tick продвигает таймер на deltaTime секунд.
func (t *Timer) Tick(deltaTime float64) {
	t.timesFinished = 0
	if !t.Repeating && t.finished {
		return
	}
	if t.Duration <= 0 {
		t.finished = true
		t.timesFinished = 1
		return
	}
	t.Elapsed += deltaTime
	if t.Elapsed < t.Duration {
		if t.Repeating {
			t.finished = false
		}
		return
	}
	t.finished = true
	if t.Repeating {
		t.timesFinished = int(t.Elapsed / t.Duration)
		t.Elapsed -= float64(t.timesFinished) * t.Duration
		return
	}
	t.timesFinished = 1
	t.Elapsed = t.Duration
}

// Finished — для повторяющегося таймера истинен только в кадр срабатывания,
// для одноразового — с момента срабатывания и далее.
func (t *Timer) Finished() bool {
	return t.finished
}

// JustFinished истинен только в тот кадр, когда таймер сработал.
func (t *Timer) JustFinished() bool {
	return t.timesFinished > 0
}

// TimesFinished — сколько раз таймер сработал за последний Tick.
func (t *Timer) TimesFinished() int {
	return t.timesFinished
}

// SetDuration заменяет длительность и сбрасывает накопленный прогресс.
func (t *Timer) SetDuration(duration float64) {
	*t = NewTimer(duration, t.Repeating)
}

// Reset обнуляет прогресс, сохраняя длительность.
func (t *Timer) Reset() {
	t.Elapsed = 0
	t.finished = false
	t.timesFinished = 0
}

// SessionTimers — общие таймеры сессии.
type SessionTimers struct {
	Ability Timer // способности Bishop и Propagator
	Blaster Timer // перезарядка оружия игрока
	Turret  Timer // перезарядка всех турелей
}
