// internal/app/session_stats.go
package app

import (
	"fmt"

	"go-base-defense/internal/config"
	"go-base-defense/internal/event"
)

// SessionStats — счётчики забега, собираемые из событий систем,
// и последнее объявление для HUD.
type SessionStats struct {
	Kills          int
	PartsCollected int
	Respawns       int
	DeaconHeals    int
	Wave           int
	Level          int64

	banner   string
	bannerAt float64
	clock    func() float64
}

func newSessionStats(clock func() float64) *SessionStats {
	return &SessionStats{clock: clock, Level: 1}
}

func (s *SessionStats) reset() {
	*s = SessionStats{clock: s.clock, Level: 1}
}

// OnEvent реализует интерфейс event.Listener.
func (s *SessionStats) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		s.Kills++
	case event.PartCollected:
		s.PartsCollected++
	case event.DeaconConsumed:
		s.DeaconHeals++
	case event.PlayerRespawned:
		s.Respawns++
		s.announce("SHIP LOST")
	case event.WaveStarted:
		if n, ok := e.Data.(int); ok {
			s.Wave = n
			s.announce(fmt.Sprintf("WAVE %d", n))
		}
	case event.BaseLeveledUp:
		if level, ok := e.Data.(int64); ok {
			s.Level = level
			s.announce(fmt.Sprintf("BASE LEVEL %d", level))
		}
	}
}

func (s *SessionStats) announce(text string) {
	s.banner = text
	s.bannerAt = s.clock()
}

// Banner возвращает объявление, если оно ещё не истекло.
func (s *SessionStats) Banner() (string, bool) {
	if s.banner == "" || s.clock()-s.bannerAt >= config.BannerDuration {
		return "", false
	}
	return s.banner, true
}
