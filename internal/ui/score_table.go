// internal/ui/score_table.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"go-base-defense/internal/config"
	"go-base-defense/internal/score"
)

// ScoreTable выводит лучшие результаты на экране конца игры.
type ScoreTable struct {
	Y          int
	LineHeight int
}

func NewScoreTable(y int) *ScoreTable {
	return &ScoreTable{Y: y, LineHeight: 20}
}

func (t *ScoreTable) Draw(screen *ebiten.Image, records []score.Record, face font.Face) {
	cx := config.ScreenWidth / 2
	drawCentered(screen, "BEST RUNS", face, cx, t.Y, config.HUDTextColor)
	for i, r := range records {
		line := fmt.Sprintf("%2d.  level %-3d  %4ds  %4d kills  %s", i+1, r.BaseLevel, r.TimeAlive, r.Kills, r.RecordedAt.Local().Format("2006-01-02 15:04"))
		drawCentered(screen, line, face, cx, t.Y+(i+1)*t.LineHeight, config.HUDTextColor)
	}
}
