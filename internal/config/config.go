// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	MaxDeltaTime = 0.06

	// Волны
	WaveCooldown      = 15.0 // секунд между волнами
	SpawnEdgeOffset   = 20.0 // враги появляются за краем поля
	EnemyAbilityCycle = 10.0 // Bishop/Propagator применяют способность

	// Игрок
	PlayerSize          = 32.0
	PlayerHealth        = 100
	PlayerSpeed         = 250.0
	PlayerHalfSize      = 15.0
	PlayerSpawnFraction = 0.6 // доля высоты поля для точки появления
	BlasterCooldown     = 0.5
	PlayerBulletDamage  = 50

	// Снаряды
	BulletSpeed    = 250.0
	BulletLifetime = 1.5
	BulletSize     = 16.0
	BulletHalfSize = 10.0

	// Турели
	TurretRadar    = 200.0
	TurretCooldown = 0.5

	// База
	BaseHealth   = 500
	BaseHalfSize = 50.0
	BaseMaxParts = 3
	MaxPartsCap  = 8

	// Детали и спутники
	PartLifetime     = 10.0
	PartSpinRate     = -0.0087
	DeaconIdleTime   = 1.0
	DeaconSeekRadius = 35.0
	DeaconSpinRate   = -0.0175

	SplitterRedirectInterval = 1.0
	BannerDuration           = 2.0 // секунд показа объявления HUD
	NeonateGestation         = 1.0
)

var (
	BackgroundColor = color.RGBA{12, 14, 28, 255}
	HUDTextColor    = color.RGBA{240, 240, 240, 255}
	HUDPanelColor   = color.RGBA{64, 64, 64, 128}
	OverlayColor    = color.RGBA{0, 0, 0, 128}
	TierColors      = []color.RGBA{
		{50, 100, 255, 255}, // Blue
		{255, 50, 50, 255},  // Red
		{50, 255, 50, 255},  // Green
	}
	// FallbackColors — цвета заглушек для отсутствующих спрайтов.
	FallbackColors = map[string]color.RGBA{
		"player":   {220, 220, 255, 255},
		"base":     {50, 205, 50, 255},
		"enemy":    {200, 60, 60, 255},
		"bullet":   {255, 215, 0, 255},
		"deacon":   {180, 50, 230, 255},
		"building": {128, 128, 128, 255},
	}
)
