package defs

// Идентификаторы спрайтов — имена файлов без расширения в каталоге Sprites.
const (
	SpritePlayer          = "spaceShips_008"
	SpriteBase            = "spaceBuilding_005"
	SpriteBullet          = "spaceMissiles_027"
	SpritePawn            = "pawn"
	SpriteStinger         = "stinger"
	SpriteSplitter        = "splitter"
	SpriteRogue           = "rogue"
	SpriteBishop          = "bishop"
	SpritePropagator      = "propogator"
	SpriteNeonate         = "neonate"
	SpriteDeacon          = "deacon"
	SpritePartBlue        = "spaceParts_008"
	SpritePartRed         = "spaceParts_013"
	SpritePartGreen       = "spaceParts_025"
	SpriteBuildingCommand = "spaceBuilding_001"
	SpriteBuildingHangar  = "spaceBuilding_002"
	SpriteBuildingDepot   = "spaceBuilding_018"
	SpriteTurret          = "spaceBuilding_020"
)

// Идентификаторы звуков — имена файлов без расширения в каталоге Audio.
const (
	SoundShoot         = "laserSmall_000"
	SoundTurretFire    = "impactGlass_heavy_001"
	SoundEnemyDeath    = "explosionCrunch_004"
	SoundSplit         = "lowFrequency_explosion_001"
	SoundBaseHit       = "footstep_snow_002"
	SoundBaseDestroyed = "explosionCrunch_002"
	SoundPlayerHit     = "explosionCrunch_002"
	SoundPlayerRespawn = "explosionCrunch_003"
	SoundPickupBlue    = "impactMining_002"
	SoundPickupRed     = "impactMining_003"
	SoundPickupGreen   = "impactMining_001"
	SoundDeaconHeal    = "doorClose_000"
	SoundDeaconShot    = "doorOpen_001"
	SoundLevelUp2      = "computerNoise_000"
	SoundLevelUp3      = "computerNoise_001"
	SoundLevelUp5      = "computerNoise_002"
	SoundLevelUp6      = "computerNoise_003"
)

// AllSounds перечисляет звуки для предзагрузки.
var AllSounds = []string{
	SoundShoot, SoundTurretFire, SoundEnemyDeath, SoundSplit, SoundBaseHit,
	SoundBaseDestroyed, SoundPlayerRespawn, SoundPickupBlue, SoundPickupRed,
	SoundPickupGreen, SoundDeaconHeal, SoundDeaconShot, SoundLevelUp2,
	SoundLevelUp3, SoundLevelUp5, SoundLevelUp6,
}
