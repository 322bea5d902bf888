package component

// Sprite связывает сущность с изображением из каталога ассетов.
type Sprite struct {
	ID string // ключ из defs.Sprite*
}
