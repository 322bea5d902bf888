// internal/types/types.go
package types

// EntityID — поколенческий дескриптор сущности: младшие 32 бита содержат индекс
// слота, старшие — номер поколения. Устаревший дескриптор не совпадает ни с одним
// ключом в картах компонентов.
type EntityID uint64

// NoEntity — нулевой дескриптор, никогда не выдаётся ECS.
const NoEntity EntityID = 0

// NewEntityID собирает дескриптор из индекса и поколения.
func NewEntityID(index, generation uint32) EntityID {
	return EntityID(uint64(generation)<<32 | uint64(index))
}

// Index возвращает индекс слота.
func (id EntityID) Index() uint32 {
	return uint32(id)
}

// Generation возвращает поколение слота на момент выдачи дескриптора.
func (id EntityID) Generation() uint32 {
	return uint32(id >> 32)
}
