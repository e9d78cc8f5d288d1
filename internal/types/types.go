// internal/types/types.go
package types

// EntityID — идентификатор сущности в реестре ECS.
// Идентификаторы выдаются монотонно и никогда не переиспользуются,
// поэтому по ним можно упорядочить сущности по времени создания.
type EntityID uint64
